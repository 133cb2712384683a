package model

// SortKey selects the ordering of a full task listing.
type SortKey string

const (
	SortDateAsc  SortKey = "date_asc"
	SortDateDesc SortKey = "date_desc"
	SortStatus   SortKey = "status"
)

// ParseSortKey maps a caller-supplied value to a sort key. Any unrecognized
// value, including the empty string, falls back to date_asc.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortDateDesc:
		return SortDateDesc
	case SortStatus:
		return SortStatus
	default:
		return SortDateAsc
	}
}

// Next cycles date_asc -> date_desc -> status -> date_asc.
func (k SortKey) Next() SortKey {
	switch k {
	case SortDateAsc:
		return SortDateDesc
	case SortDateDesc:
		return SortStatus
	default:
		return SortDateAsc
	}
}
