package model

import "time"

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

func (s TaskStatus) IsValid() bool {
	return s == TaskStatusPending || s == TaskStatusCompleted
}

// Toggled returns the opposite status: pending becomes completed and back.
func (s TaskStatus) Toggled() TaskStatus {
	if s == TaskStatusPending {
		return TaskStatusCompleted
	}
	return TaskStatusPending
}

// Wire layouts for task_date and task_time.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Display layouts for the derived formatted_date / formatted_time fields.
const (
	displayDateLayout = "Jan 02, 2006"
	displayTimeLayout = "3:04 PM"
)

type Task struct {
	ID     int64      `json:"id"`
	Text   string     `json:"task_text"`
	Date   string     `json:"task_date"`
	Time   string     `json:"task_time"`
	Status TaskStatus `json:"status"`

	// Derived display fields, set on list/get reads. Never persisted.
	FormattedDate string `json:"formatted_date,omitempty"`
	FormattedTime string `json:"formatted_time,omitempty"`
}

// DueAt combines the raw date and time into the task's due instant.
func (t Task) DueAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout+" "+TimeLayout, t.Date+" "+t.Time, loc)
}

// Overdue reports whether the due instant is in the past while the task is
// still pending. Display-only; never persisted.
func (t Task) Overdue(now time.Time) bool {
	if t.Status != TaskStatusPending {
		return false
	}
	due, err := t.DueAt(now.Location())
	if err != nil {
		return false
	}
	return due.Before(now)
}

// Annotate fills the derived display fields from the raw date and time.
// Unparseable values fall back to the raw string.
func (t *Task) Annotate() {
	t.FormattedDate = reformat(t.Date, DateLayout, displayDateLayout)
	t.FormattedTime = reformat(t.Time, TimeLayout, displayTimeLayout)
}

func reformat(raw, layout, display string) string {
	parsed, err := time.Parse(layout, raw)
	if err != nil {
		return raw
	}
	return parsed.Format(display)
}

// TaskPatch carries the optional fields of a partial update. Only non-nil
// fields are applied; the repository binds them into a single parameterized
// statement, never building column lists from request keys.
type TaskPatch struct {
	Text   *string `json:"task_text,omitempty"`
	Date   *string `json:"task_date,omitempty"`
	Time   *string `json:"task_time,omitempty"`
	Status *string `json:"status,omitempty"`
}

func (p TaskPatch) IsEmpty() bool {
	return p.Text == nil && p.Date == nil && p.Time == nil && p.Status == nil
}
