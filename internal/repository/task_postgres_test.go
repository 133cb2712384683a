package repository

import (
	"testing"

	"github.com/jaekwang-park/tasklist/internal/model"
)

func TestOrderClause(t *testing.T) {
	tests := []struct {
		name string
		sort model.SortKey
		want string
	}{
		{
			name: "date ascending",
			sort: model.SortDateAsc,
			want: "task_date ASC, task_time ASC",
		},
		{
			name: "date descending flips both directions",
			sort: model.SortDateDesc,
			want: "task_date DESC, task_time DESC",
		},
		{
			name: "status groups then orders chronologically",
			sort: model.SortStatus,
			want: "status ASC, task_date ASC, task_time ASC",
		},
		{
			name: "unknown key falls back to date ascending",
			sort: model.SortKey("priority"),
			want: "task_date ASC, task_time ASC",
		},
		{
			name: "empty key falls back to date ascending",
			sort: model.SortKey(""),
			want: "task_date ASC, task_time ASC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := orderClause(tt.sort); got != tt.want {
				t.Errorf("orderClause(%q) = %q, want %q", tt.sort, got, tt.want)
			}
		})
	}
}
