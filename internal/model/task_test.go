package model_test

import (
	"testing"
	"time"

	"github.com/jaekwang-park/tasklist/internal/model"
)

func TestTaskStatus_IsValid(t *testing.T) {
	tests := []struct {
		status model.TaskStatus
		want   bool
	}{
		{model.TaskStatusPending, true},
		{model.TaskStatusCompleted, true},
		{model.TaskStatus("done"), false},
		{model.TaskStatus(""), false},
		{model.TaskStatus("PENDING"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.IsValid(); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestTaskStatus_Toggled(t *testing.T) {
	if got := model.TaskStatusPending.Toggled(); got != model.TaskStatusCompleted {
		t.Errorf("pending toggled to %q, want completed", got)
	}
	if got := model.TaskStatusCompleted.Toggled(); got != model.TaskStatusPending {
		t.Errorf("completed toggled to %q, want pending", got)
	}
}

func TestTask_Overdue(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		task model.Task
		want bool
	}{
		{
			name: "pending task in the past",
			task: model.Task{Date: "2025-03-14", Time: "09:00", Status: model.TaskStatusPending},
			want: true,
		},
		{
			name: "pending task later the same day",
			task: model.Task{Date: "2025-03-15", Time: "18:00", Status: model.TaskStatusPending},
			want: false,
		},
		{
			name: "completed task in the past",
			task: model.Task{Date: "2025-03-14", Time: "09:00", Status: model.TaskStatusCompleted},
			want: false,
		},
		{
			name: "unparseable date",
			task: model.Task{Date: "yesterday", Time: "09:00", Status: model.TaskStatusPending},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.Overdue(now); got != tt.want {
				t.Errorf("Overdue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTask_Annotate(t *testing.T) {
	tests := []struct {
		name     string
		task     model.Task
		wantDate string
		wantTime string
	}{
		{
			name:     "well-formed date and time",
			task:     model.Task{Date: "2025-03-05", Time: "14:30"},
			wantDate: "Mar 05, 2025",
			wantTime: "2:30 PM",
		},
		{
			name:     "morning time",
			task:     model.Task{Date: "2025-12-25", Time: "09:05"},
			wantDate: "Dec 25, 2025",
			wantTime: "9:05 AM",
		},
		{
			name:     "unparseable values fall back to raw",
			task:     model.Task{Date: "not-a-date", Time: "soon"},
			wantDate: "not-a-date",
			wantTime: "soon",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := tt.task
			task.Annotate()

			if task.FormattedDate != tt.wantDate {
				t.Errorf("FormattedDate = %q, want %q", task.FormattedDate, tt.wantDate)
			}
			if task.FormattedTime != tt.wantTime {
				t.Errorf("FormattedTime = %q, want %q", task.FormattedTime, tt.wantTime)
			}
		})
	}
}

func TestTaskPatch_IsEmpty(t *testing.T) {
	text := "buy milk"

	if !(model.TaskPatch{}).IsEmpty() {
		t.Error("zero patch should be empty")
	}
	if (model.TaskPatch{Text: &text}).IsEmpty() {
		t.Error("patch with a field set should not be empty")
	}
}
