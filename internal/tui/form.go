package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/jaekwang-park/tasklist/internal/model"
)

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	text      string
	date      string
	timeOfDay string
	confirm   bool
}

// newTaskForm builds the create/edit form. All three fields are required;
// date and time must parse in their wire layouts before submit.
func newTaskForm(fb *formBindings, title string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task").
				Placeholder("What needs to be done?").
				Value(&fb.text).
				Validate(validateRequired("Task")),
			huh.NewInput().
				Title("Date").
				Placeholder("YYYY-MM-DD").
				Value(&fb.date).
				Validate(validateDate),
			huh.NewInput().
				Title("Time").
				Placeholder("HH:MM").
				Value(&fb.timeOfDay).
				Validate(validateTime),
		).Title(title),
	)
}

// newDeleteConfirm builds the confirmation step required before any delete.
func newDeleteConfirm(fb *formBindings, text string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Delete this task?").
				Description(text).
				Affirmative("Delete").
				Negative("Keep").
				Value(&fb.confirm),
		),
	)
}

func validateRequired(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(fieldName + " is required")
		}
		return nil
	}
}

func validateDate(s string) error {
	if _, err := time.Parse(model.DateLayout, s); err != nil {
		return errors.New("use YYYY-MM-DD")
	}
	return nil
}

func validateTime(s string) error {
	if _, err := time.Parse(model.TimeLayout, s); err != nil {
		return errors.New("use HH:MM (24-hour)")
	}
	return nil
}

// defaultDate is today; defaultTime is the next full hour. Both match what
// the create form pre-fills.
func defaultDate(now time.Time) string {
	return now.Format(model.DateLayout)
}

func defaultTime(now time.Time) string {
	// Built from wall-clock components; Truncate works on the absolute
	// timeline and drifts in zones with non-whole-hour offsets.
	next := time.Date(now.Year(), now.Month(), now.Day(), now.Hour()+1, 0, 0, 0, now.Location())
	return next.Format(model.TimeLayout)
}
