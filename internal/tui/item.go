package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jaekwang-park/tasklist/internal/model"
)

// taskItem wraps a model.Task so it can be used in a bubbles/list.
type taskItem struct {
	task model.Task
}

func (i taskItem) FilterValue() string { return i.task.Text }

// taskDelegate renders one task per line.
type taskDelegate struct{}

func (d taskDelegate) Height() int  { return 1 }
func (d taskDelegate) Spacing() int { return 0 }

func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(taskItem)
	if !ok {
		return
	}

	fmt.Fprint(w, renderTaskLine(it.task, index == m.Index(), time.Now()))
}

// renderTaskLine draws a single task: completion marker, text, due date and
// time, and the overdue badge when the due instant has passed.
func renderTaskLine(t model.Task, selected bool, now time.Time) string {
	marker := "○"
	if t.Status == model.TaskStatusCompleted {
		marker = "✓"
	}

	meta := metaStyle.Render(fmt.Sprintf("%s %s", t.FormattedDate, t.FormattedTime))

	overdue := ""
	if t.Overdue(now) {
		overdue = overdueStyle.Render(" OVERDUE")
	}

	line := fmt.Sprintf("%s %s  %s%s", marker, t.Text, meta, overdue)

	if t.Status == model.TaskStatusCompleted {
		line = dimmedStyle.Render(line)
	}

	if selected {
		return selectedItemStyle.Render(line)
	}
	return listItemStyle.Render(line)
}
