// Package tui is the terminal client for the task API. It renders the task
// collection, collects user input through forms, and drives every mutation
// through the API client, re-fetching the list after each one.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/jaekwang-park/tasklist/internal/client"
	"github.com/jaekwang-park/tasklist/internal/model"
)

// viewState represents the active view.
type viewState int

const (
	viewList viewState = iota
	viewForm
	viewConfirm
)

type noticeLevel int

const (
	noticeSuccess noticeLevel = iota
	noticeError
	noticeWarning
)

// notice is a transient user-facing notification.
type notice struct {
	text  string
	level noticeLevel
}

// tasksLoadedMsg carries a completed list fetch. seq orders fetches so a
// slow earlier response never overwrites a newer one.
type tasksLoadedMsg struct {
	seq   int
	tasks []model.Task
	err   error
}

// mutationDoneMsg reports a completed create/update/delete round trip.
type mutationDoneMsg struct {
	info string
	err  error
}

type noticeExpiredMsg struct {
	id int
}

const noticeTTL = 3 * time.Second

// Model is the root Bubble Tea model.
type Model struct {
	api  *client.Client
	keys keyMap
	list list.Model

	sort  model.SortKey
	tasks []model.Task

	// fetchSeq is the last issued fetch sequence number; appliedSeq is the
	// last one whose response was rendered.
	fetchSeq   int
	appliedSeq int
	loading    bool

	view     viewState
	form     *huh.Form
	fb       *formBindings
	editing  *model.Task
	deleting *model.Task

	notice   notice
	noticeID int

	width  int
	height int
	ready  bool
}

func New(api *client.Client) Model {
	l := list.New([]list.Item{}, taskDelegate{}, 80, 20)
	l.Title = "Tasks"
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)
	l.Styles.Title = headerStyle

	m := Model{
		api:  api,
		keys: defaultKeyMap(),
		list: l,
		sort: model.SortDateAsc,
		fb:   &formBindings{},
	}

	// Init runs on a copy, so the first fetch's sequence number has to be
	// reserved here for later fetches to count past it.
	m.fetchSeq = 1
	m.loading = true
	return m
}

func (m Model) Init() tea.Cmd {
	return m.fetchCmd(m.fetchSeq)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.list.SetSize(msg.Width, msg.Height-3)
		if m.view != viewList {
			return m.updateForm(msg)
		}
		return m, nil

	case tasksLoadedMsg:
		return m.applyFetch(msg)

	case mutationDoneMsg:
		if msg.err != nil {
			return m, m.notify(noticeError, errText(msg.err))
		}
		return m, tea.Batch(m.notify(noticeSuccess, msg.info), m.nextFetch())

	case noticeExpiredMsg:
		if msg.id == m.noticeID {
			m.notice = notice{}
		}
		return m, nil

	case tea.KeyMsg:
		if m.view != viewList {
			return m.updateForm(msg)
		}
		return m.updateList(msg)
	}

	if m.view != viewList {
		return m.updateForm(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// applyFetch renders a list response unless a newer fetch already painted.
func (m Model) applyFetch(msg tasksLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.seq <= m.appliedSeq {
		return m, nil
	}
	m.appliedSeq = msg.seq
	m.loading = false

	if msg.err != nil {
		return m, m.notify(noticeError, errText(msg.err))
	}

	m.tasks = msg.tasks
	items := make([]list.Item, len(msg.tasks))
	for i, t := range msg.tasks {
		items[i] = taskItem{task: t}
	}
	return m, m.list.SetItems(items)
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Add):
		now := time.Now()
		m.fb.text = ""
		m.fb.date = defaultDate(now)
		m.fb.timeOfDay = defaultTime(now)
		m.editing = nil
		m.form = newTaskForm(m.fb, "New Task")
		m.view = viewForm
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Edit):
		task, ok := m.selectedTask()
		if !ok {
			return m, m.notify(noticeWarning, "No task selected")
		}
		m.fb.text = task.Text
		m.fb.date = task.Date
		m.fb.timeOfDay = task.Time
		m.editing = &task
		m.form = newTaskForm(m.fb, "Edit Task")
		m.view = viewForm
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Toggle):
		task, ok := m.selectedTask()
		if !ok {
			return m, m.notify(noticeWarning, "No task selected")
		}
		return m, m.toggleCmd(task)

	case key.Matches(msg, m.keys.Delete):
		task, ok := m.selectedTask()
		if !ok {
			return m, m.notify(noticeWarning, "No task selected")
		}
		m.fb.confirm = false
		m.deleting = &task
		m.form = newDeleteConfirm(m.fb, task.Text)
		m.view = viewConfirm
		return m, m.form.Init()

	case key.Matches(msg, m.keys.CycleSort):
		m.sort = m.sort.Next()
		return m, m.nextFetch()

	case key.Matches(msg, m.keys.Refresh):
		return m, m.nextFetch()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// updateForm drives the active huh form (task form or delete confirm).
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m.submitForm()
	case huh.StateAborted:
		m.view = viewList
		m.editing = nil
		m.deleting = nil
		return m, nil
	}

	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	view := m.view
	m.view = viewList

	if view == viewConfirm {
		task := m.deleting
		m.deleting = nil
		if task == nil || !m.fb.confirm {
			return m, nil
		}
		return m, m.deleteCmd(task.ID)
	}

	text := strings.TrimSpace(m.fb.text)
	date := m.fb.date
	timeOfDay := m.fb.timeOfDay

	if m.editing != nil {
		id := m.editing.ID
		m.editing = nil
		return m, m.editCmd(id, text, date, timeOfDay)
	}
	return m, m.createCmd(text, date, timeOfDay)
}

// nextFetch issues a list fetch carrying the next sequence number.
func (m *Model) nextFetch() tea.Cmd {
	if m.fetchSeq < m.appliedSeq {
		m.fetchSeq = m.appliedSeq
	}
	m.fetchSeq++
	m.loading = true

	return m.fetchCmd(m.fetchSeq)
}

func (m Model) fetchCmd(seq int) tea.Cmd {
	sort := m.sort
	api := m.api
	return func() tea.Msg {
		tasks, err := api.List(context.Background(), sort)
		return tasksLoadedMsg{seq: seq, tasks: tasks, err: err}
	}
}

func (m Model) createCmd(text, date, timeOfDay string) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		_, err := api.Create(context.Background(), text, date, timeOfDay)
		return mutationDoneMsg{info: "Task added successfully", err: err}
	}
}

func (m Model) editCmd(id int64, text, date, timeOfDay string) tea.Cmd {
	api := m.api
	patch := model.TaskPatch{Text: &text, Date: &date, Time: &timeOfDay}
	return func() tea.Msg {
		err := api.Update(context.Background(), id, patch)
		return mutationDoneMsg{info: "Task updated successfully", err: err}
	}
}

func (m Model) toggleCmd(task model.Task) tea.Cmd {
	api := m.api
	next := string(task.Status.Toggled())
	return func() tea.Msg {
		err := api.Update(context.Background(), task.ID, model.TaskPatch{Status: &next})
		return mutationDoneMsg{info: "Task marked as " + next, err: err}
	}
}

func (m Model) deleteCmd(id int64) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		err := api.Delete(context.Background(), id)
		return mutationDoneMsg{info: "Task deleted successfully", err: err}
	}
}

// notify installs a transient notification and schedules its expiry.
func (m *Model) notify(level noticeLevel, text string) tea.Cmd {
	m.noticeID++
	id := m.noticeID
	m.notice = notice{text: text, level: level}
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg{id: id}
	})
}

func (m Model) selectedTask() (model.Task, bool) {
	item, ok := m.list.SelectedItem().(taskItem)
	if !ok {
		return model.Task{}, false
	}
	return item.task, true
}

func (m Model) View() string {
	if !m.ready {
		return ""
	}

	if m.view != viewList && m.form != nil {
		return formStyle.Render(m.form.View())
	}

	var b strings.Builder
	b.WriteString(m.list.View())
	b.WriteString("\n")
	b.WriteString(m.statusBar())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("a add · e edit · enter toggle · d delete · s sort · r refresh · q quit"))
	return b.String()
}

func (m Model) statusBar() string {
	pending, completed := statusCounts(m.tasks)

	left := fmt.Sprintf("%d pending · %d completed · sort: %s", pending, completed, m.sort)
	if m.loading {
		left += " · loading…"
	}
	bar := statusBarStyle.Render(left)

	if m.notice.text != "" {
		bar += " " + noticeStyle(m.notice.level).Render(m.notice.text)
	}
	return bar
}

func statusCounts(tasks []model.Task) (pending, completed int) {
	for _, t := range tasks {
		if t.Status == model.TaskStatusCompleted {
			completed++
		} else {
			pending++
		}
	}
	return pending, completed
}

// errText maps an error to its user-facing notification text: the server's
// envelope message when there is one, a generic transport message otherwise.
func errText(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "Network error. Please try again."
}
