package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jaekwang-park/tasklist/internal/model"
	"github.com/jaekwang-park/tasklist/internal/repository"
)

// CreateTaskInput carries the create request fields. Pointers distinguish
// an absent field from an empty one.
type CreateTaskInput struct {
	Text *string
	Date *string
	Time *string
}

type TaskService struct {
	repo repository.TaskRepository
}

func NewTaskService(repo repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// Create inserts a new task with status forced to pending and returns the
// store-assigned id. All three fields must be present and non-empty.
func (s *TaskService) Create(ctx context.Context, input CreateTaskInput) (int64, error) {
	if missing(input.Text) || missing(input.Date) || missing(input.Time) {
		return 0, fmt.Errorf("%w: missing required fields", ErrInvalidInput)
	}

	task := model.Task{
		Text:   *input.Text,
		Date:   *input.Date,
		Time:   *input.Time,
		Status: model.TaskStatusPending,
	}

	id, err := s.repo.Create(ctx, task)
	if err != nil {
		return 0, fmt.Errorf("failed to create task: %w", err)
	}
	return id, nil
}

func (s *TaskService) GetByID(ctx context.Context, id int64) (model.Task, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, ErrNotFound
		}
		return model.Task{}, fmt.Errorf("failed to get task: %w", err)
	}

	task.Annotate()
	return task, nil
}

// List returns the full task collection ordered by the given sort key, each
// record annotated with its display-formatted date and time.
func (s *TaskService) List(ctx context.Context, sort model.SortKey) ([]model.Task, error) {
	tasks, err := s.repo.List(ctx, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	for i := range tasks {
		tasks[i].Annotate()
	}
	return tasks, nil
}

// Update applies a partial update. At least one patch field must be present;
// a supplied status must be one of the two enum values. Updating an absent
// id succeeds as a no-op.
func (s *TaskService) Update(ctx context.Context, id int64, patch model.TaskPatch) error {
	if patch.IsEmpty() {
		return ErrNoFields
	}
	if patch.Status != nil && !model.TaskStatus(*patch.Status).IsValid() {
		return fmt.Errorf("%w: status must be 'pending' or 'completed'", ErrInvalidInput)
	}

	if err := s.repo.Update(ctx, id, patch); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

// Delete removes the task. Deleting an absent id succeeds as a no-op.
func (s *TaskService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

func missing(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
