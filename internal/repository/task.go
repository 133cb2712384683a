package repository

import (
	"context"

	"github.com/jaekwang-park/tasklist/internal/model"
)

type TaskRepository interface {
	Create(ctx context.Context, task model.Task) (int64, error)
	GetByID(ctx context.Context, id int64) (model.Task, error)
	List(ctx context.Context, sort model.SortKey) ([]model.Task, error)
	Update(ctx context.Context, id int64, patch model.TaskPatch) error
	Delete(ctx context.Context, id int64) error
}
