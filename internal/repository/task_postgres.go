package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jaekwang-park/tasklist/internal/model"
)

type PostgresTaskRepository struct {
	db *sql.DB
}

func NewPostgresTask(db *sql.DB) *PostgresTaskRepository {
	return &PostgresTaskRepository{db: db}
}

// taskColumns selects the raw fields with the date and time rendered in
// their wire layouts.
const taskColumns = `id, task_text, to_char(task_date, 'YYYY-MM-DD'), to_char(task_time, 'HH24:MI'), status`

// orderClauses is the closed table of ORDER BY clauses; sort keys never
// reach the SQL text directly.
var orderClauses = map[model.SortKey]string{
	model.SortDateAsc:  "task_date ASC, task_time ASC",
	model.SortDateDesc: "task_date DESC, task_time DESC",
	model.SortStatus:   "status ASC, task_date ASC, task_time ASC",
}

func orderClause(sort model.SortKey) string {
	if clause, ok := orderClauses[sort]; ok {
		return clause
	}
	return orderClauses[model.SortDateAsc]
}

func (r *PostgresTaskRepository) Create(ctx context.Context, task model.Task) (int64, error) {
	query := `
		INSERT INTO tasks (task_text, task_date, task_time, status)
		VALUES ($1, $2::date, $3::time, $4::task_status)
		RETURNING id`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		task.Text, task.Date, task.Time, task.Status,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert task: %w", err)
	}
	return id, nil
}

func (r *PostgresTaskRepository) GetByID(ctx context.Context, id int64) (model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, id)
	return scanTask(row)
}

func (r *PostgresTaskRepository) List(ctx context.Context, sort model.SortKey) ([]model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY ` + orderClause(sort)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}

// Update applies only the non-nil patch fields inside one parameterized
// statement; nil binds pass NULL and COALESCE keeps the stored value.
// Zero rows affected is not an error: updating an absent id is a no-op.
func (r *PostgresTaskRepository) Update(ctx context.Context, id int64, patch model.TaskPatch) error {
	query := `
		UPDATE tasks
		SET task_text = COALESCE($1, task_text),
		    task_date = COALESCE($2::date, task_date),
		    task_time = COALESCE($3::time, task_time),
		    status    = COALESCE($4::task_status, status)
		WHERE id = $5`

	_, err := r.db.ExecContext(ctx, query,
		patch.Text, patch.Date, patch.Time, patch.Status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

// Delete removes the task row. Zero rows affected is not an error: deleting
// an absent id is a no-op.
func (r *PostgresTaskRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanTask(row scannable) (model.Task, error) {
	var t model.Task
	err := row.Scan(&t.ID, &t.Text, &t.Date, &t.Time, &t.Status)
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to scan task: %w", err)
	}
	return t, nil
}

// ensure compile-time interface compliance
var _ TaskRepository = (*PostgresTaskRepository)(nil)
