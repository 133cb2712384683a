package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

func NewDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// task_status is declared pending-first so that ORDER BY status ASC groups
// pending tasks before completed ones.
const taskStatusType = `
	DO $$
	BEGIN
		CREATE TYPE task_status AS ENUM ('pending', 'completed');
	EXCEPTION
		WHEN duplicate_object THEN NULL;
	END $$`

const tasksSchema = `
	CREATE TABLE IF NOT EXISTS tasks (
		id        BIGSERIAL PRIMARY KEY,
		task_text TEXT NOT NULL,
		task_date DATE NOT NULL,
		task_time TIME NOT NULL,
		status    task_status NOT NULL DEFAULT 'pending'
	)`

// EnsureSchema creates the status type and the tasks table when absent. The
// store is a single table; there is no migrations framework.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, taskStatusType); err != nil {
		return fmt.Errorf("failed to ensure task_status type: %w", err)
	}
	if _, err := db.ExecContext(ctx, tasksSchema); err != nil {
		return fmt.Errorf("failed to ensure tasks schema: %w", err)
	}
	return nil
}
