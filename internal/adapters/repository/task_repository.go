package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/daymark/core/internal/domain/entities"
)

// TaskRepository implements the task repository interface over Postgres.
type TaskRepository struct {
	db *sqlx.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a new task. The ID is assigned by the store; the
// completion flag always starts false.
func (r *TaskRepository) Create(ctx context.Context, task *entities.Task) (*entities.Task, error) {
	query := `
		INSERT INTO tasks (text, deadline, completed, created_at)
		VALUES ($1, $2, FALSE, $3)
		RETURNING id, completed
	`

	err := r.db.QueryRowContext(ctx, query,
		task.Text,
		task.Deadline,
		task.CreatedAt,
	).Scan(&task.ID, &task.Completed)

	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// GetByID retrieves a task by ID
func (r *TaskRepository) GetByID(ctx context.Context, id int64) (*entities.Task, error) {
	query := `
		SELECT id, text, deadline, completed, created_at
		FROM tasks WHERE id = $1
	`

	var task entities.Task
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&task.ID,
		&task.Text,
		&task.Deadline,
		&task.Completed,
		&task.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return &task, nil
}

// ListInRange returns tasks whose deadline falls within the inclusive
// range. Tasks without a deadline are never returned here.
func (r *TaskRepository) ListInRange(ctx context.Context, startInclusive, endInclusive time.Time) ([]*entities.Task, error) {
	query := `
		SELECT id, text, deadline, completed, created_at
		FROM tasks
		WHERE deadline >= $1 AND deadline <= $2
		ORDER BY deadline ASC, id ASC
	`

	return r.list(ctx, query, startInclusive, endInclusive)
}

// ListCreatedInRange returns tasks created within the inclusive range,
// regardless of whether they carry a deadline.
func (r *TaskRepository) ListCreatedInRange(ctx context.Context, startInclusive, endInclusive time.Time) ([]*entities.Task, error) {
	query := `
		SELECT id, text, deadline, completed, created_at
		FROM tasks
		WHERE created_at >= $1 AND created_at <= $2
		ORDER BY created_at ASC, id ASC
	`

	return r.list(ctx, query, startInclusive, endInclusive)
}

// UpdateCompletion sets the completion flag by ID.
func (r *TaskRepository) UpdateCompletion(ctx context.Context, id int64, completed bool) error {
	query := `UPDATE tasks SET completed = $2 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, completed)
	if err != nil {
		return fmt.Errorf("failed to update task completion: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return entities.ErrTaskNotFound
	}

	return nil
}

func (r *TaskRepository) list(ctx context.Context, query string, args ...interface{}) ([]*entities.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]*entities.Task, 0)
	for rows.Next() {
		var task entities.Task
		if err := rows.Scan(
			&task.ID,
			&task.Text,
			&task.Deadline,
			&task.Completed,
			&task.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, &task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}
