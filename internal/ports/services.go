package ports

import (
	"context"
	"time"

	"github.com/daymark/core/internal/domain/calendar"
	"github.com/daymark/core/internal/domain/entities"
)

// TaskServicePort is the application surface consumed by the HTTP handlers.
type TaskServicePort interface {
	CreateTask(ctx context.Context, req CreateTaskRequest) (*entities.Task, error)
	TodayTasks(ctx context.Context, now time.Time) ([]*entities.Task, error)
	TasksDueOn(ctx context.Context, day string) ([]*entities.Task, error)
	MonthMarkers(ctx context.Context, year int, month time.Month) (map[string]calendar.DayMarker, error)
	ToggleTask(ctx context.Context, id int64) (*entities.Task, error)
}

// NewsServicePort is the application surface for news lookups.
type NewsServicePort interface {
	Articles(ctx context.Context, filter NewsFilter) ([]*entities.Article, error)
}

// CreateTaskRequest carries the fields of a task insert. CreatedAt is
// stamped by the service; the deadline is optional.
type CreateTaskRequest struct {
	Text     string     `json:"text" validate:"required,min=1"`
	Deadline *time.Time `json:"deadline"`
}
