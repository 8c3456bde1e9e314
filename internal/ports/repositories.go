package ports

import (
	"context"
	"time"

	"github.com/daymark/core/internal/domain/entities"
)

// TaskRepository is the persistence surface for tasks. Range bounds are
// inclusive on both ends, mirroring the store's gte/lte query semantics.
type TaskRepository interface {
	// ListInRange returns tasks whose deadline falls within
	// [startInclusive, endInclusive]. Tasks without a deadline never match.
	ListInRange(ctx context.Context, startInclusive, endInclusive time.Time) ([]*entities.Task, error)

	// ListCreatedInRange returns tasks created within the inclusive range.
	ListCreatedInRange(ctx context.Context, startInclusive, endInclusive time.Time) ([]*entities.Task, error)

	// GetByID returns the task or entities.ErrTaskNotFound.
	GetByID(ctx context.Context, id int64) (*entities.Task, error)

	// Create inserts the task and fills in its store-assigned ID.
	Create(ctx context.Context, task *entities.Task) (*entities.Task, error)

	// UpdateCompletion sets the completion flag by ID, returning
	// entities.ErrTaskNotFound when no row matched.
	UpdateCompletion(ctx context.Context, id int64, completed bool) error
}

// NewsProvider is the outbound surface to the news API. Exactly one of the
// filter fields is honored; with neither set, the provider requests its
// fixed default category set.
type NewsProvider interface {
	FetchArticles(ctx context.Context, filter NewsFilter) ([]*entities.Article, error)
}

// NewsFilter selects articles by category or free-text search term.
type NewsFilter struct {
	Category   entities.NewsCategory
	SearchTerm string
}
