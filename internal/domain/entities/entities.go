package entities

import (
	"errors"
	"time"
)

// Common errors
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrEmptyTaskText     = errors.New("task text must not be empty")
	ErrInvalidDay        = errors.New("invalid calendar day")
	ErrInvalidMonth      = errors.New("invalid calendar month")
	ErrInvalidNewsFilter = errors.New("invalid news filter")
	ErrNewsUnavailable   = errors.New("news provider unavailable")
	ErrStoreUnavailable  = errors.New("task store unavailable")
)

// NewsCategory identifies one of the fixed news feed categories.
type NewsCategory string

const (
	NewsCategoryNational      NewsCategory = "national"
	NewsCategoryInternational NewsCategory = "international"
	NewsCategorySports        NewsCategory = "sports"
	NewsCategoryPolitics      NewsCategory = "politics"
	NewsCategoryBusiness      NewsCategory = "business"
	NewsCategoryHealth        NewsCategory = "health"
	NewsCategoryScience       NewsCategory = "science"
	NewsCategoryTechnology    NewsCategory = "technology"
	NewsCategoryEducation     NewsCategory = "education"
)

// DefaultNewsCategories is the category set requested when the caller
// supplies neither a category nor a search term.
var DefaultNewsCategories = []NewsCategory{
	NewsCategoryNational,
	NewsCategoryInternational,
	NewsCategorySports,
	NewsCategoryPolitics,
	NewsCategoryBusiness,
	NewsCategoryHealth,
	NewsCategoryScience,
	NewsCategoryTechnology,
	NewsCategoryEducation,
}

// IsValid reports whether the category is one of the known set.
func (c NewsCategory) IsValid() bool {
	for _, known := range DefaultNewsCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Task represents a user-created to-do item. The deadline is optional and
// independent of CreatedAt: a deadline in the past is allowed.
type Task struct {
	ID        int64      `json:"id" db:"id"`
	Text      string     `json:"text" db:"text"`
	Deadline  *time.Time `json:"deadline" db:"deadline"`
	Completed bool       `json:"completed" db:"completed"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// HasDeadline reports whether the task carries a deadline. A missing
// deadline is a normal state, never an error.
func (t *Task) HasDeadline() bool {
	return t.Deadline != nil
}

// DueOn reports whether the task's deadline falls on the given calendar day
// in the given location. Tasks without a deadline are due on no day.
func (t *Task) DueOn(year int, month time.Month, day int, loc *time.Location) bool {
	if t.Deadline == nil {
		return false
	}
	y, m, d := t.Deadline.In(loc).Date()
	return y == year && m == month && d == day
}

// IsOverdue reports whether the deadline has passed without completion.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.Deadline == nil || t.Completed {
		return false
	}
	return now.After(*t.Deadline)
}

// Article represents a single news item as returned by the news provider.
type Article struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	ImageURL    *string    `json:"urlToImage,omitempty"`
	PublishedAt *time.Time `json:"publishedAt"`
}
