// Package calendar holds the pure date-bucketing logic behind the monthly
// task view: deriving a per-day marker map from a flat task list and
// answering day-scoped task queries. It performs no I/O; callers fetch
// tasks, run these functions, and render the result.
package calendar

import (
	"sort"
	"time"

	"github.com/daymark/core/internal/domain/entities"
)

// DayKeyLayout is the canonical calendar-day key format.
const DayKeyLayout = "2006-01-02"

// MarkerColor is the visual summary of a single calendar day.
type MarkerColor string

const (
	// ColorGreen marks a day with at least one completed task.
	ColorGreen MarkerColor = "green"
	// ColorRed marks a day whose tasks are all incomplete.
	ColorRed MarkerColor = "red"
	// ColorYellow marks a day with no tasks at all.
	ColorYellow MarkerColor = "yellow"
	// ColorNone is the zero value, never present in a built month map.
	ColorNone MarkerColor = "none"
)

// DayMarker is the derived per-day summary. Markers are rebuilt from scratch
// on every fetch and never patched in place: a single completion toggle can
// flip a day from red to green, and that rule is not invertible without
// rescanning the day's bucket.
type DayMarker struct {
	HasTasks     bool        `json:"has_tasks"`
	AnyCompleted bool        `json:"any_completed"`
	Color        MarkerColor `json:"color"`
}

// DayKey formats t as a calendar-day key in loc, discarding time of day.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DayKeyLayout)
}

// DaysIn returns the number of calendar days in the given month.
func DaysIn(year int, month time.Month) int {
	// Day zero of the following month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthRange returns the inclusive [first instant, last instant] bounds of
// the month in loc. The upper bound is the final nanosecond of the last day,
// matching the store's inclusive range queries.
func MonthRange(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// DayRange returns the inclusive [start of day, end of day] bounds of the
// calendar day containing t, in t's location.
func DayRange(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end
}

// BuildMonthMarkers derives one DayMarker per calendar day of the given
// month from the supplied tasks. Tasks are bucketed by the day component of
// their deadline in loc; tasks without a deadline are ignored. A day bucket
// containing at least one completed task is green no matter how many
// incomplete tasks share the day; a non-empty bucket with no completions is
// red; days with no tasks are yellow. The result is total over the month
// (exactly DaysIn entries) and independent of the input order.
func BuildMonthMarkers(tasks []*entities.Task, year int, month time.Month, loc *time.Location) map[string]DayMarker {
	markers := make(map[string]DayMarker, DaysIn(year, month))

	for _, task := range tasks {
		if task == nil || task.Deadline == nil {
			continue
		}
		local := task.Deadline.In(loc)
		if local.Year() != year || local.Month() != month {
			// The store filters by range; stragglers from timezone
			// conversion still must not leak into the month map.
			continue
		}
		key := local.Format(DayKeyLayout)
		marker := markers[key]
		marker.HasTasks = true
		if task.Completed {
			marker.AnyCompleted = true
		}
		markers[key] = marker
	}

	for day := 1; day <= DaysIn(year, month); day++ {
		key := time.Date(year, month, day, 0, 0, 0, 0, loc).Format(DayKeyLayout)
		marker := markers[key]
		switch {
		case marker.AnyCompleted:
			marker.Color = ColorGreen
		case marker.HasTasks:
			marker.Color = ColorRed
		default:
			marker.Color = ColorYellow
		}
		markers[key] = marker
	}

	return markers
}

// TasksOnDay filters tasks to those whose deadline falls on the given day
// key in loc. This answers a day tap with the tasks due that day, distinct
// from the created-that-day filter used by the default list view. The result
// preserves input order and is never nil.
func TasksOnDay(tasks []*entities.Task, day string, loc *time.Location) []*entities.Task {
	matched := make([]*entities.Task, 0)
	for _, task := range tasks {
		if task == nil || task.Deadline == nil {
			continue
		}
		if DayKey(*task.Deadline, loc) == day {
			matched = append(matched, task)
		}
	}
	return matched
}

// TasksCreatedToday filters tasks to those created within the calendar day
// containing now, inclusive at both boundaries. A task created at 23:59
// yesterday is excluded at 00:01 today.
func TasksCreatedToday(tasks []*entities.Task, now time.Time) []*entities.Task {
	start, end := DayRange(now)
	matched := make([]*entities.Task, 0)
	for _, task := range tasks {
		if task == nil {
			continue
		}
		created := task.CreatedAt.In(now.Location())
		if !created.Before(start) && !created.After(end) {
			matched = append(matched, task)
		}
	}
	return matched
}

// ToggleCompletion returns the inverted completion flag. Persisting the new
// flag and recomputing markers from a refreshed task list is the caller's
// job; a previously built marker map is stale the moment a toggle lands.
func ToggleCompletion(current bool) bool {
	return !current
}

// SortedDayKeys returns the map's day keys in chronological order, for
// deterministic rendering and logging.
func SortedDayKeys(markers map[string]DayMarker) []string {
	keys := make([]string, 0, len(markers))
	for key := range markers {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
