package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/daymark/core/internal/domain/entities"
)

func task(id int64, deadline *time.Time, completed bool) *entities.Task {
	return &entities.Task{
		ID:        id,
		Text:      "task",
		Deadline:  deadline,
		Completed: completed,
		CreatedAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func at(year int, month time.Month, day, hour int) *time.Time {
	t := time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
	return &t
}

func TestDaysIn(t *testing.T) {
	require.Equal(t, 31, DaysIn(2024, time.March))
	require.Equal(t, 29, DaysIn(2024, time.February))
	require.Equal(t, 28, DaysIn(2023, time.February))
	require.Equal(t, 31, DaysIn(2023, time.December))
}

func TestMonthRange(t *testing.T) {
	start, end := MonthRange(2024, time.February, time.UTC)
	require.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), start)
	require.Equal(t, time.Date(2024, 2, 29, 23, 59, 59, 999999999, time.UTC), end)
}

func TestDayRange(t *testing.T) {
	start, end := DayRange(time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC))
	require.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), start)
	require.Equal(t, time.Date(2024, 3, 5, 23, 59, 59, 999999999, time.UTC), end)
}

func TestBuildMonthMarkers_TotalOverMonth(t *testing.T) {
	for _, tc := range []struct {
		year  int
		month time.Month
		days  int
	}{
		{2024, time.March, 31},
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2024, time.April, 30},
	} {
		markers := BuildMonthMarkers(nil, tc.year, tc.month, time.UTC)
		require.Len(t, markers, tc.days)
		for _, marker := range markers {
			require.Equal(t, ColorYellow, marker.Color)
			require.False(t, marker.HasTasks)
		}
	}
}

func TestBuildMonthMarkers_CompletedDominates(t *testing.T) {
	tasks := []*entities.Task{
		task(1, at(2024, time.March, 5, 10), false),
		task(2, at(2024, time.March, 5, 15), true),
	}

	markers := BuildMonthMarkers(tasks, 2024, time.March, time.UTC)
	require.Len(t, markers, 31)
	require.Equal(t, ColorGreen, markers["2024-03-05"].Color)
	require.True(t, markers["2024-03-05"].HasTasks)
	require.True(t, markers["2024-03-05"].AnyCompleted)

	for key, marker := range markers {
		if key == "2024-03-05" {
			continue
		}
		require.Equal(t, ColorYellow, marker.Color, "day %s", key)
	}
}

func TestBuildMonthMarkers_OrderInvariant(t *testing.T) {
	forward := []*entities.Task{
		task(1, at(2024, time.March, 5, 10), false),
		task(2, at(2024, time.March, 5, 15), true),
		task(3, at(2024, time.March, 12, 8), false),
	}
	reversed := []*entities.Task{forward[2], forward[1], forward[0]}

	require.Equal(t,
		BuildMonthMarkers(forward, 2024, time.March, time.UTC),
		BuildMonthMarkers(reversed, 2024, time.March, time.UTC),
	)
}

func TestBuildMonthMarkers_Idempotent(t *testing.T) {
	tasks := []*entities.Task{
		task(1, at(2024, time.March, 5, 10), true),
		task(2, at(2024, time.March, 20, 23), false),
	}

	first := BuildMonthMarkers(tasks, 2024, time.March, time.UTC)
	second := BuildMonthMarkers(tasks, 2024, time.March, time.UTC)
	require.Equal(t, first, second)
}

func TestBuildMonthMarkers_IncompleteOnlyIsRed(t *testing.T) {
	tasks := []*entities.Task{
		task(1, at(2024, time.March, 12, 8), false),
		task(2, at(2024, time.March, 12, 19), false),
	}

	markers := BuildMonthMarkers(tasks, 2024, time.March, time.UTC)
	require.Equal(t, ColorRed, markers["2024-03-12"].Color)
	require.True(t, markers["2024-03-12"].HasTasks)
	require.False(t, markers["2024-03-12"].AnyCompleted)
}

func TestBuildMonthMarkers_SkipsMissingDeadlines(t *testing.T) {
	tasks := []*entities.Task{
		task(1, nil, false),
		nil,
		task(2, at(2024, time.March, 3, 12), false),
	}

	markers := BuildMonthMarkers(tasks, 2024, time.March, time.UTC)
	require.Equal(t, ColorRed, markers["2024-03-03"].Color)
	require.Equal(t, ColorYellow, markers["2024-03-04"].Color)
}

func TestBuildMonthMarkers_IgnoresOutOfMonthDeadlines(t *testing.T) {
	tasks := []*entities.Task{
		task(1, at(2024, time.April, 1, 0), true),
		task(2, at(2024, time.February, 29, 12), false),
	}

	markers := BuildMonthMarkers(tasks, 2024, time.March, time.UTC)
	require.Len(t, markers, 31)
	for _, marker := range markers {
		require.Equal(t, ColorYellow, marker.Color)
	}
}

func TestBuildMonthMarkers_BucketsInLocalTime(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	// 21:00 UTC on March 4 is already March 5 at UTC+5.
	deadline := time.Date(2024, 3, 4, 21, 0, 0, 0, time.UTC)
	tasks := []*entities.Task{task(1, &deadline, false)}

	markers := BuildMonthMarkers(tasks, 2024, time.March, loc)
	require.Equal(t, ColorRed, markers["2024-03-05"].Color)
	require.Equal(t, ColorYellow, markers["2024-03-04"].Color)
}

func TestTasksOnDay(t *testing.T) {
	tasks := []*entities.Task{
		task(1, at(2024, time.March, 5, 10), false),
		task(2, at(2024, time.March, 6, 10), false),
		task(3, nil, false),
		task(4, at(2024, time.March, 5, 23), true),
	}

	matched := TasksOnDay(tasks, "2024-03-05", time.UTC)
	require.Len(t, matched, 2)
	require.Equal(t, int64(1), matched[0].ID)
	require.Equal(t, int64(4), matched[1].ID)
}

func TestTasksOnDay_EmptyInput(t *testing.T) {
	require.NotNil(t, TasksOnDay(nil, "2024-03-05", time.UTC))
	require.Empty(t, TasksOnDay(nil, "2024-03-05", time.UTC))
}

func TestTasksCreatedToday(t *testing.T) {
	now := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)

	today := task(1, nil, false)
	today.CreatedAt = time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	lastInstant := task(2, nil, false)
	lastInstant.CreatedAt = time.Date(2024, 3, 5, 23, 59, 59, 999999999, time.UTC)
	yesterday := task(3, nil, false)
	yesterday.CreatedAt = time.Date(2024, 3, 4, 23, 59, 0, 0, time.UTC)

	matched := TasksCreatedToday([]*entities.Task{today, lastInstant, yesterday}, now)
	require.Len(t, matched, 2)
	require.Equal(t, int64(1), matched[0].ID)
	require.Equal(t, int64(2), matched[1].ID)
}

func TestTasksCreatedToday_ExcludesYesterdayLateNight(t *testing.T) {
	now := time.Date(2024, 3, 5, 0, 1, 0, 0, time.UTC)
	lateYesterday := task(1, nil, false)
	lateYesterday.CreatedAt = time.Date(2024, 3, 4, 23, 59, 0, 0, time.UTC)

	matched := TasksCreatedToday([]*entities.Task{lateYesterday}, now)
	require.Empty(t, matched)
}

func TestTasksCreatedToday_EmptyInput(t *testing.T) {
	require.Empty(t, TasksCreatedToday(nil, time.Now()))
}

func TestToggleCompletion(t *testing.T) {
	require.True(t, ToggleCompletion(false))
	require.False(t, ToggleCompletion(true))
}

func TestToggleThenRebuildFlipsDay(t *testing.T) {
	deadline := at(2024, time.March, 9, 10)
	only := task(7, deadline, false)

	before := BuildMonthMarkers([]*entities.Task{only}, 2024, time.March, time.UTC)
	require.Equal(t, ColorRed, before["2024-03-09"].Color)

	only.Completed = ToggleCompletion(only.Completed)
	require.True(t, only.Completed)

	after := BuildMonthMarkers([]*entities.Task{only}, 2024, time.March, time.UTC)
	require.Equal(t, ColorGreen, after["2024-03-09"].Color)
}

func TestSortedDayKeys(t *testing.T) {
	markers := BuildMonthMarkers(nil, 2024, time.February, time.UTC)
	keys := SortedDayKeys(markers)
	require.Len(t, keys, 29)
	require.Equal(t, "2024-02-01", keys[0])
	require.Equal(t, "2024-02-29", keys[28])
}
