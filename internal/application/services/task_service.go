package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/daymark/core/internal/domain/calendar"
	"github.com/daymark/core/internal/domain/entities"
	"github.com/daymark/core/internal/infrastructure/logger"
	"github.com/daymark/core/internal/ports"
)

// TaskService handles task-related operations. It holds no task state of its
// own: every operation fetches a fresh snapshot from the repository, derives
// what it needs, and discards it when the request ends.
type TaskService struct {
	taskRepo ports.TaskRepository
	loc      *time.Location
	logger   *logger.Logger
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo ports.TaskRepository, loc *time.Location, appLogger *logger.Logger) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		loc:      loc,
		logger:   appLogger,
	}
}

// CreateTask creates a new task. CreatedAt is stamped here, once, and is
// immutable afterwards. The deadline is optional and may lie in the past.
func (s *TaskService) CreateTask(ctx context.Context, req ports.CreateTaskRequest) (*entities.Task, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, entities.ErrEmptyTaskText
	}

	task := &entities.Task{
		Text:      req.Text,
		Deadline:  req.Deadline,
		CreatedAt: time.Now().In(s.loc),
	}

	createdTask, err := s.taskRepo.Create(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Infow("Task created", "task_id", createdTask.ID, "has_deadline", createdTask.HasDeadline())

	return createdTask, nil
}

// TodayTasks returns the tasks created within the calendar day containing
// now, the default list-view scope.
func (s *TaskService) TodayTasks(ctx context.Context, now time.Time) ([]*entities.Task, error) {
	localNow := now.In(s.loc)
	start, end := calendar.DayRange(localNow)

	tasks, err := s.taskRepo.ListCreatedInRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list today's tasks: %w", err)
	}

	return calendar.TasksCreatedToday(tasks, localNow), nil
}

// TasksDueOn returns the tasks whose deadline falls on the given day key.
func (s *TaskService) TasksDueOn(ctx context.Context, day string) ([]*entities.Task, error) {
	parsed, err := time.ParseInLocation(calendar.DayKeyLayout, day, s.loc)
	if err != nil {
		return nil, entities.ErrInvalidDay
	}

	start, end := calendar.DayRange(parsed)
	tasks, err := s.taskRepo.ListInRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks for day: %w", err)
	}

	return calendar.TasksOnDay(tasks, day, s.loc), nil
}

// MonthMarkers derives the per-day marker map for the given month from a
// fresh month-range fetch. The map is total: one entry per calendar day.
func (s *TaskService) MonthMarkers(ctx context.Context, year int, month time.Month) (map[string]calendar.DayMarker, error) {
	if month < time.January || month > time.December {
		return nil, entities.ErrInvalidMonth
	}
	if year < 1 {
		return nil, entities.ErrInvalidMonth
	}

	start, end := calendar.MonthRange(year, month, s.loc)
	tasks, err := s.taskRepo.ListInRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks for month: %w", err)
	}

	return calendar.BuildMonthMarkers(tasks, year, month, s.loc), nil
}

// ToggleTask inverts the task's completion flag and persists it. The
// returned task reflects the new flag only after a successful write; no
// optimistic update happens on failure.
func (s *TaskService) ToggleTask(ctx context.Context, id int64) (*entities.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	newCompleted := calendar.ToggleCompletion(task.Completed)

	if err := s.taskRepo.UpdateCompletion(ctx, id, newCompleted); err != nil {
		return nil, fmt.Errorf("failed to update task completion: %w", err)
	}

	task.Completed = newCompleted

	s.logger.Infow("Task completion toggled", "task_id", id, "completed", newCompleted)

	return task, nil
}
