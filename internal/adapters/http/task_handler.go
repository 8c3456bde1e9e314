package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/daymark/core/internal/domain/calendar"
	"github.com/daymark/core/internal/domain/entities"
	"github.com/daymark/core/internal/infrastructure/logger"
	"github.com/daymark/core/internal/ports"
)

// TaskHandler handles task-related requests
type TaskHandler struct {
	taskService ports.TaskServicePort
	logger      *logger.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService ports.TaskServicePort, appLogger *logger.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		logger:      appLogger,
	}
}

// ListTasks returns today's tasks by default, or the tasks due on a
// specific day when the "day" query parameter is set.
func (h *TaskHandler) ListTasks(c echo.Context) error {
	if day := c.QueryParam("day"); day != "" {
		tasks, err := h.taskService.TasksDueOn(c.Request().Context(), day)
		if err != nil {
			if errors.Is(err, entities.ErrInvalidDay) {
				return echo.NewHTTPError(http.StatusBadRequest, "Day must be formatted as YYYY-MM-DD")
			}
			h.logger.Error("List tasks for day failed", "error", err, "day", day)
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve tasks")
		}
		return c.JSON(http.StatusOK, TaskListResponse{Tasks: tasks})
	}

	tasks, err := h.taskService.TodayTasks(c.Request().Context(), time.Now())
	if err != nil {
		h.logger.Error("List today's tasks failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve tasks")
	}

	return c.JSON(http.StatusOK, TaskListResponse{Tasks: tasks})
}

// CreateTask handles task creation
func (h *TaskHandler) CreateTask(c echo.Context) error {
	var req ports.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, entities.ErrEmptyTaskText) {
			return echo.NewHTTPError(http.StatusBadRequest, "Task text must not be empty")
		}
		h.logger.Error("Create task failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create task")
	}

	return c.JSON(http.StatusCreated, task)
}

// ToggleCompletion inverts a task's completion flag. The response carries
// the persisted state; nothing is reported changed unless the write landed.
func (h *TaskHandler) ToggleCompletion(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid task ID")
	}

	task, err := h.taskService.ToggleTask(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, entities.ErrTaskNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Task not found")
		}
		h.logger.Error("Toggle task failed", "error", err, "task_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update task")
	}

	return c.JSON(http.StatusOK, task)
}

// MonthMarkers returns the per-day marker map for a month. The map always
// contains one entry per calendar day of the month.
func (h *TaskHandler) MonthMarkers(c echo.Context) error {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid year")
	}

	monthNum, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid month")
	}

	markers, err := h.taskService.MonthMarkers(c.Request().Context(), year, time.Month(monthNum))
	if err != nil {
		if errors.Is(err, entities.ErrInvalidMonth) {
			return echo.NewHTTPError(http.StatusBadRequest, "Month must be between 1 and 12")
		}
		h.logger.Error("Month markers failed", "error", err, "year", year, "month", monthNum)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to build calendar")
	}

	return c.JSON(http.StatusOK, CalendarResponse{
		Year:  year,
		Month: monthNum,
		Days:  markers,
	})
}

// Request/Response types

// TaskListResponse wraps a task list.
type TaskListResponse struct {
	Tasks []*entities.Task `json:"tasks"`
}

// CalendarResponse carries the total per-day marker map for one month.
type CalendarResponse struct {
	Year  int                           `json:"year"`
	Month int                           `json:"month"`
	Days  map[string]calendar.DayMarker `json:"days"`
}

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
