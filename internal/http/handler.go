package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	dto "todo-api.com/todo-api/internal/data_models"
	apperrors "todo-api.com/todo-api/internal/errors"
	middleware "todo-api.com/todo-api/internal/http/middlewares"
	"todo-api.com/todo-api/internal/logger"
	"todo-api.com/todo-api/internal/services"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func (h *TaskHandler) ListTasks(c echo.Context) error {
	user := middleware.CurrentUser(c)

	tasks, err := h.taskService.ListTasks(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.TasksToTaskResponses(tasks))
}

func (h *TaskHandler) CreateTask(c echo.Context) error {
	user := middleware.CurrentUser(c)
	ctx := c.Request().Context()

	var req dto.CreateTaskRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(ctx, user.ID, req.Title.String())
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "task created", "task_id", task.ID, "user_id", user.ID)
	return c.JSON(http.StatusCreated, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) GetTask(c echo.Context) error {
	user := middleware.CurrentUser(c)

	id, err := taskID(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id, user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.TaskToTaskResponse(task))
}

// UpdateTask resolves the task before looking at the payload, so an unknown id
// is reported as not found even when the body is invalid.
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	user := middleware.CurrentUser(c)
	ctx := c.Request().Context()

	id, err := taskID(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.GetTask(ctx, id, user.ID)
	if err != nil {
		return err
	}

	var req dto.UpdateTaskRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := h.taskService.ReplaceTask(ctx, task, req.Title.String(), req.Completed)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.TaskToTaskResponse(updated))
}

func (h *TaskHandler) DeleteTask(c echo.Context) error {
	user := middleware.CurrentUser(c)
	ctx := c.Request().Context()

	id, err := taskID(c)
	if err != nil {
		return err
	}

	if err := h.taskService.DeleteTask(ctx, id, user.ID); err != nil {
		return err
	}

	logger.InfoContext(ctx, "task deleted", "task_id", id, "user_id", user.ID)
	return c.NoContent(http.StatusNoContent)
}

// taskID treats anything that is not a positive integer as an unknown task.
func taskID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.ErrTaskNotFound
	}
	return uint(id), nil
}
