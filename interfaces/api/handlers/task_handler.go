package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"todo-backend/domain/dto"
	"todo-backend/domain/repositories"
	"todo-backend/domain/services"
	"todo-backend/pkg/logger"
	"todo-backend/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// parseIDParam reads a positive integer path parameter.
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid " + name)
	}
	return uint(id), nil
}

// taskError maps service errors onto responses. Not-found covers both absent
// tasks and tasks owned by somebody else.
func taskError(c *fiber.Ctx, err error) error {
	if errors.Is(err, repositories.ErrTaskNotFound) {
		return utils.NotFoundResponse(c, "Task not found")
	}
	if errors.Is(err, repositories.ErrSubtaskNotFound) {
		return utils.NotFoundResponse(c, "Subtask not found")
	}
	return utils.InternalServerErrorResponse(c)
}

func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Params("user_id")

	tasks, err := h.taskService.ListTasks(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "user_id", userID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.TasksToTaskResponses(tasks))
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Params("user_id")

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	task, err := h.taskService.CreateTask(ctx, userID, &req)
	if err != nil {
		logger.ErrorContext(ctx, "Task creation failed", "user_id", userID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.CreatedResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Params("user_id")

	taskID, err := parseIDParam(c, "task_id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	task, err := h.taskService.GetTask(ctx, userID, taskID)
	if err != nil {
		return taskError(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Params("user_id")

	taskID, err := parseIDParam(c, "task_id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	task, err := h.taskService.UpdateTask(ctx, userID, taskID, &req)
	if err != nil {
		return taskError(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) ToggleComplete(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Params("user_id")

	taskID, err := parseIDParam(c, "task_id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var req dto.ToggleCompleteRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	task, err := h.taskService.ToggleComplete(ctx, userID, taskID, req.Completed)
	if err != nil {
		return taskError(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Params("user_id")

	taskID, err := parseIDParam(c, "task_id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	if err := h.taskService.DeleteTask(ctx, userID, taskID); err != nil {
		return taskError(c, err)
	}

	return utils.SuccessResponse(c, &dto.MessageResponse{Message: "Task deleted successfully"})
}
