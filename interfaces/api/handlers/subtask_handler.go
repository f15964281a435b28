package handlers

import (
	"github.com/gofiber/fiber/v2"

	"todo-backend/domain/dto"
	"todo-backend/domain/services"
	"todo-backend/pkg/logger"
	"todo-backend/pkg/utils"
)

type SubtaskHandler struct {
	subtaskService services.SubtaskService
}

func NewSubtaskHandler(subtaskService services.SubtaskService) *SubtaskHandler {
	return &SubtaskHandler{
		subtaskService: subtaskService,
	}
}

func (h *SubtaskHandler) ListSubtasks(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Params("user_id")

	taskID, err := parseIDParam(c, "task_id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	subtasks, err := h.subtaskService.ListSubtasks(ctx, userID, taskID)
	if err != nil {
		return taskError(c, err)
	}

	return utils.SuccessResponse(c, dto.SubtasksToSubtaskResponses(subtasks))
}

func (h *SubtaskHandler) CreateSubtask(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Params("user_id")

	taskID, err := parseIDParam(c, "task_id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var req dto.CreateSubtaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	subtask, err := h.subtaskService.CreateSubtask(ctx, userID, taskID, &req)
	if err != nil {
		return taskError(c, err)
	}

	return utils.CreatedResponse(c, dto.SubtaskToSubtaskResponse(subtask))
}

func (h *SubtaskHandler) UpdateSubtask(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Params("user_id")

	taskID, err := parseIDParam(c, "task_id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	subtaskID, err := parseIDParam(c, "subtask_id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid subtask ID")
	}

	var req dto.UpdateSubtaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	subtask, err := h.subtaskService.UpdateSubtask(ctx, userID, taskID, subtaskID, &req)
	if err != nil {
		return taskError(c, err)
	}

	return utils.SuccessResponse(c, dto.SubtaskToSubtaskResponse(subtask))
}

func (h *SubtaskHandler) DeleteSubtask(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Params("user_id")

	taskID, err := parseIDParam(c, "task_id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	subtaskID, err := parseIDParam(c, "subtask_id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid subtask ID")
	}

	if err := h.subtaskService.DeleteSubtask(ctx, userID, taskID, subtaskID); err != nil {
		return taskError(c, err)
	}

	return utils.SuccessResponse(c, &dto.MessageResponse{Message: "Subtask deleted successfully"})
}
