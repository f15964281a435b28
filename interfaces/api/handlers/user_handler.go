package handlers

import (
	"github.com/gofiber/fiber/v2"

	"todo-backend/domain/dto"
	"todo-backend/domain/services"
	"todo-backend/pkg/logger"
	"todo-backend/pkg/utils"
)

type UserHandler struct {
	profileService services.ProfileService
}

func NewUserHandler(profileService services.ProfileService) *UserHandler {
	return &UserHandler{
		profileService: profileService,
	}
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()

	subject, err := utils.GetSubjectFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	profile, err := h.profileService.GetProfile(ctx, subject.ID, subject.Email)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load profile", "subject_id", subject.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.ProfileToProfileResponse(profile))
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()

	subject, err := utils.GetSubjectFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	profile, err := h.profileService.UpdateProfile(ctx, subject.ID, subject.Email, &req)
	if err != nil {
		logger.ErrorContext(ctx, "Profile update failed", "subject_id", subject.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.ProfileToProfileResponse(profile))
}
