package handlers

import (
	"github.com/gofiber/fiber/v2"

	"todo-backend/domain/dto"
	"todo-backend/domain/services"
	"todo-backend/pkg/logger"
	"todo-backend/pkg/utils"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	logger.InfoContext(ctx, "Registration attempt", "email", req.Email)

	profile, err := h.authService.Register(ctx, &req)
	if err != nil {
		logger.ErrorContext(ctx, "Registration failed", "email", req.Email, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.CreatedResponse(c, &dto.RegisterResponse{
		ID:    profile.ID,
		Email: profile.Email,
		Name:  profile.Name,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	logger.InfoContext(ctx, "Login attempt", "email", req.Email)

	token, err := h.authService.Login(ctx, &req)
	if err != nil {
		logger.ErrorContext(ctx, "Login failed", "email", req.Email, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
