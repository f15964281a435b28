package services

import (
	"context"

	"todo-backend/domain/dto"
	"todo-backend/domain/models"
)

// AuthService implements the mock authentication contract: any non-empty
// credentials authenticate, and the subject ID is derived from the email so
// repeated register/login calls yield the same identity.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.Profile, error)
	Login(ctx context.Context, req *dto.LoginRequest) (string, error)
}
