package services

import (
	"context"

	"todo-backend/domain/dto"
	"todo-backend/domain/models"
)

// ProfileService answers "what is this subject's display profile". When a
// profile is missing it is lazily created from the token claims, so both
// operations always succeed for an authenticated subject.
type ProfileService interface {
	GetProfile(ctx context.Context, subjectID, email string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, subjectID, email string, req *dto.UpdateProfileRequest) (*models.Profile, error)
}
