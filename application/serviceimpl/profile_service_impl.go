package serviceimpl

import (
	"context"
	"errors"

	"todo-backend/domain/dto"
	"todo-backend/domain/models"
	"todo-backend/domain/repositories"
	"todo-backend/domain/services"
	"todo-backend/pkg/identity"
	"todo-backend/pkg/logger"
)

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) services.ProfileService {
	return &ProfileServiceImpl{profileRepo: profileRepo}
}

func (s *ProfileServiceImpl) GetProfile(ctx context.Context, subjectID, email string) (*models.Profile, error) {
	profile, err := s.profileRepo.Get(ctx, subjectID)
	if err != nil {
		if !errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, err
		}
		return s.lazyCreate(ctx, subjectID, email)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) UpdateProfile(ctx context.Context, subjectID, email string, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.profileRepo.Get(ctx, subjectID)
	if err != nil {
		if !errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, err
		}
		profile, err = s.lazyCreate(ctx, subjectID, email)
		if err != nil {
			return nil, err
		}
	}

	// Partial update: omitted fields keep their stored values.
	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Email != nil {
		profile.Email = *req.Email
	}

	if err := s.profileRepo.Save(ctx, profile); err != nil {
		logger.ErrorContext(ctx, "Failed to update profile", "subject_id", subjectID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Profile updated", "subject_id", subjectID)

	return profile, nil
}

// lazyCreate reconstructs a profile for a subject the directory has never
// seen, from the token claims: email from the claim, name from the local
// part embedded in the subject ID.
func (s *ProfileServiceImpl) lazyCreate(ctx context.Context, subjectID, email string) (*models.Profile, error) {
	name := identity.LocalPart(email)
	if name == "" {
		name = subjectID
	}
	if email == "" {
		email = subjectID + "@example.com"
	}

	profile := &models.Profile{
		ID:    subjectID,
		Name:  name,
		Email: email,
	}

	if err := s.profileRepo.Save(ctx, profile); err != nil {
		logger.ErrorContext(ctx, "Failed to create profile", "subject_id", subjectID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Profile created from token claims", "subject_id", subjectID)

	return profile, nil
}
