package serviceimpl

import (
	"context"
	"time"

	"todo-backend/domain/dto"
	"todo-backend/domain/models"
	"todo-backend/domain/repositories"
	"todo-backend/domain/services"
	"todo-backend/pkg/identity"
	"todo-backend/pkg/logger"
	"todo-backend/pkg/utils"
)

// AuthServiceImpl is the mock authentication stub: no credentials are stored
// or verified, any non-empty email/password pair authenticates, and the
// subject ID is a pure function of the email.
type AuthServiceImpl struct {
	profileRepo repositories.ProfileRepository
	jwtSecret   string
	tokenTTL    time.Duration
}

func NewAuthService(profileRepo repositories.ProfileRepository, jwtSecret string, expireMinutes int) services.AuthService {
	ttl := time.Duration(expireMinutes) * time.Minute
	if ttl <= 0 {
		ttl = utils.DefaultTokenTTL
	}
	return &AuthServiceImpl{
		profileRepo: profileRepo,
		jwtSecret:   jwtSecret,
		tokenTTL:    ttl,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.Profile, error) {
	subjectID := identity.SubjectID(req.Email)

	profile := &models.Profile{
		ID:    subjectID,
		Name:  req.Name,
		Email: req.Email,
	}

	// Re-registering the same email overwrites the profile; the ID stays
	// stable, so nothing the subject owns is orphaned.
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		logger.ErrorContext(ctx, "Failed to store profile", "subject_id", subjectID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "User registered", "subject_id", subjectID, "email", req.Email)

	return profile, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (string, error) {
	subjectID := identity.SubjectID(req.Email)

	// First login for an unseen subject seeds the directory with a profile
	// named after the email local part.
	if _, err := s.profileRepo.Get(ctx, subjectID); err != nil {
		profile := &models.Profile{
			ID:    subjectID,
			Name:  identity.LocalPart(req.Email),
			Email: req.Email,
		}
		if err := s.profileRepo.Save(ctx, profile); err != nil {
			logger.ErrorContext(ctx, "Failed to seed profile", "subject_id", subjectID, "error", err)
			return "", err
		}
	}

	token, err := utils.GenerateToken(subjectID, req.Email, s.jwtSecret, s.tokenTTL)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate token", "subject_id", subjectID, "error", err)
		return "", err
	}

	logger.InfoContext(ctx, "User logged in", "subject_id", subjectID, "email", req.Email)

	return token, nil
}
