package repositories

import (
	"context"

	"todo-backend/domain/models"
)

// ProfileRepository is the subject directory. Two implementations exist: a
// mutex-guarded in-memory map (default) and a redis-backed store. Save has
// overwrite semantics; saving an existing ID replaces the whole profile.
type ProfileRepository interface {
	Get(ctx context.Context, subjectID string) (*models.Profile, error)
	Save(ctx context.Context, profile *models.Profile) error
}
