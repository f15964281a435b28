// Package memory holds the in-process profile directory: a RWMutex-guarded
// map behind the repository interface, since concurrent profile updates on
// the same subject would otherwise race. Profiles carry no persistence
// guarantee; a restart empties the directory.
package memory

import (
	"context"
	"sync"

	"todo-backend/domain/models"
	"todo-backend/domain/repositories"
)

type ProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]models.Profile
}

func NewProfileStore() *ProfileStore {
	return &ProfileStore{
		profiles: make(map[string]models.Profile),
	}
}

func (s *ProfileStore) Get(_ context.Context, subjectID string) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[subjectID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	return &profile, nil
}

// Save overwrites any existing profile for the same ID.
func (s *ProfileStore) Save(_ context.Context, profile *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profiles[profile.ID] = *profile
	return nil
}

var _ repositories.ProfileRepository = (*ProfileStore)(nil)
