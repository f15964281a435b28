package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"todo-backend/domain/models"
	"todo-backend/domain/repositories"
)

const profileKeyPrefix = "profile:"

// ProfileStore keeps profiles in redis, same contract as the in-memory store
// but surviving process restarts. Selected when REDIS_URL is configured.
type ProfileStore struct {
	client *Client
}

func NewProfileStore(client *Client) *ProfileStore {
	return &ProfileStore{client: client}
}

func (s *ProfileStore) Get(ctx context.Context, subjectID string) (*models.Profile, error) {
	data, err := s.client.rdb.Get(ctx, profileKeyPrefix+subjectID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repositories.ErrProfileNotFound
		}
		return nil, err
	}

	var profile models.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *ProfileStore) Save(ctx context.Context, profile *models.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	// No TTL; profiles live until overwritten.
	return s.client.rdb.Set(ctx, profileKeyPrefix+profile.ID, data, 0).Err()
}

var _ repositories.ProfileRepository = (*ProfileStore)(nil)
