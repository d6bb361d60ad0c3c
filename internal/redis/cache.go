package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"fundingtrail/internal/domain"
)

// ProgramCacheTTL bounds staleness of the cached catalog listing.
const ProgramCacheTTL = 60 * time.Second

const programListKey = "cache:programs:all"

// CacheStore caches the unfiltered program listing in Redis.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// GetPrograms retrieves the cached program listing. A cache miss returns
// (nil, nil).
func (s *CacheStore) GetPrograms(ctx context.Context) ([]*domain.Program, error) {
	data, err := s.client.Get(ctx, programListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var programs []*domain.Program
	if err := json.Unmarshal(data, &programs); err != nil {
		return nil, err
	}
	return programs, nil
}

// SetPrograms stores the program listing in cache.
func (s *CacheStore) SetPrograms(ctx context.Context, programs []*domain.Program) error {
	data, err := json.Marshal(programs)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, programListKey, data, ProgramCacheTTL).Err()
}

// InvalidatePrograms drops the cached listing after a catalog mutation.
func (s *CacheStore) InvalidatePrograms(ctx context.Context) error {
	return s.client.Del(ctx, programListKey).Err()
}
