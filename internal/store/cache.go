// internal/store/cache.go
package store

import (
	"context"
	"encoding/json"
	"time"

	"evea-matching/internal/common/logger"
	"evea-matching/internal/models"

	"github.com/redis/go-redis/v9"
)

const profileCacheKey = "vendor:profiles:active"

// CachedProfileStore is a read-through Redis cache in front of a
// ProfileStore. Cache misses and Redis failures both fall through to
// the inner store, so the cache can never make a recommendation fail.
type CachedProfileStore struct {
	inner  ProfileStore
	redis  *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewCachedProfileStore(inner ProfileStore, rdb *redis.Client, ttl time.Duration, log logger.Logger) *CachedProfileStore {
	return &CachedProfileStore{
		inner:  inner,
		redis:  rdb,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"store": "cached-profiles"}),
	}
}

func (s *CachedProfileStore) ListProfiles(ctx context.Context) ([]models.VendorExpertiseProfile, error) {
	if val, err := s.redis.Get(ctx, profileCacheKey).Result(); err == nil {
		var profiles []models.VendorExpertiseProfile
		if err := json.Unmarshal([]byte(val), &profiles); err == nil {
			return profiles, nil
		}
	}

	profiles, err := s.inner.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(profiles); err == nil {
		if err := s.redis.Set(ctx, profileCacheKey, data, s.ttl).Err(); err != nil {
			s.logger.Warn("profile cache write failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return profiles, nil
}

// Invalidate drops the cached corpus, e.g. after an onboarding update.
func (s *CachedProfileStore) Invalidate(ctx context.Context) error {
	return s.redis.Del(ctx, profileCacheKey).Err()
}
