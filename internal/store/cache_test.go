// internal/store/cache_test.go
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"evea-matching/internal/common/logger"
	"evea-matching/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func cacheTestProfiles() []models.VendorExpertiseProfile {
	return []models.VendorExpertiseProfile{
		{
			VendorID:          "vendor-1",
			PrimaryEventTypes: []models.EventType{models.EventTypeWedding},
			ServiceAreas:      []models.ServiceArea{{City: "Mumbai", RadiusKm: 50}},
			YearsOfExperience: 8,
		},
	}
}

type countingProfileStore struct {
	profiles []models.VendorExpertiseProfile
	err      error
	calls    int
}

func (s *countingProfileStore) ListProfiles(context.Context) ([]models.VendorExpertiseProfile, error) {
	s.calls++
	return s.profiles, s.err
}

func TestCachedProfileStore_MissReadsThroughAndPopulates(t *testing.T) {
	mr, client := setupMiniredis(t)
	inner := &countingProfileStore{profiles: cacheTestProfiles()}

	s := NewCachedProfileStore(inner, client, time.Minute, logger.NewTestLogger(t))

	profiles, err := s.ListProfiles(context.Background())

	require.NoError(t, err)
	assert.Equal(t, inner.profiles, profiles)
	assert.Equal(t, 1, inner.calls)
	assert.True(t, mr.Exists(profileCacheKey))

	// Second read is served from the cache.
	profiles, err = s.ListProfiles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, inner.profiles, profiles)
	assert.Equal(t, 1, inner.calls)
}

func TestCachedProfileStore_SetsTTL(t *testing.T) {
	mr, client := setupMiniredis(t)
	inner := &countingProfileStore{profiles: cacheTestProfiles()}

	s := NewCachedProfileStore(inner, client, time.Minute, logger.NewTestLogger(t))
	_, err := s.ListProfiles(context.Background())
	require.NoError(t, err)

	assert.Equal(t, time.Minute, mr.TTL(profileCacheKey))

	// After expiry the next read hits the inner store again.
	mr.FastForward(2 * time.Minute)
	_, err = s.ListProfiles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestCachedProfileStore_CorruptCacheEntryFallsThrough(t *testing.T) {
	mr, client := setupMiniredis(t)
	require.NoError(t, mr.Set(profileCacheKey, "{not json"))

	inner := &countingProfileStore{profiles: cacheTestProfiles()}
	s := NewCachedProfileStore(inner, client, time.Minute, logger.NewTestLogger(t))

	profiles, err := s.ListProfiles(context.Background())

	require.NoError(t, err)
	assert.Equal(t, inner.profiles, profiles)
	assert.Equal(t, 1, inner.calls)
}

func TestCachedProfileStore_RedisDownFallsThrough(t *testing.T) {
	mr, client := setupMiniredis(t)
	mr.Close()

	inner := &countingProfileStore{profiles: cacheTestProfiles()}
	s := NewCachedProfileStore(inner, client, time.Minute, logger.NewTestLogger(t))

	profiles, err := s.ListProfiles(context.Background())

	// An unreachable cache never fails the read.
	require.NoError(t, err)
	assert.Equal(t, inner.profiles, profiles)
}

func TestCachedProfileStore_InnerFailurePropagates(t *testing.T) {
	_, client := setupMiniredis(t)
	inner := &countingProfileStore{err: fmt.Errorf("connection refused")}

	s := NewCachedProfileStore(inner, client, time.Minute, logger.NewTestLogger(t))

	profiles, err := s.ListProfiles(context.Background())

	assert.Error(t, err)
	assert.Nil(t, profiles)
}

func TestCachedProfileStore_Invalidate(t *testing.T) {
	mr, client := setupMiniredis(t)
	data, _ := json.Marshal(cacheTestProfiles())
	require.NoError(t, mr.Set(profileCacheKey, string(data)))

	s := NewCachedProfileStore(&countingProfileStore{}, client, time.Minute, logger.NewTestLogger(t))

	require.NoError(t, s.Invalidate(context.Background()))
	assert.False(t, mr.Exists(profileCacheKey))
}
