package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Hitesh-malik/e-commer-with-ai/internal/usecase"
)

// RedisPrefStore keeps small per-session preference strings, currently
// just the theme choice.
type RedisPrefStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisPrefStore(rdb *redis.Client, ttl time.Duration) *RedisPrefStore {
	return &RedisPrefStore{rdb: rdb, ttl: ttl}
}

func themeKey(sessionID string) string { return "pref:theme:" + sessionID }

func (s *RedisPrefStore) Theme(ctx context.Context, sessionID string) (string, error) {
	val, err := s.rdb.Get(ctx, themeKey(sessionID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func (s *RedisPrefStore) SetTheme(ctx context.Context, sessionID, theme string) error {
	return s.rdb.Set(ctx, themeKey(sessionID), theme, s.ttl).Err()
}

var _ usecase.PrefStore = (*RedisPrefStore)(nil)
