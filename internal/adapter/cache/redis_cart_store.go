package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Hitesh-malik/e-commer-with-ai/internal/cart"
	"github.com/Hitesh-malik/e-commer-with-ai/internal/logging"
	"github.com/Hitesh-malik/e-commer-with-ai/internal/usecase"
)

// RedisCartStore persists the serialized cart line list under one key per
// session. It is a convenience cache, not a system of record: an absent,
// corrupt or unreadable value loads as an empty cart, and failed writes
// are reported but never block a mutation.
type RedisCartStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCartStore(rdb *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{rdb: rdb, ttl: ttl}
}

func cartKey(sessionID string) string { return "cart:lines:" + sessionID }

// Load returns the persisted lines for the session, or nil when the value
// is missing or does not parse.
func (s *RedisCartStore) Load(ctx context.Context, sessionID string) []cart.Line {
	raw, err := s.rdb.Get(ctx, cartKey(sessionID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logging.FromCtx(ctx).Warn("cart load failed", "session", sessionID, "err", err)
		}
		return nil
	}
	var lines []cart.Line
	if err := json.Unmarshal(raw, &lines); err != nil {
		logging.FromCtx(ctx).Warn("cart payload corrupt, starting empty", "session", sessionID, "err", err)
		return nil
	}
	return lines
}

// Save serializes the full line list. No incremental diffing.
func (s *RedisCartStore) Save(ctx context.Context, sessionID string, lines []cart.Line) error {
	if lines == nil {
		lines = []cart.Line{}
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, cartKey(sessionID), raw, s.ttl).Err()
}

var _ usecase.CartStore = (*RedisCartStore)(nil)
