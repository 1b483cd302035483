package session

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const sessionKey = "clinicore:session"

// RedisStore persists the session flag in Redis so it survives process
// restarts.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client *redis.Client) *RedisStore {
	if client == nil {
		panic("session: redis client cannot be nil")
	}
	return &RedisStore{client: client}
}

// Active reports whether the session flag is set. A missing key means no
// active session, not an error.
func (s *RedisStore) Active(ctx context.Context) (string, bool, error) {
	doctorID, err := s.client.Get(ctx, sessionKey).Result()
	if err != nil {
		if err == redis.Nil {
			return "", false, nil
		}
		return "", false, fmt.Errorf("session: failed to read flag: %w", err)
	}
	return doctorID, true, nil
}

// Activate sets the session flag for the doctor. No TTL: the flag lives
// until an explicit logout.
func (s *RedisStore) Activate(ctx context.Context, doctorID string) error {
	if err := s.client.Set(ctx, sessionKey, doctorID, 0).Err(); err != nil {
		return fmt.Errorf("session: failed to set flag: %w", err)
	}
	return nil
}

// Clear removes the session flag.
func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, sessionKey).Err(); err != nil {
		return fmt.Errorf("session: failed to clear flag: %w", err)
	}
	return nil
}
