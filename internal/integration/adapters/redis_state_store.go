// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/invoice-hub/backend/internal/application/adapter"
)

const (
	stateKeyPrefix  = "oauth_state:"
	defaultStateTTL = 10 * time.Minute
)

// RedisStateStore implements the adapter.StateStore on Redis. OAuth state
// values expire on their own, so abandoned logins leave nothing behind.
type RedisStateStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStateStore creates a Redis-backed state store from a redis:// URL.
func NewRedisStateStore(url string) (*RedisStateStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStateStore{
		client: client,
		ttl:    defaultStateTTL,
	}, nil
}

// NewRedisStateStoreWithClient wraps an existing client. Used by tests.
func NewRedisStateStoreWithClient(client *redis.Client) *RedisStateStore {
	return &RedisStateStore{
		client: client,
		ttl:    defaultStateTTL,
	}
}

// SaveState stores the state value with a bounded lifetime.
func (s *RedisStateStore) SaveState(ctx context.Context, state string) error {
	return s.client.Set(ctx, stateKeyPrefix+state, "1", s.ttl).Err()
}

// ConsumeState removes the state value, reporting whether it existed.
func (s *RedisStateStore) ConsumeState(ctx context.Context, state string) (bool, error) {
	err := s.client.GetDel(ctx, stateKeyPrefix+state).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Close releases the Redis connection.
func (s *RedisStateStore) Close() error {
	return s.client.Close()
}

var _ adapter.StateStore = (*RedisStateStore)(nil)
