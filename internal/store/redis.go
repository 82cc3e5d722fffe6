// Package store provides the Redis-backed record store.
// Records are Redis hashes keyed by a caller-chosen string.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// errorBacklog bounds how many connection errors are kept for the listener.
const errorBacklog = 16

// Store provides hash read/write access to Redis.
type Store struct {
	client *redis.Client
	errs   chan error
}

// New creates a Store for the given Redis URL.
// It does not wait for the server; call Ping to verify connectivity.
func New(redisURL string) (*Store, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	// Connection pool settings
	opt.PoolSize = 10
	opt.MinIdleConns = 2
	opt.PoolTimeout = 4 * time.Second
	opt.ConnMaxIdleTime = 5 * time.Minute

	s := &Store{
		client: redis.NewClient(opt),
		errs:   make(chan error, errorBacklog),
	}
	s.client.AddHook(&errorHook{errs: s.errs})

	return s, nil
}

// SetHash writes fields into the hash at key and returns the server's
// acknowledgement ("OK"). Existing fields are overwritten.
func (s *Store) SetHash(ctx context.Context, key string, fields map[string]string) (string, error) {
	args := make([]any, 0, 2+2*len(fields))
	args = append(args, "hmset", key)
	for name, value := range fields {
		args = append(args, name, value)
	}

	cmd := redis.NewStatusCmd(ctx, args...)
	if err := s.client.Process(ctx, cmd); err != nil {
		return "", err
	}
	return cmd.Result()
}

// GetHash returns every field of the hash at key.
// A missing key yields an empty map and no error.
func (s *Store) GetHash(ctx context.Context, key string) (map[string]string, error) {
	return s.client.HGetAll(ctx, key).Result()
}

// Errors returns connection-level failures observed by the client.
// Errors are dropped when nobody drains the channel.
func (s *Store) Errors() <-chan error {
	return s.errs
}

// Ping checks Redis connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis client.
func (s *Store) Close() error {
	return s.client.Close()
}

// Client returns the underlying Redis client.
// Use sparingly - prefer adding methods to Store.
func (s *Store) Client() *redis.Client {
	return s.client
}
