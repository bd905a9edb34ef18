package kv

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
	"go.trai.ch/gostore/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.KVStore = (*RedisStore)(nil)

// RedisStore implements ports.KVStore on plain Redis string keys.
type RedisStore struct {
	client *redis.Client
}

// OpenRedis connects to the Redis server at addr and verifies the connection.
func OpenRedis(ctx context.Context, addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, zerr.With(zerr.Wrap(err, "failed to connect to redis"), "addr", addr)
	}
	return NewRedisStore(client), nil
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Get reads the value stored under key.
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, zerr.With(zerr.Wrap(err, "failed to get key"), "key", key)
	}
	return value, true, nil
}

// Set stores value under key without expiry.
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to set key"), "key", key)
	}
	return nil
}

// Close closes the client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
