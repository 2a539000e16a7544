package kv

import (
	"fmt"

	"github.com/go-redis/redis"

	"hopebridge/pkg/types"
)

// RedisStore is an optional backend for running the demo against a shared
// redis instance instead of the local file store.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(config *types.Config) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
		DB:       0,
	})

	return &RedisStore{client: client}
}

func (s *RedisStore) Get(key string) (string, bool, error) {
	value, err := s.client.Get(key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}

	return value, true, nil
}

func (s *RedisStore) Set(key, value string) error {
	// The demo's records never expire.
	if err := s.client.Set(key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}

	return nil
}

func (s *RedisStore) Remove(key string) error {
	if err := s.client.Del(key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}

	return nil
}
