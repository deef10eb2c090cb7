package storage

import (
	"context"
	"errors"

	domainRepo "ads-dental-admin/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

type redisStorage struct {
	client *redis.Client
	prefix string
}

// NewRedisStorage keeps session entries as plain Redis strings under prefix.
func NewRedisStorage(client *redis.Client, prefix string) domainRepo.SessionStorage {
	return &redisStorage{client: client, prefix: prefix}
}

func (s *redisStorage) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *redisStorage) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}

func (s *redisStorage) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = s.prefix + key
	}
	return s.client.Del(ctx, prefixed...).Err()
}
