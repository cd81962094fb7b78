package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "rebowork:collection:"

// RedisBackend stores each collection document under its own key.
type RedisBackend struct {
	rdb *redis.Client
}

func NewRedisBackend(rdb *redis.Client) *RedisBackend {
	return &RedisBackend{rdb: rdb}
}

func (b *RedisBackend) Read(ctx context.Context, name string) ([]byte, error) {
	raw, err := b.rdb.Get(ctx, redisKeyPrefix+name).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return raw, err
}

func (b *RedisBackend) Write(ctx context.Context, name string, doc []byte) error {
	return b.rdb.Set(ctx, redisKeyPrefix+name, doc, 0).Err()
}

func (b *RedisBackend) Ping(ctx context.Context) error {
	return b.rdb.Ping(ctx).Err()
}
