package metadata

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces client keys inside a shared Redis database.
const DefaultRedisPrefix = "superapp:client:"

// NewRedisClient connects to addr and pings it before returning.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return client, nil
}

type RedisRepository struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisRepository(rdb *redis.Client, prefix string) *RedisRepository {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisRepository{rdb: rdb, prefix: prefix}
}

func (r *RedisRepository) key(k string) string {
	return r.prefix + k
}

func (r *RedisRepository) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.rdb.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return value, nil
}

func (r *RedisRepository) Set(ctx context.Context, key string, value []byte) error {
	if err := r.rdb.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}
	return nil
}

func (r *RedisRepository) SetMany(ctx context.Context, values map[string][]byte) error {
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for k, v := range values {
			pipe.Set(ctx, r.key(k), v, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set metadata: %w", err)
	}
	return nil
}

func (r *RedisRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = r.key(k)
	}
	if err := r.rdb.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("failed to delete metadata%v: %w", keys, err)
	}
	return nil
}

func (r *RedisRepository) scanKeys(ctx context.Context) ([]string, error) {
	var keys []string
	iter := r.rdb.Scan(ctx, 0, r.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	return keys, iter.Err()
}

func (r *RedisRepository) Clear(ctx context.Context) error {
	keys, err := r.scanKeys(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear metadata: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := r.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to clear metadata: %w", err)
	}
	return nil
}
