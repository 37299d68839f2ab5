package cache

import (
	"context"
	"errors"
	"time"

	"github.com/Domenick1991/airledger/config"
	"github.com/redis/go-redis/v9"
)

const inFlight = "PROCESSING"

// RedisCache stores idempotency keys for mutating requests. A key is first
// reserved with a short TTL, then replaced by the stored response.
type RedisCache struct {
	client     *redis.Client
	reserveTTL time.Duration
	resultTTL  time.Duration
}

func NewRedisCache(cfg config.RedisConfig, resultTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		reserveTTL: 10 * time.Second,
		resultTTL:  resultTTL,
	}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Lookup returns the stored response for key. inProgress is true when the
// key is reserved but no response has been stored yet.
func (c *RedisCache) Lookup(ctx context.Context, key string) (response []byte, inProgress bool, err error) {
	data, err := c.client.Get(ctx, idempotencyKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	if string(data) == inFlight {
		return nil, true, nil
	}
	return data, false, nil
}

func (c *RedisCache) Reserve(ctx context.Context, key string) (bool, error) {
	return c.client.SetNX(ctx, idempotencyKey(key), inFlight, c.reserveTTL).Result()
}

func (c *RedisCache) Complete(ctx context.Context, key string, response []byte) error {
	return c.client.Set(ctx, idempotencyKey(key), response, c.resultTTL).Err()
}

func (c *RedisCache) Release(ctx context.Context, key string) error {
	return c.client.Del(ctx, idempotencyKey(key)).Err()
}

func idempotencyKey(key string) string {
	return "idempotency:" + key
}
