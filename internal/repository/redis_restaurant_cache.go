package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"MeshiQ-App/internal/domain/repository"
	redisinfra "MeshiQ-App/internal/infrastructure/cache"
)

// RedisRestaurantCache Redisを使用した空間バケットキャッシュストア
type RedisRestaurantCache struct {
	client *redisinfra.RedisClient
}

// NewRedisRestaurantCache 新しいRedisRestaurantCacheインスタンスを作成
func NewRedisRestaurantCache(client *redisinfra.RedisClient) repository.RestaurantCacheStore {
	return &RedisRestaurantCache{
		client: client,
	}
}

func (c *RedisRestaurantCache) IsAvailable(ctx context.Context) bool {
	if c.client == nil || c.client.Client == nil {
		return false
	}
	return c.client.Client.Ping(ctx).Err() == nil
}

func (c *RedisRestaurantCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := c.client.Client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// キー不在はエラーではない
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("キャッシュエントリの取得失敗 (key=%s): %w", key, err)
	}
	return value, true, nil
}

func (c *RedisRestaurantCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("キャッシュエントリの保存失敗 (key=%s): %w", key, err)
	}
	return nil
}

func (c *RedisRestaurantCache) Flush(ctx context.Context) error {
	if err := c.client.Client.FlushDB(ctx).Err(); err != nil {
		return fmt.Errorf("キャッシュの破棄失敗: %w", err)
	}
	return nil
}
