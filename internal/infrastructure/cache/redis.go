package cache

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient go-redisクライアントのラッパー。
// キャッシュはベストエフォートの高速化用なので、起動時に接続できなくても
// エラーにはせず、キャッシュなしで継続できるようにする。
type RedisClient struct {
	Client *redis.Client
}

// NewRedisClient 新しいRedisクライアントを作成
func NewRedisClient() *RedisClient {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redisに接続できません（キャッシュなしで継続）: %v", err)
	}

	return &RedisClient{
		Client: rdb,
	}
}

// Close Redis接続を閉じる
func (rc *RedisClient) Close() error {
	if rc.Client != nil {
		return rc.Client.Close()
	}
	return nil
}

// HealthCheck Redis接続のヘルスチェック
func (rc *RedisClient) HealthCheck(ctx context.Context) error {
	if rc.Client == nil {
		return fmt.Errorf("Redisクライアントが初期化されていません")
	}
	return rc.Client.Ping(ctx).Err()
}
