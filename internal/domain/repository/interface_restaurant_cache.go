package repository

import (
	"context"
	"time"
)

// RestaurantCacheStore 空間バケットキーで引くキャッシュストアの契約。
// あくまでベストエフォートの高速化用であり、不在・失敗は常に
// ソースオブトゥルースへのフォールバックで吸収される。
type RestaurantCacheStore interface {
	// IsAvailable キャッシュストアに接続できるかチェック
	IsAvailable(ctx context.Context) bool
	// Get キーに対応するペイロードを取得する（不在はfound=false、エラーではない）
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	// Set キーにペイロードをTTL付きで保存する（丸ごと置き換え）
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Flush 全エントリを破棄する（キャッシュが古くなった場合やテスト用）
	Flush(ctx context.Context) error
}
