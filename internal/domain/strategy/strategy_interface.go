package strategy

import (
	"context"

	"MeshiQ-App/internal/domain/model"
)

// SearchStrategy は、検索文字列から店舗候補を引き当てる単一の検索手段のインターフェース。
// 各戦略はソースオブトゥルースへの問い合わせのみを行い、
// 距離・営業時間の絞り込みは呼び出し側（アグリゲータ）が担当する。
type SearchStrategy interface {
	// Name 戦略の識別名（ログ用）
	Name() string

	// FindRestaurants 検索文字列に一致する店舗候補の一覧を取得する。
	// 0件ヒットは空スライスで表現し、エラーは接続・問い合わせの失敗に限る。
	FindRestaurants(ctx context.Context, searchString string) ([]model.Restaurant, error)
}
