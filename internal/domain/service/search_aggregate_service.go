package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"MeshiQ-App/internal/domain/model"
	"MeshiQ-App/internal/domain/repository"
	"MeshiQ-App/internal/domain/strategy"
)

// RestaurantSearchAggregator 4つの検索戦略（店舗名・料理ジャンル・品名・品の特徴）を
// 束ねるアグリゲータ。各戦略の候補を近接フィルタに通したうえで、戦略の定義順に
// 重複排除しながらマージする。
//
// 逐次モードと並行モードの2つを提供する。並行モードはスループットのためだけに
// 存在し（I/Oバウンドな4本の独立した問い合わせで逐次比1.5倍以上を狙う）、
// マージは完了順ではなく戦略順で行うため、出力は逐次モードと完全に一致する。
type RestaurantSearchAggregator interface {
	Search(ctx context.Context, origin model.LatLng, now time.Time, servingRadiusInKms float64, searchString string) ([]model.Restaurant, error)
	SearchParallel(ctx context.Context, origin model.LatLng, now time.Time, servingRadiusInKms float64, searchString string) ([]model.Restaurant, error)
}

// restaurantSearchAggregatorImpl RestaurantSearchAggregatorの実装
type restaurantSearchAggregatorImpl struct {
	// 戦略のスライス順がそのままマージの優先順になる
	strategies []strategy.SearchStrategy
	filter     *ProximityFilter
}

// NewRestaurantSearchAggregator RestaurantSearchAggregatorの新しいインスタンスを作成。
// strategiesの並び順がマージ時の優先順として固定される。
func NewRestaurantSearchAggregator(strategies []strategy.SearchStrategy) RestaurantSearchAggregator {
	return &restaurantSearchAggregatorImpl{
		strategies: strategies,
		filter:     NewProximityFilter(),
	}
}

// Search 逐次モードの検索。戦略を順番に実行し、戦略順にマージする。
func (s *restaurantSearchAggregatorImpl) Search(ctx context.Context, origin model.LatLng, now time.Time, servingRadiusInKms float64, searchString string) ([]model.Restaurant, error) {
	if searchString == "" {
		return []model.Restaurant{}, nil
	}

	resultSets := make([][]model.Restaurant, len(s.strategies))
	for i, st := range s.strategies {
		filtered, err := s.runStrategy(ctx, st, origin, now, servingRadiusInKms, searchString)
		if err != nil {
			return nil, err
		}
		resultSets[i] = filtered
	}

	return mergeUnique(resultSets), nil
}

// SearchParallel 並行モードの検索。4戦略をゴルーチンで同時に発行し、
// 全戦略の完了を待ってから戦略順にマージする。完了順はマージ順に影響しない。
// キャンセルや途中打ち切りはせず、発行した問い合わせは必ず完走させる。
func (s *restaurantSearchAggregatorImpl) SearchParallel(ctx context.Context, origin model.LatLng, now time.Time, servingRadiusInKms float64, searchString string) ([]model.Restaurant, error) {
	if searchString == "" {
		return []model.Restaurant{}, nil
	}

	resultSets := make([][]model.Restaurant, len(s.strategies))
	strategyErrs := make([]error, len(s.strategies))
	var wg sync.WaitGroup

	for i, st := range s.strategies {
		wg.Add(1)
		go func(idx int, st strategy.SearchStrategy) {
			defer wg.Done()
			// ゴルーチンが落ちると待ち合わせ結果と正規の空振りを区別できなくなるため、
			// パニックは回収してこのリクエスト全体のエラーにする
			defer func() {
				if r := recover(); r != nil {
					strategyErrs[idx] = fmt.Errorf("検索戦略 %s の待ち合わせに失敗: %v", st.Name(), r)
				}
			}()

			filtered, err := s.runStrategy(ctx, st, origin, now, servingRadiusInKms, searchString)
			if err != nil {
				strategyErrs[idx] = err
				return
			}
			resultSets[idx] = filtered
		}(i, st)
	}

	wg.Wait()

	for _, err := range strategyErrs {
		if err != nil {
			return nil, err
		}
	}

	return mergeUnique(resultSets), nil
}

// runStrategy 1つの戦略を実行し、候補を近接フィルタで絞り込む。
// 接続断以外の失敗は「この戦略からは0件」として握りつぶす（fail-soft）。
func (s *restaurantSearchAggregatorImpl) runStrategy(ctx context.Context, st strategy.SearchStrategy, origin model.LatLng, now time.Time, servingRadiusInKms float64, searchString string) ([]model.Restaurant, error) {
	candidates, err := st.FindRestaurants(ctx, searchString)
	if err != nil {
		if errors.Is(err, repository.ErrDataSourceUnavailable) {
			return nil, fmt.Errorf("検索戦略 %s の実行に失敗: %w", st.Name(), err)
		}
		log.Printf("⚠️ 検索戦略 %s が失敗、空の結果として継続: %v", st.Name(), err)
		return []model.Restaurant{}, nil
	}

	filtered := make([]model.Restaurant, 0, len(candidates))
	for _, restaurant := range candidates {
		if s.filter.IsEligible(&restaurant, now, origin, servingRadiusInKms) {
			filtered = append(filtered, restaurant)
		}
	}
	return filtered, nil
}

// mergeUnique 戦略ごとの結果を先頭から順にマージする。
// 同じ店舗IDは最初に現れた位置だけを残し、後続の出現は黙って捨てる。
func mergeUnique(resultSets [][]model.Restaurant) []model.Restaurant {
	seen := make(map[string]struct{})
	merged := make([]model.Restaurant, 0)

	for _, resultSet := range resultSets {
		for _, restaurant := range resultSet {
			if _, ok := seen[restaurant.ID]; ok {
				continue
			}
			seen[restaurant.ID] = struct{}{}
			merged = append(merged, restaurant)
		}
	}
	return merged
}
