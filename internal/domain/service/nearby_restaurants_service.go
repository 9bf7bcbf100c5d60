package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"MeshiQ-App/internal/domain/helper"
	"MeshiQ-App/internal/domain/model"
	"MeshiQ-App/internal/domain/repository"
)

// NearbyRestaurantsService 空間バケットキャッシュを介した「営業中の近隣店舗」検索。
// キャッシュはバケット単位の近似（バケットの中心は動かないため距離は書き込み時に
// 確定済み）で、読み出し時は営業時間のみを再フィルタする。
type NearbyRestaurantsService interface {
	FindAllRestaurantsCloseBy(ctx context.Context, origin model.LatLng, now time.Time, servingRadiusInKms float64) ([]model.Restaurant, error)
}

// nearbyRestaurantsServiceImpl NearbyRestaurantsServiceの実装
type nearbyRestaurantsServiceImpl struct {
	restaurantsRepo repository.RestaurantsRepository
	cacheStore      repository.RestaurantCacheStore
	filter          *ProximityFilter
}

// NewNearbyRestaurantsService NearbyRestaurantsServiceの新しいインスタンスを作成
func NewNearbyRestaurantsService(restaurantsRepo repository.RestaurantsRepository, cacheStore repository.RestaurantCacheStore) NearbyRestaurantsService {
	return &nearbyRestaurantsServiceImpl{
		restaurantsRepo: restaurantsRepo,
		cacheStore:      cacheStore,
		filter:          NewProximityFilter(),
	}
}

// FindAllRestaurantsCloseBy 基準点の周辺で現在営業中の店舗一覧を取得する。
// キャッシュヒット時はペイロードを営業時間で再フィルタして返す。
// ミス・接続不可・ペイロード破損はすべてソースオブトゥルースからの再計算に落ちる。
func (s *nearbyRestaurantsServiceImpl) FindAllRestaurantsCloseBy(ctx context.Context, origin model.LatLng, now time.Time, servingRadiusInKms float64) ([]model.Restaurant, error) {
	key := helper.BucketKey(origin)

	if s.cacheStore != nil && s.cacheStore.IsAvailable(ctx) {
		if restaurants, ok := s.findFromCache(ctx, key, now); ok {
			return restaurants, nil
		}
	}

	return s.findFromSource(ctx, key, origin, now, servingRadiusInKms)
}

// findFromCache キャッシュからバケットのペイロードを読み、営業時間のみ再フィルタする。
// 書き込みから読み出しまでの間に壁時計が進んでいるため、距離と違って
// 営業中かどうかは読み出しのたびに判定し直す必要がある。
func (s *nearbyRestaurantsServiceImpl) findFromCache(ctx context.Context, key string, now time.Time) ([]model.Restaurant, bool) {
	payload, found, err := s.cacheStore.Get(ctx, key)
	if err != nil {
		log.Printf("⚠️ キャッシュ読み出し失敗、ミスとして継続 (key=%s): %v", key, err)
		return nil, false
	}
	if !found {
		return nil, false
	}

	var cached []model.Restaurant
	if err := json.Unmarshal(payload, &cached); err != nil {
		// 破損ペイロードは呼び出し元に出さず、ミスとして再計算する
		log.Printf("⚠️ キャッシュペイロードのJSONアンマーシャル失敗、ミスとして継続 (key=%s): %v", key, err)
		return nil, false
	}

	openNow := make([]model.Restaurant, 0, len(cached))
	for _, restaurant := range cached {
		if s.filter.IsOpenNow(&restaurant, now) {
			openNow = append(openNow, restaurant)
		}
	}
	return openNow, true
}

// findFromSource ソースオブトゥルースから候補を取得し、営業時間と距離で絞り込んだうえで
// バケットキーにベストエフォートで書き戻す
func (s *nearbyRestaurantsServiceImpl) findFromSource(ctx context.Context, key string, origin model.LatLng, now time.Time, servingRadiusInKms float64) ([]model.Restaurant, error) {
	candidates, err := s.restaurantsRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("店舗データの取得失敗: %w", err)
	}

	eligible := make([]model.Restaurant, 0, len(candidates))
	for _, restaurant := range candidates {
		if s.filter.IsEligible(&restaurant, now, origin, servingRadiusInKms) {
			eligible = append(eligible, restaurant)
		}
	}

	s.storeInCache(ctx, key, eligible)
	return eligible, nil
}

// storeInCache 絞り込み済みの一覧をバケットキーに丸ごと保存する。
// 保存失敗はログに残してリクエスト自体は成功させる。
func (s *nearbyRestaurantsServiceImpl) storeInCache(ctx context.Context, key string, restaurants []model.Restaurant) {
	if s.cacheStore == nil {
		return
	}

	payload, err := json.Marshal(restaurants)
	if err != nil {
		log.Printf("⚠️ キャッシュペイロードのJSONマーシャル失敗 (key=%s): %v", key, err)
		return
	}
	if err := s.cacheStore.Set(ctx, key, payload, model.CacheEntryExpiry); err != nil {
		log.Printf("⚠️ キャッシュ書き込み失敗 (key=%s): %v", key, err)
	}
}
