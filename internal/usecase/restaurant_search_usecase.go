package usecase

import (
	"context"
	"time"

	"MeshiQ-App/internal/domain/model"
	"MeshiQ-App/internal/domain/service"
)

// RestaurantSearchUseCase 店舗検索APIのユースケース。
// ピーク時間帯から配達圏半径を決め、近傍検索（検索文字列なし）または
// 検索アグリゲータ（検索文字列あり）に振り分けるだけのオーケストレーション層。
type RestaurantSearchUseCase interface {
	// FindAllRestaurantsCloseBy 基準点の周辺で営業中の店舗一覧を取得する
	FindAllRestaurantsCloseBy(ctx context.Context, req *model.GetRestaurantsRequest, now time.Time) (*model.GetRestaurantsResponse, error)

	// FindRestaurantsBySearchQuery 検索文字列に一致する周辺店舗を逐次モードで取得する
	FindRestaurantsBySearchQuery(ctx context.Context, req *model.GetRestaurantsRequest, now time.Time) (*model.GetRestaurantsResponse, error)

	// FindRestaurantsBySearchQueryParallel 検索文字列に一致する周辺店舗を並行モードで取得する。
	// 結果の並びは逐次モードと同一で、スループットのみが異なる。
	FindRestaurantsBySearchQueryParallel(ctx context.Context, req *model.GetRestaurantsRequest, now time.Time) (*model.GetRestaurantsResponse, error)
}

// restaurantSearchUseCaseImpl RestaurantSearchUseCaseの実装
type restaurantSearchUseCaseImpl struct {
	peakHours     *service.PeakHoursService
	nearbyService service.NearbyRestaurantsService
	aggregator    service.RestaurantSearchAggregator
}

// NewRestaurantSearchUseCase RestaurantSearchUseCaseの新しいインスタンスを作成
func NewRestaurantSearchUseCase(
	peakHours *service.PeakHoursService,
	nearbyService service.NearbyRestaurantsService,
	aggregator service.RestaurantSearchAggregator,
) RestaurantSearchUseCase {
	return &restaurantSearchUseCaseImpl{
		peakHours:     peakHours,
		nearbyService: nearbyService,
		aggregator:    aggregator,
	}
}

func (u *restaurantSearchUseCaseImpl) FindAllRestaurantsCloseBy(ctx context.Context, req *model.GetRestaurantsRequest, now time.Time) (*model.GetRestaurantsResponse, error) {
	radiusInKms := u.peakHours.ServingRadiusInKms(now)

	restaurants, err := u.nearbyService.FindAllRestaurantsCloseBy(ctx, req.Origin(), now, radiusInKms)
	if err != nil {
		return nil, err
	}
	return &model.GetRestaurantsResponse{Restaurants: restaurants}, nil
}

func (u *restaurantSearchUseCaseImpl) FindRestaurantsBySearchQuery(ctx context.Context, req *model.GetRestaurantsRequest, now time.Time) (*model.GetRestaurantsResponse, error) {
	radiusInKms := u.peakHours.ServingRadiusInKms(now)

	restaurants, err := u.aggregator.Search(ctx, req.Origin(), now, radiusInKms, req.SearchFor)
	if err != nil {
		return nil, err
	}
	return &model.GetRestaurantsResponse{Restaurants: restaurants}, nil
}

func (u *restaurantSearchUseCaseImpl) FindRestaurantsBySearchQueryParallel(ctx context.Context, req *model.GetRestaurantsRequest, now time.Time) (*model.GetRestaurantsResponse, error) {
	radiusInKms := u.peakHours.ServingRadiusInKms(now)

	restaurants, err := u.aggregator.SearchParallel(ctx, req.Origin(), now, radiusInKms, req.SearchFor)
	if err != nil {
		return nil, err
	}
	return &model.GetRestaurantsResponse{Restaurants: restaurants}, nil
}
