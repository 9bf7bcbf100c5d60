package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"MeshiQ-App/internal/domain/helper"
	"MeshiQ-App/internal/domain/model"
	"MeshiQ-App/internal/domain/repository"
)

// RestaurantAdminUseCase 店舗の登録・初期投入に関するユースケース
type RestaurantAdminUseCase interface {
	// RegisterRestaurant 店舗を新規登録する
	RegisterRestaurant(ctx context.Context, req *model.RegisterRestaurantRequest) (*model.Restaurant, error)

	// RegisterRestaurants 複数店舗を一括登録し、登録件数を返す
	RegisterRestaurants(ctx context.Context, reqs []model.RegisterRestaurantRequest) (int, error)
}

// restaurantAdminUseCaseImpl RestaurantAdminUseCaseの実装
type restaurantAdminUseCaseImpl struct {
	restaurantsRepo repository.RestaurantsRepository
}

// NewRestaurantAdminUseCase RestaurantAdminUseCaseの新しいインスタンスを作成
func NewRestaurantAdminUseCase(restaurantsRepo repository.RestaurantsRepository) RestaurantAdminUseCase {
	return &restaurantAdminUseCaseImpl{
		restaurantsRepo: restaurantsRepo,
	}
}

func (u *restaurantAdminUseCaseImpl) RegisterRestaurant(ctx context.Context, req *model.RegisterRestaurantRequest) (*model.Restaurant, error) {
	restaurant, err := buildRestaurant(req)
	if err != nil {
		return nil, fmt.Errorf("リクエストの検証失敗: %w", err)
	}

	if err := u.restaurantsRepo.Create(ctx, restaurant); err != nil {
		return nil, fmt.Errorf("店舗の登録失敗: %w", err)
	}
	return restaurant, nil
}

func (u *restaurantAdminUseCaseImpl) RegisterRestaurants(ctx context.Context, reqs []model.RegisterRestaurantRequest) (int, error) {
	restaurants := make([]model.Restaurant, 0, len(reqs))
	for i := range reqs {
		restaurant, err := buildRestaurant(&reqs[i])
		if err != nil {
			return 0, fmt.Errorf("%d件目のリクエストの検証失敗: %w", i+1, err)
		}
		restaurants = append(restaurants, *restaurant)
	}

	if err := u.restaurantsRepo.BulkCreate(ctx, restaurants); err != nil {
		return 0, fmt.Errorf("店舗の一括登録失敗: %w", err)
	}
	return len(restaurants), nil
}

// buildRestaurant リクエストを検証し、IDを採番した店舗モデルを組み立てる
func buildRestaurant(req *model.RegisterRestaurantRequest) (*model.Restaurant, error) {
	if req.Name == "" {
		return nil, errors.New("店舗名は必須です")
	}

	location := model.GetRestaurantsRequest{Latitude: req.Latitude, Longitude: req.Longitude}
	if !location.IsValidGeoLocation() {
		return nil, fmt.Errorf("緯度経度が範囲外です (%.6f, %.6f)", req.Latitude, req.Longitude)
	}

	opens, err := helper.SecondsOfDay(req.OpensAt)
	if err != nil {
		return nil, err
	}
	closes, err := helper.SecondsOfDay(req.ClosesAt)
	if err != nil {
		return nil, err
	}
	// 日をまたぐ営業時間は扱わない
	if opens > closes {
		return nil, fmt.Errorf("開店時刻 %s が閉店時刻 %s より後です", req.OpensAt, req.ClosesAt)
	}

	return &model.Restaurant{
		ID:         uuid.New().String(),
		Name:       req.Name,
		City:       req.City,
		Attributes: req.Attributes,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		OpensAt:    req.OpensAt,
		ClosesAt:   req.ClosesAt,
	}, nil
}
