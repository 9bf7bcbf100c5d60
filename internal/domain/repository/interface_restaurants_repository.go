package repository

import (
	"context"

	"MeshiQ-App/internal/domain/model"
)

type RestaurantsRepository interface {
	// FindAll 全店舗を取得する
	FindAll(ctx context.Context) ([]model.Restaurant, error)
	// FindByNameExact 店舗名が完全一致する店舗を取得する（0件は空スライス）
	FindByNameExact(ctx context.Context, name string) ([]model.Restaurant, error)
	// FindByNamePartial 店舗名が部分一致する店舗を取得する（0件は空スライス）
	FindByNamePartial(ctx context.Context, name string) ([]model.Restaurant, error)
	// FindByAttribute 指定された料理ジャンルを持つ店舗を取得する（0件は空スライス）
	FindByAttribute(ctx context.Context, attribute string) ([]model.Restaurant, error)
	// FindByID 店舗IDで1件取得する（見つからない場合はnilを返し、エラーにはしない）
	FindByID(ctx context.Context, id string) (*model.Restaurant, error)
	Create(ctx context.Context, restaurant *model.Restaurant) error
	BulkCreate(ctx context.Context, restaurants []model.Restaurant) error
}
