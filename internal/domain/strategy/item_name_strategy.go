package strategy

import (
	"context"
	"fmt"

	"MeshiQ-App/internal/domain/model"
	"MeshiQ-App/internal/domain/repository"
)

// ItemNameStrategy 提供している品名の一致からメニューをたどり、店舗候補を引き当てる戦略
type ItemNameStrategy struct {
	restaurantsRepo repository.RestaurantsRepository
	menusRepo       repository.MenusRepository
}

func NewItemNameStrategy(restaurantsRepo repository.RestaurantsRepository, menusRepo repository.MenusRepository) SearchStrategy {
	return &ItemNameStrategy{
		restaurantsRepo: restaurantsRepo,
		menusRepo:       menusRepo,
	}
}

func (s *ItemNameStrategy) Name() string {
	return "item-name"
}

func (s *ItemNameStrategy) FindRestaurants(ctx context.Context, searchString string) ([]model.Restaurant, error) {
	itemIDs, err := s.menusRepo.FindItemIDsByName(ctx, searchString)
	if err != nil {
		return nil, fmt.Errorf("品名検索に失敗: %w", err)
	}

	return restaurantsServingItems(ctx, s.menusRepo, s.restaurantsRepo, itemIDs)
}

// restaurantsServingItems itemIdの一覧からメニューをたどり、提供元の店舗一覧を取得する。
// メニューの出現順を保ったまま、見つからない店舗IDは黙ってスキップする。
func restaurantsServingItems(ctx context.Context, menusRepo repository.MenusRepository, restaurantsRepo repository.RestaurantsRepository, itemIDs []string) ([]model.Restaurant, error) {
	if len(itemIDs) == 0 {
		return []model.Restaurant{}, nil
	}

	menus, err := menusRepo.FindMenusByItemIDs(ctx, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("メニュー検索に失敗: %w", err)
	}

	restaurants := make([]model.Restaurant, 0, len(menus))
	for _, menu := range menus {
		restaurant, err := restaurantsRepo.FindByID(ctx, menu.RestaurantID)
		if err != nil {
			return nil, fmt.Errorf("店舗ID %s の取得失敗: %w", menu.RestaurantID, err)
		}
		if restaurant != nil {
			restaurants = append(restaurants, *restaurant)
		}
	}
	return restaurants, nil
}
