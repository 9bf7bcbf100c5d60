package strategy

import (
	"context"
	"fmt"

	"MeshiQ-App/internal/domain/model"
	"MeshiQ-App/internal/domain/repository"
)

// ItemAttributeStrategy 品の特徴（spicy, sweetなど）の一致からメニューをたどり、
// 店舗候補を引き当てる戦略
type ItemAttributeStrategy struct {
	restaurantsRepo repository.RestaurantsRepository
	menusRepo       repository.MenusRepository
}

func NewItemAttributeStrategy(restaurantsRepo repository.RestaurantsRepository, menusRepo repository.MenusRepository) SearchStrategy {
	return &ItemAttributeStrategy{
		restaurantsRepo: restaurantsRepo,
		menusRepo:       menusRepo,
	}
}

func (s *ItemAttributeStrategy) Name() string {
	return "item-attribute"
}

func (s *ItemAttributeStrategy) FindRestaurants(ctx context.Context, searchString string) ([]model.Restaurant, error) {
	itemIDs, err := s.menusRepo.FindItemIDsByAttribute(ctx, searchString)
	if err != nil {
		return nil, fmt.Errorf("品の特徴検索に失敗: %w", err)
	}

	return restaurantsServingItems(ctx, s.menusRepo, s.restaurantsRepo, itemIDs)
}
