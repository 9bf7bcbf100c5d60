package strategy

import (
	"context"
	"fmt"

	"MeshiQ-App/internal/domain/model"
	"MeshiQ-App/internal/domain/repository"
)

// AttributeStrategy 料理ジャンル（attributes）の一致で候補を引き当てる戦略
type AttributeStrategy struct {
	restaurantsRepo repository.RestaurantsRepository
}

func NewAttributeStrategy(restaurantsRepo repository.RestaurantsRepository) SearchStrategy {
	return &AttributeStrategy{
		restaurantsRepo: restaurantsRepo,
	}
}

func (s *AttributeStrategy) Name() string {
	return "attribute"
}

func (s *AttributeStrategy) FindRestaurants(ctx context.Context, searchString string) ([]model.Restaurant, error) {
	candidates, err := s.restaurantsRepo.FindByAttribute(ctx, searchString)
	if err != nil {
		return nil, fmt.Errorf("料理ジャンル検索に失敗: %w", err)
	}
	return candidates, nil
}
