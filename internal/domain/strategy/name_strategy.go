package strategy

import (
	"context"
	"fmt"

	"MeshiQ-App/internal/domain/model"
	"MeshiQ-App/internal/domain/repository"
)

// NameStrategy 店舗名の完全一致・部分一致で候補を引き当てる戦略。
// 完全一致を先に並べ、部分一致を後ろに連結する。
type NameStrategy struct {
	restaurantsRepo repository.RestaurantsRepository
}

func NewNameStrategy(restaurantsRepo repository.RestaurantsRepository) SearchStrategy {
	return &NameStrategy{
		restaurantsRepo: restaurantsRepo,
	}
}

func (s *NameStrategy) Name() string {
	return "name"
}

func (s *NameStrategy) FindRestaurants(ctx context.Context, searchString string) ([]model.Restaurant, error) {
	exact, err := s.restaurantsRepo.FindByNameExact(ctx, searchString)
	if err != nil {
		return nil, fmt.Errorf("店舗名（完全一致）検索に失敗: %w", err)
	}

	partial, err := s.restaurantsRepo.FindByNamePartial(ctx, searchString)
	if err != nil {
		return nil, fmt.Errorf("店舗名（部分一致）検索に失敗: %w", err)
	}

	candidates := make([]model.Restaurant, 0, len(exact)+len(partial))
	candidates = append(candidates, exact...)
	candidates = append(candidates, partial...)
	return candidates, nil
}
