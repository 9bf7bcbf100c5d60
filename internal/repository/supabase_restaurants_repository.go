package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"MeshiQ-App/internal/domain/model"
	"MeshiQ-App/internal/domain/repository"
	"MeshiQ-App/internal/infrastructure/database"
)

type SupabaseRestaurantsRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseRestaurantsRepository(client *database.SupabaseClient) repository.RestaurantsRepository {
	return &SupabaseRestaurantsRepository{
		client: client,
	}
}

// fetchRestaurants RESTレスポンスをデコードする共通部
func (r *SupabaseRestaurantsRepository) fetchRestaurants(data []byte) ([]model.Restaurant, error) {
	restaurants := make([]model.Restaurant, 0)
	if err := json.Unmarshal(data, &restaurants); err != nil {
		return nil, fmt.Errorf("店舗データのJSONアンマーシャル失敗: %w", asUnavailable(err))
	}
	return restaurants, nil
}

func (r *SupabaseRestaurantsRepository) FindAll(ctx context.Context) ([]model.Restaurant, error) {
	data, count, err := r.client.GetClient().From("restaurants").Select("*", "exact", false).Execute()
	if err != nil {
		return nil, fmt.Errorf("店舗データの取得失敗: %w", asUnavailable(err))
	}
	_ = count

	return r.fetchRestaurants(data)
}

func (r *SupabaseRestaurantsRepository) FindByNameExact(ctx context.Context, name string) ([]model.Restaurant, error) {
	data, count, err := r.client.GetClient().From("restaurants").Select("*", "exact", false).Eq("name", name).Execute()
	if err != nil {
		return nil, fmt.Errorf("店舗名（完全一致）データの取得失敗: %w", asUnavailable(err))
	}
	_ = count

	return r.fetchRestaurants(data)
}

func (r *SupabaseRestaurantsRepository) FindByNamePartial(ctx context.Context, name string) ([]model.Restaurant, error) {
	// TODO: 実際にはPostgRESTのilikeフィルタを使用して効率的に検索
	// 現在は簡易的な実装として全件取得してフィルタリング
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(name)
	matched := make([]model.Restaurant, 0)
	for _, restaurant := range all {
		if strings.Contains(strings.ToLower(restaurant.Name), needle) {
			matched = append(matched, restaurant)
		}
	}
	return matched, nil
}

func (r *SupabaseRestaurantsRepository) FindByAttribute(ctx context.Context, attribute string) ([]model.Restaurant, error) {
	// TODO: 実際にはPostgRESTのcs（contains）フィルタを使用して効率的に検索
	// 現在は簡易的な実装として全件取得してフィルタリング
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]model.Restaurant, 0)
	for _, restaurant := range all {
		if restaurant.HasAttribute(attribute) {
			matched = append(matched, restaurant)
		}
	}
	return matched, nil
}

func (r *SupabaseRestaurantsRepository) FindByID(ctx context.Context, id string) (*model.Restaurant, error) {
	data, count, err := r.client.GetClient().From("restaurants").Select("*", "exact", false).Eq("id", id).Execute()
	if err != nil {
		return nil, fmt.Errorf("店舗ID %s の取得失敗: %w", id, asUnavailable(err))
	}
	_ = count

	restaurants, err := r.fetchRestaurants(data)
	if err != nil {
		return nil, err
	}
	if len(restaurants) == 0 {
		// 不在はエラーではない
		return nil, nil
	}
	return &restaurants[0], nil
}

func (r *SupabaseRestaurantsRepository) Create(ctx context.Context, restaurant *model.Restaurant) error {
	data, err := json.Marshal(restaurant)
	if err != nil {
		return fmt.Errorf("店舗データのJSONマーシャル失敗: %w", err)
	}

	_, _, err = r.client.GetClient().From("restaurants").Insert(string(data), false, "", "", "").Execute()
	if err != nil {
		return fmt.Errorf("店舗データの作成失敗: %w", asUnavailable(err))
	}
	return nil
}

func (r *SupabaseRestaurantsRepository) BulkCreate(ctx context.Context, restaurants []model.Restaurant) error {
	data, err := json.Marshal(restaurants)
	if err != nil {
		return fmt.Errorf("店舗一括データのJSONマーシャル失敗: %w", err)
	}

	_, _, err = r.client.GetClient().From("restaurants").Insert(string(data), false, "", "", "").Execute()
	if err != nil {
		return fmt.Errorf("店舗一括データの作成失敗: %w", asUnavailable(err))
	}
	return nil
}
