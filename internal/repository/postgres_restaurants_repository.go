package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"MeshiQ-App/internal/domain/model"
	"MeshiQ-App/internal/domain/repository"
	"MeshiQ-App/internal/infrastructure/database"
)

type PostgresRestaurantsRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresRestaurantsRepository(client *database.PostgreSQLClient) repository.RestaurantsRepository {
	return &PostgresRestaurantsRepository{
		client: client,
	}
}

// asUnavailable 問い合わせ自体の失敗を接続断エラーとして分類する。
// 0件ヒットはエラーにならないため、ここに来るのは接続・構文・破損の類に限られる。
func asUnavailable(err error) error {
	return fmt.Errorf("%w: %v", repository.ErrDataSourceUnavailable, err)
}

// restaurantRow restaurantsテーブルの1行を受け取るための構造体
type restaurantRow struct {
	ID         string
	Name       string
	City       sql.NullString
	Attributes string
	Latitude   float64
	Longitude  float64
	OpensAt    string
	ClosesAt   string
}

// ToRestaurant restaurantRowをmodel.Restaurantに変換
func (row *restaurantRow) ToRestaurant() (*model.Restaurant, error) {
	var attributes []string
	if row.Attributes != "" {
		if err := json.Unmarshal([]byte(row.Attributes), &attributes); err != nil {
			return nil, fmt.Errorf("attributes JSONBパースエラー: %w", err)
		}
	}

	restaurant := &model.Restaurant{
		ID:         row.ID,
		Name:       row.Name,
		Attributes: attributes,
		Latitude:   row.Latitude,
		Longitude:  row.Longitude,
		OpensAt:    row.OpensAt,
		ClosesAt:   row.ClosesAt,
	}
	if row.City.Valid {
		restaurant.City = row.City.String
	}
	return restaurant, nil
}

const restaurantColumns = `id, name, city, attributes, latitude, longitude, opens_at, closes_at`

// queryRestaurants 共通のSELECT実行部
func (r *PostgresRestaurantsRepository) queryRestaurants(ctx context.Context, query string, args ...any) ([]model.Restaurant, error) {
	rows, err := r.client.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("店舗データの取得失敗: %w", asUnavailable(err))
	}
	defer rows.Close()

	restaurants := make([]model.Restaurant, 0)
	for rows.Next() {
		var row restaurantRow
		err := rows.Scan(&row.ID, &row.Name, &row.City, &row.Attributes,
			&row.Latitude, &row.Longitude, &row.OpensAt, &row.ClosesAt)
		if err != nil {
			return nil, fmt.Errorf("店舗データスキャンエラー: %w", asUnavailable(err))
		}

		restaurant, err := row.ToRestaurant()
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, *restaurant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("店舗データの読み出し失敗: %w", asUnavailable(err))
	}

	return restaurants, nil
}

func (r *PostgresRestaurantsRepository) FindAll(ctx context.Context) ([]model.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants`
	return r.queryRestaurants(ctx, query)
}

func (r *PostgresRestaurantsRepository) FindByNameExact(ctx context.Context, name string) ([]model.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE name = $1`
	return r.queryRestaurants(ctx, query, name)
}

func (r *PostgresRestaurantsRepository) FindByNamePartial(ctx context.Context, name string) ([]model.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE name ILIKE '%' || $1 || '%'`
	return r.queryRestaurants(ctx, query, name)
}

func (r *PostgresRestaurantsRepository) FindByAttribute(ctx context.Context, attribute string) ([]model.Restaurant, error) {
	// attributesはJSONB配列（例: ["tamil", "south-indian"]）
	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE attributes ? $1`
	return r.queryRestaurants(ctx, query, attribute)
}

func (r *PostgresRestaurantsRepository) FindByID(ctx context.Context, id string) (*model.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE id = $1`

	row := r.client.DB.QueryRowContext(ctx, query, id)

	var result restaurantRow
	err := row.Scan(&result.ID, &result.Name, &result.City, &result.Attributes,
		&result.Latitude, &result.Longitude, &result.OpensAt, &result.ClosesAt)
	if err != nil {
		if err == sql.ErrNoRows {
			// 不在はエラーではない
			return nil, nil
		}
		return nil, fmt.Errorf("店舗ID %s の取得失敗: %w", id, asUnavailable(err))
	}

	return result.ToRestaurant()
}

func (r *PostgresRestaurantsRepository) Create(ctx context.Context, restaurant *model.Restaurant) error {
	attributesJSON, err := json.Marshal(restaurant.Attributes)
	if err != nil {
		return fmt.Errorf("attributes JSONマーシャルエラー: %w", err)
	}

	query := `
		INSERT INTO restaurants (id, name, city, attributes, latitude, longitude, opens_at, closes_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = r.client.DB.ExecContext(ctx, query,
		restaurant.ID, restaurant.Name, restaurant.City, string(attributesJSON),
		restaurant.Latitude, restaurant.Longitude, restaurant.OpensAt, restaurant.ClosesAt)
	if err != nil {
		return fmt.Errorf("店舗データの作成失敗: %w", asUnavailable(err))
	}
	return nil
}

func (r *PostgresRestaurantsRepository) BulkCreate(ctx context.Context, restaurants []model.Restaurant) error {
	tx, err := r.client.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("トランザクション開始失敗: %w", asUnavailable(err))
	}
	defer tx.Rollback()

	query := `
		INSERT INTO restaurants (id, name, city, attributes, latitude, longitude, opens_at, closes_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	for _, restaurant := range restaurants {
		attributesJSON, err := json.Marshal(restaurant.Attributes)
		if err != nil {
			return fmt.Errorf("attributes JSONマーシャルエラー: %w", err)
		}
		_, err = tx.ExecContext(ctx, query,
			restaurant.ID, restaurant.Name, restaurant.City, string(attributesJSON),
			restaurant.Latitude, restaurant.Longitude, restaurant.OpensAt, restaurant.ClosesAt)
		if err != nil {
			return fmt.Errorf("店舗一括データの作成失敗: %w", asUnavailable(err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("トランザクションコミット失敗: %w", asUnavailable(err))
	}
	return nil
}
