package strategy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MeshiQ-App/internal/domain/model"
)

// stubRestaurantsRepo 検索系だけを差し替えるRestaurantsRepositoryのスタブ
type stubRestaurantsRepo struct {
	exact       []model.Restaurant
	partial     []model.Restaurant
	byAttr      []model.Restaurant
	byID        map[string]*model.Restaurant
	err         error
	findByIDErr error
}

func (s *stubRestaurantsRepo) FindAll(ctx context.Context) ([]model.Restaurant, error) {
	return nil, nil
}

func (s *stubRestaurantsRepo) FindByNameExact(ctx context.Context, name string) ([]model.Restaurant, error) {
	return s.exact, s.err
}

func (s *stubRestaurantsRepo) FindByNamePartial(ctx context.Context, name string) ([]model.Restaurant, error) {
	return s.partial, s.err
}

func (s *stubRestaurantsRepo) FindByAttribute(ctx context.Context, attribute string) ([]model.Restaurant, error) {
	return s.byAttr, s.err
}

func (s *stubRestaurantsRepo) FindByID(ctx context.Context, id string) (*model.Restaurant, error) {
	if s.findByIDErr != nil {
		return nil, s.findByIDErr
	}
	return s.byID[id], nil
}

func (s *stubRestaurantsRepo) Create(ctx context.Context, restaurant *model.Restaurant) error {
	return nil
}

func (s *stubRestaurantsRepo) BulkCreate(ctx context.Context, restaurants []model.Restaurant) error {
	return nil
}

// stubMenusRepo MenusRepositoryのスタブ
type stubMenusRepo struct {
	itemIDsByName []string
	itemIDsByAttr []string
	menus         []model.Menu
	err           error
}

func (s *stubMenusRepo) FindItemIDsByName(ctx context.Context, name string) ([]string, error) {
	return s.itemIDsByName, s.err
}

func (s *stubMenusRepo) FindItemIDsByAttribute(ctx context.Context, attribute string) ([]string, error) {
	return s.itemIDsByAttr, s.err
}

func (s *stubMenusRepo) FindMenusByItemIDs(ctx context.Context, itemIDs []string) ([]model.Menu, error) {
	return s.menus, s.err
}

func TestNameStrategy(t *testing.T) {
	ctx := context.Background()

	t.Run("完全一致が先で部分一致が後ろに連結される", func(t *testing.T) {
		repo := &stubRestaurantsRepo{
			exact:   []model.Restaurant{{ID: "exact-1"}},
			partial: []model.Restaurant{{ID: "partial-1"}, {ID: "partial-2"}},
		}
		st := NewNameStrategy(repo)

		got, err := st.FindRestaurants(ctx, "A2B")
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "exact-1", got[0].ID)
		assert.Equal(t, "partial-1", got[1].ID)
		assert.Equal(t, "partial-2", got[2].ID)
	})

	t.Run("リポジトリのエラーはそのまま返す", func(t *testing.T) {
		st := NewNameStrategy(&stubRestaurantsRepo{err: errors.New("query failed")})

		_, err := st.FindRestaurants(ctx, "A2B")
		require.Error(t, err)
	})
}

func TestAttributeStrategy(t *testing.T) {
	ctx := context.Background()

	t.Run("料理ジャンルの一致で候補を返す", func(t *testing.T) {
		repo := &stubRestaurantsRepo{byAttr: []model.Restaurant{{ID: "r1"}, {ID: "r2"}}}
		st := NewAttributeStrategy(repo)

		got, err := st.FindRestaurants(ctx, "Tamil")
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})
}

func TestItemNameStrategy(t *testing.T) {
	ctx := context.Background()

	t.Run("品名からメニューをたどって提供元の店舗を返す", func(t *testing.T) {
		menusRepo := &stubMenusRepo{
			itemIDsByName: []string{"i1", "i2"},
			menus: []model.Menu{
				{RestaurantID: "r1"},
				{RestaurantID: "r2"},
			},
		}
		restaurantsRepo := &stubRestaurantsRepo{byID: map[string]*model.Restaurant{
			"r1": {ID: "r1"},
			"r2": {ID: "r2"},
		}}
		st := NewItemNameStrategy(restaurantsRepo, menusRepo)

		got, err := st.FindRestaurants(ctx, "idli")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "r1", got[0].ID)
		assert.Equal(t, "r2", got[1].ID)
	})

	t.Run("品名に一致するitemIdがなければメニューを引かずに空を返す", func(t *testing.T) {
		menusRepo := &stubMenusRepo{itemIDsByName: nil, err: nil}
		st := NewItemNameStrategy(&stubRestaurantsRepo{}, menusRepo)

		got, err := st.FindRestaurants(ctx, "unknown")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("メニューが参照する店舗が見つからなければ黙ってスキップする", func(t *testing.T) {
		menusRepo := &stubMenusRepo{
			itemIDsByName: []string{"i1"},
			menus: []model.Menu{
				{RestaurantID: "r1"},
				{RestaurantID: "gone"},
			},
		}
		restaurantsRepo := &stubRestaurantsRepo{byID: map[string]*model.Restaurant{
			"r1": {ID: "r1"},
		}}
		st := NewItemNameStrategy(restaurantsRepo, menusRepo)

		got, err := st.FindRestaurants(ctx, "idli")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "r1", got[0].ID)
	})
}

func TestItemAttributeStrategy(t *testing.T) {
	ctx := context.Background()

	t.Run("品の特徴からメニューをたどって提供元の店舗を返す", func(t *testing.T) {
		menusRepo := &stubMenusRepo{
			itemIDsByAttr: []string{"i9"},
			menus:         []model.Menu{{RestaurantID: "r9"}},
		}
		restaurantsRepo := &stubRestaurantsRepo{byID: map[string]*model.Restaurant{
			"r9": {ID: "r9"},
		}}
		st := NewItemAttributeStrategy(restaurantsRepo, menusRepo)

		got, err := st.FindRestaurants(ctx, "spicy")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "r9", got[0].ID)
	})
}
