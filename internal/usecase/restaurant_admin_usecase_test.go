package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MeshiQ-App/internal/domain/model"
)

// fakeRestaurantsWriter 登録系だけを記録するRestaurantsRepositoryのフェイク
type fakeRestaurantsWriter struct {
	created     []model.Restaurant
	createErr   error
	bulkCreated []model.Restaurant
}

func (f *fakeRestaurantsWriter) FindAll(ctx context.Context) ([]model.Restaurant, error) {
	return nil, nil
}

func (f *fakeRestaurantsWriter) FindByNameExact(ctx context.Context, name string) ([]model.Restaurant, error) {
	return nil, nil
}

func (f *fakeRestaurantsWriter) FindByNamePartial(ctx context.Context, name string) ([]model.Restaurant, error) {
	return nil, nil
}

func (f *fakeRestaurantsWriter) FindByAttribute(ctx context.Context, attribute string) ([]model.Restaurant, error) {
	return nil, nil
}

func (f *fakeRestaurantsWriter) FindByID(ctx context.Context, id string) (*model.Restaurant, error) {
	return nil, nil
}

func (f *fakeRestaurantsWriter) Create(ctx context.Context, restaurant *model.Restaurant) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, *restaurant)
	return nil
}

func (f *fakeRestaurantsWriter) BulkCreate(ctx context.Context, restaurants []model.Restaurant) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.bulkCreated = append(f.bulkCreated, restaurants...)
	return nil
}

func validRegisterRequest() model.RegisterRestaurantRequest {
	return model.RegisterRestaurantRequest{
		Name:       "Bowl Bhukkad Cafe",
		City:       "Gurugram",
		Attributes: []string{"Tamil", "South Indian"},
		Latitude:   28.4900,
		Longitude:  77.5400,
		OpensAt:    "11:00",
		ClosesAt:   "22:00",
	}
}

func TestRestaurantAdminUseCase_RegisterRestaurant(t *testing.T) {
	ctx := context.Background()

	t.Run("正常な登録ではUUIDが採番される", func(t *testing.T) {
		repo := &fakeRestaurantsWriter{}
		uc := NewRestaurantAdminUseCase(repo)
		req := validRegisterRequest()

		restaurant, err := uc.RegisterRestaurant(ctx, &req)
		require.NoError(t, err)
		require.Len(t, repo.created, 1)

		_, parseErr := uuid.Parse(restaurant.ID)
		assert.NoError(t, parseErr)
		assert.Equal(t, req.Name, restaurant.Name)
		assert.Equal(t, req.Attributes, restaurant.Attributes)
		assert.Equal(t, restaurant.ID, repo.created[0].ID)
	})

	t.Run("店舗名が空なら登録しない", func(t *testing.T) {
		repo := &fakeRestaurantsWriter{}
		uc := NewRestaurantAdminUseCase(repo)
		req := validRegisterRequest()
		req.Name = ""

		_, err := uc.RegisterRestaurant(ctx, &req)
		require.Error(t, err)
		assert.Empty(t, repo.created)
	})

	t.Run("緯度経度が範囲外なら登録しない", func(t *testing.T) {
		repo := &fakeRestaurantsWriter{}
		uc := NewRestaurantAdminUseCase(repo)
		req := validRegisterRequest()
		req.Latitude = 91.0

		_, err := uc.RegisterRestaurant(ctx, &req)
		require.Error(t, err)
		assert.Empty(t, repo.created)
	})

	t.Run("営業時間が時刻として読めなければ登録しない", func(t *testing.T) {
		repo := &fakeRestaurantsWriter{}
		uc := NewRestaurantAdminUseCase(repo)
		req := validRegisterRequest()
		req.OpensAt = "eleven"

		_, err := uc.RegisterRestaurant(ctx, &req)
		require.Error(t, err)
		assert.Empty(t, repo.created)
	})

	t.Run("開店時刻が閉店時刻より後なら登録しない", func(t *testing.T) {
		repo := &fakeRestaurantsWriter{}
		uc := NewRestaurantAdminUseCase(repo)
		req := validRegisterRequest()
		req.OpensAt = "23:00"
		req.ClosesAt = "02:00"

		_, err := uc.RegisterRestaurant(ctx, &req)
		require.Error(t, err)
		assert.Empty(t, repo.created)
	})

	t.Run("リポジトリの失敗はエラーとして返す", func(t *testing.T) {
		repo := &fakeRestaurantsWriter{createErr: errors.New("insert failed")}
		uc := NewRestaurantAdminUseCase(repo)
		req := validRegisterRequest()

		_, err := uc.RegisterRestaurant(ctx, &req)
		require.Error(t, err)
	})
}

func TestRestaurantAdminUseCase_RegisterRestaurants(t *testing.T) {
	ctx := context.Background()

	t.Run("全件検証してから一括登録し件数を返す", func(t *testing.T) {
		repo := &fakeRestaurantsWriter{}
		uc := NewRestaurantAdminUseCase(repo)
		reqs := []model.RegisterRestaurantRequest{validRegisterRequest(), validRegisterRequest()}

		count, err := uc.RegisterRestaurants(ctx, reqs)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.Len(t, repo.bulkCreated, 2)
		// 採番されたIDは全件で一意
		assert.NotEqual(t, repo.bulkCreated[0].ID, repo.bulkCreated[1].ID)
	})

	t.Run("1件でも不正なリクエストがあれば何も登録しない", func(t *testing.T) {
		repo := &fakeRestaurantsWriter{}
		uc := NewRestaurantAdminUseCase(repo)
		bad := validRegisterRequest()
		bad.Name = ""
		reqs := []model.RegisterRestaurantRequest{validRegisterRequest(), bad}

		_, err := uc.RegisterRestaurants(ctx, reqs)
		require.Error(t, err)
		assert.Empty(t, repo.bulkCreated)
	})
}
