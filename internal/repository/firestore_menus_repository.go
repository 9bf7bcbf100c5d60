package repository

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"MeshiQ-App/internal/domain/model"
	"MeshiQ-App/internal/domain/repository"
)

// FirestoreMenusRepository Firestoreのmenusコレクションを使用したメニューリポジトリ。
// 店舗ごとに1ドキュメントで、itemsフィールドに品の配列を持つ。
type FirestoreMenusRepository struct {
	client *firestore.Client
}

// NewFirestoreMenusRepository 新しいFirestoreMenusRepositoryインスタンスを作成
func NewFirestoreMenusRepository(client *firestore.Client) repository.MenusRepository {
	return &FirestoreMenusRepository{
		client: client,
	}
}

// listMenus menusコレクションを全件読み出す。
// TODO: 品名・特徴の転置インデックス用コレクションを用意して全件スキャンをなくす
func (r *FirestoreMenusRepository) listMenus(ctx context.Context) ([]model.Menu, error) {
	iter := r.client.Collection("menus").Documents(ctx)
	defer iter.Stop()

	menus := make([]model.Menu, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("メニューデータの取得失敗: %w", asUnavailable(err))
		}

		var menu model.Menu
		if err := doc.DataTo(&menu); err != nil {
			return nil, fmt.Errorf("メニューデータの変換失敗: %w", asUnavailable(err))
		}
		menus = append(menus, menu)
	}
	return menus, nil
}

func (r *FirestoreMenusRepository) FindItemIDsByName(ctx context.Context, name string) ([]string, error) {
	menus, err := r.listMenus(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(name)
	itemIDs := make([]string, 0)
	for _, menu := range menus {
		for _, item := range menu.Items {
			if strings.Contains(strings.ToLower(item.Name), needle) {
				itemIDs = append(itemIDs, item.ID)
			}
		}
	}
	return itemIDs, nil
}

func (r *FirestoreMenusRepository) FindItemIDsByAttribute(ctx context.Context, attribute string) ([]string, error) {
	menus, err := r.listMenus(ctx)
	if err != nil {
		return nil, err
	}

	itemIDs := make([]string, 0)
	for _, menu := range menus {
		for _, item := range menu.Items {
			for _, a := range item.Attributes {
				if a == attribute {
					itemIDs = append(itemIDs, item.ID)
					break
				}
			}
		}
	}
	return itemIDs, nil
}

func (r *FirestoreMenusRepository) FindMenusByItemIDs(ctx context.Context, itemIDs []string) ([]model.Menu, error) {
	if len(itemIDs) == 0 {
		return []model.Menu{}, nil
	}

	menus, err := r.listMenus(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]model.Menu, 0)
	for _, menu := range menus {
		if menu.ContainsItem(itemIDs) {
			matched = append(matched, menu)
		}
	}
	return matched, nil
}
