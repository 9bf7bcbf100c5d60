package repository

import (
	"context"

	"MeshiQ-App/internal/domain/model"
)

type MenusRepository interface {
	// FindItemIDsByName 品名が完全一致または部分一致するitemIdの一覧を取得する
	FindItemIDsByName(ctx context.Context, name string) ([]string, error)
	// FindItemIDsByAttribute 指定された特徴（spicyなど）を持つitemIdの一覧を取得する
	FindItemIDsByAttribute(ctx context.Context, attribute string) ([]string, error)
	// FindMenusByItemIDs 指定されたitemIdのいずれかを含むメニューの一覧を取得する
	FindMenusByItemIDs(ctx context.Context, itemIDs []string) ([]model.Menu, error)
}
