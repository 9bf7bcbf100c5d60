package firestore

import (
	"context"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// FirestoreClient メニューデータストア（Firestore）への接続を管理するクライアント。
// 実行環境に応じて認証方法を切り替える。
type FirestoreClient struct {
	client    *firestore.Client
	projectID string
}

// NewFirestoreClient Firestoreクライアントを初期化する。
// Cloud Run上ではデフォルト認証、ローカルでは鍵ファイルを使う。
func NewFirestoreClient(ctx context.Context, projectID string) (*FirestoreClient, error) {
	var client *firestore.Client
	var err error

	// Cloud Run環境の検出
	isCloudRun := os.Getenv("K_SERVICE") != ""

	if isCloudRun {
		log.Printf("☁️ Cloud Run環境: デフォルト認証でメニューデータストアに接続")
		client, err = firestore.NewClient(ctx, projectID)
		if err != nil {
			return nil, fmt.Errorf("メニューデータストアへの接続失敗（デフォルト認証）: %w", err)
		}
	} else {
		credentialsFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
		if credentialsFile == "" {
			credentialsFile = "meshiq-firestore-key.json"
		}

		if _, fileErr := os.Stat(credentialsFile); fileErr != nil {
			log.Printf("⚠️ 認証ファイル %s が見つからないためデフォルト認証にフォールバック", credentialsFile)
			client, err = firestore.NewClient(ctx, projectID)
		} else {
			log.Printf("📄 認証ファイルを使用: %s", credentialsFile)
			client, err = firestore.NewClient(ctx, projectID, option.WithCredentialsFile(credentialsFile))
		}
		if err != nil {
			return nil, fmt.Errorf("メニューデータストアへの接続失敗: %w", err)
		}
	}

	log.Printf("✅ メニューデータストアに接続しました (project: %s)", projectID)
	return &FirestoreClient{client: client, projectID: projectID}, nil
}

// GetClient 生のFirestoreクライアントを取得する
func (fc *FirestoreClient) GetClient() *firestore.Client {
	return fc.client
}

// HealthCheck menusコレクションに1件だけ触れて疎通を確認する
func (fc *FirestoreClient) HealthCheck(ctx context.Context) error {
	iter := fc.client.Collection("menus").Limit(1).Documents(ctx)
	defer iter.Stop()

	if _, err := iter.Next(); err != nil && err != iterator.Done {
		return fmt.Errorf("メニューデータストアの疎通確認失敗: %w", err)
	}
	return nil
}

// Close 接続を閉じる
func (fc *FirestoreClient) Close() error {
	return fc.client.Close()
}
