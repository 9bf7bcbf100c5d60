package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"MeshiQ-App/internal/domain/repository"
	"MeshiQ-App/internal/domain/service"
	"MeshiQ-App/internal/domain/strategy"
	"MeshiQ-App/internal/handler"
	"MeshiQ-App/internal/infrastructure/cache"
	"MeshiQ-App/internal/infrastructure/database"
	firestoreinfra "MeshiQ-App/internal/infrastructure/firestore"
	repoimpl "MeshiQ-App/internal/repository"
	"MeshiQ-App/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	ctx := context.Background()

	// 店舗データのソースオブトゥルース（postgres / supabase を環境変数で切り替え）
	restaurantsRepo, dbHealthCheck, err := newRestaurantsRepository()
	if err != nil {
		log.Fatalf("店舗リポジトリ初期化失敗: %v", err)
	}

	// メニューデータ（Firestore）
	projectID := os.Getenv("FIRESTORE_PROJECT_ID")
	if projectID == "" {
		projectID = "meshiq-app"
	}
	firestoreClient, err := firestoreinfra.NewFirestoreClient(ctx, projectID)
	if err != nil {
		log.Fatalf("Firestoreクライアント初期化失敗: %v", err)
	}
	defer firestoreClient.Close()
	menusRepo := repoimpl.NewFirestoreMenusRepository(firestoreClient.GetClient())

	// 空間バケットキャッシュ（Redis、接続できなくても起動は継続）
	redisClient := cache.NewRedisClient()
	defer redisClient.Close()
	cacheStore := repoimpl.NewRedisRestaurantCache(redisClient)

	// 検索戦略（この並び順がマージの優先順になる）
	strategies := []strategy.SearchStrategy{
		strategy.NewNameStrategy(restaurantsRepo),
		strategy.NewAttributeStrategy(restaurantsRepo),
		strategy.NewItemNameStrategy(restaurantsRepo, menusRepo),
		strategy.NewItemAttributeStrategy(restaurantsRepo, menusRepo),
	}

	peakHours := service.NewPeakHoursService()
	nearbyService := service.NewNearbyRestaurantsService(restaurantsRepo, cacheStore)
	aggregator := service.NewRestaurantSearchAggregator(strategies)

	searchUseCase := usecase.NewRestaurantSearchUseCase(peakHours, nearbyService, aggregator)
	adminUseCase := usecase.NewRestaurantAdminUseCase(restaurantsRepo)
	restaurantsHandler := handler.NewRestaurantsHandler(searchUseCase, adminUseCase)

	router := gin.Default()
	router.GET("/health", func(c *gin.Context) {
		if err := dbHealthCheck(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "MeshiQ-App"})
	})

	v1 := router.Group("/v1")
	{
		v1.GET("/restaurants", restaurantsHandler.GetRestaurants)
		v1.POST("/restaurants", restaurantsHandler.PostRestaurant)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 MeshiQ-App server starting on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("サーバーの起動に失敗: %v", err)
	}
}

// newRestaurantsRepository RESTAURANTS_BACKEND環境変数に応じて店舗リポジトリを構築する
func newRestaurantsRepository() (repository.RestaurantsRepository, func() error, error) {
	if os.Getenv("RESTAURANTS_BACKEND") == "supabase" {
		supabaseClient, err := database.NewSupabaseClient()
		if err != nil {
			return nil, nil, err
		}
		log.Printf("✅ Supabaseバックエンドを使用")
		return repoimpl.NewSupabaseRestaurantsRepository(supabaseClient), supabaseClient.HealthCheck, nil
	}

	postgresClient, err := database.NewPostgreSQLClient()
	if err != nil {
		return nil, nil, err
	}
	log.Printf("✅ PostgreSQLバックエンドを使用")
	return repoimpl.NewPostgresRestaurantsRepository(postgresClient), postgresClient.HealthCheck, nil
}
