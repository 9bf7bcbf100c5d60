package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"MeshiQ-App/internal/domain/model"
	"MeshiQ-App/internal/domain/repository"
	"MeshiQ-App/internal/usecase"
)

// RestaurantsHandler 店舗検索・登録APIのHTTPハンドラー
type RestaurantsHandler struct {
	searchUseCase usecase.RestaurantSearchUseCase
	adminUseCase  usecase.RestaurantAdminUseCase
}

// NewRestaurantsHandler RestaurantsHandlerの新しいインスタンスを作成
func NewRestaurantsHandler(searchUseCase usecase.RestaurantSearchUseCase, adminUseCase usecase.RestaurantAdminUseCase) *RestaurantsHandler {
	return &RestaurantsHandler{
		searchUseCase: searchUseCase,
		adminUseCase:  adminUseCase,
	}
}

// GetRestaurants GET /v1/restaurants - 周辺店舗の検索
// searchForが空なら近傍検索、指定されていれば4戦略の並行検索を行う
func (h *RestaurantsHandler) GetRestaurants(c *gin.Context) {
	req, ok := h.parseGetRestaurantsRequest(c)
	if !ok {
		return
	}

	now := time.Now()

	var response *model.GetRestaurantsResponse
	var err error
	if strings.TrimSpace(req.SearchFor) == "" {
		response, err = h.searchUseCase.FindAllRestaurantsCloseBy(c.Request.Context(), req, now)
	} else {
		response, err = h.searchUseCase.FindRestaurantsBySearchQueryParallel(c.Request.Context(), req, now)
	}

	if err != nil {
		if errors.Is(err, repository.ErrDataSourceUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error":   "service_unavailable",
				"message": "Datastore is temporarily unreachable: " + err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to search restaurants: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// PostRestaurant POST /v1/restaurants - 店舗の新規登録
func (h *RestaurantsHandler) PostRestaurant(c *gin.Context) {
	var req model.RegisterRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	restaurant, err := h.adminUseCase.RegisterRestaurant(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, repository.ErrDataSourceUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error":   "service_unavailable",
				"message": "Datastore is temporarily unreachable: " + err.Error(),
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Failed to register restaurant: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, model.RegisterRestaurantResponse{Restaurant: restaurant})
}

// parseGetRestaurantsRequest クエリパラメータを解析・検証する。
// 緯度経度の範囲チェックまでがこの境界層の責務で、コアには検証済みの値だけを渡す。
func (h *RestaurantsHandler) parseGetRestaurantsRequest(c *gin.Context) (*model.GetRestaurantsRequest, bool) {
	latStr := c.Query("latitude")
	lngStr := c.Query("longitude")
	if latStr == "" || lngStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "latitude and longitude parameters are required",
		})
		return nil, false
	}

	latitude, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "Invalid latitude value",
		})
		return nil, false
	}

	longitude, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "Invalid longitude value",
		})
		return nil, false
	}

	req := &model.GetRestaurantsRequest{
		Latitude:  latitude,
		Longitude: longitude,
		SearchFor: c.Query("searchFor"),
	}
	if !req.IsValidGeoLocation() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "latitude must be in [-90, 90] and longitude in [-180, 180]",
		})
		return nil, false
	}

	return req, true
}
