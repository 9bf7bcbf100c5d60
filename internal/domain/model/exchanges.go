package model

// GetRestaurantsRequest 店舗検索APIのリクエストパラメータ
// 例: GET /v1/restaurants?latitude=28.4900591&longitude=77.536386&searchFor=tamil
type GetRestaurantsRequest struct {
	Latitude  float64 `form:"latitude"`
	Longitude float64 `form:"longitude"`
	SearchFor string  `form:"searchFor"` // 任意の検索文字列（空の場合は近傍検索のみ）
}

// IsValidGeoLocation 緯度経度が有効な範囲内かチェック
func (req *GetRestaurantsRequest) IsValidGeoLocation() bool {
	return req.Latitude >= -90.0 && req.Latitude <= 90.0 &&
		req.Longitude >= -180.0 && req.Longitude <= 180.0
}

// Origin リクエストの基準点をLatLng型に変換
func (req *GetRestaurantsRequest) Origin() LatLng {
	return LatLng{
		Lat: req.Latitude,
		Lng: req.Longitude,
	}
}

// GetRestaurantsResponse 店舗検索APIのレスポンス
type GetRestaurantsResponse struct {
	Restaurants []Restaurant `json:"restaurants"`
}

// RegisterRestaurantRequest 店舗登録APIのリクエストボディ
type RegisterRestaurantRequest struct {
	Name       string   `json:"name"`
	City       string   `json:"city"`
	Attributes []string `json:"attributes"`
	Latitude   float64  `json:"latitude"`
	Longitude  float64  `json:"longitude"`
	OpensAt    string   `json:"opensAt"`
	ClosesAt   string   `json:"closesAt"`
}

// RegisterRestaurantResponse 店舗登録APIのレスポンス
type RegisterRestaurantResponse struct {
	Restaurant *Restaurant `json:"restaurant"`
}
