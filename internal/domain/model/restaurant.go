package model

// LatLng 緯度経度を表す基本的な型（近傍検索などで使用）
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Restaurant 店舗を表すドメインモデル（キャッシュペイロードとAPIレスポンスにもそのまま使用）
type Restaurant struct {
	ID         string   `json:"restaurantId" db:"id"`       // ユニークな店舗ID
	Name       string   `json:"name" db:"name"`             // 店舗名
	City       string   `json:"city" db:"city"`             // 都市名
	Attributes []string `json:"attributes" db:"attributes"` // 料理ジャンル（複数対応）
	Latitude   float64  `json:"latitude" db:"latitude"`     // 緯度
	Longitude  float64  `json:"longitude" db:"longitude"`   // 経度
	OpensAt    string   `json:"opensAt" db:"opens_at"`      // 開店時刻（"HH:MM"形式、日付なし）
	ClosesAt   string   `json:"closesAt" db:"closes_at"`    // 閉店時刻（"HH:MM"形式、同日内でOpensAt以降）
}

// ToLatLng 店舗の位置情報をLatLng型に変換
func (r *Restaurant) ToLatLng() LatLng {
	return LatLng{
		Lat: r.Latitude,
		Lng: r.Longitude,
	}
}

// HasAttribute 指定されたジャンルを持つかチェック
func (r *Restaurant) HasAttribute(attribute string) bool {
	for _, a := range r.Attributes {
		if a == attribute {
			return true
		}
	}
	return false
}
