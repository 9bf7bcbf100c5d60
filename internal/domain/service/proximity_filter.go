package service

import (
	"time"

	"MeshiQ-App/internal/domain/helper"
	"MeshiQ-App/internal/domain/model"
)

// ProximityFilter 店舗が「営業中かつ配達圏内」かを判定する純粋なフィルタ。
// 副作用もI/Oも持たない。
type ProximityFilter struct{}

func NewProximityFilter() *ProximityFilter {
	return &ProximityFilter{}
}

// IsOpenNow 指定時刻に営業中かどうかを判定する。
// 開店・閉店時刻ちょうどは営業中に含めない（opensAt < now < closesAt）。
// 時刻文字列が壊れている店舗は営業時間外として扱う。
func (f *ProximityFilter) IsOpenNow(restaurant *model.Restaurant, now time.Time) bool {
	opens, err := helper.SecondsOfDay(restaurant.OpensAt)
	if err != nil {
		return false
	}
	closes, err := helper.SecondsOfDay(restaurant.ClosesAt)
	if err != nil {
		return false
	}

	clock := helper.ClockSeconds(now)
	return opens < clock && clock < closes
}

// IsWithinServingRadius 基準点から配達圏半径の内側にあるかどうかを判定する。
// 半径ちょうどの距離は圏外に含めない（distance < radius）。
func (f *ProximityFilter) IsWithinServingRadius(restaurant *model.Restaurant, origin model.LatLng, radiusInKms float64) bool {
	return helper.DistanceInKm(origin, restaurant.ToLatLng()) < radiusInKms
}

// IsEligible 営業中かつ配達圏内の店舗のみtrueを返す
func (f *ProximityFilter) IsEligible(restaurant *model.Restaurant, now time.Time, origin model.LatLng, radiusInKms float64) bool {
	return f.IsOpenNow(restaurant, now) && f.IsWithinServingRadius(restaurant, origin, radiusInKms)
}
