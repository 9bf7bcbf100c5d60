package helper

import (
	"github.com/mmcloughlin/geohash"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"MeshiQ-App/internal/domain/model"
)

// DistanceInKm 2点間の大圏距離（ハーバサイン）をキロメートルで返す
func DistanceInKm(from, to model.LatLng) float64 {
	p1 := orb.Point{from.Lng, from.Lat}
	p2 := orb.Point{to.Lng, to.Lat}

	return geo.DistanceHaversine(p1, p2) / 1000.0
}

// BucketKey 緯度経度から空間バケットキーを導出する。
// 同じバケットに落ちる2点は必ず同じキーになる（純粋関数）。
func BucketKey(location model.LatLng) string {
	return geohash.EncodeWithPrecision(location.Lat, location.Lng, model.GeoHashPrecision)
}
