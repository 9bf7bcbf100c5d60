package model

import "time"

// 配達圏の半径。ピーク時間帯は需要が高まるため半径を狭める。
const (
	PeakHoursServingRadiusInKms   = 3.0
	NormalHoursServingRadiusInKms = 5.0
)

// GeoHashPrecision 空間バケットキーのgeohash精度。
// 精度7でおよそ153m×153mのセルになる。
const GeoHashPrecision = 7

// CacheEntryExpiry キャッシュエントリの有効期限
const CacheEntryExpiry = 3600 * time.Second
