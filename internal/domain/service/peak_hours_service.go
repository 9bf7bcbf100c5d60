package service

import (
	"time"

	"MeshiQ-App/internal/domain/helper"
	"MeshiQ-App/internal/domain/model"
)

// peakInterval ピーク時間帯（0時からの経過秒、両端を含む閉区間）
type peakInterval struct {
	start int
	end   int
}

// 朝8時〜10時、昼13時〜14時、夜19時〜21時の3区間。互いに重ならない。
var peakIntervals = []peakInterval{
	{start: 8 * 3600, end: 10 * 3600},
	{start: 13 * 3600, end: 14 * 3600},
	{start: 19 * 3600, end: 21 * 3600},
}

// PeakHoursService ピーク時間帯の判定と配達圏半径の選択を行う。
// 壁時計の時刻のみに依存する純粋なサービスで、状態を持たない。
type PeakHoursService struct{}

func NewPeakHoursService() *PeakHoursService {
	return &PeakHoursService{}
}

// IsPeakHour 指定時刻がピーク時間帯かどうかを判定する（境界時刻はピーク扱い）
func (s *PeakHoursService) IsPeakHour(now time.Time) bool {
	clock := helper.ClockSeconds(now)
	for _, interval := range peakIntervals {
		if clock >= interval.start && clock <= interval.end {
			return true
		}
	}
	return false
}

// ServingRadiusInKms 指定時刻に適用する配達圏半径を返す
func (s *PeakHoursService) ServingRadiusInKms(now time.Time) float64 {
	if s.IsPeakHour(now) {
		return model.PeakHoursServingRadiusInKms
	}
	return model.NormalHoursServingRadiusInKms
}
