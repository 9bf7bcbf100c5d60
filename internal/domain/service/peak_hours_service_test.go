package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"MeshiQ-App/internal/domain/model"
)

func clock(hour, minute, second int) time.Time {
	return time.Date(2024, 1, 15, hour, minute, second, 0, time.UTC)
}

func TestPeakHoursService_IsPeakHour(t *testing.T) {
	s := NewPeakHoursService()

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"朝ピーク開始境界 08:00:00", clock(8, 0, 0), true},
		{"朝ピーク内 09:59:59", clock(9, 59, 59), true},
		{"朝ピーク終了境界 10:00:00", clock(10, 0, 0), true},
		{"朝ピーク直後 10:00:01", clock(10, 0, 1), false},
		{"朝ピーク直前 07:59:59", clock(7, 59, 59), false},
		{"昼ピーク内 13:30:00", clock(13, 30, 0), true},
		{"昼ピーク終了境界 14:00:00", clock(14, 0, 0), true},
		{"昼ピーク直後 14:00:01", clock(14, 0, 1), false},
		{"夜ピーク開始境界 19:00:00", clock(19, 0, 0), true},
		{"夜ピーク終了境界 21:00:00", clock(21, 0, 0), true},
		{"深夜 23:00:00", clock(23, 0, 0), false},
		{"昼下がり 15:00:00", clock(15, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.IsPeakHour(tt.now))
		})
	}
}

func TestPeakHoursService_ServingRadiusInKms(t *testing.T) {
	s := NewPeakHoursService()

	t.Run("ピーク時間帯は3.0km", func(t *testing.T) {
		assert.Equal(t, model.PeakHoursServingRadiusInKms, s.ServingRadiusInKms(clock(9, 0, 0)))
	})

	t.Run("通常時間帯は5.0km", func(t *testing.T) {
		assert.Equal(t, model.NormalHoursServingRadiusInKms, s.ServingRadiusInKms(clock(15, 0, 0)))
	})
}
