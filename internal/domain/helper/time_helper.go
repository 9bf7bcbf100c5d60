package helper

import (
	"fmt"
	"time"
)

// SecondsOfDay "HH:MM"または"HH:MM:SS"形式の時刻文字列を0時からの経過秒に変換する
func SecondsOfDay(clock string) (int, error) {
	t, err := time.Parse("15:04:05", clock)
	if err != nil {
		t, err = time.Parse("15:04", clock)
		if err != nil {
			return 0, fmt.Errorf("時刻文字列のパース失敗 %q: %w", clock, err)
		}
	}
	return t.Hour()*3600 + t.Minute()*60 + t.Second(), nil
}

// ClockSeconds time.Timeの時刻部分を0時からの経過秒に変換する
func ClockSeconds(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}
