package worktime

import "time"

// DailyTotalMinutes is the worked time of one day in whole minutes, rounded
// down. Only the morning and evening pairs count.
func DailyTotalMinutes(p Punches) int64 {
	total := p.Morning() + p.Evening()
	return int64(total / time.Minute)
}
