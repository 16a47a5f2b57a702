package worktime

import "time"

// Duration returns the time worked between two punches of the same day.
// A missing punch yields zero. An end earlier than the start also yields zero:
// shifts crossing midnight are not supported.
func Duration(start, end *TimeOfDay) time.Duration {
	if start == nil || end == nil {
		return 0
	}
	if end.Before(*start) {
		return 0
	}
	return end.Sub(*start)
}
