package worktime

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock punch expressed as seconds since midnight.
type TimeOfDay int32

const secondsPerDay = 24 * 60 * 60

var ErrInvalidTimeOfDay = errors.New("invalid time of day, expected HH:MM or HH:MM:SS")

func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(hour*3600 + minute*60 + second), nil
}

// ParseTimeOfDay accepts HH:MM, HH:MM:SS and HH:MM:SS.ffffff (the fraction is
// truncated, which is what Postgres hands back for time columns).
func ParseTimeOfDay(v string) (TimeOfDay, error) {
	v = strings.TrimSpace(v)
	if i := strings.IndexByte(v, '.'); i >= 0 {
		v = v[:i]
	}

	parts := strings.Split(v, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, ErrInvalidTimeOfDay
	}

	nums := make([]int, 3)
	for i, p := range parts {
		if len(p) != 2 {
			return 0, ErrInvalidTimeOfDay
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, ErrInvalidTimeOfDay
		}
		nums[i] = n
	}

	return NewTimeOfDay(nums[0], nums[1], nums[2])
}

func FromTime(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*3600 + t.Minute()*60 + t.Second())
}

func (t TimeOfDay) Hour() int   { return int(t) / 3600 }
func (t TimeOfDay) Minute() int { return int(t) % 3600 / 60 }
func (t TimeOfDay) Second() int { return int(t) % 60 }

func (t TimeOfDay) Before(u TimeOfDay) bool { return t < u }

// Sub returns t-u. The result is negative when t is earlier than u.
func (t TimeOfDay) Sub(u TimeOfDay) time.Duration {
	return time.Duration(int64(t)-int64(u)) * time.Second
}

// String formats as HH:MM, or HH:MM:SS when seconds are set.
func (t TimeOfDay) String() string {
	if t.Second() != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
	}
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) Value() (driver.Value, error) {
	if t < 0 || t >= secondsPerDay {
		return nil, ErrInvalidTimeOfDay
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second()), nil
}

func (t *TimeOfDay) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = 0
		return nil
	case string:
		parsed, err := ParseTimeOfDay(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		return t.Scan(string(v))
	case time.Time:
		*t = FromTime(v)
		return nil
	default:
		return fmt.Errorf("worktime: cannot scan %T into TimeOfDay", src)
	}
}

func (TimeOfDay) GormDataType() string {
	return "time"
}
