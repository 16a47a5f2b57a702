package worktime

import (
	"time"

	"github.com/shopspring/decimal"
)

// HoursPlaces is the number of decimal places kept for hour values.
// Rounding is half-up.
const HoursPlaces = 2

var minutesPerHour = decimal.NewFromInt(60)

type WeeklyTotals struct {
	TotalMinutes  int64
	TotalHours    decimal.Decimal
	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
}

func MinutesToHours(minutes int64) decimal.Decimal {
	return decimal.NewFromInt(minutes).DivRound(minutesPerHour, HoursPlaces)
}

// SplitHours caps total at regularCap. regular+overtime always equals total.
func SplitHours(total, regularCap decimal.Decimal) (regular, overtime decimal.Decimal) {
	regular = decimal.Min(total, regularCap)
	overtime = decimal.Max(decimal.Zero, total.Sub(regularCap))
	return regular, overtime
}

// ComputeWeeklyTotals sums the days of a week and splits the result against
// the employee's weekly cap. Every derived value comes from the one minute
// total.
func ComputeWeeklyTotals(entries []Punches, regularCap decimal.Decimal) WeeklyTotals {
	var minutes int64
	for _, e := range entries {
		minutes += DailyTotalMinutes(e)
	}

	total := MinutesToHours(minutes)
	regular, overtime := SplitHours(total, regularCap)

	return WeeklyTotals{
		TotalMinutes:  minutes,
		TotalHours:    total,
		RegularHours:  regular,
		OvertimeHours: overtime,
	}
}

func IsWeekStart(d time.Time) bool {
	return d.Weekday() == time.Monday
}

// WeekStartOf returns the Monday on or before d, at midnight in d's location.
func WeekStartOf(d time.Time) time.Time {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	return day.AddDate(0, 0, -WeekdayOf(day).Rank())
}

func WeekEnd(weekStart time.Time) time.Time {
	return weekStart.AddDate(0, 0, 6)
}
