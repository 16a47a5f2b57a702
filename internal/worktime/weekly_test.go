package worktime_test

import (
	"fmt"
	"testing"
	"time"

	"go-timesheet/internal/worktime"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDailyTotalMinutes(t *testing.T) {
	assert.Equal(t, int64(480), worktime.DailyTotalMinutes(eightHourDay(t)))
	assert.Zero(t, worktime.DailyTotalMinutes(worktime.Punches{}))

	t.Run("dinner break is not worked time", func(t *testing.T) {
		p := worktime.Punches{
			ArrivalMorning: at(t, "08:00"),
			LunchDeparture: at(t, "12:00"),
			LunchReturn:    at(t, "14:00"),
		}
		assert.Equal(t, int64(240), worktime.DailyTotalMinutes(p))
	})

	t.Run("partial minutes are floored", func(t *testing.T) {
		p := worktime.Punches{
			ArrivalEvening:   at(t, "13:00:00"),
			DepartureEvening: at(t, "13:10:59"),
		}
		assert.Equal(t, int64(10), worktime.DailyTotalMinutes(p))
	})

	t.Run("overnight evening counts as zero", func(t *testing.T) {
		p := worktime.Punches{
			ArrivalMorning:   at(t, "08:00"),
			LunchDeparture:   at(t, "12:00"),
			ArrivalEvening:   at(t, "22:00"),
			DepartureEvening: at(t, "02:00"),
		}
		assert.Equal(t, int64(240), worktime.DailyTotalMinutes(p))
	})
}

func TestMinutesToHours_RoundsHalfUp(t *testing.T) {
	tests := []struct {
		minutes int64
		want    string
	}{
		{minutes: 0, want: "0.00"},
		{minutes: 2400, want: "40.00"},
		{minutes: 1, want: "0.02"},  // 0.01666..
		{minutes: 10, want: "0.17"}, // 0.1666..
		{minutes: 45, want: "0.75"},
		{minutes: 2521, want: "42.02"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.minutes), func(t *testing.T) {
			assertDecimal(t, tt.want, worktime.MinutesToHours(tt.minutes))
		})
	}
}

func TestComputeWeeklyTotals(t *testing.T) {
	week := make([]worktime.Punches, 0, 6)
	for i := 0; i < 5; i++ {
		week = append(week, eightHourDay(t))
	}

	t.Run("exactly at cap", func(t *testing.T) {
		totals := worktime.ComputeWeeklyTotals(week, dec("40.00"))

		assert.Equal(t, int64(2400), totals.TotalMinutes)
		assertDecimal(t, "40.00", totals.TotalHours)
		assertDecimal(t, "40.00", totals.RegularHours)
		assertDecimal(t, "0.00", totals.OvertimeHours)
	})

	t.Run("saturday goes to overtime", func(t *testing.T) {
		saturday := worktime.Punches{ArrivalEvening: at(t, "10:00"), DepartureEvening: at(t, "12:00")}
		totals := worktime.ComputeWeeklyTotals(append(week, saturday), dec("40.00"))

		assert.Equal(t, int64(2520), totals.TotalMinutes)
		assertDecimal(t, "42.00", totals.TotalHours)
		assertDecimal(t, "40.00", totals.RegularHours)
		assertDecimal(t, "2.00", totals.OvertimeHours)
	})

	t.Run("empty week", func(t *testing.T) {
		totals := worktime.ComputeWeeklyTotals(nil, dec("40.00"))

		assert.Zero(t, totals.TotalMinutes)
		assertDecimal(t, "0", totals.TotalHours)
		assertDecimal(t, "0", totals.RegularHours)
		assertDecimal(t, "0", totals.OvertimeHours)
	})
}

func TestSplitHours_RegularPlusOvertimeIsTotal(t *testing.T) {
	caps := []string{"0", "0.01", "20", "37.5", "40.00", "41.99", "60"}

	for minutes := int64(0); minutes <= 4000; minutes += 7 {
		total := worktime.MinutesToHours(minutes)
		for _, c := range caps {
			regular, overtime := worktime.SplitHours(total, dec(c))

			assert.True(t, regular.Add(overtime).Equal(total), "minutes=%d cap=%s", minutes, c)
			assert.False(t, overtime.IsNegative())
			assert.True(t, regular.LessThanOrEqual(dec(c)))
		}
	}
}

func TestWeekHelpers(t *testing.T) {
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)
	sunday := monday.AddDate(0, 0, 6)

	assert.True(t, worktime.IsWeekStart(monday))
	assert.False(t, worktime.IsWeekStart(tuesday))
	assert.Equal(t, monday, worktime.WeekStartOf(tuesday))
	assert.Equal(t, monday, worktime.WeekStartOf(sunday))
	assert.Equal(t, sunday, worktime.WeekEnd(monday))
}

func TestWeekday(t *testing.T) {
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, worktime.Monday, worktime.WeekdayOf(monday))
	assert.Equal(t, worktime.Sunday, worktime.WeekdayOf(monday.AddDate(0, 0, 6)))
	assert.Equal(t, monday.AddDate(0, 0, 4), worktime.Friday.Date(monday))

	days := []worktime.Weekday{worktime.Sunday, worktime.Wednesday, worktime.Monday}
	worktime.SortWeekdays(days)
	assert.Equal(t, []worktime.Weekday{worktime.Monday, worktime.Wednesday, worktime.Sunday}, days)

	parsed, err := worktime.ParseWeekdays("fri, mon,TUE,mon")
	assert.NoError(t, err)
	assert.Equal(t, []worktime.Weekday{worktime.Monday, worktime.Tuesday, worktime.Friday}, parsed)

	_, err = worktime.ParseWeekdays("MON,XYZ")
	assert.Error(t, err)

	assert.False(t, worktime.Weekday("XYZ").Valid())
	assert.Equal(t, 7, worktime.Weekday("XYZ").Rank())
}

func TestComputePay(t *testing.T) {
	assertDecimal(t, "800.00", worktime.ComputePay(dec("40.00"), dec("20.00")))
	assertDecimal(t, "0.00", worktime.ComputePay(decimal.Zero, dec("20.00")))
	// 0.17h * 15.25 = 2.5925
	assertDecimal(t, "2.59", worktime.ComputePay(dec("0.17"), dec("15.25")))
	// 0.01h * 12.50 = 0.125 rounds up
	assertDecimal(t, "0.13", worktime.ComputePay(dec("0.01"), dec("12.50")))
}
