package worktime_test

import (
	"testing"

	"go-timesheet/internal/worktime"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(t *testing.T, v string) *worktime.TimeOfDay {
	t.Helper()
	tod, err := worktime.ParseTimeOfDay(v)
	require.NoError(t, err)
	return &tod
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got.String())
}

// eightHourDay works 08:00-12:00 and 13:00-17:00 around a dinner break.
func eightHourDay(t *testing.T) worktime.Punches {
	t.Helper()
	return worktime.Punches{
		ArrivalMorning:   at(t, "08:00"),
		LunchDeparture:   at(t, "12:00"),
		LunchReturn:      at(t, "13:00"),
		ArrivalEvening:   at(t, "13:00"),
		DepartureEvening: at(t, "17:00"),
	}
}
