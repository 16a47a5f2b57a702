package worktime_test

import (
	"testing"
	"time"

	"go-timesheet/internal/worktime"

	"github.com/stretchr/testify/assert"
)

func TestComputeTimesheetTotals_EndToEnd(t *testing.T) {
	week := make([]worktime.Punches, 0, 6)
	for i := 0; i < 5; i++ {
		week = append(week, eightHourDay(t))
	}

	totals := worktime.ComputeTimesheetTotals(week, dec("20.00"), dec("40.00"))
	assert.Equal(t, int64(2400), totals.TotalMinutes)
	assertDecimal(t, "40.00", totals.TotalHours)
	assertDecimal(t, "800.00", totals.Pay)

	saturday := worktime.Punches{ArrivalMorning: at(t, "09:00"), LunchDeparture: at(t, "11:00"), LunchReturn: at(t, "11:30")}
	totals = worktime.ComputeTimesheetTotals(append(week, saturday), dec("20.00"), dec("40.00"))
	assert.Equal(t, int64(2520), totals.TotalMinutes)
	assertDecimal(t, "42.00", totals.TotalHours)
	assertDecimal(t, "40.00", totals.RegularHours)
	assertDecimal(t, "2.00", totals.OvertimeHours)
	assertDecimal(t, "800.00", totals.Pay)
}

func TestComputePayrollReport(t *testing.T) {
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	fullWeek := make([]worktime.Punches, 0, 5)
	for i := 0; i < 5; i++ {
		fullWeek = append(fullWeek, eightHourDay(t))
	}
	// 10 minutes a week: 0.1666h rounds to 0.17h per timesheet.
	tenMinutes := []worktime.Punches{{ArrivalEvening: at(t, "10:00"), DepartureEvening: at(t, "10:10")}}

	employees := []worktime.EmployeeTimesheets{
		{
			EmployeeID:         "e-1",
			Name:               "Alice",
			HourlyRate:         dec("20.00"),
			WeeklyRegularHours: dec("38.00"),
			Timesheets: []worktime.TimesheetInput{
				{WeekStart: monday, Entries: fullWeek},
				{WeekStart: monday.AddDate(0, 0, 7), Entries: fullWeek},
			},
		},
		{
			EmployeeID:         "e-2",
			Name:               "Bob",
			HourlyRate:         dec("30.00"),
			WeeklyRegularHours: dec("40.00"),
			Timesheets: []worktime.TimesheetInput{
				{WeekStart: monday, Entries: tenMinutes},
				{WeekStart: monday.AddDate(0, 0, 7), Entries: tenMinutes},
				{WeekStart: monday.AddDate(0, 0, 14), Entries: tenMinutes},
			},
		},
		{
			EmployeeID:         "e-3",
			Name:               "Carol",
			HourlyRate:         dec("25.00"),
			WeeklyRegularHours: dec("40.00"),
		},
	}

	report := worktime.ComputePayrollReport(employees)

	assert.Len(t, report.Rows, 3)

	alice := report.Rows[0]
	assert.Equal(t, "e-1", alice.EmployeeID)
	assert.Equal(t, 2, alice.TimesheetCount)
	assertDecimal(t, "80.00", alice.TotalHours)
	assertDecimal(t, "76.00", alice.RegularHours)
	assertDecimal(t, "4.00", alice.OvertimeHours)
	assertDecimal(t, "1520.00", alice.Pay)

	// Per-timesheet values are summed: 3 x 0.17, not round(30/60).
	bob := report.Rows[1]
	assertDecimal(t, "0.51", bob.TotalHours)
	assertDecimal(t, "0.51", bob.RegularHours)
	assertDecimal(t, "15.30", bob.Pay)

	carol := report.Rows[2]
	assert.Zero(t, carol.TimesheetCount)
	assertDecimal(t, "0", carol.TotalHours)
	assertDecimal(t, "0", carol.Pay)

	assertDecimal(t, "80.51", report.GrandTotal.TotalHours)
	assertDecimal(t, "76.51", report.GrandTotal.RegularHours)
	assertDecimal(t, "4.00", report.GrandTotal.OvertimeHours)
	assertDecimal(t, "1535.30", report.GrandTotal.Pay)
}

func TestComputePayrollReport_Empty(t *testing.T) {
	report := worktime.ComputePayrollReport(nil)

	assert.Empty(t, report.Rows)
	assertDecimal(t, "0", report.GrandTotal.Pay)
}
