package worktime

import (
	"time"

	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of decimal places kept for currency amounts.
const MoneyPlaces = 2

// ComputePay pays regular hours only; overtime is banked, not paid.
func ComputePay(regularHours, hourlyRate decimal.Decimal) decimal.Decimal {
	return regularHours.Mul(hourlyRate).Round(MoneyPlaces)
}

type TimesheetTotals struct {
	WeeklyTotals
	Pay decimal.Decimal
}

func ComputeTimesheetTotals(entries []Punches, hourlyRate, regularCap decimal.Decimal) TimesheetTotals {
	weekly := ComputeWeeklyTotals(entries, regularCap)
	return TimesheetTotals{
		WeeklyTotals: weekly,
		Pay:          ComputePay(weekly.RegularHours, hourlyRate),
	}
}

type TimesheetInput struct {
	WeekStart time.Time
	Entries   []Punches
}

type EmployeeTimesheets struct {
	EmployeeID         string
	Name               string
	HourlyRate         decimal.Decimal
	WeeklyRegularHours decimal.Decimal
	Timesheets         []TimesheetInput
}

type PayrollTotals struct {
	TotalHours    decimal.Decimal
	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
	Pay           decimal.Decimal
}

func (t PayrollTotals) add(o PayrollTotals) PayrollTotals {
	return PayrollTotals{
		TotalHours:    t.TotalHours.Add(o.TotalHours),
		RegularHours:  t.RegularHours.Add(o.RegularHours),
		OvertimeHours: t.OvertimeHours.Add(o.OvertimeHours),
		Pay:           t.Pay.Add(o.Pay),
	}
}

type PayrollRow struct {
	EmployeeID     string
	Name           string
	TimesheetCount int
	PayrollTotals
}

type PayrollReport struct {
	Rows       []PayrollRow
	GrandTotal PayrollTotals
}

// ComputePayrollReport sums the already rounded per-timesheet values of each
// employee, then sums the rows into the grand total. Rows keep input order.
func ComputePayrollReport(employees []EmployeeTimesheets) PayrollReport {
	report := PayrollReport{
		Rows:       make([]PayrollRow, 0, len(employees)),
		GrandTotal: zeroTotals(),
	}

	for _, emp := range employees {
		row := PayrollRow{
			EmployeeID:     emp.EmployeeID,
			Name:           emp.Name,
			TimesheetCount: len(emp.Timesheets),
			PayrollTotals:  zeroTotals(),
		}
		for _, ts := range emp.Timesheets {
			totals := ComputeTimesheetTotals(ts.Entries, emp.HourlyRate, emp.WeeklyRegularHours)
			row.PayrollTotals = row.PayrollTotals.add(PayrollTotals{
				TotalHours:    totals.TotalHours,
				RegularHours:  totals.RegularHours,
				OvertimeHours: totals.OvertimeHours,
				Pay:           totals.Pay,
			})
		}
		report.Rows = append(report.Rows, row)
		report.GrandTotal = report.GrandTotal.add(row.PayrollTotals)
	}

	return report
}

func zeroTotals() PayrollTotals {
	return PayrollTotals{
		TotalHours:    decimal.Zero,
		RegularHours:  decimal.Zero,
		OvertimeHours: decimal.Zero,
		Pay:           decimal.Zero,
	}
}
