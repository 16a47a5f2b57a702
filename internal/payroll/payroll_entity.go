package payroll

import (
	"time"

	"go-timesheet/internal/worktime"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models over the employee and timesheet tables. The payroll package
// never writes them.

type PayrollEmployee struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name               string
	IsActive           bool
	HourlyRate         decimal.Decimal `gorm:"type:decimal(10,2)"`
	WeeklyRegularHours decimal.Decimal `gorm:"type:decimal(6,2)"`

	Timesheets []PayrollTimesheet `gorm:"foreignKey:EmployeeID"`
}

func (PayrollEmployee) TableName() string {
	return "employees"
}

type PayrollTimesheet struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid"`
	WeekStart  time.Time `gorm:"type:date"`
	Status     string

	Entries []PayrollEntry `gorm:"foreignKey:TimesheetID"`
}

func (PayrollTimesheet) TableName() string {
	return "weekly_timesheets"
}

type PayrollEntry struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	TimesheetID uuid.UUID `gorm:"type:uuid"`
	Day         worktime.Weekday

	ArrivalMorning   *worktime.TimeOfDay
	LunchDeparture   *worktime.TimeOfDay
	LunchReturn      *worktime.TimeOfDay
	ArrivalEvening   *worktime.TimeOfDay
	DepartureEvening *worktime.TimeOfDay
}

func (PayrollEntry) TableName() string {
	return "daily_entries"
}

func (e PayrollEntry) Punches() worktime.Punches {
	return worktime.Punches{
		ArrivalMorning:   e.ArrivalMorning,
		LunchDeparture:   e.LunchDeparture,
		LunchReturn:      e.LunchReturn,
		ArrivalEvening:   e.ArrivalEvening,
		DepartureEvening: e.DepartureEvening,
	}
}
