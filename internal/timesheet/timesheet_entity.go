package timesheet

import (
	"time"

	"go-timesheet/internal/worktime"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Status string

const (
	StatusDraft  Status = "DRAFT"
	StatusLocked Status = "LOCKED"
)

const (
	TimesheetWeekUniqueConstraint = "uq_timesheet_employee_week"
	EntryDayUniqueConstraint      = "uq_daily_entry_timesheet_day"
)

type WeeklyTimesheet struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_timesheet_employee_week,priority:1"`
	WeekStart  time.Time `gorm:"type:date;not null;uniqueIndex:uq_timesheet_employee_week,priority:2;index"`
	Status     Status    `gorm:"type:varchar(10);not null;default:DRAFT"`

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	Entries  []DailyEntry `gorm:"foreignKey:TimesheetID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (WeeklyTimesheet) TableName() string {
	return "weekly_timesheets"
}

func (t *WeeklyTimesheet) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Status == "" {
		t.Status = StatusDraft
	}
	return nil
}

func (t WeeklyTimesheet) WeekEnd() time.Time {
	return worktime.WeekEnd(t.WeekStart)
}

func (t WeeklyTimesheet) Editable() bool {
	return t.Status == StatusDraft
}

// EmployeeRef is the slice of the employees table a timesheet needs.
type EmployeeRef struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name               string          `gorm:"type:varchar(150)"`
	IsActive           bool            `gorm:"not null;default:true"`
	HourlyRate         decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	WeeklyRegularHours decimal.Decimal `gorm:"type:decimal(6,2);not null;default:40"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}

type DailyEntry struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey"`
	TimesheetID uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:uq_daily_entry_timesheet_day,priority:1"`
	Day         worktime.Weekday `gorm:"type:varchar(3);not null;uniqueIndex:uq_daily_entry_timesheet_day,priority:2"`

	ArrivalMorning   *worktime.TimeOfDay `gorm:"type:time"`
	LunchDeparture   *worktime.TimeOfDay `gorm:"type:time"`
	LunchReturn      *worktime.TimeOfDay `gorm:"type:time"`
	ArrivalEvening   *worktime.TimeOfDay `gorm:"type:time"`
	DepartureEvening *worktime.TimeOfDay `gorm:"type:time"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (DailyEntry) TableName() string {
	return "daily_entries"
}

func (e *DailyEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (e DailyEntry) Punches() worktime.Punches {
	return worktime.Punches{
		ArrivalMorning:   e.ArrivalMorning,
		LunchDeparture:   e.LunchDeparture,
		LunchReturn:      e.LunchReturn,
		ArrivalEvening:   e.ArrivalEvening,
		DepartureEvening: e.DepartureEvening,
	}
}

// ApplyPunches replaces all five punches. The entry is left untouched when
// the new punches are invalid.
func (e *DailyEntry) ApplyPunches(p worktime.Punches) error {
	if err := worktime.ValidatePunches(p); err != nil {
		return err
	}
	e.ArrivalMorning = p.ArrivalMorning
	e.LunchDeparture = p.LunchDeparture
	e.LunchReturn = p.LunchReturn
	e.ArrivalEvening = p.ArrivalEvening
	e.DepartureEvening = p.DepartureEvening
	return nil
}

func (e DailyEntry) TotalMinutes() int64 {
	return worktime.DailyTotalMinutes(e.Punches())
}
