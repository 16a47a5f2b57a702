package timesheet

import (
	"context"
	"database/sql"
	"time"

	"go-timesheet/internal/shared/txscope"
	"go-timesheet/internal/worktime"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=timesheet_repo.go -destination=mock/timesheet_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, ts *WeeklyTimesheet) error
	FindHeader(ctx context.Context, id string) (*WeeklyTimesheet, error)
	FindByID(ctx context.Context, id string) (*WeeklyTimesheet, error)
	FindAll(ctx context.Context, filter ListTimesheetsFilter) ([]WeeklyTimesheet, error)
	FindEmployee(ctx context.Context, id string) (*EmployeeRef, error)
	EnsureEntries(ctx context.Context, timesheetID uuid.UUID, days []worktime.Weekday) (int64, error)
	FindEntry(ctx context.Context, timesheetID uuid.UUID, day worktime.Weekday) (*DailyEntry, error)
	UpdateEntry(ctx context.Context, entry *DailyEntry) error
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status) (bool, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return txscope.Conn(ctx, r.db, r.tx)
}

func (r *repository) Create(ctx context.Context, ts *WeeklyTimesheet) error {
	return r.conn(ctx).Omit(clause.Associations).Create(ts).Error
}

// FindHeader loads the timesheet row without associations.
func (r *repository) FindHeader(ctx context.Context, id string) (*WeeklyTimesheet, error) {
	var ts WeeklyTimesheet
	if err := r.conn(ctx).First(&ts, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ts, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*WeeklyTimesheet, error) {
	var ts WeeklyTimesheet
	err := r.conn(ctx).
		Preload("Employee").
		Preload("Entries").
		First(&ts, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

func (r *repository) FindAll(ctx context.Context, filter ListTimesheetsFilter) ([]WeeklyTimesheet, error) {
	q := r.conn(ctx).Preload("Employee")
	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var list []WeeklyTimesheet
	err := q.Order("week_start DESC").Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *repository) FindEmployee(ctx context.Context, id string) (*EmployeeRef, error) {
	var empl EmployeeRef
	if err := r.conn(ctx).First(&empl, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &empl, nil
}

// EnsureEntries inserts the missing rows for days and returns how many were
// created. Rows that already exist, including ones inserted concurrently by
// another request, are left alone.
func (r *repository) EnsureEntries(ctx context.Context, timesheetID uuid.UUID, days []worktime.Weekday) (int64, error) {
	if len(days) == 0 {
		return 0, nil
	}

	entries := make([]DailyEntry, 0, len(days))
	for _, d := range days {
		entries = append(entries, DailyEntry{
			ID:          uuid.New(),
			TimesheetID: timesheetID,
			Day:         d,
		})
	}

	res := r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "timesheet_id"}, {Name: "day"}},
			DoNothing: true,
		}).
		Create(&entries)
	if res.Error != nil {
		if uniqueViolation(res.Error) != "" {
			return 0, nil
		}
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *repository) FindEntry(ctx context.Context, timesheetID uuid.UUID, day worktime.Weekday) (*DailyEntry, error) {
	var entry DailyEntry
	err := r.conn(ctx).
		Where("timesheet_id = ? AND day = ?", timesheetID, day).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateEntry writes all five punches, including the ones being cleared.
func (r *repository) UpdateEntry(ctx context.Context, entry *DailyEntry) error {
	return r.conn(ctx).
		Model(&DailyEntry{}).
		Where("id = ?", entry.ID).
		Updates(map[string]any{
			"arrival_morning":   entry.ArrivalMorning,
			"lunch_departure":   entry.LunchDeparture,
			"lunch_return":      entry.LunchReturn,
			"arrival_evening":   entry.ArrivalEvening,
			"departure_evening": entry.DepartureEvening,
			"updated_at":        time.Now().UTC(),
		}).Error
}

// UpdateStatus moves the timesheet from one status to another and reports
// whether the row was in the expected status. Calling it with from == to
// still takes the row lock, which serializes entry edits against locking.
func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status) (bool, error) {
	res := r.conn(ctx).
		Model(&WeeklyTimesheet{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{
			"status":     to,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// Delete removes the timesheet; its entries go with it through ON DELETE
// CASCADE.
func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&WeeklyTimesheet{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
