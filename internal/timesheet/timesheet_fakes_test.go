package timesheet_test

import (
	"context"
	"database/sql"
	"sync"

	"go-timesheet/internal/messaging/kafka"
	"go-timesheet/internal/timesheet"
	"go-timesheet/internal/worktime"

	"github.com/google/uuid"
)

type fakeRepo struct {
	CreateFn        func(ctx context.Context, ts *timesheet.WeeklyTimesheet) error
	FindHeaderFn    func(ctx context.Context, id string) (*timesheet.WeeklyTimesheet, error)
	FindByIDFn      func(ctx context.Context, id string) (*timesheet.WeeklyTimesheet, error)
	FindAllFn       func(ctx context.Context, filter timesheet.ListTimesheetsFilter) ([]timesheet.WeeklyTimesheet, error)
	FindEmployeeFn  func(ctx context.Context, id string) (*timesheet.EmployeeRef, error)
	EnsureEntriesFn func(ctx context.Context, timesheetID uuid.UUID, days []worktime.Weekday) (int64, error)
	FindEntryFn     func(ctx context.Context, timesheetID uuid.UUID, day worktime.Weekday) (*timesheet.DailyEntry, error)
	UpdateEntryFn   func(ctx context.Context, entry *timesheet.DailyEntry) error
	UpdateStatusFn  func(ctx context.Context, id uuid.UUID, from, to timesheet.Status) (bool, error)
	DeleteFn        func(ctx context.Context, id string) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) timesheet.Repository { return f }

func (f *fakeRepo) Create(ctx context.Context, ts *timesheet.WeeklyTimesheet) error {
	return f.CreateFn(ctx, ts)
}
func (f *fakeRepo) FindHeader(ctx context.Context, id string) (*timesheet.WeeklyTimesheet, error) {
	return f.FindHeaderFn(ctx, id)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*timesheet.WeeklyTimesheet, error) {
	return f.FindByIDFn(ctx, id)
}
func (f *fakeRepo) FindAll(ctx context.Context, filter timesheet.ListTimesheetsFilter) ([]timesheet.WeeklyTimesheet, error) {
	return f.FindAllFn(ctx, filter)
}
func (f *fakeRepo) FindEmployee(ctx context.Context, id string) (*timesheet.EmployeeRef, error) {
	return f.FindEmployeeFn(ctx, id)
}
func (f *fakeRepo) EnsureEntries(ctx context.Context, timesheetID uuid.UUID, days []worktime.Weekday) (int64, error) {
	return f.EnsureEntriesFn(ctx, timesheetID, days)
}
func (f *fakeRepo) FindEntry(ctx context.Context, timesheetID uuid.UUID, day worktime.Weekday) (*timesheet.DailyEntry, error) {
	return f.FindEntryFn(ctx, timesheetID, day)
}
func (f *fakeRepo) UpdateEntry(ctx context.Context, entry *timesheet.DailyEntry) error {
	return f.UpdateEntryFn(ctx, entry)
}
func (f *fakeRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to timesheet.Status) (bool, error) {
	return f.UpdateStatusFn(ctx, id, from, to)
}
func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

type fakeOutbox struct {
	mu      sync.Mutex
	created []kafka.OutboxEvent
	err     error
}

func (f *fakeOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, event)
	return nil
}
func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error { return nil }
func (f *fakeOutbox) MarkFailed(ctx context.Context, event kafka.OutboxEvent, reason string) error {
	return nil
}

func strPtr(s string) *string { return &s }
