package timesheet_test

import (
	"context"
	"sync"
	"testing"

	"go-timesheet/internal/messaging/kafka"
	"go-timesheet/internal/shared/testdb"
	"go-timesheet/internal/timesheet"
	timesheeterrors "go-timesheet/internal/timesheet/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type integration struct {
	db       *gorm.DB
	svc      timesheet.Service
	employee timesheet.EmployeeRef
}

func setupIntegration(t *testing.T) *integration {
	t.Helper()
	db := testdb.Open(t,
		&timesheet.EmployeeRef{},
		&timesheet.WeeklyTimesheet{},
		&timesheet.DailyEntry{},
		&kafka.OutboxRecord{},
	)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	empl := timesheet.EmployeeRef{
		ID:                 uuid.New(),
		Name:               "Alice",
		IsActive:           true,
		HourlyRate:         decimal.RequireFromString("20"),
		WeeklyRegularHours: decimal.RequireFromString("38"),
	}
	require.NoError(t, db.Create(&empl).Error)

	svc := timesheet.NewService(sqlDB, timesheet.NewRepository(db), kafka.NewOutboxRepository(db), nil)
	return &integration{db: db, svc: svc, employee: empl}
}

func (it *integration) create(t *testing.T) timesheet.TimesheetResponse {
	t.Helper()
	resp, err := it.svc.Create(context.Background(), timesheet.CreateTimesheetRequest{
		EmployeeID: it.employee.ID.String(),
		WeekStart:  "2026-03-02",
	})
	require.NoError(t, err)
	return resp
}

func (it *integration) countEntries(t *testing.T, timesheetID string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, it.db.Model(&timesheet.DailyEntry{}).Where("timesheet_id = ?", timesheetID).Count(&n).Error)
	return n
}

func TestIntegration_CreateIsUniquePerEmployeeWeek(t *testing.T) {
	it := setupIntegration(t)
	first := it.create(t)

	_, err := it.svc.Create(context.Background(), timesheet.CreateTimesheetRequest{
		EmployeeID: it.employee.ID.String(),
		WeekStart:  "2026-03-02",
	})

	assert.ErrorIs(t, err, timesheeterrors.ErrDuplicateTimesheet)

	var n int64
	require.NoError(t, it.db.Model(&timesheet.WeeklyTimesheet{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)

	var outbox int64
	require.NoError(t, it.db.Model(&kafka.OutboxRecord{}).Where("aggregate_id = ?", first.ID).Count(&outbox).Error)
	assert.Equal(t, int64(1), outbox, "only the committed create leaves an event")
}

func TestIntegration_ConcurrentCreatesYieldOneTimesheet(t *testing.T) {
	it := setupIntegration(t)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok, dups int
	)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := it.svc.Create(context.Background(), timesheet.CreateTimesheetRequest{
				EmployeeID: it.employee.ID.String(),
				WeekStart:  "2026-03-02",
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case assert.ErrorIs(t, err, timesheeterrors.ErrDuplicateTimesheet):
				dups++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, 3, dups)
}

func TestIntegration_DetailMaterializesWorkdaysOnce(t *testing.T) {
	it := setupIntegration(t)
	ts := it.create(t)
	ctx := context.Background()

	detail, err := it.svc.GetDetail(ctx, ts.ID)
	require.NoError(t, err)
	require.Len(t, detail.Entries, 5)
	assert.Equal(t, "MON", detail.Entries[0].Day)
	assert.Equal(t, "FRI", detail.Entries[4].Day)
	assert.Equal(t, "0.00", detail.Totals.TotalHours)

	_, err = it.svc.GetDetail(ctx, ts.ID)
	require.NoError(t, err)

	created, err := it.svc.Materialize(ctx, ts.ID)
	require.NoError(t, err)
	assert.Zero(t, created)
	assert.Equal(t, int64(5), it.countEntries(t, ts.ID))
}

func TestIntegration_EntryEditsAndLock(t *testing.T) {
	it := setupIntegration(t)
	ts := it.create(t)
	ctx := context.Background()

	day := timesheet.UpdateEntryRequest{
		ArrivalMorning:   strPtr("08:00"),
		LunchDeparture:   strPtr("12:00"),
		LunchReturn:      strPtr("13:00"),
		ArrivalEvening:   strPtr("13:00"),
		DepartureEvening: strPtr("17:00"),
	}
	for _, d := range []string{"MON", "TUE", "WED", "THU", "FRI"} {
		_, err := it.svc.UpdateEntry(ctx, ts.ID, d, day)
		require.NoError(t, err)
	}
	// weekend days outside the default workdays can still be recorded
	_, err := it.svc.UpdateEntry(ctx, ts.ID, "SAT", timesheet.UpdateEntryRequest{
		ArrivalMorning: strPtr("09:00"),
		LunchDeparture: strPtr("11:00"),
	})
	require.NoError(t, err)

	detail, err := it.svc.GetDetail(ctx, ts.ID)
	require.NoError(t, err)
	require.Len(t, detail.Entries, 6)
	assert.Equal(t, "SAT", detail.Entries[5].Day)
	assert.Equal(t, int64(2520), detail.Totals.TotalMinutes)
	assert.Equal(t, "42.00", detail.Totals.TotalHours)
	assert.Equal(t, "38.00", detail.Totals.RegularHours)
	assert.Equal(t, "4.00", detail.Totals.OvertimeHours)
	assert.Equal(t, "760.00", detail.Totals.Pay)

	locked, err := it.svc.Lock(ctx, ts.ID)
	require.NoError(t, err)
	assert.Equal(t, "LOCKED", locked.Status)

	_, err = it.svc.Lock(ctx, ts.ID)
	assert.ErrorIs(t, err, timesheeterrors.ErrTimesheetLocked)

	_, err = it.svc.UpdateEntry(ctx, ts.ID, "MON", timesheet.UpdateEntryRequest{})
	assert.ErrorIs(t, err, timesheeterrors.ErrTimesheetLocked)

	after, err := it.svc.GetDetail(ctx, ts.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2520), after.Totals.TotalMinutes, "locked edit must not clear the day")
}

func TestIntegration_ClearingPunches(t *testing.T) {
	it := setupIntegration(t)
	ts := it.create(t)
	ctx := context.Background()

	_, err := it.svc.UpdateEntry(ctx, ts.ID, "MON", timesheet.UpdateEntryRequest{
		ArrivalMorning: strPtr("08:00"),
		LunchDeparture: strPtr("12:00"),
	})
	require.NoError(t, err)

	resp, err := it.svc.UpdateEntry(ctx, ts.ID, "MON", timesheet.UpdateEntryRequest{})
	require.NoError(t, err)
	assert.Nil(t, resp.ArrivalMorning)
	assert.Zero(t, resp.TotalMinutes)
}

func TestIntegration_DeleteCascadesToEntries(t *testing.T) {
	it := setupIntegration(t)
	ts := it.create(t)
	ctx := context.Background()

	_, err := it.svc.GetDetail(ctx, ts.ID)
	require.NoError(t, err)
	require.Equal(t, int64(5), it.countEntries(t, ts.ID))

	require.NoError(t, it.svc.Delete(ctx, ts.ID))
	assert.Zero(t, it.countEntries(t, ts.ID))

	_, err = it.svc.GetDetail(ctx, ts.ID)
	assert.ErrorIs(t, err, timesheeterrors.ErrTimesheetNotFound)
}

func TestIntegration_ListOrderedByWeekDesc(t *testing.T) {
	it := setupIntegration(t)
	ctx := context.Background()
	for _, week := range []string{"2026-03-02", "2026-03-16", "2026-03-09"} {
		_, err := it.svc.Create(ctx, timesheet.CreateTimesheetRequest{EmployeeID: it.employee.ID.String(), WeekStart: week})
		require.NoError(t, err)
	}

	list, err := it.svc.GetAll(ctx, timesheet.ListTimesheetsFilter{EmployeeID: it.employee.ID.String()})

	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "2026-03-16", list[0].WeekStart)
	assert.Equal(t, "2026-03-02", list[2].WeekStart)
	assert.Equal(t, "Alice", list[0].EmployeeName)
}
