package timesheet

import (
	"errors"
	"fmt"
	"testing"

	timesheeterrors "go-timesheet/internal/timesheet/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapRepositoryError(t *testing.T) {
	dbDown := errors.New("connection refused")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "postgres week constraint",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: TimesheetWeekUniqueConstraint},
			want: timesheeterrors.ErrDuplicateTimesheet,
		},
		{
			name: "postgres entry constraint",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: EntryDayUniqueConstraint},
			want: timesheeterrors.ErrDuplicateEntry,
		},
		{
			name: "wrapped postgres entry constraint",
			err:  fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: EntryDayUniqueConstraint}),
			want: timesheeterrors.ErrDuplicateEntry,
		},
		{
			name: "sqlite week columns",
			err:  errors.New("constraint failed: UNIQUE constraint failed: weekly_timesheets.employee_id, weekly_timesheets.week_start (2067)"),
			want: timesheeterrors.ErrDuplicateTimesheet,
		},
		{
			name: "sqlite entry columns",
			err:  errors.New("constraint failed: UNIQUE constraint failed: daily_entries.timesheet_id, daily_entries.day (2067)"),
			want: timesheeterrors.ErrDuplicateEntry,
		},
		{
			name: "translated duplicate",
			err:  gorm.ErrDuplicatedKey,
			want: timesheeterrors.ErrDuplicateTimesheet,
		},
		{
			name: "not found",
			err:  gorm.ErrRecordNotFound,
			want: timesheeterrors.ErrTimesheetNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapRepositoryError(tt.err), tt.want)
		})
	}

	t.Run("other postgres errors pass through", func(t *testing.T) {
		fk := &pgconn.PgError{Code: "23503", ConstraintName: "fk_weekly_timesheets_employee"}
		assert.Same(t, fk, mapRepositoryError(fk))
	})

	t.Run("unknown errors pass through", func(t *testing.T) {
		assert.Same(t, dbDown, mapRepositoryError(dbDown))
		assert.Nil(t, mapRepositoryError(nil))
	})
}

func TestUniqueViolation(t *testing.T) {
	assert.Equal(t, EntryDayUniqueConstraint, uniqueViolation(&pgconn.PgError{Code: "23505", ConstraintName: EntryDayUniqueConstraint}))
	assert.Empty(t, uniqueViolation(&pgconn.PgError{Code: "40001"}))
	assert.Empty(t, uniqueViolation(errors.New("timeout")))
}
