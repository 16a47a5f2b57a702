package timesheet

import (
	"errors"
	"strings"

	timesheeterrors "go-timesheet/internal/timesheet/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return timesheeterrors.ErrTimesheetNotFound
	}

	switch uniqueViolation(err) {
	case TimesheetWeekUniqueConstraint:
		return timesheeterrors.ErrDuplicateTimesheet
	case EntryDayUniqueConstraint:
		return timesheeterrors.ErrDuplicateEntry
	}

	return err
}

// uniqueViolation reports which unique constraint err violated, or "" when
// it is not a unique violation. SQLite does not name the index, so the
// column list is used to tell the two apart.
func uniqueViolation(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != "23505" {
			return ""
		}
		return pgErr.ConstraintName
	}

	errMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errMsg, TimesheetWeekUniqueConstraint),
		strings.Contains(errMsg, "weekly_timesheets.employee_id"):
		return TimesheetWeekUniqueConstraint
	case strings.Contains(errMsg, EntryDayUniqueConstraint),
		strings.Contains(errMsg, "daily_entries.timesheet_id"):
		return EntryDayUniqueConstraint
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(errMsg, "duplicate key value") ||
		strings.Contains(errMsg, "unique constraint failed") {
		return TimesheetWeekUniqueConstraint
	}
	return ""
}
