package timesheeterrors

import (
	"go-timesheet/internal/shared/apperror"
	"net/http"
)

var (
	ErrTimesheetNotFound = apperror.New(
		apperror.CodeNotFound,
		"Timesheet not found",
		http.StatusNotFound,
	)
	ErrEntryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Daily entry not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidTimesheetID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid timesheet ID",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidWeekStart = apperror.New(
		apperror.CodeInvalidInput,
		"week_start must be a date in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrWeekStartNotMonday = apperror.New(
		apperror.CodeInvalidInput,
		"week_start must be a Monday",
		http.StatusBadRequest,
	)
	ErrInvalidDay = apperror.New(
		apperror.CodeInvalidInput,
		"day must be one of MON TUE WED THU FRI SAT SUN",
		http.StatusBadRequest,
	)
	ErrInvalidTimeFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Times must use HH:MM or HH:MM:SS",
		http.StatusBadRequest,
	)
	ErrInvalidPunches = apperror.New(
		apperror.CodeInvalidInput,
		"Daily entry is invalid",
		http.StatusBadRequest,
	)
	ErrInactiveEmployee = apperror.New(
		apperror.CodeInvalidState,
		"Employee is inactive",
		http.StatusBadRequest,
	)
	ErrTimesheetLocked = apperror.New(
		apperror.CodeInvalidState,
		"Timesheet is locked",
		http.StatusBadRequest,
	)
	ErrDuplicateTimesheet = apperror.New(
		apperror.CodeConflict,
		"a timesheet already exists for this employee and week",
		http.StatusConflict,
	)
	ErrDuplicateEntry = apperror.New(
		apperror.CodeConflict,
		"a daily entry already exists for this timesheet and day",
		http.StatusConflict,
	)
)
