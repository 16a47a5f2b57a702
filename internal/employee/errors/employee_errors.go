package employeeerrors

import (
	"go-timesheet/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrNegativeHourlyRate = apperror.New(
		apperror.CodeInvalidInput,
		"hourly_rate cannot be negative",
		http.StatusBadRequest,
	)
	ErrNegativeWeeklyHours = apperror.New(
		apperror.CodeInvalidInput,
		"weekly_regular_hours cannot be negative",
		http.StatusBadRequest,
	)
	ErrTooManyDecimals = apperror.New(
		apperror.CodeInvalidInput,
		"hourly_rate and weekly_regular_hours allow at most 2 decimal places",
		http.StatusBadRequest,
	)
)
