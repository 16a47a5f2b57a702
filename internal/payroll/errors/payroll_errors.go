package payrollerrors

import (
	"go-timesheet/internal/shared/apperror"
	"net/http"
)

var (
	ErrInvalidEmployeeIDs = apperror.New(
		apperror.CodeInvalidInput,
		"employee_ids must be a comma separated list of UUIDs",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"from and to must be dates in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrFromAfterTo = apperror.New(
		apperror.CodeInvalidInput,
		"from must not be after to",
		http.StatusBadRequest,
	)
)
