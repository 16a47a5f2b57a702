package apperror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type FieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// formatFieldName turns recipient_phone into "Recipient Phone".
func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError converts gin binding errors into an INVALID_INPUT
// AppError. The message describes the first failing field, details list all.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		details := make([]FieldDetail, 0, len(errs))
		for _, e := range errs {
			details = append(details, FieldDetail{Field: e.Field(), Message: fieldMessage(e)})
		}

		// e.Field() is the json name thanks to RegisterTagNameFunc in Init.
		first := errs[0]
		var appErr *AppError
		switch first.Tag() {
		case "required":
			appErr = RequiredField(formatFieldName(first.Field()))
		default:
			appErr = InvalidField(formatFieldName(first.Field()))
		}
		return appErr.WithDetails(details)
	}

	return New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	).WithDetails(err.Error())
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "oneof":
		return e.Field() + " must be one of " + e.Param()
	default:
		return e.Field() + " is invalid"
	}
}
