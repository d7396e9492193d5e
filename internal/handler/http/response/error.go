package response

import (
	"errors"
	"net/http"

	"github.com/flexwork-hq/payroll-engine-go/internal/domain/worktime"
	"github.com/flexwork-hq/payroll-engine-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Worktime domain errors
	switch {
	case errors.Is(err, worktime.ErrInvalidHourlyWage):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, worktime.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
