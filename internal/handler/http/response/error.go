package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/workforce-analytics-go/internal/domain/workforce"
	"github.com/cmlabs-hris/workforce-analytics-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Workforce domain errors
	switch {
	case errors.Is(err, workforce.ErrUnknownDataset):
		NotFound(w, "Dataset not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
