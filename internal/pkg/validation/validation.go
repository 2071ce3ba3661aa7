package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/campushub/dashboard/internal/pkg/apperrors"
)

var validate = validator.New()

// ValidateStruct validates obj against its `validate` tags and converts field
// errors into an apperrors.ErrValidationFailed with per-field details.
func ValidateStruct(obj interface{}) error {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error())
	}

	details := make(map[string]interface{}, len(fieldErrs))
	for _, e := range fieldErrs {
		details[e.Field()] = formatFieldError(e)
	}
	return apperrors.NewValidationError(details)
}

// formatFieldError creates a human-readable validation error message
func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "datetime":
		return e.Field() + " must be a date in format " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
