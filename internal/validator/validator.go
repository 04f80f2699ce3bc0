package validator

import (
	"fmt"
	"regexp"

	"github.com/cdt-manas/Tikat/internal/domain"
	"github.com/go-playground/validator/v10"
)

// Seat labels are a row letter followed by a 1- or 2-digit column number,
// e.g. "A1" or "D12". Geometry checks against the actual screen happen in
// the domain layer; this only rejects garbage early.
var seatLabelRgx = regexp.MustCompile(`^[A-Z][1-9][0-9]?$`)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("seat_label", validateSeatLabel)
	validator.RegisterValidation("show_format", validateShowFormat)

	return validator
}

func validateSeatLabel(fl validator.FieldLevel) bool {
	return seatLabelRgx.MatchString(fl.Field().String())
}

func validateShowFormat(fl validator.FieldLevel) bool {
	return domain.ShowFormat(fl.Field().String()).Valid()
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must contain at least %s items", err.Param())
	case "max":
		return fmt.Sprintf("must contain at most %s items", err.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", err.Param())
	case "seat_label":
		return "must be a valid seat label such as A1 or D12"
	case "show_format":
		return "must be one of 2D, 3D, IMAX, 4DX"
	default:
		return "is invalid"
	}
}
