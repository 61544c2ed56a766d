package service

import (
	"errors"
	"fmt"

	"github.com/edtrack/edtrack-go/internal/apperr"
	"github.com/go-playground/validator/v10"
)

// validate is the shared struct validator for service inputs.
var validate = validator.New()

// checkInput validates a payload locally, so malformed input fails as a
// validation error without a network call.
func checkInput(v any) error {
	if err := validate.Struct(v); err != nil {
		return apperr.New(apperr.KindValidation, validationMessage(err), err)
	}
	return nil
}

// validationMessage condenses a validator error into a single
// renderable line, naming the first failing field.
func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fmt.Sprintf("Invalid %s", fieldErrs[0].Field())
	}
	return "Invalid input"
}

// requireID rejects empty string identifiers locally.
func requireID(name, id string) error {
	if id == "" {
		return apperr.New(apperr.KindValidation, fmt.Sprintf("%s cannot be empty", name), nil)
	}
	return nil
}

// requireNumericID rejects non-positive numeric identifiers locally.
func requireNumericID(name string, id int64) error {
	if id <= 0 {
		return apperr.New(apperr.KindValidation, fmt.Sprintf("%s must be positive", name), nil)
	}
	return nil
}
