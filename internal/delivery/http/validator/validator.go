// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "ridehub/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator wraps the go-playground validator for echo.
type CustomValidator struct {
	validate *playground.Validate
}

// New creates the echo request validator.
func New() echo.Validator {
	return &CustomValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks a bound request struct against its validate tags. Tag
// failures surface as a 400 with the VALIDATION_FAILED code.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
