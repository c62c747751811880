// Package validator wires go-playground/validator into Echo's Validator hook.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates the struct validator used for request bindings.
func New() echo.Validator {
	return &echoValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (v *echoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
