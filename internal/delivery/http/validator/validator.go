// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	domainerrors "chaski/internal/domain/errors"
	"chaski/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New builds a validator that reports json field names and compares decimals as numbers.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})
	validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()

			return f
		}

		return nil
	}, decimal.Decimal{})

	return &Validator{validate: validate}
}

// Validate returns ErrValidationFailed listing the offending fields.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		detail := fieldErr.Field() + ": " + fieldErr.Tag()
		if fieldErr.Param() != "" {
			detail += "=" + fieldErr.Param()
		}
		details = append(details, detail)
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}
