// Package validator adapts go-playground/validator to echo.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"fitsaga/internal/errors"

	"github.com/go-playground/validator/v10"
)

// RequestValidator implements echo.Validator
type RequestValidator struct {
	validate *validator.Validate
}

// New returns a validator that reports fields by their json name
func New() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &RequestValidator{validate: v}
}

// Validate checks the struct tags of i
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.WithStack(err)
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages, describe(fieldErr))
	}

	return errors.New(strings.Join(messages, "; "))
}

func describe(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldErr.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fieldErr.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fieldErr.Field(), fieldErr.Param())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", fieldErr.Field(), fieldErr.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", fieldErr.Field(), fieldErr.Param())
	default:
		return fmt.Sprintf("%s failed on %s", fieldErr.Field(), fieldErr.Tag())
	}
}
