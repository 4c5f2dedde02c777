// Package validation checks request bodies against their `validate` struct
// tags before they reach the auth core.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/iudanet/authmodule/internal/models"
)

// ErrInvalidInput is returned for any body that fails validation.
var ErrInvalidInput = errors.New("invalid input data")

// Validator wraps a configured validator.Validate. It is safe for
// concurrent use.
type Validator struct {
	validate *validator.Validate
}

// New returns a Validator that reports JSON field names and knows the
// "usertype" tag.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// registration with a fresh validator and a constant func cannot fail
	_ = v.RegisterValidation("usertype", func(fl validator.FieldLevel) bool {
		_, err := models.ParseUserType(fl.Field().String())
		return err == nil
	})

	return &Validator{validate: v}
}

// Struct validates s. The returned error wraps ErrInvalidInput and lists the
// offending fields.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", field, fe.Param())
	case "email":
		return field + " must be a valid email address"
	case "eqfield":
		return field + " does not match"
	case "usertype":
		return field + " must be one of EndUser, Admin, Partner"
	case "eq":
		return field + " must be accepted"
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
