// Package validation checks the declared constraints of stored entities.
// It has no dependency on the storage mechanism.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrValidation is the root of every constraint violation.
var ErrValidation = errors.New("contact validation failed")

// EmailPattern is the local@domain.tld shape accepted for userEmail.
var EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("useremail", func(fl validator.FieldLevel) bool {
		return EmailPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}

// Validate checks s against its `validate` struct tags.
// Violations are reported as one error wrapping ErrValidation.
func Validate(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fe.Field()+": "+message(fe))
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, ", "))
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Path " + fe.Field() + " is required"
	case "useremail":
		return "Invalid email address"
	default:
		return "failed on " + fe.Tag()
	}
}
