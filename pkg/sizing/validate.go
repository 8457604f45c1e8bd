package sizing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/iwvelando/solar-quote/pkg/mathutil"
)

// ErrInvalidInput is returned when inputs fall outside the domain the
// calculator is defined on. Callers must check inputs before sizing.
var ErrInvalidInput = errors.New("invalid system inputs")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// gte and lte alone let +Inf through on unbounded fields.
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		return mathutil.IsFinite(fl.Field().Float())
	})
	return v
}

// Validate checks the preconditions of Size. The returned error wraps
// ErrInvalidInput and names every offending field.
func Validate(inputs SystemInputs) error {
	err := validate.Struct(inputs)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, describeFieldError(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(messages, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "finite":
		return fmt.Sprintf("%s must be a finite number, got %v", field, fe.Value())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s, got %v", field, fe.Param(), fe.Value())
	case "gte":
		if fe.Param() == "0" {
			return fmt.Sprintf("%s must not be negative, got %v", field, fe.Value())
		}
		return fmt.Sprintf("%s must be at least %s, got %v", field, fe.Param(), fe.Value())
	case "lte":
		return fmt.Sprintf("%s must be at most %s, got %v", field, fe.Param(), fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
