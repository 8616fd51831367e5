package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"credit-engine/internal/domain/credit"
	"credit-engine/internal/domain/customer"
	"credit-engine/internal/pkg/apperrors"

	"github.com/go-playground/validator/v10"
)

const (
	msgInvalidInput = "Invalid Input!"
	msgInvalidCPF   = "CPF invalid!"
	msgInvalidEmail = "E-mail invalid!"
	msgFutureDate   = "must be a future date"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "cpf", func(fl validator.FieldLevel) bool {
		return customer.IsValidCPF(fl.Field().String())
	})
	mustRegister(v, "futuredate", func(fl validator.FieldLevel) bool {
		day, err := time.Parse(credit.DateLayout, fl.Field().String())
		if err != nil {
			return false
		}
		return credit.IsAfterToday(day, time.Now())
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %q validation: %v", tag, err))
	}
}

// validateStruct runs the struct tags of req and converts failures to apperrors.ValidationErrors.
func validateStruct(req any) apperrors.ValidationErrors {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return apperrors.ValidationErrors{{Message: err.Error(), Cause: err}}
	}

	out := make(apperrors.ValidationErrors, 0, len(ve))
	for _, fe := range ve {
		out = append(out, &apperrors.ValidationError{Field: fe.Field(), Message: fieldError(fe)})
	}
	return out
}

// fieldError converts a single FieldError into the message exposed in error details.
func fieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "cpf":
		return msgInvalidCPF
	case "email":
		return msgInvalidEmail
	case "futuredate":
		return msgFutureDate
	case "min", "gte":
		return "must be greater than or equal to " + fe.Param()
	case "max", "lte":
		return "must be less than or equal to " + fe.Param()
	default:
		return msgInvalidInput
	}
}

// finish returns nil for an empty list so callers can compare against a nil error.
func finish(errs apperrors.ValidationErrors) error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}
