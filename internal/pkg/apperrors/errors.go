package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound = errors.New("resource not found")

	ErrInvalidArgument = errors.New("invalid argument")

	ErrValidation = errors.New("validation failed")

	ErrConflict = errors.New("resource conflict")

	ErrInvalidUsage = errors.New("invalid usage")

	ErrDatabase = errors.New("database error")

	ErrInternalServer = errors.New("internal server error")

	ErrUnauthorized = errors.New("unauthorized")
)

type ValidationError struct {
	Field   string
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

func NewValidationError(field, message string) error {
	return fmt.Errorf("%w: %w", ErrValidation, &ValidationError{Field: field, Message: message})
}

// ValidationErrors collects every field that failed the validation pass of a request.
type ValidationErrors []*ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, fe := range v {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}

func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

// Fields returns the messages keyed by field name. The first message wins for a repeated field.
func (v ValidationErrors) Fields() map[string]string {
	fields := make(map[string]string, len(v))
	for _, fe := range v {
		if _, seen := fields[fe.Field]; !seen {
			fields[fe.Field] = fe.Message
		}
	}
	return fields
}

// AppError carries a client-facing message and unwraps to one of the sentinel kinds above.
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func NewNotFound(format string, args ...any) error {
	return &AppError{Message: fmt.Sprintf(format, args...), Cause: ErrNotFound}
}

func NewConflict(cause error, format string, args ...any) error {
	if cause == nil {
		cause = ErrConflict
	} else if !errors.Is(cause, ErrConflict) {
		cause = fmt.Errorf("%w: %w", ErrConflict, cause)
	}
	return &AppError{Message: fmt.Sprintf(format, args...), Cause: cause}
}

func NewInvalidUsage(message string) error {
	return &AppError{Message: message, Cause: ErrInvalidUsage}
}

func WrapDatabaseError(cause error, message string) error {
	return &AppError{
		Code:    "DB_ERROR",
		Message: message,
		Cause:   fmt.Errorf("%w: %w", ErrDatabase, cause),
	}
}

// Kind names the taxonomy bucket of err as exposed in API error bodies.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "NotFound"
	case errors.Is(err, ErrConflict):
		return "Conflict"
	case errors.Is(err, ErrInvalidUsage):
		return "InvalidUsage"
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidArgument):
		return "ValidationFailed"
	case errors.Is(err, ErrUnauthorized):
		return "Unauthorized"
	default:
		return "InternalError"
	}
}
