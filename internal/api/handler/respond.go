package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"credit-engine/internal/api/handler/dto"
	"credit-engine/internal/pkg/apperrors"
)

const msgUnexpected = "An unexpected error occurred."

func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return fmt.Errorf("no request body")
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Default().Error("Failed to marshal JSON response", "error", err)
		http.Error(w, `{"title":"Internal Server Error","status":500}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

// statusFor maps an error kind to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrInvalidUsage),
		errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrInvalidArgument):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(w http.ResponseWriter, err error) {
	status := statusFor(err)

	var details map[string]string
	var validationErrs apperrors.ValidationErrors
	var validationErr *apperrors.ValidationError
	var appErr *apperrors.AppError

	switch {
	case status == http.StatusInternalServerError:
		slog.Default().Error("Unhandled internal error", "error", err)
		details = map[string]string{"cause": msgUnexpected}
	case errors.As(err, &validationErrs):
		details = validationErrs.Fields()
	case errors.As(err, &validationErr) && validationErr.Field != "":
		details = map[string]string{validationErr.Field: validationErr.Message}
	case errors.As(err, &appErr):
		details = map[string]string{"cause": appErr.Message}
	default:
		details = map[string]string{"cause": err.Error()}
	}

	respondJSON(w, status, dto.ErrorResponse{
		Title:     dto.ErrorTitle,
		Timestamp: time.Now(),
		Status:    status,
		Exception: apperrors.Kind(err),
		Details:   details,
	})
}

// logLevelFor keeps client errors at warn and everything else at error.
func logLevelFor(err error) slog.Level {
	if statusFor(err) < http.StatusInternalServerError {
		return slog.LevelWarn
	}
	return slog.LevelError
}

func parseID(raw, name string) (int64, error) {
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is required", apperrors.ErrInvalidArgument, name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s: %s", apperrors.ErrInvalidArgument, name, raw)
	}
	return id, nil
}

func getCustomerIDFromQuery(r *http.Request) (int64, error) {
	return parseID(r.URL.Query().Get("customerId"), "customerId")
}
