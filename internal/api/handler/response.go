package handler

import (
	"customers-service/internal/api/handler/dto"
	"customers-service/internal/pkg/apperrors"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

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
		http.Error(w, `{"error":{"message":"Internal server error"}}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrMissingField),
		errors.Is(err, apperrors.ErrInvalidArgument),
		errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrBusinessRule):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrUnprocessable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func respondError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	detail := dto.ErrorDetail{Message: err.Error()}

	var fieldErrors apperrors.FieldErrors
	var validationError *apperrors.ValidationError
	switch {
	case status == http.StatusInternalServerError:
		attrs := []any{"error", err}
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			attrs = append(attrs, "code", appErr.Code)
		}
		slog.Default().Error("Unhandled internal error", attrs...)
		detail.Message = "An unexpected error occurred."
	case errors.As(err, &fieldErrors):
		detail.Message = "Request validation failed"
		detail.Fields = fieldErrors
	case errors.As(err, &validationError):
		detail.Message, detail.Field = validationError.Message, validationError.Field
	}

	respondJSON(w, status, dto.ErrorResponse{Error: detail})
}
