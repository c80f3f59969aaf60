package shared

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"hrdash/internal/domain/apperr"
	"hrdash/internal/transport/http/api"
)

// StatusClientClosedRequest is recorded when the client went away before a response.
const StatusClientClosedRequest = 499

func FailValidation(w http.ResponseWriter, requestID string, issues []ValidationIssue) {
	api.FailWithDetails(
		w,
		http.StatusBadRequest,
		"validation_error",
		"payload validation failed",
		map[string]any{"fields": issues},
		requestID,
	)
}

// FailService writes the response for an error returned by a domain service.
// fallbackCode and fallbackMessage are used when err is not one of the apperr classes.
func FailService(w http.ResponseWriter, err error, requestID, fallbackCode, fallbackMessage string) {
	switch {
	case errors.Is(err, apperr.ErrAuthFailure):
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", apperr.ErrAuthFailure.Error(), requestID)
	case errors.Is(err, apperr.ErrValidation):
		api.Fail(w, http.StatusBadRequest, "validation_error", err.Error(), requestID)
	case errors.Is(err, apperr.ErrConstraint):
		api.Fail(w, http.StatusUnprocessableEntity, "constraint_error", err.Error(), requestID)
	case errors.Is(err, apperr.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", err.Error(), requestID)
	case errors.Is(err, apperr.ErrStorageUnavailable):
		slog.Error(fallbackCode, "err", err, "requestId", requestID)
		api.Fail(w, http.StatusServiceUnavailable, "storage_unavailable", "storage is unavailable, try again later", requestID)
	case errors.Is(err, context.Canceled):
		slog.Info(fallbackCode, "err", err, "requestId", requestID)
		api.Fail(w, StatusClientClosedRequest, "request_cancelled", "request cancelled", requestID)
	default:
		slog.Error(fallbackCode, "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, fallbackCode, fallbackMessage, requestID)
	}
}
