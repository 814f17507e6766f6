package api

import (
	"errors"
	"log/slog"
	"net/http"

	errorvalues "github.com/limbo/timetrack/internal/error_values"
	"github.com/limbo/timetrack/pkg/httputil"
)

// writeServiceError maps a service error onto the JSON error envelope.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	var validationErr *errorvalues.ValidationError
	switch {
	case errors.As(err, &validationErr):
		logger.Error(op+" error: validation", slog.String("error", err.Error()))
		httputil.WriteValidationErrorResponse(w, validationErr.Fields)
	case errors.Is(err, errorvalues.ErrTaskNotFound),
		errors.Is(err, errorvalues.ErrTemplateNotFound),
		errors.Is(err, errorvalues.ErrTimeEntryNotFound),
		errors.Is(err, errorvalues.ErrUserNotFound):
		logger.Error(op+" error: not found", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusNotFound, "Not found.", nil)
	case errors.Is(err, errorvalues.ErrTimerRunning):
		logger.Error(op+" error: timer already running")
		httputil.WriteErrorResponse(w, http.StatusConflict, "Task already has a running timer.", nil)
	case errors.Is(err, errorvalues.ErrValidation):
		logger.Error(op+" error: validation", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "Invalid input.", err)
	case errors.Is(err, errorvalues.ErrUpstream):
		logger.Error(op+" error: upstream", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadGateway, "Failed to fetch world time.", err)
	case errors.Is(err, errorvalues.ErrDatabaseNotReady):
		logger.Error(op+" error: database not ready", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "Database is not ready (did you run migrations?).", err)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error.", nil)
	}
}
