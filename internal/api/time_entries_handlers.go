package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/limbo/timetrack/pkg/httputil"
)

func (s *Server) ListTimeEntries(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var taskID *uuid.UUID
	if raw := r.URL.Query().Get("task"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			logger.Error("listing time entries error: invalid task filter")
			httputil.WriteValidationErrorResponse(w, map[string]string{"task": "Must be a valid UUID."})
			return
		}
		taskID = &id
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	entries, err := s.timeEntriesService.List(ctx, GetScopeFromCtx(r.Context()), taskID)
	if err != nil {
		writeServiceError(w, logger, "listing time entries", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entries)
}

func (s *Server) DeleteTimeEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(w, r, logger, "deleting time entry")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	if err := s.timeEntriesService.Delete(ctx, GetScopeFromCtx(r.Context()), id); err != nil {
		writeServiceError(w, logger, "deleting time entry", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("time entry deleted")
}
