package api

import (
	"context"
	"net/http"
	"time"

	"github.com/limbo/timetrack/pkg/httputil"
)

const dashboardTimeout = 15 * time.Second

func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	date, _ := s.dateParam(r)
	ctx, cancel := context.WithTimeout(r.Context(), dashboardTimeout)
	defer cancel()
	dash, err := s.dashboardService.Dashboard(ctx, GetScopeFromCtx(r.Context()), date)
	if err != nil {
		writeServiceError(w, logger, "building dashboard", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, dash)
}

// WorldTime proxies the upstream clock. The upstream call carries its own timeout.
func (s *Server) WorldTime(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	wt, err := s.worldTimeService.Now(ctx)
	if err != nil {
		writeServiceError(w, logger, "fetching world time", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, wt)
}
