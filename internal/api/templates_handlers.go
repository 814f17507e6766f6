package api

import (
	"context"
	"net/http"

	"github.com/limbo/timetrack/internal/service"
	"github.com/limbo/timetrack/pkg/httputil"
)

func (s *Server) ListTemplates(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	templates, err := s.templatesService.List(ctx, GetScopeFromCtx(r.Context()))
	if err != nil {
		writeServiceError(w, logger, "listing templates", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, templates)
}

func (s *Server) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.CreateTemplateRequest
	if !decodeBody(w, r, logger, "creating template", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	tmpl, err := s.templatesService.Create(ctx, GetScopeFromCtx(r.Context()), &req)
	if err != nil {
		writeServiceError(w, logger, "creating template", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, tmpl)
	logger.Info("template created")
}

func (s *Server) GetTemplate(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(w, r, logger, "getting template")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	tmpl, err := s.templatesService.Get(ctx, GetScopeFromCtx(r.Context()), id)
	if err != nil {
		writeServiceError(w, logger, "getting template", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, tmpl)
}

func (s *Server) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(w, r, logger, "updating template")
	if !ok {
		return
	}
	var req service.UpdateTemplateRequest
	if !decodeBody(w, r, logger, "updating template", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	tmpl, err := s.templatesService.Update(ctx, GetScopeFromCtx(r.Context()), id, &req)
	if err != nil {
		writeServiceError(w, logger, "updating template", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, tmpl)
	logger.Info("template updated")
}

func (s *Server) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(w, r, logger, "deleting template")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	if err := s.templatesService.Delete(ctx, GetScopeFromCtx(r.Context()), id); err != nil {
		writeServiceError(w, logger, "deleting template", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("template deleted")
}
