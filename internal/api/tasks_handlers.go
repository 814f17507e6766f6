package api

import (
	"context"
	"net/http"
	"time"

	"github.com/limbo/timetrack/internal/service"
	"github.com/limbo/timetrack/pkg/entity"
	"github.com/limbo/timetrack/pkg/httputil"
)

const populateTimeout = 15 * time.Second

type PopulateResponse struct {
	Created int    `json:"created"`
	Date    string `json:"date"`
}

func (s *Server) ListTasks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	date, _ := s.dateParam(r)
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	tasks, err := s.tasksService.List(ctx, GetScopeFromCtx(r.Context()), date)
	if err != nil {
		writeServiceError(w, logger, "listing tasks", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, tasks)
}

func (s *Server) CreateTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.CreateTaskRequest
	if !decodeBody(w, r, logger, "creating task", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	task, err := s.tasksService.Create(ctx, GetScopeFromCtx(r.Context()), &req)
	if err != nil {
		writeServiceError(w, logger, "creating task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, task)
	logger.Info("task created")
}

func (s *Server) GetTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(w, r, logger, "getting task")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	task, err := s.tasksService.Get(ctx, GetScopeFromCtx(r.Context()), id)
	if err != nil {
		writeServiceError(w, logger, "getting task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
}

func (s *Server) UpdateTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(w, r, logger, "updating task")
	if !ok {
		return
	}
	var req service.UpdateTaskRequest
	if !decodeBody(w, r, logger, "updating task", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	task, err := s.tasksService.Update(ctx, GetScopeFromCtx(r.Context()), id, &req)
	if err != nil {
		writeServiceError(w, logger, "updating task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
	logger.Info("task updated")
}

func (s *Server) DeleteTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(w, r, logger, "deleting task")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	if err := s.tasksService.Delete(ctx, GetScopeFromCtx(r.Context()), id); err != nil {
		writeServiceError(w, logger, "deleting task", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("task deleted")
}

func (s *Server) TaskStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	date, present := s.dateParam(r)
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	scope := GetScopeFromCtx(r.Context())
	var stats *entity.TaskStats
	var err error
	if present {
		stats, err = s.tasksService.Stats(ctx, scope, &date)
	} else {
		stats, err = s.tasksService.Stats(ctx, scope, nil)
	}
	if err != nil {
		writeServiceError(w, logger, "counting tasks", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}

func (s *Server) PopulateTasks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	date, _ := s.dateParam(r)
	ctx, cancel := context.WithTimeout(r.Context(), populateTimeout)
	defer cancel()
	created, err := s.tasksService.Populate(ctx, GetScopeFromCtx(r.Context()), date)
	if err != nil {
		writeServiceError(w, logger, "populating tasks", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, PopulateResponse{
		Created: created,
		Date:    date.Format(entity.DateLayout),
	})
	logger.Info("tasks populated")
}

func (s *Server) StartTimer(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(w, r, logger, "starting timer")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	entry, err := s.timerService.StartTimer(ctx, GetScopeFromCtx(r.Context()), id)
	if err != nil {
		writeServiceError(w, logger, "starting timer", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, entry)
	logger.Info("timer started")
}

func (s *Server) StopTimer(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(w, r, logger, "stopping timer")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	entry, err := s.timerService.StopTimer(ctx, GetScopeFromCtx(r.Context()), id)
	if err != nil {
		writeServiceError(w, logger, "stopping timer", err)
		return
	}
	if entry == nil {
		logger.Info("stopping timer: nothing running")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "No active timer for this task.", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
	logger.Info("timer stopped")
}

func (s *Server) ListTaskTimeEntries(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(w, r, logger, "listing task time entries")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	entries, err := s.timeEntriesService.ListForTask(ctx, GetScopeFromCtx(r.Context()), id)
	if err != nil {
		writeServiceError(w, logger, "listing task time entries", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entries)
}
