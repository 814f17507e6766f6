package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/timetrack/internal/error_values"
	"github.com/limbo/timetrack/internal/service"
	"github.com/limbo/timetrack/pkg/entity"
	"github.com/limbo/timetrack/pkg/httputil"
)

const handlerTimeout = 10 * time.Second

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

type IndexResponse struct {
	Name      string            `json:"name"`
	Endpoints map[string]string `json:"endpoints"`
}

func (s *Server) Index(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, IndexResponse{
		Name: "Task Time Tracker API",
		Endpoints: map[string]string{
			"tasks":      "/tasks",
			"dashboard":  "/dashboard",
			"world_time": "/world-time",
		},
	})
}

func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	if s.healthCheck != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := s.healthCheck(ctx); err != nil {
			GetLoggerFromCtx(r.Context()).Error("health check failed", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "Database is not ready (did you run migrations?).", err)
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	if !decodeBody(w, r, logger, "registering", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			logger.Error("registering error: existed user")
			httputil.WriteErrorResponse(w, http.StatusConflict, "user with such name already exists", nil)
			return
		}
		writeServiceError(w, logger, "registering", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	if !decodeBody(w, r, logger, "login", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong credentials")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid username or password", nil)
		default:
			writeServiceError(w, logger, "login", err)
		}
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("account deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req DeleteAccountRequest
	if !decodeBody(w, r, logger, "account deletion", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	err = s.userService.DeleteAccount(ctx, uid, req.Password)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWrongCredentials) {
			logger.Error("account deletion error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid password", nil)
			return
		}
		writeServiceError(w, logger, "account deletion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("account deleted")
}

// decodeBody writes a 400 and returns false when the body is not valid JSON.
func decodeBody(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string, dst any) bool {
	if r.Body == nil {
		logger.Error(op + " error: empty body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return false
	}
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.Error(op+" error: invalid body", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return false
	}
	return true
}

// pathID writes a 404 and returns false when the id path value is not a uuid.
func pathID(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error(op + " error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "Not found.", nil)
		return uuid.UUID{}, false
	}
	return id, true
}

// dateParam reads ?date=YYYY-MM-DD. A missing or malformed value falls back to today.
// present reports whether the parameter was given at all.
func (s *Server) dateParam(r *http.Request) (date time.Time, present bool) {
	q := r.URL.Query()
	if !q.Has("date") {
		return s.today(), false
	}
	d, err := time.Parse(entity.DateLayout, q.Get("date"))
	if err != nil {
		return s.today(), true
	}
	return d, true
}
