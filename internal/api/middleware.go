package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/timetrack/internal/error_values"
	"github.com/limbo/timetrack/pkg/entity"
	"github.com/limbo/timetrack/pkg/httputil"
	"github.com/limbo/timetrack/pkg/metrics"
)

var (
	requestIDKContextKey = "Request-ID"
	loggerContextKey     = "Logger"
	uidContextKey        = "User-ID"
	scopeContextKey      = "Scope"
)

func (s *Server) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.New()
		ctx := context.WithValue(r.Context(), requestIDKContextKey, reqID.String())
		r = r.WithContext(ctx)
		w.Header().Set("X-Request-ID", reqID.String())
		next.ServeHTTP(w, r)
	})
}

func (s *Server) SettingUpLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.Default()
		reqID, ok := r.Context().Value(requestIDKContextKey).(string)
		if ok && reqID != "" {
			logger = logger.With(slog.String("request_id", reqID))
		}
		logger = logger.With(slog.String("from", r.RemoteAddr))
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) LoggerExtensionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		userID, ok := r.Context().Value(uidContextKey).(uuid.UUID)
		if ok {
			logger = logger.With(slog.String("uid", userID.String()))
		}
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

// RecovererMiddleware turns a panic into a JSON 500.
func (s *Server) RecovererMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			GetLoggerFromCtx(r.Context()).Error("panic while handling request",
				slog.Any("panic", rec),
				slog.String("stack", string(debug.Stack())),
			)
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error.", nil)
		}()
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (s *Server) MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.InFlightRequests.Inc()
		defer metrics.InFlightRequests.Dec()
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		metrics.RequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		metrics.RequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		// Getting token from header
		tokenString, err := GetTokenFromHeader(r)
		if err != nil {
			logger.Error("auth failed: invalid token")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
			return
		}
		uid, ok := s.authenticate(w, r, tokenString)
		if !ok {
			return
		}
		ctx := context.WithValue(r.Context(), uidContextKey, uid)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

// ScopeMiddleware resolves the owner scope. No Authorization header means the anonymous
// bucket, a valid token means the user's scope and anything else is rejected.
func (s *Server) ScopeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			ctx := context.WithValue(r.Context(), scopeContextKey, entity.AnonymousScope())
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}
		tokenString, err := GetTokenFromHeader(r)
		if err != nil {
			GetLoggerFromCtx(r.Context()).Error("scope resolving failed: malformed authorization header")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
			return
		}
		uid, ok := s.authenticate(w, r, tokenString)
		if !ok {
			return
		}
		ctx := context.WithValue(r.Context(), uidContextKey, uid)
		ctx = context.WithValue(ctx, scopeContextKey, entity.UserScope(uid))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authenticate validates the token and checks the user still exists. On failure the
// response is already written.
func (s *Server) authenticate(w http.ResponseWriter, r *http.Request, tokenString string) (uuid.UUID, bool) {
	logger := GetLoggerFromCtx(r.Context())
	// Getting claims from token string
	tokenClaims, err := s.jwtService.ParseToken(tokenString)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidToken):
			logger.Error("auth failed: error parsing token")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
		default:
			logger.Error("auth failed: internal error while parsing token", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error parsing token", nil)
		}
		return uuid.UUID{}, false
	}
	// Assuring if token is alive
	now := time.Now()
	if tokenClaims.ExpiresAt == nil || tokenClaims.ExpiresAt.Time.Before(now) ||
		(tokenClaims.NotBefore != nil && tokenClaims.NotBefore.Time.After(now)) {
		logger.Error("tried to auth with expired or not ready token")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "token expired or not ready", nil)
		return uuid.UUID{}, false
	}
	uid, err := uuid.Parse(tokenClaims.UserID)
	if err != nil {
		logger.Error("invalid uid in token claims")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "invalid token payload", nil)
		return uuid.UUID{}, false
	}
	// Assuring if user still exists
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	_, err = s.userService.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("user doesn't exist")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "auth failed: user not found", nil)
			return uuid.UUID{}, false
		}
		logger.Error("error while searching for user", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while searching for user", nil)
		return uuid.UUID{}, false
	}
	return uid, true
}

func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerContextKey).(*slog.Logger)
	if ok {
		return logger
	}
	return slog.Default()
}

// GetScopeFromCtx falls back to the anonymous bucket when no scope was resolved.
func GetScopeFromCtx(ctx context.Context) entity.Scope {
	scope, ok := ctx.Value(scopeContextKey).(entity.Scope)
	if ok {
		return scope
	}
	return entity.AnonymousScope()
}

func GetTokenFromHeader(r *http.Request) (string, error) {
	token := r.Header.Get("Authorization")
	if token == "" {
		return "", errorvalues.ErrInvalidToken
	}
	parts := strings.Split(token, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errorvalues.ErrInvalidToken
	}
	return parts[1], nil
}

func GetUIDFromContext(r *http.Request) (uuid.UUID, error) {
	uid, ok := r.Context().Value(uidContextKey).(uuid.UUID)
	if !ok {
		return uuid.UUID{}, errors.New("uid invalid or doesn't exists")
	}
	return uid, nil
}
