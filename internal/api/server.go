package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/timetrack/internal/service"
	"github.com/limbo/timetrack/pkg/entity"
	"github.com/limbo/timetrack/pkg/httputil"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	mx                 *chi.Mux
	userService        service.UserServiceI
	templatesService   service.TemplatesServiceI
	tasksService       service.TasksServiceI
	timerService       service.TimerServiceI
	timeEntriesService service.TimeEntriesServiceI
	dashboardService   service.DashboardServiceI
	worldTimeService   service.WorldTimeServiceI
	jwtService         JWTServiceI
	loc                *time.Location
	now                func() time.Time
	healthCheck        func(ctx context.Context) error
}

type ServicesList struct {
	UserService        service.UserServiceI
	TemplatesService   service.TemplatesServiceI
	TasksService       service.TasksServiceI
	TimerService       service.TimerServiceI
	TimeEntriesService service.TimeEntriesServiceI
	DashboardService   service.DashboardServiceI
	WorldTimeService   service.WorldTimeServiceI
	JwtService         JWTServiceI
	// Time zone "today" is resolved in. UTC when nil
	Location *time.Location
	// Optional readiness check behind /healthz
	HealthCheck func(ctx context.Context) error
}

func New(servicesOptions *ServicesList) *Server {
	loc := servicesOptions.Location
	if loc == nil {
		loc = time.UTC
	}
	s := &Server{
		mx:                 chi.NewMux(),
		userService:        servicesOptions.UserService,
		templatesService:   servicesOptions.TemplatesService,
		tasksService:       servicesOptions.TasksService,
		timerService:       servicesOptions.TimerService,
		timeEntriesService: servicesOptions.TimeEntriesService,
		dashboardService:   servicesOptions.DashboardService,
		worldTimeService:   servicesOptions.WorldTimeService,
		jwtService:         servicesOptions.JwtService,
		loc:                loc,
		now:                time.Now,
		healthCheck:        servicesOptions.HealthCheck,
	}
	s.setupRoutes()
	return s
}

// WithClock replaces the clock used to resolve "today".
func (s *Server) WithClock(now func() time.Time) *Server {
	s.now = now
	return s
}

func (s *Server) setupRoutes() {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Use(s.MetricsMiddleware)
	s.mx.Use(s.RecovererMiddleware)

	s.mx.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteErrorResponse(w, http.StatusNotFound, "Not found.", nil)
	})
	s.mx.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method \""+r.Method+"\" not allowed.", nil)
	})

	s.mx.Get("/", s.Index)
	s.mx.Get("/healthz", s.Healthz)
	s.mx.Handle("/metrics", promhttp.Handler())

	s.mx.Route("/auth", func(r chi.Router) {
		r.Post("/register", s.Register)
		r.Post("/login", s.Login)
		r.With(s.AuthMiddleware, s.LoggerExtensionMiddleware).Delete("/account", s.DeleteAccount)
	})

	s.mx.Group(func(r chi.Router) {
		r.Use(s.ScopeMiddleware)
		r.Use(s.LoggerExtensionMiddleware)

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", s.ListTasks)
			r.Post("/", s.CreateTask)
			r.Get("/stats", s.TaskStats)
			r.Post("/populate", s.PopulateTasks)
			r.Get("/world-time", s.WorldTime)
			r.Get("/{id}", s.GetTask)
			r.Patch("/{id}", s.UpdateTask)
			r.Delete("/{id}", s.DeleteTask)
			r.Post("/{id}/start-timer", s.StartTimer)
			r.Post("/{id}/stop-timer", s.StopTimer)
			r.Get("/{id}/time-entries", s.ListTaskTimeEntries)
		})
		r.Route("/templates", func(r chi.Router) {
			r.Get("/", s.ListTemplates)
			r.Post("/", s.CreateTemplate)
			r.Get("/{id}", s.GetTemplate)
			r.Patch("/{id}", s.UpdateTemplate)
			r.Delete("/{id}", s.DeleteTemplate)
		})
		r.Route("/time-entries", func(r chi.Router) {
			r.Get("/", s.ListTimeEntries)
			r.Delete("/{id}", s.DeleteTimeEntry)
		})
		r.Get("/dashboard", s.Dashboard)
		r.Get("/world-time", s.WorldTime)
	})
}

func (s *Server) Handler() http.Handler {
	return s.mx
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) today() time.Time {
	return entity.Day(s.now(), s.loc)
}
