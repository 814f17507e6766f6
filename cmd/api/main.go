package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/limbo/timetrack/internal/api"
	"github.com/limbo/timetrack/internal/repository"
	"github.com/limbo/timetrack/internal/service"
	"github.com/limbo/timetrack/internal/worldtime"
	"github.com/limbo/timetrack/pkg/cleanup"
	"github.com/limbo/timetrack/pkg/config"
	jwtservice "github.com/limbo/timetrack/pkg/jwt_service"
	"github.com/limbo/timetrack/pkg/logger"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	_, logCloser := logger.Init(logger.Config{
		Level: cfg.GetStringOr("LOG_LEVEL", "info"),
		File:  cfg.GetString("LOG_FILE"),
	})
	cleanup.Register(&cleanup.Job{
		Name: "closing log file",
		F:    logCloser.Close,
	})
	defer cleanup.CleanUp()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	pool, err := repository.NewPool(connectCtx, &dbCfg)
	cancel()
	if err != nil {
		slog.Error("connecting to postgres error", slog.String("error", err.Error()))
		return
	}

	loc := cfg.Location()
	usersRepo := repository.NewUsersRepoWithConn(pool)
	templatesRepo := repository.NewTemplatesRepoWithConn(pool)
	tasksRepo := repository.NewTasksRepoWithConn(pool)
	entriesRepo := repository.NewTimeEntriesRepoWithConn(pool)

	serv := api.New(&api.ServicesList{
		UserService:        service.NewUserService(usersRepo),
		TemplatesService:   service.NewTemplatesService(templatesRepo),
		TasksService:       service.NewTasksService(tasksRepo, templatesRepo, loc),
		TimerService:       service.NewTimerService(tasksRepo, entriesRepo),
		TimeEntriesService: service.NewTimeEntriesService(tasksRepo, entriesRepo),
		DashboardService:   service.NewDashboardService(tasksRepo, entriesRepo, loc),
		WorldTimeService:   newWorldTimeService(ctx, cfg),
		JwtService:         jwtservice.New(cfg.GetString("JWT_SECRET")),
		Location:           loc,
		HealthCheck:        pool.Ping,
	})
	if err = serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080")); err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
}

// newWorldTimeService puts a redis cache in front of the upstream client when REDIS_ADDR is set.
// An unreachable redis is logged and skipped.
func newWorldTimeService(ctx context.Context, cfg *config.Config) service.WorldTimeServiceI {
	client := worldtime.NewClient(
		cfg.GetStringOr("WORLD_TIME_URL", worldtime.DefaultURL),
		cfg.GetDurationOr("WORLD_TIME_TIMEOUT", worldtime.DefaultTimeout),
	)
	addr := cfg.GetString("REDIS_ADDR")
	if addr == "" {
		return client
	}
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	rdb, err := worldtime.ConnectRedis(pingCtx, worldtime.RedisConfig{
		Addr:     addr,
		Password: cfg.GetString("REDIS_PASSWORD"),
		DB:       cfg.GetIntOr("REDIS_DB", 0),
	})
	if err != nil {
		slog.Warn("world time cache disabled", slog.String("error", err.Error()))
		return client
	}
	return worldtime.NewCachedClient(client, worldtime.NewRedisCache(rdb), cfg.GetDurationOr("WORLD_TIME_CACHE_TTL", 30*time.Second))
}
