package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/timetrack/internal/error_values"
	"github.com/limbo/timetrack/internal/repository"
	"github.com/limbo/timetrack/pkg/entity"
	"github.com/limbo/timetrack/pkg/metrics"
)

// TimerService keeps at most one running timer per owner scope.
type TimerService struct {
	tasksRepo   repository.TasksRepositoryI
	entriesRepo repository.TimeEntriesRepositoryI
	now         func() time.Time
}

func NewTimerService(tasksRepo repository.TasksRepositoryI, entriesRepo repository.TimeEntriesRepositoryI) *TimerService {
	if tasksRepo == nil || entriesRepo == nil {
		log.Fatal("provided nil repository to timer service")
	}
	return &TimerService{
		tasksRepo:   tasksRepo,
		entriesRepo: entriesRepo,
		now:         time.Now,
	}
}

func (ts *TimerService) WithClock(now func() time.Time) *TimerService {
	ts.now = now
	return ts
}

func (ts *TimerService) StartTimer(ctx context.Context, scope entity.Scope, taskID uuid.UUID) (*entity.TimeEntry, error) {
	if err := ts.checkTask(ctx, scope, taskID); err != nil {
		return nil, err
	}
	entry, stopped, err := ts.entriesRepo.Start(ctx, scope, taskID, ts.now())
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) || errors.Is(err, errorvalues.ErrTimerRunning) {
			return nil, err
		}
		return nil, fmt.Errorf("time entries repository error: %w", err)
	}
	for _, s := range stopped {
		slog.Info("stopped running timer",
			slog.String("scope", scope.Key()),
			slog.String("task_id", s.TaskID.String()),
			slog.String("entry_id", s.ID.String()),
			slog.Int("duration_seconds", s.DurationSeconds))
	}
	metrics.TimersStarted.Inc()
	metrics.TimersAutoStopped.Add(float64(len(stopped)))
	return entry, nil
}

func (ts *TimerService) StopTimer(ctx context.Context, scope entity.Scope, taskID uuid.UUID) (*entity.TimeEntry, error) {
	if err := ts.checkTask(ctx, scope, taskID); err != nil {
		return nil, err
	}
	entry, err := ts.entriesRepo.Stop(ctx, taskID, ts.now())
	if err != nil {
		return nil, fmt.Errorf("time entries repository error: %w", err)
	}
	if entry != nil {
		metrics.TimersStopped.Inc()
	}
	return entry, nil
}

// checkTask makes sure taskID belongs to scope.
func (ts *TimerService) checkTask(ctx context.Context, scope entity.Scope, taskID uuid.UUID) error {
	if _, err := ts.tasksRepo.GetByID(ctx, scope, taskID); err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return err
		}
		return fmt.Errorf("tasks repository error: %w", err)
	}
	return nil
}
