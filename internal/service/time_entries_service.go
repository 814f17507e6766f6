package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/timetrack/internal/error_values"
	"github.com/limbo/timetrack/internal/repository"
	"github.com/limbo/timetrack/pkg/entity"
)

type TimeEntriesService struct {
	tasksRepo   repository.TasksRepositoryI
	entriesRepo repository.TimeEntriesRepositoryI
}

func NewTimeEntriesService(tasksRepo repository.TasksRepositoryI, entriesRepo repository.TimeEntriesRepositoryI) *TimeEntriesService {
	return &TimeEntriesService{
		tasksRepo:   tasksRepo,
		entriesRepo: entriesRepo,
	}
}

func (es *TimeEntriesService) List(ctx context.Context, scope entity.Scope, taskID *uuid.UUID) ([]*entity.TimeEntry, error) {
	entries, err := es.entriesRepo.List(ctx, scope, taskID)
	if err != nil {
		return nil, fmt.Errorf("time entries repository error: %w", err)
	}
	return entries, nil
}

func (es *TimeEntriesService) ListForTask(ctx context.Context, scope entity.Scope, taskID uuid.UUID) ([]*entity.TimeEntry, error) {
	if _, err := es.tasksRepo.GetByID(ctx, scope, taskID); err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("tasks repository error: %w", err)
	}
	entries, err := es.entriesRepo.ListByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("time entries repository error: %w", err)
	}
	return entries, nil
}

func (es *TimeEntriesService) Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) error {
	if err := es.entriesRepo.Delete(ctx, scope, id); err != nil {
		if errors.Is(err, errorvalues.ErrTimeEntryNotFound) {
			return err
		}
		return fmt.Errorf("time entries repository error: %w", err)
	}
	return nil
}
