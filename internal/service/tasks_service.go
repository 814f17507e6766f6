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

type TasksService struct {
	tasksRepo     repository.TasksRepositoryI
	templatesRepo repository.TemplatesRepositoryI
	loc           *time.Location
	now           func() time.Time
}

func NewTasksService(tasksRepo repository.TasksRepositoryI, templatesRepo repository.TemplatesRepositoryI, loc *time.Location) *TasksService {
	if tasksRepo == nil || templatesRepo == nil {
		log.Fatal("provided nil repository to tasks service")
	}
	return &TasksService{
		tasksRepo:     tasksRepo,
		templatesRepo: templatesRepo,
		loc:           loc,
		now:           time.Now,
	}
}

// WithClock replaces the time source used for progress fields and default dates.
func (ts *TasksService) WithClock(now func() time.Time) *TasksService {
	ts.now = now
	return ts
}

func (ts *TasksService) List(ctx context.Context, scope entity.Scope, date time.Time) ([]*entity.TaskView, error) {
	tasks, err := ts.tasksRepo.ListByDate(ctx, scope, date)
	if err != nil {
		return nil, fmt.Errorf("tasks repository error: %w", err)
	}
	now := ts.now()
	views := make([]*entity.TaskView, 0, len(tasks))
	for _, task := range tasks {
		views = append(views, BuildTaskView(task, now))
	}
	return views, nil
}

func (ts *TasksService) Get(ctx context.Context, scope entity.Scope, id uuid.UUID) (*entity.TaskView, error) {
	task, err := ts.get(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	return BuildTaskView(task, ts.now()), nil
}

func (ts *TasksService) get(ctx context.Context, scope entity.Scope, id uuid.UUID) (*entity.TrackedTask, error) {
	task, err := ts.tasksRepo.GetByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("tasks repository error: %w", err)
	}
	return task, nil
}

func (ts *TasksService) Create(ctx context.Context, scope entity.Scope, req *CreateTaskRequest) (*entity.TaskView, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	date := entity.Day(ts.now(), ts.loc)
	if req.Date != "" {
		parsed, err := time.Parse(entity.DateLayout, req.Date)
		if err != nil {
			return nil, errorvalues.NewValidationError(map[string]string{"date": "Date has wrong format. Use YYYY-MM-DD."})
		}
		date = parsed
	}
	created, err := ts.tasksRepo.Create(ctx, &entity.Task{
		UserID:        scope.UserID,
		Title:         req.Title,
		Description:   req.Description,
		Date:          date,
		TargetSeconds: req.TargetSeconds,
		Completed:     req.Completed,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("tasks repository error: %w", err)
	}
	return BuildTaskView(&entity.TrackedTask{Task: *created}, ts.now()), nil
}

func (ts *TasksService) Update(ctx context.Context, scope entity.Scope, id uuid.UUID, req *UpdateTaskRequest) (*entity.TaskView, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	task, err := ts.get(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Date != nil {
		parsed, err := time.Parse(entity.DateLayout, *req.Date)
		if err != nil {
			return nil, errorvalues.NewValidationError(map[string]string{"date": "Date has wrong format. Use YYYY-MM-DD."})
		}
		task.Date = parsed
	}
	if req.TargetSeconds != nil {
		task.TargetSeconds = *req.TargetSeconds
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}
	if err = ts.tasksRepo.Update(ctx, scope, &task.Task); err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) || errors.Is(err, errorvalues.ErrValidation) {
			return nil, err
		}
		return nil, fmt.Errorf("tasks repository error: %w", err)
	}
	return BuildTaskView(task, ts.now()), nil
}

func (ts *TasksService) Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) error {
	if err := ts.tasksRepo.Delete(ctx, scope, id); err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return err
		}
		return fmt.Errorf("tasks repository error: %w", err)
	}
	return nil
}

func (ts *TasksService) Stats(ctx context.Context, scope entity.Scope, date *time.Time) (*entity.TaskStats, error) {
	completed, pending, err := ts.tasksRepo.CountByStatus(ctx, scope, date)
	if err != nil {
		return nil, fmt.Errorf("tasks repository error: %w", err)
	}
	stats := &entity.TaskStats{
		Total:     completed + pending,
		Completed: completed,
		Pending:   pending,
	}
	if date != nil {
		d := date.Format(entity.DateLayout)
		stats.Date = &d
	}
	return stats, nil
}

func (ts *TasksService) Populate(ctx context.Context, scope entity.Scope, date time.Time) (int, error) {
	templates, err := ts.templatesRepo.ListActive(ctx, scope)
	if err != nil {
		return 0, fmt.Errorf("templates repository error: %w", err)
	}
	if len(templates) == 0 {
		return 0, nil
	}
	populated, err := ts.tasksRepo.TemplateIDsOnDate(ctx, scope, date)
	if err != nil {
		return 0, fmt.Errorf("tasks repository error: %w", err)
	}
	existing := make(map[uuid.UUID]struct{}, len(populated))
	for _, id := range populated {
		existing[id] = struct{}{}
	}
	created := 0
	for _, tmpl := range templates {
		if _, ok := existing[tmpl.ID]; ok {
			continue
		}
		inserted, err := ts.tasksRepo.CreateFromTemplate(ctx, tmpl, date)
		if err != nil {
			// Deleted between listing and inserting
			if errors.Is(err, errorvalues.ErrTemplateNotFound) {
				continue
			}
			return created, fmt.Errorf("tasks repository error: %w", err)
		}
		if inserted {
			created++
		}
	}
	metrics.TasksPopulated.Add(float64(created))
	slog.Debug("populated tasks from templates",
		slog.String("scope", scope.Key()),
		slog.String("date", date.Format(entity.DateLayout)),
		slog.Int("created", created))
	return created, nil
}
