package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/timetrack/pkg/entity"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type CreateTemplateRequest struct {
	Title                string `json:"title" validate:"required,max=255"`
	Description          string `json:"description"`
	DefaultTargetSeconds int    `json:"default_target_seconds" validate:"gte=0,max=2147483647"`
	// Defaults to true when omitted
	IsActive *bool `json:"is_active"`
}

// UpdateTemplateRequest is a partial update, nil fields are left untouched.
type UpdateTemplateRequest struct {
	Title                *string `json:"title" validate:"omitnil,min=1,max=255"`
	Description          *string `json:"description"`
	DefaultTargetSeconds *int    `json:"default_target_seconds" validate:"omitnil,gte=0,max=2147483647"`
	IsActive             *bool   `json:"is_active"`
}

type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
	// YYYY-MM-DD, today when empty
	Date          string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	TargetSeconds int    `json:"target_seconds" validate:"gte=0,max=2147483647"`
	Completed     bool   `json:"completed"`
}

// UpdateTaskRequest is a partial update, nil fields are left untouched.
type UpdateTaskRequest struct {
	Title         *string `json:"title" validate:"omitnil,min=1,max=255"`
	Description   *string `json:"description"`
	Date          *string `json:"date" validate:"omitnil,datetime=2006-01-02"`
	TargetSeconds *int    `json:"target_seconds" validate:"omitnil,gte=0,max=2147483647"`
	Completed     *bool   `json:"completed"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type TemplatesServiceI interface {
	List(ctx context.Context, scope entity.Scope) ([]*entity.HabitTemplate, error)
	Get(ctx context.Context, scope entity.Scope, id uuid.UUID) (*entity.HabitTemplate, error)
	Create(ctx context.Context, scope entity.Scope, req *CreateTemplateRequest) (*entity.HabitTemplate, error)
	Update(ctx context.Context, scope entity.Scope, id uuid.UUID, req *UpdateTemplateRequest) (*entity.HabitTemplate, error)
	Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) error
}

type TasksServiceI interface {
	// Tasks of the scope dated date, with progress fields
	List(ctx context.Context, scope entity.Scope, date time.Time) ([]*entity.TaskView, error)
	Get(ctx context.Context, scope entity.Scope, id uuid.UUID) (*entity.TaskView, error)
	Create(ctx context.Context, scope entity.Scope, req *CreateTaskRequest) (*entity.TaskView, error)
	Update(ctx context.Context, scope entity.Scope, id uuid.UUID, req *UpdateTaskRequest) (*entity.TaskView, error)
	Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) error
	// Completed/pending counters. Nil date counts every task of the scope
	Stats(ctx context.Context, scope entity.Scope, date *time.Time) (*entity.TaskStats, error)
	// Creates the missing daily tasks from active templates. Returns how many were created
	Populate(ctx context.Context, scope entity.Scope, date time.Time) (int, error)
}

type TimerServiceI interface {
	// Stops every running timer of the scope and starts one for the task
	StartTimer(ctx context.Context, scope entity.Scope, taskID uuid.UUID) (*entity.TimeEntry, error)
	// Stops the task's timer. Nil entry with nil error means nothing was running
	StopTimer(ctx context.Context, scope entity.Scope, taskID uuid.UUID) (*entity.TimeEntry, error)
}

type TimeEntriesServiceI interface {
	List(ctx context.Context, scope entity.Scope, taskID *uuid.UUID) ([]*entity.TimeEntry, error)
	ListForTask(ctx context.Context, scope entity.Scope, taskID uuid.UUID) ([]*entity.TimeEntry, error)
	Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) error
}

type DashboardServiceI interface {
	Dashboard(ctx context.Context, scope entity.Scope, date time.Time) (*entity.Dashboard, error)
}

type WorldTimeServiceI interface {
	Now(ctx context.Context) (*entity.WorldTime, error)
}
