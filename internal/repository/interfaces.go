package repository

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/timetrack/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Deletes user together with everything the user owns
	Delete(ctx context.Context, uid uuid.UUID) error
}

type TemplatesRepositoryI interface {
	// Creates template, owner is taken from tmpl.UserID. Returns the stored row
	Create(ctx context.Context, tmpl *entity.HabitTemplate) (*entity.HabitTemplate, error)
	GetByID(ctx context.Context, scope entity.Scope, id uuid.UUID) (*entity.HabitTemplate, error)
	// Lists templates of the scope, newest first
	List(ctx context.Context, scope entity.Scope) ([]*entity.HabitTemplate, error)
	// Lists templates of the scope with is_active set
	ListActive(ctx context.Context, scope entity.Scope) ([]*entity.HabitTemplate, error)
	Update(ctx context.Context, scope entity.Scope, tmpl *entity.HabitTemplate) error
	// Deletes template. Tasks created from it keep living with a NULL back-reference
	Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) error
}

type TasksRepositoryI interface {
	Create(ctx context.Context, task *entity.Task) (*entity.Task, error)
	// Task with its time aggregates
	GetByID(ctx context.Context, scope entity.Scope, id uuid.UUID) (*entity.TrackedTask, error)
	// Tasks of the scope dated date with their time aggregates, newest first
	ListByDate(ctx context.Context, scope entity.Scope, date time.Time) ([]*entity.TrackedTask, error)
	Update(ctx context.Context, scope entity.Scope, task *entity.Task) error
	Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) error
	// Counts completed and pending tasks. A nil date counts every task of the scope
	CountByStatus(ctx context.Context, scope entity.Scope, date *time.Time) (completed, pending int, err error)
	// Template ids already having a task on date
	TemplateIDsOnDate(ctx context.Context, scope entity.Scope, date time.Time) ([]uuid.UUID, error)
	// Creates the daily task for tmpl unless one exists. Reports whether a row was inserted
	CreateFromTemplate(ctx context.Context, tmpl *entity.HabitTemplate, date time.Time) (bool, error)
}

type TimeEntriesRepositoryI interface {
	// Closes every running entry of the scope at now and opens a new one for taskID, atomically
	Start(ctx context.Context, scope entity.Scope, taskID uuid.UUID, now time.Time) (*entity.TimeEntry, []*entity.TimeEntry, error)
	// Closes the running entry of taskID at now. Returns nil entry when nothing is running
	Stop(ctx context.Context, taskID uuid.UUID, now time.Time) (*entity.TimeEntry, error)
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]*entity.TimeEntry, error)
	// Lists entries of the scope, optionally narrowed to one task, latest start first
	List(ctx context.Context, scope entity.Scope, taskID *uuid.UUID) ([]*entity.TimeEntry, error)
	// Entries of the scope's tasks dated date, running ones included
	ListByTaskDate(ctx context.Context, scope entity.Scope, date time.Time) ([]*entity.TimeEntry, error)
	Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
