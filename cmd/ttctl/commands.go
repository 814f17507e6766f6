package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/pressly/goose"

	"github.com/limbo/timetrack/internal/repository"
	"github.com/limbo/timetrack/internal/service"
	"github.com/limbo/timetrack/pkg/config"
	"github.com/limbo/timetrack/pkg/entity"
)

type appContext struct {
	cfg *config.Config
}

func (a *appContext) pgConfig() *repository.PGCfg {
	return &repository.PGCfg{
		Address:  a.cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: a.cfg.GetString("POSTGRES_USER"),
		Password: a.cfg.GetString("POSTGRES_PASSWORD"),
		DB:       a.cfg.GetString("POSTGRES_DB"),
	}
}

type MigrateCmd struct {
	Dir string `help:"Directory with goose migrations." default:"./migrations" type:"path"`
}

func (c *MigrateCmd) Run(app *appContext) error {
	db, err := sql.Open("postgres", app.pgConfig().ConnString()+"?sslmode=disable")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()
	if err = goose.Up(db, c.Dir); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}
	slog.Info("migrations applied", slog.String("dir", c.Dir))
	return nil
}

type PopulateCmd struct {
	Date string `help:"Day to populate (YYYY-MM-DD). Today when empty."`
	User string `help:"User id to populate for. The anonymous bucket when empty."`
}

func (c *PopulateCmd) Run(app *appContext) error {
	loc := app.cfg.Location()
	date := entity.Day(time.Now(), loc)
	if c.Date != "" {
		d, err := time.Parse(entity.DateLayout, c.Date)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", c.Date, err)
		}
		date = d
	}
	scope := entity.AnonymousScope()
	if c.User != "" {
		uid, err := uuid.Parse(c.User)
		if err != nil {
			return fmt.Errorf("invalid --user %q: %w", c.User, err)
		}
		scope = entity.UserScope(uid)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	pool, err := repository.NewPool(ctx, app.pgConfig())
	if err != nil {
		return err
	}
	tasks := service.NewTasksService(
		repository.NewTasksRepoWithConn(pool),
		repository.NewTemplatesRepoWithConn(pool),
		loc,
	)
	created, err := tasks.Populate(ctx, scope, date)
	if err != nil {
		return err
	}
	fmt.Printf("created %d task(s) for %s in %s\n", created, date.Format(entity.DateLayout), scope.Key())
	return nil
}
