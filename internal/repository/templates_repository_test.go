package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/timetrack/internal/error_values"
	"github.com/limbo/timetrack/internal/repository"
	"github.com/limbo/timetrack/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	userID         = uuid.New()
	templateFields = []string{"id", "user_id", "title", "description", "default_target_seconds", "is_active", "created_at"}
)

func templateRow(rows *pgxmock.Rows, tmpl *entity.HabitTemplate) *pgxmock.Rows {
	return rows.AddRow(tmpl.ID, tmpl.UserID, tmpl.Title, tmpl.Description, tmpl.DefaultTargetSeconds, tmpl.IsActive, tmpl.CreatedAt)
}

func TestCreateTemplate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewTemplatesRepoWithConn(mock)
	uid := userID
	tmpl := entity.HabitTemplate{
		UserID:               &uid,
		Title:                "reading",
		Description:          "30 pages",
		DefaultTargetSeconds: 1800,
		IsActive:             true,
	}
	query := regexp.QuoteMeta(`INSERT INTO habit_templates (user_id, title, description, default_target_seconds, is_active)`)
	ctx := context.Background()
	t.Run("created", func(t *testing.T) {
		stored := tmpl
		stored.ID = uuid.New()
		stored.CreatedAt = time.Now()
		mock.ExpectQuery(query).
			WithArgs(tmpl.UserID, tmpl.Title, tmpl.Description, tmpl.DefaultTargetSeconds, tmpl.IsActive).
			WillReturnRows(templateRow(pgxmock.NewRows(templateFields), &stored))
		result, err := repo.Create(ctx, &tmpl)
		assert.NoError(t, err)
		assert.Equal(t, stored, *result)
	})
	t.Run("owner missing", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(tmpl.UserID, tmpl.Title, tmpl.Description, tmpl.DefaultTargetSeconds, tmpl.IsActive).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		_, err := repo.Create(ctx, &tmpl)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(tmpl.UserID, tmpl.Title, tmpl.Description, tmpl.DefaultTargetSeconds, tmpl.IsActive).
			WillReturnError(errors.New("db error"))
		_, err := repo.Create(ctx, &tmpl)
		assert.Error(t, err)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTemplateByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewTemplatesRepoWithConn(mock)
	uid := userID
	tmpl := entity.HabitTemplate{
		ID:                   uuid.New(),
		UserID:               &uid,
		Title:                "reading",
		DefaultTargetSeconds: 1800,
		IsActive:             true,
		CreatedAt:            time.Now(),
	}
	ctx := context.Background()
	t.Run("user scope", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM habit_templates WHERE id = $1 AND user_id = $2;`)).
			WithArgs(tmpl.ID, userID).
			WillReturnRows(templateRow(pgxmock.NewRows(templateFields), &tmpl))
		result, err := repo.GetByID(ctx, entity.UserScope(userID), tmpl.ID)
		assert.NoError(t, err)
		assert.Equal(t, tmpl, *result)
	})
	t.Run("anonymous scope", func(t *testing.T) {
		anon := tmpl
		anon.UserID = nil
		mock.ExpectQuery(regexp.QuoteMeta(`FROM habit_templates WHERE id = $1 AND user_id IS NULL;`)).
			WithArgs(tmpl.ID).
			WillReturnRows(templateRow(pgxmock.NewRows(templateFields), &anon))
		result, err := repo.GetByID(ctx, entity.AnonymousScope(), tmpl.ID)
		assert.NoError(t, err)
		assert.Nil(t, result.UserID)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM habit_templates WHERE id = $1 AND user_id IS NULL;`)).
			WithArgs(tmpl.ID).
			WillReturnRows(pgxmock.NewRows(templateFields))
		_, err := repo.GetByID(ctx, entity.AnonymousScope(), tmpl.ID)
		assert.ErrorIs(t, err, errorvalues.ErrTemplateNotFound)
	})
	t.Run("schema missing", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM habit_templates WHERE id = $1 AND user_id IS NULL;`)).
			WithArgs(tmpl.ID).
			WillReturnError(&pgconn.PgError{Code: "42P01", Message: `relation "habit_templates" does not exist`})
		_, err := repo.GetByID(ctx, entity.AnonymousScope(), tmpl.ID)
		assert.ErrorIs(t, err, errorvalues.ErrDatabaseNotReady)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListActiveTemplates(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewTemplatesRepoWithConn(mock)
	rows := pgxmock.NewRows(templateFields)
	for _, title := range []string{"reading", "running", "piano"} {
		templateRow(rows, &entity.HabitTemplate{ID: uuid.New(), Title: title, IsActive: true, CreatedAt: time.Now()})
	}
	mock.ExpectQuery(regexp.QuoteMeta(`FROM habit_templates WHERE is_active AND user_id IS NULL ORDER BY created_at;`)).
		WillReturnRows(rows)
	result, err := repo.ListActive(context.Background(), entity.AnonymousScope())
	require.NoError(t, err)
	assert.Len(t, result, 3)
	assert.Equal(t, "piano", result[2].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTemplate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewTemplatesRepoWithConn(mock)
	tmpl := entity.HabitTemplate{ID: uuid.New(), Title: "reading", Description: "", DefaultTargetSeconds: 600, IsActive: false}
	query := regexp.QuoteMeta(`UPDATE habit_templates SET title = $1, description = $2, default_target_seconds = $3, is_active = $4`)
	ctx := context.Background()
	t.Run("updated", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(tmpl.Title, tmpl.Description, tmpl.DefaultTargetSeconds, tmpl.IsActive, tmpl.ID, userID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.Update(ctx, entity.UserScope(userID), &tmpl))
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(tmpl.Title, tmpl.Description, tmpl.DefaultTargetSeconds, tmpl.IsActive, tmpl.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, repo.Update(ctx, entity.AnonymousScope(), &tmpl), errorvalues.ErrTemplateNotFound)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTemplate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewTemplatesRepoWithConn(mock)
	id := uuid.New()
	query := regexp.QuoteMeta(`DELETE FROM habit_templates WHERE id = $1 AND user_id = $2;`)
	ctx := context.Background()
	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(id, userID).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		assert.NoError(t, repo.Delete(ctx, entity.UserScope(userID), id))
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(id, userID).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		assert.ErrorIs(t, repo.Delete(ctx, entity.UserScope(userID), id), errorvalues.ErrTemplateNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(id, userID).WillReturnError(errors.New("db error"))
		assert.Error(t, repo.Delete(ctx, entity.UserScope(userID), id))
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
