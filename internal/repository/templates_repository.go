package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/timetrack/internal/error_values"
	"github.com/limbo/timetrack/pkg/entity"
)

const templateColumns = `id, user_id, title, description, default_target_seconds, is_active, created_at`

type TemplatesRepository struct {
	conn PgConnection
}

func NewTemplatesRepoWithConn(conn PgConnection) *TemplatesRepository {
	return &TemplatesRepository{
		conn: conn,
	}
}

func (tr *TemplatesRepository) Create(ctx context.Context, tmpl *entity.HabitTemplate) (*entity.HabitTemplate, error) {
	row := tr.conn.QueryRow(ctx, `INSERT INTO habit_templates (user_id, title, description, default_target_seconds, is_active)
		VALUES ($1, $2, $3, $4, $5) RETURNING `+templateColumns+`;`,
		tmpl.UserID,
		tmpl.Title,
		tmpl.Description,
		tmpl.DefaultTargetSeconds,
		tmpl.IsActive,
	)
	created, err := scanTemplate(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == codeFKViolation {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, dbError("creating habit template", err)
	}
	return created, nil
}

func (tr *TemplatesRepository) GetByID(ctx context.Context, scope entity.Scope, id uuid.UUID) (*entity.HabitTemplate, error) {
	owner, args := ownerFilter(scope, "user_id", []any{id})
	row := tr.conn.QueryRow(ctx, `SELECT `+templateColumns+` FROM habit_templates WHERE id = $1 AND `+owner+`;`, args...)
	tmpl, err := scanTemplate(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTemplateNotFound
		}
		return nil, dbError("getting habit template by id", err)
	}
	return tmpl, nil
}

func (tr *TemplatesRepository) List(ctx context.Context, scope entity.Scope) ([]*entity.HabitTemplate, error) {
	owner, args := ownerFilter(scope, "user_id", nil)
	return tr.list(ctx, `SELECT `+templateColumns+` FROM habit_templates WHERE `+owner+` ORDER BY created_at DESC;`, args)
}

func (tr *TemplatesRepository) ListActive(ctx context.Context, scope entity.Scope) ([]*entity.HabitTemplate, error) {
	owner, args := ownerFilter(scope, "user_id", nil)
	return tr.list(ctx, `SELECT `+templateColumns+` FROM habit_templates WHERE is_active AND `+owner+` ORDER BY created_at;`, args)
}

func (tr *TemplatesRepository) list(ctx context.Context, query string, args []any) ([]*entity.HabitTemplate, error) {
	rows, err := tr.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, dbError("listing habit templates", err)
	}
	defer rows.Close()
	templates := make([]*entity.HabitTemplate, 0)
	for rows.Next() {
		tmpl, err := scanTemplate(rows)
		if err != nil {
			return nil, errors.New("unmarshalling habit template error: " + err.Error())
		}
		templates = append(templates, tmpl)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("iterating habit templates", err)
	}
	return templates, nil
}

func (tr *TemplatesRepository) Update(ctx context.Context, scope entity.Scope, tmpl *entity.HabitTemplate) error {
	owner, args := ownerFilter(scope, "user_id", []any{
		tmpl.Title, tmpl.Description, tmpl.DefaultTargetSeconds, tmpl.IsActive, tmpl.ID,
	})
	ct, err := tr.conn.Exec(ctx, `UPDATE habit_templates SET title = $1, description = $2, default_target_seconds = $3, is_active = $4
		WHERE id = $5 AND `+owner+`;`, args...)
	if err != nil {
		return dbError("updating habit template", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTemplateNotFound
	}
	return nil
}

func (tr *TemplatesRepository) Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) error {
	owner, args := ownerFilter(scope, "user_id", []any{id})
	ct, err := tr.conn.Exec(ctx, `DELETE FROM habit_templates WHERE id = $1 AND `+owner+`;`, args...)
	if err != nil {
		return dbError("deleting habit template", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTemplateNotFound
	}
	return nil
}

func scanTemplate(row pgx.Row) (*entity.HabitTemplate, error) {
	var tmpl entity.HabitTemplate
	err := row.Scan(&tmpl.ID, &tmpl.UserID, &tmpl.Title, &tmpl.Description,
		&tmpl.DefaultTargetSeconds, &tmpl.IsActive, &tmpl.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &tmpl, nil
}
