package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/timetrack/internal/error_values"
	"github.com/limbo/timetrack/pkg/entity"
)

const (
	taskColumns = `id, user_id, habit_template_id, title, description, date, target_seconds, completed, created_at`

	// Task columns plus its time aggregates. Callers append the WHERE clause on alias t.
	trackedTaskSelect = `SELECT t.id, t.user_id, t.habit_template_id, t.title, t.description, t.date, t.target_seconds, t.completed, t.created_at,
		a.start_time IS NOT NULL, a.start_time,
		COALESCE((SELECT SUM(e.duration_seconds) FROM time_entries e WHERE e.task_id = t.id), 0)
	FROM tasks t
	LEFT JOIN LATERAL (
		SELECT r.start_time FROM time_entries r WHERE r.task_id = t.id AND r.end_time IS NULL ORDER BY r.start_time DESC LIMIT 1
	) a ON TRUE`
)

type TasksRepository struct {
	conn PgConnection
}

func NewTasksRepoWithConn(conn PgConnection) *TasksRepository {
	return &TasksRepository{
		conn: conn,
	}
}

func (tr *TasksRepository) Create(ctx context.Context, task *entity.Task) (*entity.Task, error) {
	row := tr.conn.QueryRow(ctx, `INSERT INTO tasks (user_id, habit_template_id, title, description, date, target_seconds, completed)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING `+taskColumns+`;`,
		task.UserID,
		task.HabitTemplateID,
		task.Title,
		task.Description,
		task.Date,
		task.TargetSeconds,
		task.Completed,
	)
	created, err := scanTask(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == codeFKViolation {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, dbError("creating task", err)
	}
	return created, nil
}

func (tr *TasksRepository) GetByID(ctx context.Context, scope entity.Scope, id uuid.UUID) (*entity.TrackedTask, error) {
	owner, args := ownerFilter(scope, "t.user_id", []any{id})
	row := tr.conn.QueryRow(ctx, trackedTaskSelect+`
	WHERE t.id = $1 AND `+owner+`;`, args...)
	task, err := scanTrackedTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTaskNotFound
		}
		return nil, dbError("getting task by id", err)
	}
	return task, nil
}

func (tr *TasksRepository) ListByDate(ctx context.Context, scope entity.Scope, date time.Time) ([]*entity.TrackedTask, error) {
	owner, args := ownerFilter(scope, "t.user_id", []any{date})
	rows, err := tr.conn.Query(ctx, trackedTaskSelect+`
	WHERE t.date = $1 AND `+owner+`
	ORDER BY t.created_at DESC;`, args...)
	if err != nil {
		return nil, dbError("listing tasks by date", err)
	}
	defer rows.Close()
	tasks := make([]*entity.TrackedTask, 0)
	for rows.Next() {
		task, err := scanTrackedTask(rows)
		if err != nil {
			return nil, errors.New("unmarshalling task error: " + err.Error())
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("iterating tasks", err)
	}
	return tasks, nil
}

func (tr *TasksRepository) Update(ctx context.Context, scope entity.Scope, task *entity.Task) error {
	owner, args := ownerFilter(scope, "user_id", []any{
		task.Title, task.Description, task.Date, task.TargetSeconds, task.Completed, task.ID,
	})
	ct, err := tr.conn.Exec(ctx, `UPDATE tasks SET title = $1, description = $2, date = $3, target_seconds = $4, completed = $5
		WHERE id = $6 AND `+owner+`;`, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation {
			return errorvalues.NewValidationError(map[string]string{
				"date": "a task from the same template already exists on this date",
			})
		}
		return dbError("updating task", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTaskNotFound
	}
	return nil
}

func (tr *TasksRepository) Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) error {
	owner, args := ownerFilter(scope, "user_id", []any{id})
	ct, err := tr.conn.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND `+owner+`;`, args...)
	if err != nil {
		return dbError("deleting task", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTaskNotFound
	}
	return nil
}

func (tr *TasksRepository) CountByStatus(ctx context.Context, scope entity.Scope, date *time.Time) (int, int, error) {
	var args []any
	query := `SELECT COUNT(*) FILTER (WHERE completed), COUNT(*) FILTER (WHERE NOT completed) FROM tasks WHERE `
	if date != nil {
		args = append(args, *date)
		query += `date = $1 AND `
	}
	owner, args := ownerFilter(scope, "user_id", args)
	var completed, pending int
	if err := tr.conn.QueryRow(ctx, query+owner+`;`, args...).Scan(&completed, &pending); err != nil {
		return 0, 0, dbError("counting tasks", err)
	}
	return completed, pending, nil
}

func (tr *TasksRepository) TemplateIDsOnDate(ctx context.Context, scope entity.Scope, date time.Time) ([]uuid.UUID, error) {
	owner, args := ownerFilter(scope, "user_id", []any{date})
	rows, err := tr.conn.Query(ctx, `SELECT DISTINCT habit_template_id FROM tasks
		WHERE date = $1 AND habit_template_id IS NOT NULL AND `+owner+`;`, args...)
	if err != nil {
		return nil, dbError("listing populated templates", err)
	}
	defer rows.Close()
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, errors.New("unmarshalling template id error: " + err.Error())
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("iterating populated templates", err)
	}
	return ids, nil
}

func (tr *TasksRepository) CreateFromTemplate(ctx context.Context, tmpl *entity.HabitTemplate, date time.Time) (bool, error) {
	// uq_tasks_template_date keeps concurrent populate calls from doubling a day
	ct, err := tr.conn.Exec(ctx, `INSERT INTO tasks (user_id, habit_template_id, title, description, date, target_seconds)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (habit_template_id, date) WHERE habit_template_id IS NOT NULL DO NOTHING;`,
		tmpl.UserID,
		tmpl.ID,
		tmpl.Title,
		tmpl.Description,
		date,
		tmpl.DefaultTargetSeconds,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == codeFKViolation {
			return false, errorvalues.ErrTemplateNotFound
		}
		return false, dbError("creating task from template", err)
	}
	return ct.RowsAffected() > 0, nil
}

func scanTask(row pgx.Row) (*entity.Task, error) {
	var task entity.Task
	err := row.Scan(&task.ID, &task.UserID, &task.HabitTemplateID, &task.Title, &task.Description,
		&task.Date, &task.TargetSeconds, &task.Completed, &task.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func scanTrackedTask(row pgx.Row) (*entity.TrackedTask, error) {
	var task entity.TrackedTask
	err := row.Scan(&task.ID, &task.UserID, &task.HabitTemplateID, &task.Title, &task.Description,
		&task.Date, &task.TargetSeconds, &task.Completed, &task.CreatedAt,
		&task.HasActiveTimer, &task.ActiveStartTime, &task.TotalTimeSeconds)
	if err != nil {
		return nil, err
	}
	return &task, nil
}
