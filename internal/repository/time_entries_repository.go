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

const entryColumns = `e.id, e.task_id, e.start_time, e.end_time, e.duration_seconds, e.created_at`

type TimeEntriesRepository struct {
	conn PgConnection
}

func NewTimeEntriesRepoWithConn(conn PgConnection) *TimeEntriesRepository {
	return &TimeEntriesRepository{
		conn: conn,
	}
}

func (er *TimeEntriesRepository) Start(ctx context.Context, scope entity.Scope, taskID uuid.UUID, now time.Time) (*entity.TimeEntry, []*entity.TimeEntry, error) {
	tx, err := er.conn.Begin(ctx)
	if err != nil {
		return nil, nil, dbError("beginning start timer transaction", err)
	}
	started, stopped, err := er.start(ctx, tx, scope, taskID, now)
	if err != nil {
		_ = tx.Rollback(ctx)
		return nil, nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, nil, dbError("committing start timer transaction", err)
	}
	return started, stopped, nil
}

func (er *TimeEntriesRepository) start(ctx context.Context, tx pgx.Tx, scope entity.Scope, taskID uuid.UUID, now time.Time) (*entity.TimeEntry, []*entity.TimeEntry, error) {
	// Serializes close-then-open for the whole scope until the transaction ends
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1));`, scope.Key()); err != nil {
		return nil, nil, dbError("locking timer scope", err)
	}
	owner, args := ownerFilter(scope, "t.user_id", nil)
	rows, err := tx.Query(ctx, `SELECT `+entryColumns+` FROM time_entries e JOIN tasks t ON t.id = e.task_id
		WHERE e.end_time IS NULL AND `+owner+` FOR UPDATE OF e;`, args...)
	if err != nil {
		return nil, nil, dbError("selecting running timers", err)
	}
	running, err := collectEntries(rows)
	if err != nil {
		return nil, nil, err
	}
	for _, entry := range running {
		if err := settle(ctx, tx, entry, now); err != nil {
			return nil, nil, err
		}
	}
	started, err := scanEntry(tx.QueryRow(ctx, `INSERT INTO time_entries AS e (task_id, start_time) VALUES ($1, $2)
		RETURNING `+entryColumns+`;`, taskID, now))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case codeFKViolation:
				return nil, nil, errorvalues.ErrTaskNotFound
			case codeUniqueViolation:
				return nil, nil, errorvalues.ErrTimerRunning
			}
		}
		return nil, nil, dbError("creating time entry", err)
	}
	return started, running, nil
}

func (er *TimeEntriesRepository) Stop(ctx context.Context, taskID uuid.UUID, now time.Time) (*entity.TimeEntry, error) {
	tx, err := er.conn.Begin(ctx)
	if err != nil {
		return nil, dbError("beginning stop timer transaction", err)
	}
	entry, err := scanEntry(tx.QueryRow(ctx, `SELECT `+entryColumns+` FROM time_entries e
		WHERE e.task_id = $1 AND e.end_time IS NULL ORDER BY e.start_time DESC LIMIT 1 FOR UPDATE;`, taskID))
	if err != nil {
		_ = tx.Rollback(ctx)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dbError("selecting running timer", err)
	}
	if err = settle(ctx, tx, entry, now); err != nil {
		_ = tx.Rollback(ctx)
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, dbError("committing stop timer transaction", err)
	}
	return entry, nil
}

// settle closes entry at now and persists its duration.
func settle(ctx context.Context, tx pgx.Tx, entry *entity.TimeEntry, now time.Time) error {
	end := now
	entry.EndTime = &end
	entry.DurationSeconds = entity.ElapsedSeconds(entry.StartTime, end)
	_, err := tx.Exec(ctx, `UPDATE time_entries SET end_time = $1, duration_seconds = $2 WHERE id = $3;`,
		end, entry.DurationSeconds, entry.ID)
	if err != nil {
		return dbError("settling time entry", err)
	}
	return nil
}

func (er *TimeEntriesRepository) ListByTask(ctx context.Context, taskID uuid.UUID) ([]*entity.TimeEntry, error) {
	rows, err := er.conn.Query(ctx, `SELECT `+entryColumns+` FROM time_entries e WHERE e.task_id = $1 ORDER BY e.start_time DESC;`, taskID)
	if err != nil {
		return nil, dbError("listing task time entries", err)
	}
	return collectEntries(rows)
}

func (er *TimeEntriesRepository) List(ctx context.Context, scope entity.Scope, taskID *uuid.UUID) ([]*entity.TimeEntry, error) {
	var args []any
	query := `SELECT ` + entryColumns + ` FROM time_entries e JOIN tasks t ON t.id = e.task_id WHERE `
	if taskID != nil {
		args = append(args, *taskID)
		query += `e.task_id = $1 AND `
	}
	owner, args := ownerFilter(scope, "t.user_id", args)
	rows, err := er.conn.Query(ctx, query+owner+` ORDER BY e.start_time DESC;`, args...)
	if err != nil {
		return nil, dbError("listing time entries", err)
	}
	return collectEntries(rows)
}

func (er *TimeEntriesRepository) ListByTaskDate(ctx context.Context, scope entity.Scope, date time.Time) ([]*entity.TimeEntry, error) {
	owner, args := ownerFilter(scope, "t.user_id", []any{date})
	rows, err := er.conn.Query(ctx, `SELECT `+entryColumns+` FROM time_entries e JOIN tasks t ON t.id = e.task_id
		WHERE t.date = $1 AND `+owner+` ORDER BY e.start_time;`, args...)
	if err != nil {
		return nil, dbError("listing time entries by task date", err)
	}
	return collectEntries(rows)
}

func (er *TimeEntriesRepository) Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) error {
	owner, args := ownerFilter(scope, "t.user_id", []any{id})
	ct, err := er.conn.Exec(ctx, `DELETE FROM time_entries e USING tasks t
		WHERE e.id = $1 AND t.id = e.task_id AND `+owner+`;`, args...)
	if err != nil {
		return dbError("deleting time entry", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTimeEntryNotFound
	}
	return nil
}

// collectEntries drains and closes rows, so the connection is free for the next statement.
func collectEntries(rows pgx.Rows) ([]*entity.TimeEntry, error) {
	defer rows.Close()
	entries := make([]*entity.TimeEntry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, errors.New("unmarshalling time entry error: " + err.Error())
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("iterating time entries", err)
	}
	return entries, nil
}

func scanEntry(row pgx.Row) (*entity.TimeEntry, error) {
	var entry entity.TimeEntry
	err := row.Scan(&entry.ID, &entry.TaskID, &entry.StartTime, &entry.EndTime, &entry.DurationSeconds, &entry.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
