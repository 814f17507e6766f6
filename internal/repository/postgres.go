package repository

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/limbo/timetrack/internal/error_values"
	"github.com/limbo/timetrack/pkg/cleanup"
	"github.com/limbo/timetrack/pkg/entity"
)

// Postgres error codes the repositories react to.
const (
	codeUniqueViolation    = "23505"
	codeFKViolation        = "23503"
	codeUndefinedTable     = "42P01"
	codeUndefinedColumn    = "42703"
	codeInvalidCatalogName = "3D000"
	codeNumericOutOfRange  = "22003"
)

// NewPool opens a pgx pool shared by every repository and registers its closing as a cleanup job.
func NewPool(ctx context.Context, cfg DBConfig) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.ConnString())
	if err != nil {
		return nil, errors.New("creating pgxpool error: " + err.Error())
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.New("pinging pgxpool error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return pool, nil
}

// ownerFilter renders the owner predicate on column. The anonymous bucket and a user
// go through separate predicates, so a user id can never match anonymous rows.
func ownerFilter(scope entity.Scope, column string, args []any) (string, []any) {
	if scope.IsAnonymous() {
		return column + " IS NULL", args
	}
	args = append(args, *scope.UserID)
	return column + " = " + placeholder(len(args)), args
}

func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

// dbError maps schema problems and unreachable servers to ErrDatabaseNotReady and
// out of range values to a ValidationError. Anything else keeps its text.
func dbError(op string, err error) error {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fmt.Errorf("%s: %w: cannot connect to postgres", op, errorvalues.ErrDatabaseNotReady)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUndefinedTable, codeUndefinedColumn, codeInvalidCatalogName:
			return fmt.Errorf("%s: %w: %s", op, errorvalues.ErrDatabaseNotReady, pgErr.Message)
		case codeNumericOutOfRange:
			field := pgErr.ColumnName
			if field == "" {
				field = "non_field_errors"
			}
			return errorvalues.NewValidationError(map[string]string{field: "Value is out of range."})
		}
	}
	var netErr *net.OpError
	if errors.As(err, &netErr) {
		return fmt.Errorf("%s: %w: %s", op, errorvalues.ErrDatabaseNotReady, netErr.Error())
	}
	return errors.New(op + " error: " + err.Error())
}
