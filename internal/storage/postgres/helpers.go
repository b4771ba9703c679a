package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgx operations shared by *pgxpool.Pool and
// pgx.Tx, so repository helpers run both inside and outside transactions.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// isPgErr reports whether err is a Postgres error with the given code.
func isPgErr(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// loadStringList fetches the value column of a (owner_id, value) join
// table for a single owner, preserving insertion order.
func loadStringList(ctx context.Context, q Querier, query string, ownerID uuid.UUID) ([]string, error) {
	rows, err := q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// replaceStringList rewrites a (owner_id, value) join table for one owner.
func replaceStringList(ctx context.Context, q Querier, deleteQuery, insertQuery string, ownerID uuid.UUID, values []string) error {
	if _, err := q.Exec(ctx, deleteQuery, ownerID); err != nil {
		return err
	}
	for i, v := range values {
		if _, err := q.Exec(ctx, insertQuery, ownerID, v, i); err != nil {
			return err
		}
	}
	return nil
}
