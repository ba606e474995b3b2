package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

// Queries holds no state; the connection is passed per call so the same
// instance serves pooled reads and transactional writes.
type Queries struct{}

func New() *Queries {
	return &Queries{}
}

const advisoryXactLock = `SELECT pg_advisory_xact_lock($1::int4, $2::int4)`

// AdvisoryXactLock takes a transaction-scoped advisory lock on (key1, key2).
func (q *Queries) AdvisoryXactLock(ctx context.Context, db DBTX, key1, key2 int32) error {
	_, err := db.Exec(ctx, advisoryXactLock, key1, key2)
	return err
}

func collectOne[T any](rows pgx.Rows, err error) (T, error) {
	if err != nil {
		var zero T
		return zero, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
}

func collectAll[T any](rows pgx.Rows, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[T])
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
