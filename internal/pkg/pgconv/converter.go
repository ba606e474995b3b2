package pgconv

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// SQLSTATE codes the repositories react to.
const (
	CodeUniqueViolation    = "23505"
	CodeForeignKeyViolated = "23503"
	CodeExclusionViolation = "23P01"
	CodeCheckViolation     = "23514"
)

func TextFromPtr(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func PtrFromText(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	v := pt.String
	return &v
}

// IsNoRows checks if the error is a "no rows" error from pgx
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// PgCode returns the SQLSTATE of a Postgres error, or "" for anything else.
func PgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
