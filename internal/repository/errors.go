package repository

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres SQLSTATE codes for constraint violations
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
	pgNumericOutOfRange   = "22003"
)

var (
	// ErrInvalidReference is returned when an insert points at a row that does not exist
	ErrInvalidReference = errors.New("referenced record does not exist")
	// ErrConstraintViolation is returned when a value breaks a check constraint
	ErrConstraintViolation = errors.New("value violates a constraint")
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return pgErrorCode(err) == pgUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	return pgErrorCode(err) == pgForeignKeyViolation
}

func isCheckViolation(err error) bool {
	return pgErrorCode(err) == pgCheckViolation
}

// classifyWriteError maps constraint violations on inserts to sentinel errors
func classifyWriteError(err error) error {
	switch {
	case isForeignKeyViolation(err):
		return ErrInvalidReference
	case isCheckViolation(err), pgErrorCode(err) == pgNumericOutOfRange:
		return ErrConstraintViolation
	}
	return nil
}

// nullable stores empty strings as NULL
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
