package repository

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassifyWriteError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"foreign key", &pgconn.PgError{Code: "23503"}, ErrInvalidReference},
		{"check", &pgconn.PgError{Code: "23514"}, ErrConstraintViolation},
		{"numeric out of range", &pgconn.PgError{Code: "22003"}, ErrConstraintViolation},
		{"unique is left to the caller", &pgconn.PgError{Code: "23505"}, nil},
		{"not a postgres error", errors.New("connection reset"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyWriteError(tt.err))
		})
	}
}
