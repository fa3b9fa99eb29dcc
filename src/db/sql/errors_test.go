package db

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"no rows", pgx.ErrNoRows, ErrNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, ErrConflict},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, ErrNotFound},
		{"other pg error", &pgconn.PgError{Code: "57014"}, nil},
		{"plain error", errors.New("boom"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.in)
			if tt.want != nil {
				assert.ErrorIs(t, got, tt.want)
				return
			}
			// Untranslated errors pass through unchanged.
			assert.Equal(t, tt.in, got)
			assert.NotErrorIs(t, got, ErrNotFound)
			assert.NotErrorIs(t, got, ErrConflict)
		})
	}
}
