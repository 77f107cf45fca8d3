package ledger

import (
	"errors"
	"fmt"
	"testing"

	"bookkeeper/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"unique violation", &pgconn.PgError{Code: "23505"}, domain.ErrConflict},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, domain.ErrValidation},
		{"check violation", fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "23514"}), domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := writeError("create", "verification row", tt.err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestWriteError_PassesThroughOtherErrors(t *testing.T) {
	cause := errors.New("connection reset")

	err := writeError("update", "transaction", cause)

	assert.ErrorIs(t, err, cause)
	assert.EqualError(t, err, "update transaction: connection reset")
	assert.NotErrorIs(t, err, domain.ErrValidation)
}
