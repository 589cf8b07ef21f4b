package postgres_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/colis-app/colis-api/internal/platform/postgres"
	"github.com/colis-app/colis-api/internal/store"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPgError(code string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           code,
		Message:        "error message",
		SchemaName:     "public",
		TableName:      "users",
		ColumnName:     "email",
		ConstraintName: "users_email_active_key",
	}
}

// mockResult implements sql.Result for testing
type mockResult struct {
	rowsAffected int64
	err          error
}

func (m mockResult) LastInsertId() (int64, error) { return 0, m.err }
func (m mockResult) RowsAffected() (int64, error) { return m.rowsAffected, m.err }

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"non-postgres error", errors.New("generic error"), false},
		{"unique violation", newPgError("23505"), true},
		{"wrapped unique violation", fmt.Errorf("insert: %w", newPgError("23505")), true},
		{"foreign key violation", newPgError("23503"), false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, postgres.IsUniqueViolation(tt.err))
		})
	}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	generic := errors.New("connection reset")

	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{"no rows", sql.ErrNoRows, store.ErrAccountNotFound},
		{"unique violation", newPgError("23505"), store.ErrEmailExists},
		{"foreign key violation", newPgError("23503"), store.ErrInvalidEntity},
		{"check violation", newPgError("23514"), store.ErrInvalidEntity},
		{"not null violation", newPgError("23502"), store.ErrInvalidEntity},
		{"unmapped error", generic, generic},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mapped := postgres.MapError(tt.err, store.ErrAccountNotFound, store.ErrEmailExists)
			assert.ErrorIs(t, mapped, tt.expected)
		})
	}

	assert.NoError(t, postgres.MapError(nil, store.ErrAccountNotFound, store.ErrEmailExists))
}

func TestMapErrorDoesNotLeakDriverDetails(t *testing.T) {
	t.Parallel()

	pgErr := newPgError("23505")
	pgErr.Detail = "Key (lower(email))=(alice@example.com) already exists."

	mapped := postgres.MapError(pgErr, store.ErrUserNotFound, store.ErrEmailExists)
	require.Error(t, mapped)
	assert.NotContains(t, mapped.Error(), "alice@example.com")
}

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	t.Run("one row", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, postgres.CheckRowsAffected(mockResult{rowsAffected: 1}, store.ErrCarrierNotFound))
	})

	t.Run("zero rows", func(t *testing.T) {
		t.Parallel()
		err := postgres.CheckRowsAffected(mockResult{}, store.ErrCarrierNotFound)
		assert.ErrorIs(t, err, store.ErrCarrierNotFound)
	})

	t.Run("driver error", func(t *testing.T) {
		t.Parallel()
		err := postgres.CheckRowsAffected(mockResult{err: errors.New("boom")}, store.ErrCarrierNotFound)
		require.Error(t, err)
		assert.NotErrorIs(t, err, store.ErrCarrierNotFound)
	})

	t.Run("nil result", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, postgres.CheckRowsAffected(nil, store.ErrCarrierNotFound))
	})
}
