package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"generic error", errors.New("some error"), false},
		{"ErrNotFound", ErrNotFound, true},
		{"ErrUserNotFound", ErrUserNotFound, true},
		{"ErrAccountNotFound", ErrAccountNotFound, true},
		{"wrapped ErrCarrierNotFound", fmt.Errorf("load carrier: %w", ErrCarrierNotFound), true},
		{"store error around not found", NewStoreError("account", "update", "load", ErrAccountNotFound), true},
		{"ErrEmailExists", ErrEmailExists, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotFoundError(tt.err))
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(ErrEmailExists))
	assert.True(t, IsDuplicateError(fmt.Errorf("create user: %w", ErrEmailExists)))
	assert.False(t, IsDuplicateError(ErrUserNotFound))
	assert.False(t, IsDuplicateError(nil))
}

func TestEntityNotFoundErrorsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrAccountNotFound, ErrCarrierNotFound))
	assert.False(t, errors.Is(ErrUserNotFound, ErrAccountNotFound))
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewStoreError("carrier", "update", "failed to write carrier", cause)

	assert.Equal(t, "carrier update failed: failed to write carrier: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := NewStoreError("user", "delete", "no rows", nil)
	assert.Equal(t, "user delete failed: no rows", bare.Error())
	assert.Nil(t, bare.Unwrap())
}
