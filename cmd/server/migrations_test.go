package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrationsRejectsUnknownCommand(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	err := runMigrations(context.Background(), nil, "redo-everything", logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown migration command")
}

func TestSlogGooseLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := &slogGooseLogger{logger: slog.New(slog.NewJSONHandler(&buf, nil))}

	l.Printf("OK   %s", "00001_create_users.sql")
	l.Fatalf("failed: %d", 3)

	out := buf.String()
	assert.Contains(t, out, "00001_create_users.sql")
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, "failed: 3")
}

func TestMaskDatabaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"postgres://colis:s3cret@db:5432/colis?sslmode=disable", "postgres://colis:xxxxx@db:5432/colis?sslmode=disable"},
		{"postgres://colis@db:5432/colis", "postgres://colis@db:5432/colis"},
		{"postgres://db/colis", "postgres://db/colis"},
		{"://bad", "invalid-url"},
	}

	for _, tt := range tests {
		got := maskDatabaseURL(tt.in)
		assert.Equal(t, tt.want, got)
		assert.NotContains(t, got, "s3cret")
	}
}
