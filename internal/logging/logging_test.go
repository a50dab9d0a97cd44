package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "warn", Format: "json", Writer: &buf})

	logger.Info("dropped")
	logger.Warn("kept", "media_id", 7)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "kept", record["msg"])
	assert.Equal(t, float64(7), record["media_id"])
}

func TestNewTextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "debug", Format: "text", Writer: &buf})

	logger.Debug("hello", "user", "alice")

	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "user=alice")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestContextHelpers(t *testing.T) {
	ctx := ContextWithRequestID(context.Background(), "  ")
	_, ok := RequestIDFromContext(ctx)
	assert.False(t, ok)

	ctx = ContextWithRequestID(ctx, "req-1")
	id, ok := RequestIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "req-1", id)

	fallback := Discard()
	assert.Same(t, fallback, FromContext(ctx, fallback))

	scoped := fallback.With("request_id", id)
	ctx = ContextWithLogger(ctx, scoped)
	assert.Same(t, scoped, FromContext(ctx, fallback))
}
