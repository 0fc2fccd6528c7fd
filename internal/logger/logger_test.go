// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	return entry
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("cli")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "cli", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	var buf bytes.Buffer
	l.Logger = l.Output(&buf)
	l.Error().Msg("dropped")
	assert.Empty(t, buf.String())
}

func TestChildLoggers_InheritRole(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf).With().Str("role", "securepass").Logger()}

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)
	child.Info().Msg("child")
	assert.Equal(t, "securepass", decodeEntry(t, &buf)["role"])

	buf.Reset()
	parent.WithComponent("vault").Info().Msg("tagged")
	entry := decodeEntry(t, &buf)
	assert.Equal(t, "securepass", entry["role"])
	assert.Equal(t, "vault", entry["component"])
}

func TestFromContext(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))

	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("component", "tui").Logger()
	FromContext(zl.WithContext(context.Background())).Info().Msg("from context")
	assert.Equal(t, "tui", decodeEntry(t, &buf)["component"])
}

// TestNewFileLogger_WritesToFile verifies that entries are appended to the
// configured file and carry the role field.
func TestNewFileLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "vault.log")

	l, closer, err := NewFileLogger("client", path, "debug")
	require.NoError(t, err)
	l.Debug().Msg("written")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "client", entry["role"])
	assert.Equal(t, "written", entry["message"])
}

// TestNewFileLogger_RespectsLevel verifies that entries below the configured
// level are dropped.
func TestNewFileLogger_RespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.log")

	l, closer, err := NewFileLogger("client", path, "warn")
	require.NoError(t, err)
	l.Info().Msg("dropped")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

// TestNewFileLogger_UnopenablePath verifies that an unusable path yields an
// error together with a usable discarding logger.
func TestNewFileLogger_UnopenablePath(t *testing.T) {
	dir := t.TempDir()

	l, closer, err := NewFileLogger("client", dir, "info")
	require.Error(t, err)
	require.NotNil(t, l)
	require.NotNil(t, closer)
	l.Info().Msg("discarded")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{" WARN ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"nonsense", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}
