// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-gesture-vault/internal/config"
	"github.com/MKhiriev/go-gesture-vault/internal/logger"
)

// ── shared behaviour ──────────────────────────────────────────────────────────

func exerciseSlotStorage(t *testing.T, s SlotStorage) {
	t.Helper()
	ctx := context.Background()

	_, found, err := s.GetSlot(ctx, "securepass_passwords")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.SetSlot(ctx, "securepass_passwords", `{"data":"a"}`))
	require.NoError(t, s.SetSlot(ctx, "securepass_passwords", `{"data":"b"}`))
	require.NoError(t, s.SetSlot(ctx, "securepass_test", "marker"))
	require.NoError(t, s.SetSlot(ctx, "securepassXother", "not ours"))
	require.NoError(t, s.SetSlot(ctx, "vault_last_import_mode", "merge"))

	v, found, err := s.GetSlot(ctx, "securepass_passwords")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"data":"b"}`, v)

	keys, err := s.ListSlots(ctx, "securepass_")
	require.NoError(t, err)
	assert.Equal(t, []string{"securepass_passwords", "securepass_test"}, keys)

	require.NoError(t, s.RemoveSlot(ctx, "securepass_test"))
	require.NoError(t, s.RemoveSlot(ctx, "securepass_missing"))

	_, found, err = s.GetSlot(ctx, "securepass_test")
	require.NoError(t, err)
	assert.False(t, found)
}

// ── memory ────────────────────────────────────────────────────────────────────

func TestMemorySlotStorage(t *testing.T) {
	exerciseSlotStorage(t, NewMemorySlotStorage())
}

func TestMemorySlotStorage_Closed(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySlotStorage()
	require.NoError(t, s.Close())

	_, _, err := s.GetSlot(ctx, "k")
	assert.ErrorIs(t, err, ErrStorageClosed)
	assert.ErrorIs(t, s.SetSlot(ctx, "k", "v"), ErrStorageClosed)
	assert.ErrorIs(t, s.RemoveSlot(ctx, "k"), ErrStorageClosed)
	_, err = s.ListSlots(ctx, "")
	assert.ErrorIs(t, err, ErrStorageClosed)
}

// ── file ──────────────────────────────────────────────────────────────────────

func TestFileSlotStorage(t *testing.T) {
	s, err := NewFileSlotStorage(filepath.Join(t.TempDir(), "slots.json"), logger.Nop())
	require.NoError(t, err)
	exerciseSlotStorage(t, s)
}

func TestFileSlotStorage_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "slots.json")

	s, err := NewFileSlotStorage(path, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.SetSlot(ctx, "securepass_internal_key", "abcd"))
	require.NoError(t, s.Close())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	reopened, err := NewFileSlotStorage(path, logger.Nop())
	require.NoError(t, err)
	v, found, err := reopened.GetSlot(ctx, "securepass_internal_key")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "abcd", v)
}

func TestFileSlotStorage_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slots.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	s, err := NewFileSlotStorage(path, logger.Nop())
	require.NoError(t, err)
	keys, err := s.ListSlots(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestFileSlotStorage_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slots.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileSlotStorage(path, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode slot file")
}

// TestFileSlotStorage_RollbackOnPersistFailure verifies that a failed write
// leaves the in-memory view unchanged.
func TestFileSlotStorage_RollbackOnPersistFailure(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "sub")
	path := filepath.Join(dir, "slots.json")

	s, err := NewFileSlotStorage(path, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.SetSlot(ctx, "securepass_a", "1"))

	// turn the parent directory into a regular file
	require.NoError(t, os.RemoveAll(dir))
	require.NoError(t, os.WriteFile(dir, []byte("x"), 0o600))

	assert.Error(t, s.SetSlot(ctx, "securepass_b", "2"))
	assert.Error(t, s.SetSlot(ctx, "securepass_a", "changed"))
	assert.Error(t, s.RemoveSlot(ctx, "securepass_a"))

	_, found, err := s.GetSlot(ctx, "securepass_b")
	require.NoError(t, err)
	assert.False(t, found)

	v, found, err := s.GetSlot(ctx, "securepass_a")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "1", v)
}

// ── factory ───────────────────────────────────────────────────────────────────

func TestNewSlotStorage(t *testing.T) {
	ctx := context.Background()

	mem, err := NewSlotStorage(ctx, config.Storage{Driver: DriverMemory}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, mem)

	file, err := NewSlotStorage(ctx, config.Storage{Driver: DriverFile, DSN: filepath.Join(t.TempDir(), "s.json")}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, file)

	_, err = NewSlotStorage(ctx, config.Storage{Driver: "postgres"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownDriver)
}
