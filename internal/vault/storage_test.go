// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-gesture-vault/internal/crypto"
	"github.com/MKhiriev/go-gesture-vault/internal/logger"
	"github.com/MKhiriev/go-gesture-vault/internal/store"
	"github.com/MKhiriev/go-gesture-vault/models"
)

// low work factors keep the suite fast; the ratio mirrors 100000 vs 5000
const (
	testIterations   = 10
	legacyIterations = 200
	testSecret       = "0,4,8,6"
)

// ── helpers ───────────────────────────────────────────────────────────────────

type spyFallback struct {
	mu    sync.Mutex
	inner crypto.FallbackDecryptor
	calls int
}

func (s *spyFallback) DecryptWithFallback(env models.EncryptedEnvelope, secret string) (string, int, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return s.inner.DecryptWithFallback(env, secret)
}

func (s *spyFallback) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

type harness struct {
	storage *Storage
	slots   store.SlotStorage
	spy     *spyFallback
	clock   *fakeClock
}

func newHarness(t *testing.T, slots store.SlotStorage) *harness {
	t.Helper()
	if slots == nil {
		slots = store.NewMemorySlotStorage()
	}
	codec := crypto.NewCodec(testIterations)
	spy := &spyFallback{inner: crypto.NewVersionedDecryptor(codec, legacyIterations)}
	clock := &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}

	s, err := New(context.Background(), slots, codec, spy, logger.Nop(),
		WithClock(clock.Now), WithAutoLockTimeout(30*time.Minute))
	require.NoError(t, err)

	return &harness{storage: s, slots: slots, spy: spy, clock: clock}
}

func rawSlot(t *testing.T, slots store.SlotStorage, key string) string {
	t.Helper()
	v, found, err := slots.GetSlot(context.Background(), slotKey(key))
	require.NoError(t, err)
	require.True(t, found, "slot %s missing", key)
	return v
}

func putSlot(t *testing.T, slots store.SlotStorage, key, value string) {
	t.Helper()
	require.NoError(t, slots.SetSlot(context.Background(), slotKey(key), value))
}

// legacyEnvelope encrypts payload directly under secret at the legacy work
// factor, without a scheme tag.
func legacyEnvelope(t *testing.T, payload any, secret string) string {
	t.Helper()
	plain, err := json.Marshal(payload)
	require.NoError(t, err)
	env, err := crypto.NewCodec(legacyIterations).Encrypt(string(plain), secret)
	require.NoError(t, err)
	raw, err := json.Marshal(env)
	require.NoError(t, err)
	return string(raw)
}

func drainEvent(t *testing.T, s *Storage) LockEvent {
	t.Helper()
	select {
	case ev := <-s.LockEvents():
		return ev
	default:
		t.Fatal("expected a lock event")
		return LockEvent{}
	}
}

type failingSetStorage struct {
	store.SlotStorage
	fail bool
}

func (f *failingSetStorage) SetSlot(ctx context.Context, key, value string) error {
	if f.fail {
		return errors.New("disk full")
	}
	return f.SlotStorage.SetSlot(ctx, key, value)
}

var sampleEntries = []models.PasswordEntry{
	{ID: "1", Site: "a.com", Password: "x"},
}

// ── lifecycle ─────────────────────────────────────────────────────────────────

func TestNew_InitialState(t *testing.T) {
	h := newHarness(t, nil)
	assert.Equal(t, StateUninitialized, h.storage.State())

	slots := store.NewMemorySlotStorage()
	putSlot(t, slots, KeyGestureHash, "abc")
	h = newHarness(t, slots)
	assert.Equal(t, StateLocked, h.storage.State())
}

func TestInitialize_CreatesKeyAndMarker(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()

	require.NoError(t, h.storage.Initialize(ctx, testSecret))
	assert.Equal(t, StateUnlocked, h.storage.State())

	key := rawSlot(t, h.slots, KeyInternalKey)
	decoded, err := hex.DecodeString(key)
	require.NoError(t, err)
	assert.Len(t, decoded, crypto.InternalKeySize)

	marker := decodeSlot(rawSlot(t, h.slots, KeyMarker))
	require.Equal(t, slotEnvelope, marker.kind)
	require.NotNil(t, marker.envelope.Scheme)
	assert.Equal(t, models.KeySourceInternal, marker.envelope.Scheme.Key)
	assert.Equal(t, testIterations, marker.envelope.Scheme.Iterations)
}

func TestInitialize_EmptySecret(t *testing.T) {
	h := newHarness(t, nil)
	assert.ErrorIs(t, h.storage.Initialize(context.Background(), ""), ErrEmptySecret)
	assert.Equal(t, StateUninitialized, h.storage.State())
}

func TestInitialize_KeepsExistingInternalKey(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()

	require.NoError(t, h.storage.Initialize(ctx, testSecret))
	first := rawSlot(t, h.slots, KeyInternalKey)
	h.storage.Lock()
	require.NoError(t, h.storage.Initialize(ctx, "1,2,3,4"))

	assert.Equal(t, first, rawSlot(t, h.slots, KeyInternalKey))
}

func TestUnlock_Uninitialized(t *testing.T) {
	h := newHarness(t, nil)
	err := h.storage.Unlock(context.Background(), testSecret)
	assert.ErrorIs(t, err, ErrUnlockFailed)
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestUnlock_EmptySecret(t *testing.T) {
	h := newHarness(t, nil)
	require.NoError(t, h.storage.Initialize(context.Background(), testSecret))
	h.storage.Lock()

	err := h.storage.Unlock(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnlockFailed)
	assert.Equal(t, StateLocked, h.storage.State())
}

func TestUnlock_AfterLock(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	require.NoError(t, h.storage.Initialize(ctx, testSecret))
	require.NoError(t, h.storage.Set(ctx, KeyPasswords, sampleEntries))
	h.storage.Lock()

	require.NoError(t, h.storage.Unlock(ctx, testSecret))
	got, err := Get(ctx, h.storage, KeyPasswords, []models.PasswordEntry(nil))
	require.NoError(t, err)
	assert.Equal(t, sampleEntries, got)
}

func TestUnlock_MarkerUnderForeignKeyFails(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	require.NoError(t, h.storage.Initialize(ctx, testSecret))
	h.storage.Lock()
	drainEvent(t, h.storage)

	other, err := crypto.GenerateInternalKey()
	require.NoError(t, err)
	putSlot(t, h.slots, KeyInternalKey, other)

	err = h.storage.Unlock(ctx, testSecret)
	assert.ErrorIs(t, err, ErrUnlockFailed)
	assert.Equal(t, StateLocked, h.storage.State())

	_, err = h.storage.Load(ctx, KeyPasswords, new([]models.PasswordEntry))
	assert.ErrorIs(t, err, ErrStorageLocked)
}

func TestUnlock_FailureLeavesNoInternalKey(t *testing.T) {
	ctx := context.Background()
	slots := store.NewMemorySlotStorage()
	putSlot(t, slots, KeyGestureHash, crypto.HashGesture(testSecret))
	putSlot(t, slots, KeyMarker, legacyEnvelope(t, markerPayload, "9,9,9,9"))
	putSlot(t, slots, KeyPasswords, legacyEnvelope(t, sampleEntries, "9,9,9,9"))
	h := newHarness(t, slots)

	err := h.storage.Unlock(ctx, testSecret)
	require.ErrorIs(t, err, ErrUnlockFailed)

	_, found, err := slots.GetSlot(ctx, slotKey(KeyInternalKey))
	require.NoError(t, err)
	assert.False(t, found, "failed unlock must not persist an internal key")

	atRisk, err := h.storage.HasUnmigratedLegacyData(ctx)
	require.NoError(t, err)
	assert.True(t, atRisk)
}

func TestUnlock_LegacyVaultPersistsKeyOnSuccess(t *testing.T) {
	ctx := context.Background()
	slots := store.NewMemorySlotStorage()
	putSlot(t, slots, KeyMarker, legacyEnvelope(t, markerPayload, testSecret))
	h := newHarness(t, slots)

	require.NoError(t, h.storage.Unlock(ctx, testSecret))
	key := rawSlot(t, slots, KeyInternalKey)
	assert.NotEmpty(t, key)
	assert.Equal(t, key, string(h.storage.internalKey))
}

func TestUnlock_LegacyMarker(t *testing.T) {
	ctx := context.Background()

	t.Run("right secret migrates marker", func(t *testing.T) {
		slots := store.NewMemorySlotStorage()
		putSlot(t, slots, KeyMarker, legacyEnvelope(t, markerPayload, testSecret))
		h := newHarness(t, slots)

		require.NoError(t, h.storage.Unlock(ctx, testSecret))
		assert.Equal(t, 1, h.spy.Calls())

		marker := decodeSlot(rawSlot(t, slots, KeyMarker))
		require.NotNil(t, marker.envelope.Scheme)
		assert.Equal(t, models.KeySourceInternal, marker.envelope.Scheme.Key)
	})

	t.Run("wrong secret fails", func(t *testing.T) {
		slots := store.NewMemorySlotStorage()
		putSlot(t, slots, KeyMarker, legacyEnvelope(t, markerPayload, testSecret))
		h := newHarness(t, slots)

		err := h.storage.Unlock(ctx, "8,7,6,5")
		assert.ErrorIs(t, err, ErrUnlockFailed)
		assert.Equal(t, StateLocked, h.storage.State())
	})

	t.Run("plaintext marker is accepted and encrypted", func(t *testing.T) {
		slots := store.NewMemorySlotStorage()
		putSlot(t, slots, KeyMarker, `"securepass"`)
		h := newHarness(t, slots)

		require.NoError(t, h.storage.Unlock(ctx, testSecret))
		assert.Equal(t, slotEnvelope, decodeSlot(rawSlot(t, slots, KeyMarker)).kind)
	})
}

func TestLock_ClearsSessionAndEmits(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	require.NoError(t, h.storage.Initialize(ctx, testSecret))

	h.storage.Lock()
	assert.Equal(t, StateLocked, h.storage.State())
	assert.Nil(t, h.storage.secret)
	assert.Nil(t, h.storage.internalKey)
	assert.Equal(t, LockReasonManual, drainEvent(t, h.storage).Reason)

	// locking twice emits nothing further
	h.storage.Lock()
	select {
	case ev := <-h.storage.LockEvents():
		t.Fatalf("unexpected event %v", ev)
	default:
	}
}

// ── records ───────────────────────────────────────────────────────────────────

func TestRecordOperations_RequireUnlocked(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, nil)

	check := func(t *testing.T) {
		assert.ErrorIs(t, h.storage.Set(ctx, KeyPasswords, sampleEntries), ErrStorageLocked)
		_, err := h.storage.Load(ctx, KeyPasswords, new([]models.PasswordEntry))
		assert.ErrorIs(t, err, ErrStorageLocked)
		_, err = Get(ctx, h.storage, KeyPasswords, sampleEntries)
		assert.ErrorIs(t, err, ErrStorageLocked)
		assert.ErrorIs(t, h.storage.Remove(ctx, KeyPasswords), ErrStorageLocked)
		assert.ErrorIs(t, h.storage.Clear(ctx), ErrStorageLocked)
		assert.ErrorIs(t, h.storage.SetGestureHash(ctx, "hash"), ErrStorageLocked)
	}

	t.Run("uninitialized", check)

	require.NoError(t, h.storage.Initialize(ctx, testSecret))
	require.NoError(t, h.storage.Set(ctx, KeyPasswords, sampleEntries))
	h.storage.Lock()

	t.Run("locked", check)
}

func TestSetGet_RoundTrip(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	require.NoError(t, h.storage.Initialize(ctx, testSecret))

	require.NoError(t, h.storage.Set(ctx, KeyPasswords, sampleEntries))

	for _, def := range [][]models.PasswordEntry{nil, {}, {{ID: "other"}}} {
		got, err := Get(ctx, h.storage, KeyPasswords, def)
		require.NoError(t, err)
		assert.Equal(t, sampleEntries, got)
	}
	assert.Equal(t, 0, h.spy.Calls())
}

func TestSet_StoresTaggedEnvelope(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	require.NoError(t, h.storage.Initialize(ctx, testSecret))

	require.NoError(t, h.storage.Set(ctx, KeyPasswords, []models.PasswordEntry{{ID: "1", Password: "hunter2-secret"}}))

	raw := rawSlot(t, h.slots, KeyPasswords)
	assert.NotContains(t, raw, "hunter2-secret")

	decoded := decodeSlot(raw)
	require.Equal(t, slotEnvelope, decoded.kind)
	assert.Equal(t, &models.SchemeTag{Key: models.KeySourceInternal, Iterations: testIterations}, decoded.envelope.Scheme)
}

func TestSet_RefreshesActivity(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	require.NoError(t, h.storage.Initialize(ctx, testSecret))

	h.clock.Advance(20 * time.Minute)
	require.NoError(t, h.storage.Set(ctx, KeyLastImportMode, "merge"))
	h.clock.Advance(20 * time.Minute)

	assert.False(t, h.storage.CheckAutoLock(h.clock.Now()))
}

func TestLoad_RefreshesActivity(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	require.NoError(t, h.storage.Initialize(ctx, testSecret))
	require.NoError(t, h.storage.Set(ctx, KeyPasswords, sampleEntries))

	h.clock.Advance(20 * time.Minute)
	found, err := h.storage.Load(ctx, KeyPasswords, new([]models.PasswordEntry))
	require.NoError(t, err)
	require.True(t, found)
	h.clock.Advance(20 * time.Minute)
	assert.False(t, h.storage.CheckAutoLock(h.clock.Now()))

	// a miss is not activity
	h.clock.Advance(5 * time.Minute)
	found, err = h.storage.Load(ctx, KeyLastImportMode, new(string))
	require.NoError(t, err)
	require.False(t, found)
	h.clock.Advance(6 * time.Minute)
	assert.True(t, h.storage.CheckAutoLock(h.clock.Now()))
}

func TestGet_MissingReturnsDefault(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	require.NoError(t, h.storage.Initialize(ctx, testSecret))

	got, err := Get(ctx, h.storage, KeyLastImportMode, "merge")
	require.NoError(t, err)
	assert.Equal(t, "merge", got)
}

func TestGet_LegacyEncryptedRecordMigratesOnce(t *testing.T) {
	ctx := context.Background()
	slots := store.NewMemorySlotStorage()
	putSlot(t, slots, KeyGestureHash, crypto.HashGesture(testSecret))
	putSlot(t, slots, KeyPasswords, legacyEnvelope(t, sampleEntries, testSecret))
	h := newHarness(t, slots)
	require.Equal(t, StateLocked, h.storage.State())

	require.NoError(t, h.storage.Unlock(ctx, testSecret))
	before := h.spy.Calls()

	got, err := Get(ctx, h.storage, KeyPasswords, []models.PasswordEntry(nil))
	require.NoError(t, err)
	assert.Equal(t, sampleEntries, got)
	assert.Equal(t, before+1, h.spy.Calls())

	decoded := decodeSlot(rawSlot(t, slots, KeyPasswords))
	require.NotNil(t, decoded.envelope.Scheme)
	assert.Equal(t, models.KeySourceInternal, decoded.envelope.Scheme.Key)

	got, err = Get(ctx, h.storage, KeyPasswords, []models.PasswordEntry(nil))
	require.NoError(t, err)
	assert.Equal(t, sampleEntries, got)
	assert.Equal(t, before+1, h.spy.Calls(), "second read must not touch the fallback decryptor")
}

func TestGet_LegacyMigrationFailureStillReturnsValue(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemorySlotStorage()
	putSlot(t, mem, KeyPasswords, legacyEnvelope(t, sampleEntries, testSecret))
	slots := &failingSetStorage{SlotStorage: mem}
	h := newHarness(t, slots)

	require.NoError(t, h.storage.Unlock(ctx, testSecret))
	slots.fail = true

	got, err := Get(ctx, h.storage, KeyPasswords, []models.PasswordEntry(nil))
	require.NoError(t, err)
	assert.Equal(t, sampleEntries, got)

	// still the untagged legacy envelope
	assert.Nil(t, decodeSlot(rawSlot(t, mem, KeyPasswords)).envelope.Scheme)
}

func TestGet_LegacyPlaintextIsEncrypted(t *testing.T) {
	ctx := context.Background()
	slots := store.NewMemorySlotStorage()
	plain, err := json.Marshal(sampleEntries)
	require.NoError(t, err)
	putSlot(t, slots, KeyPasswords, string(plain))
	h := newHarness(t, slots)
	require.NoError(t, h.storage.Unlock(ctx, testSecret))

	got, err := Get(ctx, h.storage, KeyPasswords, []models.PasswordEntry(nil))
	require.NoError(t, err)
	assert.Equal(t, sampleEntries, got)

	raw := rawSlot(t, slots, KeyPasswords)
	assert.Equal(t, slotEnvelope, decodeSlot(raw).kind)
	assert.NotContains(t, raw, `"site":"a.com"`)
}

func TestGet_UnreadableDegradesToDefault(t *testing.T) {
	ctx := context.Background()
	def := []models.PasswordEntry{{ID: "default"}}

	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: "{{corrupt"},
		{name: "wrong shape", raw: `{"unexpected": true}`},
		{name: "foreign envelope", raw: legacyEnvelope(t, sampleEntries, "someone-else")},
		{name: "garbage envelope", raw: `{"data":"!!!","iv":"zz","salt":"00"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := store.NewMemorySlotStorage()
			putSlot(t, slots, KeyPasswords, tt.raw)
			h := newHarness(t, slots)
			require.NoError(t, h.storage.Unlock(ctx, testSecret))

			got, err := Get(ctx, h.storage, KeyPasswords, def)
			require.NoError(t, err)
			assert.Equal(t, def, got)
		})
	}
}

func TestReservedKeys(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	require.NoError(t, h.storage.Initialize(ctx, testSecret))

	for _, k := range []string{KeyInternalKey, KeyGestureHash, KeyMarker} {
		assert.ErrorIs(t, h.storage.Set(ctx, k, "x"), ErrReservedKey)
		assert.ErrorIs(t, h.storage.Remove(ctx, k), ErrReservedKey)

		var got string
		found, err := h.storage.Load(ctx, k, &got)
		assert.ErrorIs(t, err, ErrReservedKey)
		assert.False(t, found)
		assert.Empty(t, got)
	}
}

func TestRemove(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	require.NoError(t, h.storage.Initialize(ctx, testSecret))
	require.NoError(t, h.storage.Set(ctx, KeyPasswords, sampleEntries))

	require.NoError(t, h.storage.Remove(ctx, KeyPasswords))
	found, err := h.storage.Load(ctx, KeyPasswords, new([]models.PasswordEntry))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestClear_WipesEverything(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	require.NoError(t, h.storage.Initialize(ctx, testSecret))
	require.NoError(t, h.storage.SetGestureHash(ctx, crypto.HashGesture(testSecret)))
	require.NoError(t, h.storage.Set(ctx, KeyPasswords, sampleEntries))
	require.NoError(t, h.slots.SetSlot(ctx, "unrelated", "kept"))

	require.NoError(t, h.storage.Clear(ctx))

	assert.Equal(t, StateUninitialized, h.storage.State())
	assert.Equal(t, LockReasonCleared, drainEvent(t, h.storage).Reason)
	keys, err := h.slots.ListSlots(ctx, SlotPrefix)
	require.NoError(t, err)
	assert.Empty(t, keys)

	v, found, err := h.slots.GetSlot(ctx, "unrelated")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "kept", v)
}

// ── auto-lock ─────────────────────────────────────────────────────────────────

func TestCheckAutoLock(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	require.NoError(t, h.storage.Initialize(ctx, testSecret))

	h.clock.Advance(29 * time.Minute)
	assert.False(t, h.storage.CheckAutoLock(h.clock.Now()))

	h.storage.Touch()
	h.clock.Advance(29 * time.Minute)
	assert.False(t, h.storage.CheckAutoLock(h.clock.Now()))

	// idle for exactly the timeout stays unlocked
	h.clock.Advance(time.Minute)
	assert.False(t, h.storage.CheckAutoLock(h.clock.Now()))
	assert.Equal(t, StateUnlocked, h.storage.State())

	h.clock.Advance(time.Nanosecond)
	assert.True(t, h.storage.CheckAutoLock(h.clock.Now()))
	assert.Equal(t, StateLocked, h.storage.State())

	ev := drainEvent(t, h.storage)
	assert.Equal(t, LockReasonTimeout, ev.Reason)
	assert.Equal(t, h.clock.Now(), ev.At)

	// already locked
	h.clock.Advance(time.Hour)
	assert.False(t, h.storage.CheckAutoLock(h.clock.Now()))
}

func TestCheckAutoLock_IgnoresLockedVault(t *testing.T) {
	h := newHarness(t, nil)
	h.clock.Advance(2 * time.Hour)
	assert.False(t, h.storage.CheckAutoLock(h.clock.Now()))
	assert.Equal(t, StateUninitialized, h.storage.State())
}

func TestLockEvents_NeverBlock(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()

	for i := 0; i < lockEventsBuffer+3; i++ {
		require.NoError(t, h.storage.Initialize(ctx, testSecret))
		h.storage.Lock()
	}
	assert.Len(t, h.storage.LockEvents(), lockEventsBuffer)
}

// ── gesture hash & reset ──────────────────────────────────────────────────────

func TestGestureHash_ReadableWhileLocked(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()

	_, found, err := h.storage.GestureHash(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, h.storage.Initialize(ctx, testSecret))
	require.NoError(t, h.storage.SetGestureHash(ctx, "abc123"))
	h.storage.Lock()

	hash, found, err := h.storage.GestureHash(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "abc123", hash)
}

func TestResetGesture_PreservesDataAndKey(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	require.NoError(t, h.storage.Initialize(ctx, testSecret))
	require.NoError(t, h.storage.SetGestureHash(ctx, crypto.HashGesture(testSecret)))
	require.NoError(t, h.storage.Set(ctx, KeyPasswords, sampleEntries))

	keyBefore := rawSlot(t, h.slots, KeyInternalKey)
	recordsBefore := rawSlot(t, h.slots, KeyPasswords)

	require.NoError(t, h.storage.ResetGesture(ctx, false))

	assert.Equal(t, StateLocked, h.storage.State())
	assert.Equal(t, LockReasonReset, drainEvent(t, h.storage).Reason)
	_, found, err := h.storage.GestureHash(ctx)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, keyBefore, rawSlot(t, h.slots, KeyInternalKey))
	assert.Equal(t, recordsBefore, rawSlot(t, h.slots, KeyPasswords))

	require.NoError(t, h.storage.Initialize(ctx, "2,5,8,7"))
	got, err := Get(ctx, h.storage, KeyPasswords, []models.PasswordEntry(nil))
	require.NoError(t, err)
	assert.Equal(t, sampleEntries, got)
}

func TestResetGesture_LegacyDataAtRisk(t *testing.T) {
	ctx := context.Background()
	slots := store.NewMemorySlotStorage()
	putSlot(t, slots, KeyGestureHash, crypto.HashGesture(testSecret))
	putSlot(t, slots, KeyPasswords, legacyEnvelope(t, sampleEntries, testSecret))
	h := newHarness(t, slots)

	atRisk, err := h.storage.HasUnmigratedLegacyData(ctx)
	require.NoError(t, err)
	assert.True(t, atRisk)

	assert.ErrorIs(t, h.storage.ResetGesture(ctx, false), ErrLegacyDataAtRisk)
	_, found, err := h.storage.GestureHash(ctx)
	require.NoError(t, err)
	assert.True(t, found, "refused reset must keep the gesture")

	require.NoError(t, h.storage.ResetGesture(ctx, true))
	_, found, err = h.storage.GestureHash(ctx)
	require.NoError(t, err)
	assert.False(t, found)
	rawSlot(t, slots, KeyPasswords)
}

func TestHasUnmigratedLegacyData(t *testing.T) {
	ctx := context.Background()

	t.Run("empty vault", func(t *testing.T) {
		h := newHarness(t, nil)
		atRisk, err := h.storage.HasUnmigratedLegacyData(ctx)
		require.NoError(t, err)
		assert.False(t, atRisk)
	})

	t.Run("only gesture hash", func(t *testing.T) {
		slots := store.NewMemorySlotStorage()
		putSlot(t, slots, KeyGestureHash, "h")
		h := newHarness(t, slots)
		atRisk, err := h.storage.HasUnmigratedLegacyData(ctx)
		require.NoError(t, err)
		assert.False(t, atRisk)
	})

	t.Run("internal key present", func(t *testing.T) {
		h := newHarness(t, nil)
		require.NoError(t, h.storage.Initialize(ctx, testSecret))
		require.NoError(t, h.storage.Set(ctx, KeyPasswords, sampleEntries))
		atRisk, err := h.storage.HasUnmigratedLegacyData(ctx)
		require.NoError(t, err)
		assert.False(t, atRisk)
	})

	t.Run("internal key present with secret-tagged record", func(t *testing.T) {
		h := newHarness(t, nil)
		require.NoError(t, h.storage.Initialize(ctx, testSecret))

		env, err := crypto.NewCodec(testIterations).Encrypt(`"merge"`, testSecret)
		require.NoError(t, err)
		env.Scheme = &models.SchemeTag{Key: models.KeySourceSecret, Iterations: testIterations}
		raw, err := json.Marshal(env)
		require.NoError(t, err)
		putSlot(t, h.slots, KeyLastImportMode, string(raw))

		atRisk, err := h.storage.HasUnmigratedLegacyData(ctx)
		require.NoError(t, err)
		assert.True(t, atRisk)
	})

	t.Run("internal key present with plaintext record", func(t *testing.T) {
		h := newHarness(t, nil)
		require.NoError(t, h.storage.Initialize(ctx, testSecret))
		putSlot(t, h.slots, KeyLastImportMode, `"merge"`)

		atRisk, err := h.storage.HasUnmigratedLegacyData(ctx)
		require.NoError(t, err)
		assert.False(t, atRisk)
	})
}

func TestResetGesture_LegacyRecordsUnreadAfterUnlock(t *testing.T) {
	ctx := context.Background()
	slots := store.NewMemorySlotStorage()
	putSlot(t, slots, KeyGestureHash, crypto.HashGesture(testSecret))
	putSlot(t, slots, KeyMarker, legacyEnvelope(t, markerPayload, testSecret))
	putSlot(t, slots, KeyPasswords, legacyEnvelope(t, sampleEntries, testSecret))
	h := newHarness(t, slots)

	require.NoError(t, h.storage.Unlock(ctx, testSecret))
	h.storage.Lock()

	atRisk, err := h.storage.HasUnmigratedLegacyData(ctx)
	require.NoError(t, err)
	assert.True(t, atRisk, "records are still under the secret")
	assert.ErrorIs(t, h.storage.ResetGesture(ctx, false), ErrLegacyDataAtRisk)

	require.NoError(t, h.storage.Unlock(ctx, testSecret))
	got, err := Get(ctx, h.storage, KeyPasswords, []models.PasswordEntry(nil))
	require.NoError(t, err)
	require.Equal(t, sampleEntries, got)

	atRisk, err = h.storage.HasUnmigratedLegacyData(ctx)
	require.NoError(t, err)
	assert.False(t, atRisk)
	require.NoError(t, h.storage.ResetGesture(ctx, false))

	require.NoError(t, h.storage.Initialize(ctx, "1,2,3,4"))
	got, err = Get(ctx, h.storage, KeyPasswords, []models.PasswordEntry(nil))
	require.NoError(t, err)
	assert.Equal(t, sampleEntries, got)
}

func TestResetGesture_MigrationWriteFailedKeepsRisk(t *testing.T) {
	ctx := context.Background()
	slots := &failingSetStorage{SlotStorage: store.NewMemorySlotStorage()}
	putSlot(t, slots, KeyGestureHash, crypto.HashGesture(testSecret))
	putSlot(t, slots, KeyMarker, legacyEnvelope(t, markerPayload, testSecret))
	putSlot(t, slots, KeyPasswords, legacyEnvelope(t, sampleEntries, testSecret))
	h := newHarness(t, slots)
	require.NoError(t, h.storage.Unlock(ctx, testSecret))

	slots.fail = true
	got, err := Get(ctx, h.storage, KeyPasswords, []models.PasswordEntry(nil))
	require.NoError(t, err)
	require.Equal(t, sampleEntries, got)
	slots.fail = false

	assert.ErrorIs(t, h.storage.ResetGesture(ctx, false), ErrLegacyDataAtRisk)
}

// TestLegacyIterationScenario stores a record under the slow legacy work
// factor while the engine defaults to a faster one.
func TestLegacyIterationScenario(t *testing.T) {
	ctx := context.Background()
	entry := models.PasswordEntry{ID: "1", Site: "a.com", Password: "x"}
	slots := store.NewMemorySlotStorage()
	putSlot(t, slots, KeyPasswords, legacyEnvelope(t, []models.PasswordEntry{entry}, testSecret))

	h := newHarness(t, slots)
	require.Less(t, testIterations, legacyIterations)
	require.NoError(t, h.storage.Unlock(ctx, testSecret))

	got, err := Get(ctx, h.storage, KeyPasswords, []models.PasswordEntry(nil))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, entry, got[0])
}

// ── decodeSlot ────────────────────────────────────────────────────────────────

func TestDecodeSlot(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want slotKind
	}{
		{name: "envelope", raw: `{"data":"AA==","iv":"00","salt":"11"}`, want: slotEnvelope},
		{name: "tagged envelope", raw: `{"data":"AA==","iv":"00","salt":"11","scheme":{"key":"internal","iter":5000}}`, want: slotEnvelope},
		{name: "missing salt", raw: `{"data":"AA==","iv":"00"}`, want: slotPlaintext},
		{name: "empty iv", raw: `{"data":"AA==","iv":"","salt":"11"}`, want: slotPlaintext},
		{name: "array", raw: `[1,2]`, want: slotPlaintext},
		{name: "string", raw: `"merge"`, want: slotPlaintext},
		{name: "not json", raw: `oops`, want: slotPlaintext},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeSlot(tt.raw).kind)
		})
	}
}

func TestInternalIterations(t *testing.T) {
	untagged := decodedSlot{kind: slotEnvelope}
	it, ok := untagged.internalIterations(5000)
	assert.True(t, ok)
	assert.Equal(t, 5000, it)

	tagged := decodedSlot{envelope: models.EncryptedEnvelope{Scheme: &models.SchemeTag{Key: models.KeySourceInternal, Iterations: 7000}}}
	it, ok = tagged.internalIterations(5000)
	assert.True(t, ok)
	assert.Equal(t, 7000, it)

	secret := decodedSlot{envelope: models.EncryptedEnvelope{Scheme: &models.SchemeTag{Key: models.KeySourceSecret, Iterations: 100000}}}
	_, ok = secret.internalIterations(5000)
	assert.False(t, ok)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "uninitialized", StateUninitialized.String())
	assert.Equal(t, "locked", StateLocked.String())
	assert.Equal(t, "unlocked", StateUnlocked.String())
	assert.Equal(t, "State(9)", State(9).String())
}
