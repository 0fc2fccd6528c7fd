// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-gesture-vault/internal/crypto"
	"github.com/MKhiriev/go-gesture-vault/internal/logger"
	"github.com/MKhiriev/go-gesture-vault/internal/store"
	"github.com/MKhiriev/go-gesture-vault/models"
)

// DefaultAutoLockTimeout is the inactivity period used when none is set.
const DefaultAutoLockTimeout = 30 * time.Minute

const lockEventsBuffer = 8

// State is the lifecycle state of a [Storage].
type State int

const (
	// StateUninitialized means no vault data and no internal key exist.
	StateUninitialized State = iota
	// StateLocked means vault data may exist but no secret is held.
	StateLocked
	// StateUnlocked means records can be read and written.
	StateUnlocked
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLocked:
		return "locked"
	case StateUnlocked:
		return "unlocked"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// LockReason says why the vault left the unlocked state.
type LockReason string

const (
	LockReasonManual  LockReason = "manual"
	LockReasonTimeout LockReason = "timeout"
	LockReasonReset   LockReason = "reset"
	LockReasonCleared LockReason = "cleared"
)

// LockEvent is delivered on [Storage.LockEvents] after every transition out
// of the unlocked state.
type LockEvent struct {
	Reason LockReason
	At     time.Time
}

// Storage is the vault engine. It owns the lock state and the in-memory
// session material, and is safe for use by one session plus the auto-lock
// worker.
type Storage struct {
	slots    store.SlotStorage
	cipher   crypto.EnvelopeCipher
	fallback crypto.FallbackDecryptor
	keys     *InternalKeyStore
	logger   *logger.Logger
	now      func() time.Time

	mu           sync.Mutex
	state        State
	secret       []byte
	internalKey  []byte
	lastActivity time.Time
	timeout      time.Duration
	lockEvents   chan LockEvent
}

// Option customises a [Storage].
type Option func(*Storage)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Storage) { s.now = now }
}

// WithAutoLockTimeout sets the inactivity timeout. Non-positive values keep
// the default.
func WithAutoLockTimeout(d time.Duration) Option {
	return func(s *Storage) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// New returns a locked Storage, or an uninitialized one when no slot under
// [SlotPrefix] exists yet.
func New(ctx context.Context, slots store.SlotStorage, cipher crypto.EnvelopeCipher,
	fallback crypto.FallbackDecryptor, log *logger.Logger, opts ...Option) (*Storage, error) {
	s := &Storage{
		slots:      slots,
		cipher:     cipher,
		fallback:   fallback,
		keys:       NewInternalKeyStore(slots, log),
		logger:     log,
		now:        time.Now,
		timeout:    DefaultAutoLockTimeout,
		lockEvents: make(chan LockEvent, lockEventsBuffer),
	}
	for _, opt := range opts {
		opt(s)
	}

	existing, err := slots.ListSlots(ctx, SlotPrefix)
	if err != nil {
		return nil, fmt.Errorf("probe vault slots: %w", err)
	}
	s.state = StateUninitialized
	if len(existing) > 0 {
		s.state = StateLocked
	}
	s.lastActivity = s.now()

	return s, nil
}

// State returns the current lifecycle state.
func (s *Storage) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LockEvents delivers lock notifications. Events are dropped when the
// buffer is full.
func (s *Storage) LockEvents() <-chan LockEvent {
	return s.lockEvents
}

// Initialize unlocks the vault with secret, creating the internal key if
// needed and writing the verification marker.
func (s *Storage) Initialize(ctx context.Context, secret string) error {
	if secret == "" {
		return ErrEmptySecret
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key, err := s.keys.GetOrCreate(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "Storage.Initialize").Msg("failed to obtain internal key")
		return err
	}

	marker, _ := json.Marshal(markerPayload)
	internalKey := []byte(key)
	if err = s.writeEnvelope(ctx, slotKey(KeyMarker), marker, internalKey); err != nil {
		memguard.WipeBytes(internalKey)
		s.logger.Err(err).Str("func", "Storage.Initialize").Msg("failed to write verification marker")
		return err
	}

	s.openSession([]byte(secret), internalKey)
	s.logger.Info().Str("func", "Storage.Initialize").Msg("vault initialized")
	return nil
}

// Unlock opens a locked vault. The marker is read back under the internal
// key, falling back to the legacy secret-derived scheme; a marker readable
// under neither fails with [ErrUnlockFailed] and leaves the state unchanged.
func (s *Storage) Unlock(ctx context.Context, secret string) error {
	if secret == "" {
		return fmt.Errorf("%w: %w", ErrUnlockFailed, ErrEmptySecret)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateUninitialized {
		return fmt.Errorf("%w: %w", ErrUnlockFailed, ErrNotInitialized)
	}

	key, stored, err := s.keys.Load(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "Storage.Unlock").Msg("failed to read internal key")
		return fmt.Errorf("%w: %w", ErrUnlockFailed, err)
	}
	if !stored {
		if key, err = crypto.GenerateInternalKey(); err != nil {
			return fmt.Errorf("%w: %w", ErrUnlockFailed, err)
		}
	}
	internalKey := []byte(key)
	secretBytes := []byte(secret)

	rewrite, err := s.verifyMarker(ctx, internalKey, secretBytes)
	if err != nil {
		memguard.WipeBytes(internalKey)
		memguard.WipeBytes(secretBytes)
		s.logger.Warn().Str("func", "Storage.Unlock").Msg("verification marker unreadable")
		return fmt.Errorf("%w: %w", ErrUnlockFailed, err)
	}

	if !stored {
		if err = s.keys.Save(ctx, key); err != nil {
			memguard.WipeBytes(internalKey)
			memguard.WipeBytes(secretBytes)
			s.logger.Err(err).Str("func", "Storage.Unlock").Msg("failed to persist internal key")
			return fmt.Errorf("%w: %w", ErrUnlockFailed, err)
		}
		s.logger.Info().Str("func", "Storage.Unlock").Msg("generated internal key for legacy vault")
	}
	if rewrite {
		marker, _ := json.Marshal(markerPayload)
		if err = s.writeEnvelope(ctx, slotKey(KeyMarker), marker, internalKey); err != nil {
			s.logger.Err(err).Str("func", "Storage.Unlock").Msg("failed to rewrite verification marker")
		}
	}

	s.openSession(secretBytes, internalKey)
	s.logger.Info().Str("func", "Storage.Unlock").Msg("vault unlocked")
	return nil
}

// verifyMarker checks the marker against internalKey, then the legacy
// secret-derived scheme. It writes nothing and reports whether the marker
// must be rewritten under internalKey.
func (s *Storage) verifyMarker(ctx context.Context, internalKey, secret []byte) (bool, error) {
	marker, _ := json.Marshal(markerPayload)

	raw, found, err := s.slots.GetSlot(ctx, slotKey(KeyMarker))
	if err != nil {
		return false, err
	}
	if !found {
		return true, nil
	}

	decoded := decodeSlot(raw)
	if decoded.kind == slotPlaintext {
		return true, nil
	}

	if plain, ok := s.openInternal(decoded, internalKey); ok && plain == string(marker) {
		return false, nil
	}

	plain, iterations, err := s.fallback.DecryptWithFallback(decoded.envelope, string(secret))
	if err != nil {
		return false, err
	}
	if plain != string(marker) {
		return false, crypto.ErrDecryption
	}
	s.logger.Info().
		Str("func", "Storage.verifyMarker").
		Int("iterations", iterations).
		Msg("migrating legacy verification marker")
	return true, nil
}

// Lock drops the session material. It is a no-op unless unlocked.
func (s *Storage) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lockLocked(LockReasonManual)
}

func (s *Storage) lockLocked(reason LockReason) bool {
	if s.state != StateUnlocked {
		return false
	}
	s.closeSession(StateLocked)
	s.emit(reason)
	s.logger.Info().Str("func", "Storage.lock").Str("reason", string(reason)).Msg("vault locked")
	return true
}

func (s *Storage) openSession(secret, internalKey []byte) {
	memguard.WipeBytes(s.secret)
	memguard.WipeBytes(s.internalKey)
	s.secret = secret
	s.internalKey = internalKey
	s.state = StateUnlocked
	s.lastActivity = s.now()
}

func (s *Storage) closeSession(next State) {
	memguard.WipeBytes(s.secret)
	memguard.WipeBytes(s.internalKey)
	s.secret = nil
	s.internalKey = nil
	s.state = next
}

func (s *Storage) emit(reason LockReason) {
	select {
	case s.lockEvents <- LockEvent{Reason: reason, At: s.now()}:
	default:
		s.logger.Warn().Str("func", "Storage.emit").Str("reason", string(reason)).Msg("lock event dropped")
	}
}

// Touch records user activity.
func (s *Storage) Touch() {
	s.mu.Lock()
	s.lastActivity = s.now()
	s.mu.Unlock()
}

// AutoLockTimeout returns the configured inactivity timeout.
func (s *Storage) AutoLockTimeout() time.Duration {
	return s.timeout
}

// CheckAutoLock locks the vault when it has been idle for longer than the
// timeout at now. It reports whether a lock happened.
func (s *Storage) CheckAutoLock(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateUnlocked || now.Sub(s.lastActivity) <= s.timeout {
		return false
	}
	return s.lockLocked(LockReasonTimeout)
}

// Set encrypts value as JSON under the internal key and stores it as key.
func (s *Storage) Set(ctx context.Context, key string, value any) error {
	if isReserved(key) {
		return fmt.Errorf("%w: %s", ErrReservedKey, key)
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode record %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateUnlocked {
		return ErrStorageLocked
	}
	if err = s.writeEnvelope(ctx, slotKey(key), payload, s.internalKey); err != nil {
		s.logger.Err(err).Str("func", "Storage.Set").Str("slot", slotKey(key)).Msg("failed to store record")
		return err
	}
	s.lastActivity = s.now()
	return nil
}

// Load decodes the record stored as key into target and reports whether a
// value was found. Unreadable records are logged and reported as not found;
// the only error returned is [ErrStorageLocked]. On a miss target may still
// have been partially written.
func (s *Storage) Load(ctx context.Context, key string, target any) (bool, error) {
	if isReserved(key) {
		return false, fmt.Errorf("%w: %s", ErrReservedKey, key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateUnlocked {
		return false, ErrStorageLocked
	}

	slot := slotKey(key)
	raw, found, err := s.slots.GetSlot(ctx, slot)
	if err != nil {
		s.logger.Err(err).Str("func", "Storage.Load").Str("slot", slot).Msg("failed to read slot")
		return false, nil
	}
	if !found {
		return false, nil
	}

	var ok bool
	decoded := decodeSlot(raw)
	switch decoded.kind {
	case slotEnvelope:
		ok = s.loadEnvelope(ctx, slot, decoded, target)
	default:
		ok = s.loadPlaintext(ctx, slot, decoded.plaintext, target)
	}
	if ok {
		s.lastActivity = s.now()
	}
	return ok, nil
}

func (s *Storage) loadEnvelope(ctx context.Context, slot string, decoded decodedSlot, target any) bool {
	if plain, ok := s.openInternal(decoded, s.internalKey); ok {
		if err := json.Unmarshal([]byte(plain), target); err == nil {
			return true
		}
		s.logger.Warn().Str("func", "Storage.Load").Str("slot", slot).Msg("internal-key payload is not valid JSON")
	}

	plain, iterations, err := s.fallback.DecryptWithFallback(decoded.envelope, string(s.secret))
	if err != nil {
		s.logger.Warn().Str("func", "Storage.Load").Str("slot", slot).Msg("record unreadable under any known scheme")
		return false
	}
	if err = json.Unmarshal([]byte(plain), target); err != nil {
		s.logger.Err(err).Str("func", "Storage.Load").Str("slot", slot).Msg("legacy record payload is not valid JSON")
		return false
	}

	if err = s.writeEnvelope(ctx, slot, []byte(plain), s.internalKey); err != nil {
		s.logger.Err(err).Str("func", "Storage.Load").Str("slot", slot).Msg("failed to migrate legacy record")
	} else {
		s.logger.Info().
			Str("func", "Storage.Load").
			Str("slot", slot).
			Int("iterations", iterations).
			Msg("migrated legacy encrypted record")
	}
	return true
}

func (s *Storage) loadPlaintext(ctx context.Context, slot string, raw []byte, target any) bool {
	if err := json.Unmarshal(raw, target); err != nil {
		s.logger.Warn().Str("func", "Storage.Load").Str("slot", slot).Msg("slot holds neither an envelope nor JSON")
		return false
	}

	if err := s.writeEnvelope(ctx, slot, raw, s.internalKey); err != nil {
		s.logger.Err(err).Str("func", "Storage.Load").Str("slot", slot).Msg("failed to encrypt legacy plaintext record")
	} else {
		s.logger.Info().Str("func", "Storage.Load").Str("slot", slot).Msg("encrypted legacy plaintext record")
	}
	return true
}

func (s *Storage) openInternal(decoded decodedSlot, internalKey []byte) (string, bool) {
	iterations, ok := decoded.internalIterations(s.cipher.Iterations())
	if !ok {
		return "", false
	}
	plain, err := s.cipher.DecryptWith(decoded.envelope, string(internalKey), iterations)
	if err != nil {
		return "", false
	}
	return plain, true
}

func (s *Storage) writeEnvelope(ctx context.Context, slot string, plaintext, internalKey []byte) error {
	env, err := s.cipher.Encrypt(string(plaintext), string(internalKey))
	if err != nil {
		return err
	}
	env.Scheme = &models.SchemeTag{Key: models.KeySourceInternal, Iterations: s.cipher.Iterations()}

	raw, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}
	return s.slots.SetSlot(ctx, slot, string(raw))
}

// Remove deletes the record stored as key.
func (s *Storage) Remove(ctx context.Context, key string) error {
	if isReserved(key) {
		return fmt.Errorf("%w: %s", ErrReservedKey, key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateUnlocked {
		return ErrStorageLocked
	}
	return s.slots.RemoveSlot(ctx, slotKey(key))
}

// Clear wipes every slot under [SlotPrefix], including the internal key and
// gesture hash, and returns the vault to [StateUninitialized].
func (s *Storage) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateUnlocked {
		return ErrStorageLocked
	}

	keys, err := s.slots.ListSlots(ctx, SlotPrefix)
	if err != nil {
		return fmt.Errorf("list vault slots: %w", err)
	}
	var errs []error
	for _, k := range keys {
		if err = s.slots.RemoveSlot(ctx, k); err != nil {
			errs = append(errs, fmt.Errorf("remove %s: %w", k, err))
		}
	}
	if len(errs) > 0 {
		s.logger.Err(errors.Join(errs...)).Str("func", "Storage.Clear").Msg("vault wipe incomplete")
		return errors.Join(errs...)
	}

	s.closeSession(StateUninitialized)
	s.emit(LockReasonCleared)
	s.logger.Info().Str("func", "Storage.Clear").Int("slots", len(keys)).Msg("vault wiped")
	return nil
}

// GestureHash returns the stored gesture hash. It is readable while locked.
func (s *Storage) GestureHash(ctx context.Context) (string, bool, error) {
	hash, found, err := s.slots.GetSlot(ctx, slotKey(KeyGestureHash))
	if err != nil {
		return "", false, fmt.Errorf("read gesture hash: %w", err)
	}
	return hash, found && hash != "", nil
}

// SetGestureHash stores the gesture hash of an unlocked vault.
func (s *Storage) SetGestureHash(ctx context.Context, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateUnlocked {
		return ErrStorageLocked
	}
	if err := s.slots.SetSlot(ctx, slotKey(KeyGestureHash), hash); err != nil {
		return fmt.Errorf("persist gesture hash: %w", err)
	}
	return nil
}

// HasUnmigratedLegacyData reports whether any vault data can still only be
// opened with the current gesture. Without an internal key every data slot
// counts. With one, an envelope counts unless it is tagged as internal-key
// encrypted or, when untagged, opens under that key.
func (s *Storage) HasUnmigratedLegacyData(ctx context.Context) (bool, error) {
	key, hasKey, err := s.keys.Load(ctx)
	if err != nil {
		return false, err
	}

	keys, err := s.slots.ListSlots(ctx, SlotPrefix)
	if err != nil {
		return false, fmt.Errorf("list vault slots: %w", err)
	}
	for _, k := range keys {
		switch k {
		case slotKey(KeyGestureHash), slotKey(KeyInternalKey):
			continue
		}
		if !hasKey {
			return true, nil
		}
		if k == slotKey(KeyMarker) {
			continue
		}

		raw, found, err := s.slots.GetSlot(ctx, k)
		if err != nil {
			return false, fmt.Errorf("read slot %s: %w", k, err)
		}
		if found && s.isLegacySlot(decodeSlot(raw), key) {
			s.logger.Debug().Str("func", "Storage.HasUnmigratedLegacyData").Str("slot", k).Msg("slot not yet migrated")
			return true, nil
		}
	}
	return false, nil
}

// isLegacySlot reports whether decoded is an envelope that needs the secret.
// Plaintext slots are readable under any gesture.
func (s *Storage) isLegacySlot(decoded decodedSlot, internalKey string) bool {
	if decoded.kind != slotEnvelope {
		return false
	}
	tag := decoded.envelope.Scheme
	if tag != nil {
		return tag.Key != models.KeySourceInternal
	}
	_, ok := s.openInternal(decoded, []byte(internalKey))
	return !ok
}

// ResetGesture removes only the gesture hash and locks the vault. Records
// and the internal key are untouched. Without override it refuses with
// [ErrLegacyDataAtRisk] when [Storage.HasUnmigratedLegacyData] holds.
func (s *Storage) ResetGesture(ctx context.Context, override bool) error {
	atRisk, err := s.HasUnmigratedLegacyData(ctx)
	if err != nil {
		return err
	}
	if atRisk && !override {
		return ErrLegacyDataAtRisk
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = s.slots.RemoveSlot(ctx, slotKey(KeyGestureHash)); err != nil {
		return fmt.Errorf("remove gesture hash: %w", err)
	}
	s.lockLocked(LockReasonReset)
	s.logger.Warn().Str("func", "Storage.ResetGesture").Bool("override", override).Msg("gesture reset")
	return nil
}

// Loader is the read side of [Storage] used by [Get].
type Loader interface {
	Load(ctx context.Context, key string, target any) (bool, error)
}

// Get returns the record stored as key, or def when it is missing or
// unreadable.
func Get[T any](ctx context.Context, l Loader, key string, def T) (T, error) {
	var v T
	found, err := l.Load(ctx, key, &v)
	if err != nil {
		return def, err
	}
	if !found {
		return def, nil
	}
	return v, nil
}
