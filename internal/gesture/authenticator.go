// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package gesture turns drawn grid paths into patterns and runs the
// setup, confirm and unlock flow in front of the vault.
package gesture

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-gesture-vault/internal/crypto"
	"github.com/MKhiriev/go-gesture-vault/internal/logger"
)

// State is the authenticator's position in the gesture flow.
type State int

const (
	StateNoGestureSet State = iota
	StateDrawing
	StateAwaitingConfirmation
	StateLocked
	StateUnlocked
)

func (s State) String() string {
	switch s {
	case StateNoGestureSet:
		return "no-gesture-set"
	case StateDrawing:
		return "drawing"
	case StateAwaitingConfirmation:
		return "awaiting-confirmation"
	case StateLocked:
		return "locked"
	case StateUnlocked:
		return "unlocked"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Outcome describes what a successful submission led to.
type Outcome int

const (
	// OutcomeIgnored means the pattern was discarded without effect.
	OutcomeIgnored Outcome = iota
	// OutcomeConfirmRequired means the first setup drawing was accepted.
	OutcomeConfirmRequired
	// OutcomeUnlocked means the vault is now open.
	OutcomeUnlocked
)

// Authenticator gates the vault behind a gesture. It holds only transient
// drawing state; the stored hash and key material live in the vault.
type Authenticator struct {
	vault  Vault
	logger *logger.Logger
	reset  *ResetTrigger

	mu    sync.Mutex
	state State
	first Pattern
	path  *Path
}

// NewAuthenticator returns an authenticator in [StateNoGestureSet]. Call
// [Authenticator.Load] to pick up an existing gesture.
func NewAuthenticator(vault Vault, log *logger.Logger) *Authenticator {
	return &Authenticator{
		vault:  vault,
		logger: log,
		reset:  NewResetTrigger(),
		state:  StateNoGestureSet,
	}
}

// Load sets the state from whether a gesture hash is stored.
func (a *Authenticator) Load(ctx context.Context) (State, error) {
	_, found, err := a.vault.GestureHash(ctx)
	if err != nil {
		return a.State(), err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.first = nil
	a.path = nil
	if found {
		a.state = StateLocked
	} else {
		a.state = StateNoGestureSet
	}
	return a.state, nil
}

// State returns the current state; [StateDrawing] while a path is open.
func (a *Authenticator) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.path != nil {
		return StateDrawing
	}
	return a.state
}

// Phase returns the flow state, ignoring an open path.
func (a *Authenticator) Phase() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Confirming reports whether setup waits for the confirmation drawing.
func (a *Authenticator) Confirming() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state == StateAwaitingConfirmation
}

// BeginPath starts drawing at cell.
func (a *Authenticator) BeginPath(cell int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state == StateUnlocked {
		return
	}
	a.path = &Path{}
	a.path.Add(cell)
}

// ExtendPath adds cell to the open path, skipping cells already drawn.
func (a *Authenticator) ExtendPath(cell int) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.path == nil {
		return ErrNotDrawing
	}
	a.path.Add(cell)
	return nil
}

// CurrentPath returns the cells drawn so far.
func (a *Authenticator) CurrentPath() Pattern {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.path == nil {
		return nil
	}
	return a.path.Pattern()
}

// CancelPath drops the open path.
func (a *Authenticator) CancelPath() {
	a.mu.Lock()
	a.path = nil
	a.mu.Unlock()
}

// EndPath closes the open path and submits it.
func (a *Authenticator) EndPath(ctx context.Context) (Outcome, error) {
	a.mu.Lock()
	if a.path == nil {
		a.mu.Unlock()
		return OutcomeIgnored, ErrNotDrawing
	}
	p := a.path.Pattern()
	a.path = nil
	a.mu.Unlock()

	if len(p) == 0 {
		return OutcomeIgnored, nil
	}
	return a.Submit(ctx, p)
}

// Submit feeds a finished pattern into the flow.
func (a *Authenticator) Submit(ctx context.Context, p Pattern) (Outcome, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.path = nil

	switch a.state {
	case StateNoGestureSet:
		return a.submitFirst(p)
	case StateAwaitingConfirmation:
		return a.submitConfirmation(ctx, p)
	case StateLocked:
		return a.submitUnlock(ctx, p)
	default:
		return OutcomeIgnored, nil
	}
}

func (a *Authenticator) submitFirst(p Pattern) (Outcome, error) {
	if err := p.Validate(); err != nil {
		return OutcomeIgnored, err
	}
	a.first = append(Pattern(nil), p...)
	a.state = StateAwaitingConfirmation
	return OutcomeConfirmRequired, nil
}

func (a *Authenticator) submitConfirmation(ctx context.Context, p Pattern) (Outcome, error) {
	if err := p.Validate(); err != nil {
		return OutcomeIgnored, err
	}
	if !p.Equal(a.first) {
		a.first = nil
		a.state = StateNoGestureSet
		return OutcomeIgnored, ErrConfirmationMismatch
	}

	secret := p.Canonical()
	if err := a.vault.Initialize(ctx, secret); err != nil {
		a.first = nil
		a.state = StateNoGestureSet
		a.logger.Err(err).Str("func", "Authenticator.submitConfirmation").Msg("vault initialization failed")
		return OutcomeIgnored, fmt.Errorf("%w: %w", ErrStorageUnlockFailed, err)
	}
	if err := a.vault.SetGestureHash(ctx, p.Hash()); err != nil {
		a.vault.Lock()
		a.first = nil
		a.state = StateNoGestureSet
		a.logger.Err(err).Str("func", "Authenticator.submitConfirmation").Msg("failed to persist gesture hash")
		return OutcomeIgnored, err
	}

	a.first = nil
	a.state = StateUnlocked
	a.logger.Info().Str("func", "Authenticator.submitConfirmation").Msg("gesture created")
	return OutcomeUnlocked, nil
}

func (a *Authenticator) submitUnlock(ctx context.Context, p Pattern) (Outcome, error) {
	// short paths are dropped before any hashing
	if len(p) < MinPatternLength {
		return OutcomeIgnored, nil
	}

	stored, found, err := a.vault.GestureHash(ctx)
	if err != nil {
		return OutcomeIgnored, fmt.Errorf("%w: %w", ErrStorageUnlockFailed, err)
	}
	if !found {
		a.state = StateNoGestureSet
		return OutcomeIgnored, ErrAccessDenied
	}
	if !crypto.VerifyGesture(p.Canonical(), stored) {
		a.logger.Info().Str("func", "Authenticator.submitUnlock").Msg("gesture rejected")
		return OutcomeIgnored, ErrAccessDenied
	}

	if err = a.vault.Unlock(ctx, p.Canonical()); err != nil {
		a.logger.Err(err).Str("func", "Authenticator.submitUnlock").Msg("gesture matched but vault did not open")
		return OutcomeIgnored, fmt.Errorf("%w: %w", ErrStorageUnlockFailed, err)
	}

	a.state = StateUnlocked
	return OutcomeUnlocked, nil
}

// Lock locks the vault and returns to [StateLocked].
func (a *Authenticator) Lock() {
	a.vault.Lock()
	a.Locked()
}

// Locked records that the vault was locked elsewhere, e.g. by auto-lock.
func (a *Authenticator) Locked() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.path = nil
	if a.state == StateUnlocked {
		a.state = StateLocked
	}
}

// TapReset registers a tap on the centre control and reports whether the
// reset sequence completed.
func (a *Authenticator) TapReset(now time.Time) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.reset.Tap(now)
}

// ResetRisk reports whether resetting now would strand records that are
// still encrypted under the current gesture.
func (a *Authenticator) ResetRisk(ctx context.Context) (bool, error) {
	return a.vault.HasUnmigratedLegacyData(ctx)
}

// Reset clears the stored gesture. Without override it fails with the
// vault's legacy-risk error when [Authenticator.ResetRisk] holds.
func (a *Authenticator) Reset(ctx context.Context, override bool) error {
	if err := a.vault.ResetGesture(ctx, override); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.first = nil
	a.path = nil
	a.state = StateNoGestureSet
	a.logger.Warn().Str("func", "Authenticator.Reset").Msg("gesture cleared")
	return nil
}
