// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import "errors"

var (
	// ErrStorageLocked is returned by record operations while the vault is
	// not unlocked.
	ErrStorageLocked = errors.New("vault storage is locked")

	// ErrUnlockFailed is returned when a secret cannot open the vault.
	ErrUnlockFailed = errors.New("vault unlock failed")

	// ErrNotInitialized is returned when unlocking a vault that was never
	// initialized.
	ErrNotInitialized = errors.New("vault is not initialized")

	// ErrEmptySecret is returned for an empty unlock secret.
	ErrEmptySecret = errors.New("secret is empty")

	// ErrLegacyDataAtRisk is returned by a gesture reset without override
	// while records are still encrypted under the gesture-derived scheme.
	ErrLegacyDataAtRisk = errors.New("legacy encrypted data would become unreadable after reset")

	// ErrReservedKey is returned when a record operation targets a slot the
	// engine manages itself.
	ErrReservedKey = errors.New("reserved vault key")
)
