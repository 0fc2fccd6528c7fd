// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-gesture-vault/internal/vault"

// Session is the activity and lock surface of the vault.
type Session interface {
	// Touch records user activity for the auto-lock timer.
	Touch()
	LockEvents() <-chan vault.LockEvent
}
