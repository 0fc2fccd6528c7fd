// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	// ErrNoGesture is returned by [App.Unlock] when the vault has no gesture
	// yet. The first gesture is created in the interactive UI.
	ErrNoGesture = errors.New("no gesture set, run the interactive app first")

	// ErrNotUnlocked is returned when a submitted pattern did not open the vault.
	ErrNotUnlocked = errors.New("vault was not unlocked")
)
