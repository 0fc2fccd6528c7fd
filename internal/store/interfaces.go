// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/slot_storage_mock.go -package=mock

// SlotStorage is the device-local key/value persistence used by the vault.
//
// Every value is an opaque string: either a JSON envelope or a legacy
// plaintext JSON value. Implementations replace a slot atomically, so a
// reader never observes a partially written value.
type SlotStorage interface {
	// GetSlot returns the raw value stored under key. found is false when the
	// slot does not exist; err is reserved for backend failures.
	GetSlot(ctx context.Context, key string) (value string, found bool, err error)

	// SetSlot creates or replaces the slot under key.
	SetSlot(ctx context.Context, key, value string) error

	// RemoveSlot deletes key. Removing a missing slot is not an error.
	RemoveSlot(ctx context.Context, key string) error

	// ListSlots returns every existing key that starts with prefix, sorted.
	ListSlots(ctx context.Context, prefix string) ([]string, error)

	// Close releases the backend.
	Close() error
}
