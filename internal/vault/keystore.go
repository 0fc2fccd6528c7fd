// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-gesture-vault/internal/crypto"
	"github.com/MKhiriev/go-gesture-vault/internal/logger"
	"github.com/MKhiriev/go-gesture-vault/internal/store"
)

// InternalKeyStore owns the persisted device key. The key is generated once,
// survives gesture resets and is removed only by a full wipe.
type InternalKeyStore struct {
	slots  store.SlotStorage
	logger *logger.Logger
}

// NewInternalKeyStore returns a key store over slots.
func NewInternalKeyStore(slots store.SlotStorage, log *logger.Logger) *InternalKeyStore {
	return &InternalKeyStore{slots: slots, logger: log}
}

// GetOrCreate returns the persisted internal key, generating and storing a
// new one when the slot is absent.
func (k *InternalKeyStore) GetOrCreate(ctx context.Context) (string, error) {
	key, found, err := k.Load(ctx)
	if err != nil {
		return "", err
	}
	if found {
		return key, nil
	}

	key, err = crypto.GenerateInternalKey()
	if err != nil {
		return "", err
	}
	if err = k.Save(ctx, key); err != nil {
		return "", err
	}
	k.logger.Info().Str("func", "InternalKeyStore.GetOrCreate").Msg("generated new internal key")

	return key, nil
}

// Load returns the persisted internal key without creating one.
func (k *InternalKeyStore) Load(ctx context.Context) (string, bool, error) {
	key, found, err := k.slots.GetSlot(ctx, slotKey(KeyInternalKey))
	if err != nil {
		return "", false, fmt.Errorf("read internal key: %w", err)
	}
	if !found || key == "" {
		return "", false, nil
	}
	return key, true, nil
}

// Save persists key as the internal key.
func (k *InternalKeyStore) Save(ctx context.Context, key string) error {
	if err := k.slots.SetSlot(ctx, slotKey(KeyInternalKey), key); err != nil {
		return fmt.Errorf("persist internal key: %w", err)
	}
	return nil
}
