// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gesture

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/gesture_vault_mock.go -package=mock

// Vault is the part of the storage engine the authenticator drives.
type Vault interface {
	Initialize(ctx context.Context, secret string) error
	Unlock(ctx context.Context, secret string) error
	Lock()
	GestureHash(ctx context.Context) (hash string, found bool, err error)
	SetGestureHash(ctx context.Context, hash string) error
	ResetGesture(ctx context.Context, override bool) error
	HasUnmigratedLegacyData(ctx context.Context) (bool, error)
}
