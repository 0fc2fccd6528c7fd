// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-gesture-vault/internal/gesture"
	"github.com/MKhiriev/go-gesture-vault/internal/service"
	"github.com/MKhiriev/go-gesture-vault/internal/validators"
	"github.com/MKhiriev/go-gesture-vault/internal/vault"
)

// humanizeError turns engine errors into messages for the status line.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, gesture.ErrTooShort):
		return "Connect at least 4 dots"
	case errors.Is(err, gesture.ErrInvalidPattern):
		return "Each dot can be used only once"
	case errors.Is(err, gesture.ErrConfirmationMismatch):
		return "Patterns do not match. Draw a new pattern"
	case errors.Is(err, gesture.ErrAccessDenied):
		return "Wrong pattern"
	case errors.Is(err, gesture.ErrStorageUnlockFailed):
		return "Pattern accepted, but the vault could not be opened"
	case errors.Is(err, vault.ErrStorageLocked):
		return "Vault is locked"
	case errors.Is(err, vault.ErrLegacyDataAtRisk):
		return "Some records are still sealed with the old gesture and would be lost"
	case errors.Is(err, service.ErrEntryNotFound):
		return "Entry no longer exists"
	case errors.Is(err, validators.ErrEmptySite):
		return "Site is required"
	case errors.Is(err, validators.ErrEmptyUsername):
		return "Username is required"
	case errors.Is(err, validators.ErrEmptyPassword):
		return "Password is required"
	case errors.Is(err, validators.ErrFieldTooLong):
		return "Value is too long"
	}

	return err.Error()
}
