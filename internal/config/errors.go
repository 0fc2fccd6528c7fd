// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidStorageConfigs indicates an unknown driver or a missing DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidVaultConfigs indicates non-positive auto-lock durations or
	// KDF iteration counts.
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
)

// ErrInvalidEnvConfigs wraps a variable that could not be converted to its
// field type.
var ErrInvalidEnvConfigs = errors.New("invalid environment configuration")
