// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the merged [StructuredConfig] is usable at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Driver {
	case "sqlite", "file":
		if cfg.Storage.DSN == "" {
			return fmt.Errorf("%w: empty DSN for driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
		}
	case "memory":
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}

	if cfg.Vault.AutoLockTimeout <= 0 || cfg.Vault.AutoLockCheckInterval <= 0 {
		return fmt.Errorf("%w: auto-lock durations must be positive", ErrInvalidVaultConfigs)
	}
	if cfg.Vault.KDFIterations <= 0 {
		return fmt.Errorf("%w: kdf iterations must be positive", ErrInvalidVaultConfigs)
	}
	for _, it := range cfg.Vault.KDFLegacyIterations {
		if it <= 0 {
			return fmt.Errorf("%w: legacy kdf iterations must be positive", ErrInvalidVaultConfigs)
		}
	}

	return nil
}
