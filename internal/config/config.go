// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging defaults, an optional JSON file, environment
// variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage selects and locates the slot backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Vault holds auto-lock and key derivation settings.
	Vault Vault `envPrefix:"VAULT_"`

	// Log holds log file and level settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage holds slot backend settings.
type Storage struct {
	// Driver is one of "sqlite", "file" or "memory".
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the SQLite database path or the JSON slot file path.
	// Ignored by the memory driver.
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`
}

// Vault holds settings of the secure storage engine.
type Vault struct {
	// AutoLockTimeout is the inactivity period after which the vault locks.
	// Env: VAULT_AUTO_LOCK_TIMEOUT
	AutoLockTimeout time.Duration `env:"AUTO_LOCK_TIMEOUT"`

	// AutoLockCheckInterval is how often inactivity is checked.
	// Env: VAULT_AUTO_LOCK_CHECK_INTERVAL
	AutoLockCheckInterval time.Duration `env:"AUTO_LOCK_CHECK_INTERVAL"`

	// KDFIterations is the PBKDF2 iteration count used for new envelopes.
	// Env: VAULT_KDF_ITERATIONS
	KDFIterations int `env:"KDF_ITERATIONS"`

	// KDFLegacyIterations lists older iteration counts tried when reading.
	// Env: VAULT_KDF_LEGACY_ITERATIONS (comma separated)
	KDFLegacyIterations []int `env:"KDF_LEGACY_ITERATIONS" envSeparator:","`
}

// Log holds logging settings.
type Log struct {
	// File is the path of the JSON log file.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Default settings.
const (
	DefaultDriver                = "sqlite"
	DefaultDSN                   = "securepass.db"
	DefaultAutoLockTimeout       = 30 * time.Minute
	DefaultAutoLockCheckInterval = time.Minute
	DefaultKDFIterations         = 5000
	DefaultKDFLegacyIterations   = 100000
	DefaultLogFile               = "securepass.log"
	DefaultLogLevel              = "info"
)

// Defaults returns the built-in configuration.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			Driver: DefaultDriver,
			DSN:    DefaultDSN,
		},
		Vault: Vault{
			AutoLockTimeout:       DefaultAutoLockTimeout,
			AutoLockCheckInterval: DefaultAutoLockCheckInterval,
			KDFIterations:         DefaultKDFIterations,
			KDFLegacyIterations:   []int{DefaultKDFLegacyIterations},
		},
		Log: Log{
			File:  DefaultLogFile,
			Level: DefaultLogLevel,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration.
// flagCfg carries values bound by [RegisterFlags] after the command line was
// parsed; nil means no flags.
func GetStructuredConfig(flagCfg *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flagCfg).
		withJSON().
		build()
}
