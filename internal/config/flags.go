// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/spf13/pflag"
)

// RegisterFlags binds configuration flags on fs and returns the config they
// populate once fs is parsed. Unset flags keep zero values and therefore do
// not override other sources.
//
// Flags:
//
//	-c/--config          JSON file path with configs
//	-d/--dsn             storage DSN (database or slot file path)
//	--driver             storage driver: sqlite, file or memory
//	--auto-lock          inactivity timeout (e.g. "30m")
//	--auto-lock-check    inactivity check interval (e.g. "1m")
//	--kdf-iterations     PBKDF2 iterations for new envelopes
//	--kdf-legacy         legacy PBKDF2 iterations tried on read
//	--log-file           log file path
//	--log-level          log level
func RegisterFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.StringVarP(&cfg.Storage.DSN, "dsn", "d", "", "Storage DSN (database or slot file path)")
	fs.StringVar(&cfg.Storage.Driver, "driver", "", "Storage driver: sqlite, file or memory")
	fs.DurationVar(&cfg.Vault.AutoLockTimeout, "auto-lock", 0, "Auto-lock inactivity timeout (e.g. 30m)")
	fs.DurationVar(&cfg.Vault.AutoLockCheckInterval, "auto-lock-check", 0, "Auto-lock check interval (e.g. 1m)")
	fs.IntVar(&cfg.Vault.KDFIterations, "kdf-iterations", 0, "PBKDF2 iterations for new envelopes")
	fs.IntSliceVar(&cfg.Vault.KDFLegacyIterations, "kdf-legacy", nil, "Legacy PBKDF2 iterations tried on read")
	fs.StringVar(&cfg.Log.File, "log-file", "", "Log file path")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level (debug, info, warn, error)")

	return cfg
}
