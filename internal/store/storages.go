// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-gesture-vault/internal/config"
	"github.com/MKhiriev/go-gesture-vault/internal/logger"
)

// Supported values of config.Storage.Driver.
const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"
	DriverMemory = "memory"
)

// NewSlotStorage opens the backend selected by cfg.Driver. For SQLite it
// also runs pending migrations.
func NewSlotStorage(ctx context.Context, cfg config.Storage, log *logger.Logger) (SlotStorage, error) {
	log.Info().Str("driver", cfg.Driver).Msg("creating slot storage...")

	switch cfg.Driver {
	case DriverMemory:
		return NewMemorySlotStorage(), nil
	case DriverFile:
		return NewFileSlotStorage(cfg.DSN, log)
	case DriverSQLite, "":
		db, err := NewConnectSQLite(ctx, cfg.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return NewSQLiteSlotStorage(db, log), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
