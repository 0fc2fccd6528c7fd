// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-gesture-vault/internal/logger"
)

type sqliteSlotStorage struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLiteSlotStorage returns a [SlotStorage] over an already migrated DB.
func NewSQLiteSlotStorage(db *DB, log *logger.Logger) SlotStorage {
	return &sqliteSlotStorage{DB: db, logger: log, now: time.Now}
}

func (s *sqliteSlotStorage) GetSlot(ctx context.Context, key string) (string, bool, error) {
	query, args, err := getSlotQuery(key)
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteSlotStorage.GetSlot").
			Str("slot", key).
			Msg("failed to query slot")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return value, true, nil
}

func (s *sqliteSlotStorage) SetSlot(ctx context.Context, key, value string) error {
	query, args, err := upsertSlotQuery(key, value, s.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteSlotStorage.SetSlot").
			Str("slot", key).
			Msg("failed to upsert slot")
		return fmt.Errorf("%w (slot=%s): %w", ErrExecutingStatement, key, err)
	}
	return nil
}

func (s *sqliteSlotStorage) RemoveSlot(ctx context.Context, key string) error {
	query, args, err := deleteSlotQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteSlotStorage.RemoveSlot").
			Str("slot", key).
			Msg("failed to delete slot")
		return fmt.Errorf("%w (slot=%s): %w", ErrExecutingStatement, key, err)
	}
	return nil
}

func (s *sqliteSlotStorage) ListSlots(ctx context.Context, prefix string) ([]string, error) {
	query, args, err := listSlotsQuery(prefix)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteSlotStorage.ListSlots").
			Str("prefix", prefix).
			Msg("failed to list slots")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err = rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return keys, nil
}

func (s *sqliteSlotStorage) Close() error {
	return s.DB.Close()
}
