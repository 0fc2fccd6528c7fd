// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	slotsTable      = "slots"
	slotKeyColumn   = "slot_key"
	slotValueColumn = "slot_value"
	slotUpdatedAt   = "updated_at"

	upsertSlotSuffix = "ON CONFLICT(slot_key) DO UPDATE SET slot_value = excluded.slot_value, updated_at = excluded.updated_at"
)

func getSlotQuery(key string) (string, []any, error) {
	return sq.Select(slotValueColumn).
		From(slotsTable).
		Where(sq.Eq{slotKeyColumn: key}).
		ToSql()
}

func upsertSlotQuery(key, value string, now time.Time) (string, []any, error) {
	return sq.Insert(slotsTable).
		Columns(slotKeyColumn, slotValueColumn, slotUpdatedAt).
		Values(key, value, now).
		Suffix(upsertSlotSuffix).
		ToSql()
}

func deleteSlotQuery(key string) (string, []any, error) {
	return sq.Delete(slotsTable).
		Where(sq.Eq{slotKeyColumn: key}).
		ToSql()
}

// listSlotsQuery over-selects with LIKE ("_" is a wildcard there); callers
// filter the result with an exact prefix match.
func listSlotsQuery(prefix string) (string, []any, error) {
	return sq.Select(slotKeyColumn).
		From(slotsTable).
		Where(sq.Like{slotKeyColumn: prefix + "%"}).
		OrderBy(slotKeyColumn).
		ToSql()
}
