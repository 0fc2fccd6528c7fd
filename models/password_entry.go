// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models contains the data types shared between the vault engine,
// the service layer and the user interface.
package models

import "time"

// DefaultCategory is assigned to entries that arrive without a category,
// e.g. from an imported backup produced by an older client.
const DefaultCategory = "Uncategorized"

// PasswordEntry is a single site credential kept inside the vault.
//
// The engine treats it as an opaque payload: it is serialised to JSON as a
// whole and encrypted together with the rest of the collection. CreatedAt is
// a Unix timestamp in milliseconds, matching the format of existing vaults
// and backups.
type PasswordEntry struct {
	ID        string `json:"id"`
	Site      string `json:"site"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Category  string `json:"category"`
	CreatedAt int64  `json:"createdAt"`
}

// EntryDraft carries the user-editable fields of an entry. ID and CreatedAt
// are assigned by the repository.
type EntryDraft struct {
	Site     string
	Username string
	Password string
	Category string
}

// Created returns CreatedAt as a time.Time.
func (e PasswordEntry) Created() time.Time {
	return time.UnixMilli(e.CreatedAt)
}

// Age reports how long ago the entry was created relative to now.
func (e PasswordEntry) Age(now time.Time) time.Duration {
	return now.Sub(e.Created())
}
