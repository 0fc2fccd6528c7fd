// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-gesture-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// RecordStore is the part of the vault the services persist through.
type RecordStore interface {
	Load(ctx context.Context, key string, target any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

// EntryService is the credential repository kept inside the vault.
type EntryService interface {
	// List returns every entry, newest first.
	List(ctx context.Context) ([]models.PasswordEntry, error)
	Get(ctx context.Context, id string) (models.PasswordEntry, error)
	Add(ctx context.Context, draft models.EntryDraft) (models.PasswordEntry, error)
	// Update replaces the editable fields of the entry with the given id.
	// ID and CreatedAt are kept.
	Update(ctx context.Context, id string, draft models.EntryDraft) (models.PasswordEntry, error)
	Delete(ctx context.Context, id string) error
	// Replace stores entries as the whole collection.
	Replace(ctx context.Context, entries []models.PasswordEntry) error

	Categories(ctx context.Context) ([]string, error)
	Search(ctx context.Context, category, term string) ([]models.PasswordEntry, error)
	// DueForRotation returns entries created at least [ReminderPeriod] before now.
	DueForRotation(ctx context.Context, now time.Time) ([]models.PasswordEntry, error)
}

// BackupService exports and imports whole-vault snapshots under a
// passphrase unrelated to the gesture.
type BackupService interface {
	Export(ctx context.Context, passphrase, confirm string) ([]byte, error)
	Import(ctx context.Context, blob []byte, passphrase string, mode models.ImportMode) (models.ImportResult, error)
	LastImportMode(ctx context.Context) (models.ImportMode, error)
}
