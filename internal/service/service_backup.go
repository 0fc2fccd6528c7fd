// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-gesture-vault/internal/crypto"
	"github.com/MKhiriev/go-gesture-vault/internal/logger"
	"github.com/MKhiriev/go-gesture-vault/internal/utils"
	"github.com/MKhiriev/go-gesture-vault/internal/validators"
	"github.com/MKhiriev/go-gesture-vault/internal/vault"
	"github.com/MKhiriev/go-gesture-vault/models"
)

const exportDateLayout = "2006-01-02T15:04:05.000Z"

// BackupFileName returns the suggested file name for a backup taken at now.
func BackupFileName(now time.Time) string {
	return "vault-backup-" + now.Format(time.DateOnly) + ".vault"
}

type backupService struct {
	entries   EntryService
	records   RecordStore
	cipher    crypto.EnvelopeCipher
	fallback  crypto.FallbackDecryptor
	ids       utils.IDGenerator
	validator validators.Validator
	logger    *logger.Logger
	now       func() time.Time
}

func NewBackupService(entries EntryService, records RecordStore, cipher crypto.EnvelopeCipher,
	fallback crypto.FallbackDecryptor, ids utils.IDGenerator, log *logger.Logger) BackupService {
	return &backupService{
		entries:   entries,
		records:   records,
		cipher:    cipher,
		fallback:  fallback,
		ids:       ids,
		validator: validators.NewEntryValidator(),
		logger:    log,
		now:       time.Now,
	}
}

// Export returns the JSON envelope of the whole collection sealed under
// passphrase.
func (s *backupService) Export(ctx context.Context, passphrase, confirm string) ([]byte, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}
	if passphrase != confirm {
		return nil, ErrPassphraseMismatch
	}

	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	doc := models.BackupDocument{
		Version:   models.BackupFormatVersion,
		Timestamp: now.UnixMilli(),
		Passwords: entries,
		Metadata: models.BackupMetadata{
			TotalPasswords: len(entries),
			Categories:     distinctCategories(entries),
			ExportDate:     now.UTC().Format(exportDateLayout),
		},
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode backup: %w", err)
	}

	envelope, err := s.cipher.Encrypt(string(payload), passphrase)
	if err != nil {
		s.logger.Err(err).Str("func", "backupService.Export").Msg("failed to encrypt backup")
		return nil, fmt.Errorf("encrypt backup: %w", err)
	}
	envelope.Scheme = &models.SchemeTag{Key: models.KeySourceSecret, Iterations: s.cipher.Iterations()}

	blob, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("encode backup envelope: %w", err)
	}

	s.logger.Info().Str("func", "backupService.Export").Int("entries", len(entries)).Msg("backup exported")
	return blob, nil
}

// Import decrypts blob with passphrase and combines its entries with the
// current collection. An empty mode falls back to the last mode used.
func (s *backupService) Import(ctx context.Context, blob []byte, passphrase string, mode models.ImportMode) (models.ImportResult, error) {
	if passphrase == "" {
		return models.ImportResult{}, ErrEmptyPassphrase
	}
	if mode == "" {
		last, err := s.LastImportMode(ctx)
		if err != nil {
			return models.ImportResult{}, err
		}
		mode = last
	}
	if _, err := models.ParseImportMode(string(mode)); err != nil {
		return models.ImportResult{}, err
	}

	var envelope models.EncryptedEnvelope
	if err := json.Unmarshal(blob, &envelope); err != nil || !envelope.Complete() {
		return models.ImportResult{}, ErrInvalidBackup
	}

	plain, err := s.open(envelope, passphrase)
	if err != nil {
		s.logger.Warn().Str("func", "backupService.Import").Msg("backup could not be decrypted")
		return models.ImportResult{}, ErrWrongPassphrase
	}

	var doc models.BackupDocument
	if err = json.Unmarshal([]byte(plain), &doc); err != nil {
		return models.ImportResult{}, fmt.Errorf("%w: %w", ErrInvalidBackup, err)
	}
	if err = s.validator.Validate(ctx, doc, validators.FieldBackupPasswords); err != nil {
		return models.ImportResult{}, fmt.Errorf("%w: %w", ErrInvalidBackup, err)
	}

	imported := s.normalize(doc.Passwords)

	var (
		result  []models.PasswordEntry
		skipped int
	)
	switch mode {
	case models.ImportOverwrite:
		result = imported
	default:
		existing, err := s.entries.List(ctx)
		if err != nil {
			return models.ImportResult{}, err
		}
		result, skipped = mergeEntries(existing, imported)
	}

	if err = s.entries.Replace(ctx, result); err != nil {
		return models.ImportResult{}, err
	}
	if err = s.records.Set(ctx, vault.KeyLastImportMode, string(mode)); err != nil {
		s.logger.Err(err).Str("func", "backupService.Import").Msg("failed to remember import mode")
	}

	res := models.ImportResult{
		Mode:     mode,
		Imported: len(imported) - skipped,
		Skipped:  skipped,
		Total:    len(result),
	}
	s.logger.Info().
		Str("func", "backupService.Import").
		Str("mode", string(mode)).
		Int("imported", res.Imported).
		Int("skipped", res.Skipped).
		Msg("backup imported")
	return res, nil
}

// open tries the tagged parameters first and then every known variant.
func (s *backupService) open(envelope models.EncryptedEnvelope, passphrase string) (string, error) {
	if tag := envelope.Scheme; tag != nil && tag.Key == models.KeySourceSecret && tag.Iterations > 0 {
		if plain, err := s.cipher.DecryptWith(envelope, passphrase, tag.Iterations); err == nil {
			return plain, nil
		}
	}
	plain, _, err := s.fallback.DecryptWithFallback(envelope, passphrase)
	return plain, err
}

func (s *backupService) normalize(entries []models.PasswordEntry) []models.PasswordEntry {
	nowMs := s.now().UnixMilli()
	out := make([]models.PasswordEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID == "" {
			e.ID = s.ids.Generate()
		}
		if e.Category == "" {
			e.Category = models.DefaultCategory
		}
		if e.CreatedAt == 0 {
			e.CreatedAt = nowMs
		}
		out = append(out, e)
	}
	return out
}

// mergeEntries keeps existing and appends imported entries with unseen ids.
func mergeEntries(existing, imported []models.PasswordEntry) ([]models.PasswordEntry, int) {
	seen := make(map[string]struct{}, len(existing)+len(imported))
	merged := make([]models.PasswordEntry, 0, len(existing)+len(imported))
	for _, e := range existing {
		seen[e.ID] = struct{}{}
		merged = append(merged, e)
	}

	skipped := 0
	for _, e := range imported {
		if _, dup := seen[e.ID]; dup {
			skipped++
			continue
		}
		seen[e.ID] = struct{}{}
		merged = append(merged, e)
	}
	return merged, skipped
}

func (s *backupService) LastImportMode(ctx context.Context) (models.ImportMode, error) {
	raw, err := vault.Get(ctx, s.records, vault.KeyLastImportMode, string(models.ImportMerge))
	if err != nil {
		return models.ImportMerge, err
	}
	mode, err := models.ParseImportMode(raw)
	if err != nil {
		return models.ImportMerge, nil
	}
	return mode, nil
}
