// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-gesture-vault/internal/logger"
	"github.com/MKhiriev/go-gesture-vault/internal/utils"
	"github.com/MKhiriev/go-gesture-vault/internal/vault"
	"github.com/MKhiriev/go-gesture-vault/models"
)

// CategoryAll is the search category that matches every entry.
const CategoryAll = "all"

// ReminderPeriod is the age after which an entry is due for rotation.
const ReminderPeriod = 90 * 24 * time.Hour

type entryService struct {
	records RecordStore
	ids     utils.IDGenerator
	logger  *logger.Logger
	now     func() time.Time
}

func NewEntryService(records RecordStore, ids utils.IDGenerator, log *logger.Logger) EntryService {
	return &entryService{
		records: records,
		ids:     ids,
		logger:  log,
		now:     time.Now,
	}
}

func (s *entryService) load(ctx context.Context) ([]models.PasswordEntry, error) {
	entries, err := vault.Get(ctx, s.records, vault.KeyPasswords, []models.PasswordEntry{})
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.PasswordEntry{}
	}
	return entries, nil
}

func (s *entryService) save(ctx context.Context, entries []models.PasswordEntry) error {
	if err := s.records.Set(ctx, vault.KeyPasswords, entries); err != nil {
		s.logger.Err(err).Str("func", "entryService.save").Int("entries", len(entries)).Msg("failed to store entries")
		return fmt.Errorf("store entries: %w", err)
	}
	return nil
}

func (s *entryService) List(ctx context.Context) ([]models.PasswordEntry, error) {
	return s.load(ctx)
}

func (s *entryService) Get(ctx context.Context, id string) (models.PasswordEntry, error) {
	entries, err := s.load(ctx)
	if err != nil {
		return models.PasswordEntry{}, err
	}
	i := indexOf(entries, id)
	if i < 0 {
		return models.PasswordEntry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	return entries[i], nil
}

func (s *entryService) Add(ctx context.Context, draft models.EntryDraft) (models.PasswordEntry, error) {
	entries, err := s.load(ctx)
	if err != nil {
		return models.PasswordEntry{}, err
	}

	entry := models.PasswordEntry{
		ID:        s.ids.Generate(),
		Site:      strings.TrimSpace(draft.Site),
		Username:  strings.TrimSpace(draft.Username),
		Password:  draft.Password,
		Category:  categoryOrDefault(draft.Category),
		CreatedAt: s.now().UnixMilli(),
	}

	// newest first
	if err = s.save(ctx, append([]models.PasswordEntry{entry}, entries...)); err != nil {
		return models.PasswordEntry{}, err
	}
	return entry, nil
}

func (s *entryService) Update(ctx context.Context, id string, draft models.EntryDraft) (models.PasswordEntry, error) {
	entries, err := s.load(ctx)
	if err != nil {
		return models.PasswordEntry{}, err
	}
	i := indexOf(entries, id)
	if i < 0 {
		return models.PasswordEntry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}

	entries[i].Site = strings.TrimSpace(draft.Site)
	entries[i].Username = strings.TrimSpace(draft.Username)
	entries[i].Password = draft.Password
	entries[i].Category = categoryOrDefault(draft.Category)

	if err = s.save(ctx, entries); err != nil {
		return models.PasswordEntry{}, err
	}
	return entries[i], nil
}

func (s *entryService) Delete(ctx context.Context, id string) error {
	entries, err := s.load(ctx)
	if err != nil {
		return err
	}
	i := indexOf(entries, id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	return s.save(ctx, append(entries[:i], entries[i+1:]...))
}

func (s *entryService) Replace(ctx context.Context, entries []models.PasswordEntry) error {
	if entries == nil {
		entries = []models.PasswordEntry{}
	}
	return s.save(ctx, entries)
}

func (s *entryService) Categories(ctx context.Context) ([]string, error) {
	entries, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return distinctCategories(entries), nil
}

func (s *entryService) Search(ctx context.Context, category, term string) ([]models.PasswordEntry, error) {
	entries, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	result := make([]models.PasswordEntry, 0, len(entries))
	for _, e := range entries {
		if category != "" && category != CategoryAll && e.Category != category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(e.Site), term) &&
			!strings.Contains(strings.ToLower(e.Username), term) {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}

func (s *entryService) DueForRotation(ctx context.Context, now time.Time) ([]models.PasswordEntry, error) {
	entries, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	var due []models.PasswordEntry
	for _, e := range entries {
		if e.Age(now) >= ReminderPeriod {
			due = append(due, e)
		}
	}
	return due, nil
}

func indexOf(entries []models.PasswordEntry, id string) int {
	for i := range entries {
		if entries[i].ID == id {
			return i
		}
	}
	return -1
}

func categoryOrDefault(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return models.DefaultCategory
	}
	return category
}

// distinctCategories returns the non-empty categories in first-seen order.
func distinctCategories(entries []models.PasswordEntry) []string {
	seen := make(map[string]struct{}, len(entries))
	categories := make([]string, 0)
	for _, e := range entries {
		if e.Category == "" {
			continue
		}
		if _, ok := seen[e.Category]; ok {
			continue
		}
		seen[e.Category] = struct{}{}
		categories = append(categories, e.Category)
	}
	return categories
}
