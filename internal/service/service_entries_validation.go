// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-gesture-vault/internal/validators"
	"github.com/MKhiriev/go-gesture-vault/models"
)

// EntryValidationService checks drafts before they reach the repository.
type EntryValidationService struct {
	inner     EntryService
	validator validators.Validator
}

func NewEntryValidationService() EntryServiceWrapper {
	return &EntryValidationService{
		validator: validators.NewEntryValidator(),
	}
}

func (v *EntryValidationService) List(ctx context.Context) ([]models.PasswordEntry, error) {
	return v.inner.List(ctx)
}

func (v *EntryValidationService) Get(ctx context.Context, id string) (models.PasswordEntry, error) {
	if id == "" {
		return models.PasswordEntry{}, validators.ErrEmptyID
	}
	return v.inner.Get(ctx, id)
}

func (v *EntryValidationService) Add(ctx context.Context, draft models.EntryDraft) (models.PasswordEntry, error) {
	if err := v.validator.Validate(ctx, draft); err != nil {
		return models.PasswordEntry{}, fmt.Errorf("error during entry validation before saving: %w", err)
	}
	return v.inner.Add(ctx, draft)
}

func (v *EntryValidationService) Update(ctx context.Context, id string, draft models.EntryDraft) (models.PasswordEntry, error) {
	if id == "" {
		return models.PasswordEntry{}, validators.ErrEmptyID
	}
	if err := v.validator.Validate(ctx, draft); err != nil {
		return models.PasswordEntry{}, fmt.Errorf("error during entry validation before updating: %w", err)
	}
	return v.inner.Update(ctx, id, draft)
}

func (v *EntryValidationService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return validators.ErrEmptyID
	}
	return v.inner.Delete(ctx, id)
}

func (v *EntryValidationService) Replace(ctx context.Context, entries []models.PasswordEntry) error {
	for i, e := range entries {
		if err := v.validator.Validate(ctx, e, validators.FieldID); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return v.inner.Replace(ctx, entries)
}

func (v *EntryValidationService) Categories(ctx context.Context) ([]string, error) {
	return v.inner.Categories(ctx)
}

func (v *EntryValidationService) Search(ctx context.Context, category, term string) ([]models.PasswordEntry, error) {
	return v.inner.Search(ctx, category, term)
}

func (v *EntryValidationService) DueForRotation(ctx context.Context, now time.Time) ([]models.PasswordEntry, error) {
	return v.inner.DueForRotation(ctx, now)
}

func (v *EntryValidationService) Wrap(wrapper EntryService) EntryService {
	v.inner = wrapper
	return v
}
