// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-gesture-vault/models"
)

const (
	FieldID       = "id"
	FieldSite     = "site"
	FieldUsername = "username"
	FieldPassword = "password"
	FieldCategory = "category"

	FieldBackupVersion   = "version"
	FieldBackupPasswords = "passwords"
)

// MaxFieldLength caps every free-text entry field.
const MaxFieldLength = 1024

type EntryValidator struct {
}

func NewEntryValidator() Validator {
	return &EntryValidator{}
}

func (v *EntryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.EntryDraft:
		return v.validateDraft(value, fields...)
	case *models.EntryDraft:
		return v.validateDraft(*value, fields...)

	case models.PasswordEntry:
		return v.validateEntry(value, fields...)
	case *models.PasswordEntry:
		return v.validateEntry(*value, fields...)

	case models.BackupDocument:
		return v.validateBackup(value, fields...)
	case *models.BackupDocument:
		return v.validateBackup(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *EntryValidator) validateDraft(d models.EntryDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSite, FieldUsername, FieldPassword, FieldCategory}
	}

	for _, f := range fields {
		switch f {
		case FieldSite:
			if err := requireText(d.Site, ErrEmptySite); err != nil {
				return err
			}
		case FieldUsername:
			if err := requireText(d.Username, ErrEmptyUsername); err != nil {
				return err
			}
		case FieldPassword:
			if err := requireText(d.Password, ErrEmptyPassword); err != nil {
				return err
			}
		case FieldCategory:
			if len(d.Category) > MaxFieldLength {
				return fmt.Errorf("%w: %s", ErrFieldTooLong, FieldCategory)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EntryValidator) validateEntry(e models.PasswordEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldSite, FieldUsername, FieldPassword, FieldCategory}
	}

	draftFields := make([]string, 0, len(fields))
	for _, f := range fields {
		if f == FieldID {
			if strings.TrimSpace(e.ID) == "" {
				return ErrEmptyID
			}
			continue
		}
		draftFields = append(draftFields, f)
	}
	if len(draftFields) == 0 {
		return nil
	}

	return v.validateDraft(models.EntryDraft{
		Site:     e.Site,
		Username: e.Username,
		Password: e.Password,
		Category: e.Category,
	}, draftFields...)
}

func (v *EntryValidator) validateBackup(doc models.BackupDocument, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBackupVersion, FieldBackupPasswords}
	}

	for _, f := range fields {
		switch f {
		case FieldBackupVersion:
			if strings.TrimSpace(doc.Version) == "" {
				return ErrEmptyVersion
			}
		case FieldBackupPasswords:
			if doc.Passwords == nil {
				return ErrMissingEntries
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func requireText(s string, empty error) error {
	if strings.TrimSpace(s) == "" {
		return empty
	}
	if len(s) > MaxFieldLength {
		return fmt.Errorf("%w: %d bytes", ErrFieldTooLong, len(s))
	}
	return nil
}
