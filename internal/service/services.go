// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-gesture-vault/internal/crypto"
	"github.com/MKhiriev/go-gesture-vault/internal/logger"
	"github.com/MKhiriev/go-gesture-vault/internal/utils"
)

type Services struct {
	EntryService  EntryService
	BackupService BackupService
}

func NewServices(records RecordStore, cipher crypto.EnvelopeCipher, fallback crypto.FallbackDecryptor, log *logger.Logger) *Services {
	ids := utils.NewUUIDGenerator()
	entries := NewEntryValidationService().Wrap(NewEntryService(records, ids, log))

	return &Services{
		EntryService:  entries,
		BackupService: NewBackupService(entries, records, cipher, fallback, ids, log),
	}
}
