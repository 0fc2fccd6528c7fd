// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// BackupFormatVersion is written into every exported [BackupDocument].
const BackupFormatVersion = "1.0"

// BackupDocument is the plaintext body of an exported vault. It is encrypted
// as a whole under a one-time passphrase unrelated to the gesture or the
// internal key, so the file can be restored on any device.
type BackupDocument struct {
	Version   string          `json:"version"`
	Timestamp int64           `json:"timestamp"`
	Passwords []PasswordEntry `json:"passwords"`
	Metadata  BackupMetadata  `json:"metadata"`
}

// BackupMetadata summarises the exported collection.
type BackupMetadata struct {
	TotalPasswords int      `json:"totalPasswords"`
	Categories     []string `json:"categories"`
	ExportDate     string   `json:"exportDate"`
}

// ImportMode selects how imported entries are combined with existing ones.
type ImportMode string

const (
	// ImportMerge keeps existing entries and appends imported entries whose
	// id is not present yet.
	ImportMerge ImportMode = "merge"
	// ImportOverwrite replaces the whole collection with the imported one.
	ImportOverwrite ImportMode = "overwrite"
)

// ParseImportMode converts a user supplied string into an [ImportMode].
func ParseImportMode(s string) (ImportMode, error) {
	switch ImportMode(s) {
	case ImportMerge, ImportOverwrite:
		return ImportMode(s), nil
	case "":
		return ImportMerge, nil
	default:
		return "", fmt.Errorf("unknown import mode %q", s)
	}
}

// ImportResult describes the outcome of an import.
type ImportResult struct {
	Mode     ImportMode
	Imported int
	Skipped  int
	Total    int
}
