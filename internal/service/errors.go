// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrEntryNotFound = errors.New("entry not found")

	ErrEmptyPassphrase    = errors.New("passphrase is empty")
	ErrPassphraseMismatch = errors.New("passphrases do not match")
	ErrWrongPassphrase    = errors.New("wrong passphrase or damaged backup")
	ErrInvalidBackup      = errors.New("invalid backup file format")
)
