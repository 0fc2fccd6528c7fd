// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-gesture-vault/internal/gesture"
	"github.com/MKhiriev/go-gesture-vault/internal/vault"
	"github.com/MKhiriev/go-gesture-vault/models"
)

type lockedMsg struct {
	event vault.LockEvent
}

type gestureResultMsg struct {
	outcome gesture.Outcome
	err     error
}

type resetRiskMsg struct {
	risky bool
	err   error
}

type resetDoneMsg struct {
	err error
}

type entriesLoadedMsg struct {
	entries    []models.PasswordEntry
	categories []string
	due        map[string]bool
	err        error
}

type entrySavedMsg struct {
	entry models.PasswordEntry
	err   error
}

type entryDeletedMsg struct {
	err error
}

type copiedMsg struct {
	what string
	err  error
}

type clearStatusMsg struct{}
