// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-gesture-vault/internal/gesture"
	"github.com/MKhiriev/go-gesture-vault/internal/service"
	"github.com/MKhiriev/go-gesture-vault/internal/vault"
	"github.com/MKhiriev/go-gesture-vault/models"
)

const statusTTL = 3 * time.Second

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

func waitForLock(events <-chan vault.LockEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return lockedMsg{event: ev}
	}
}

func cmdEndPath(ctx context.Context, auth *gesture.Authenticator) tea.Cmd {
	return func() tea.Msg {
		out, err := auth.EndPath(ctx)
		return gestureResultMsg{outcome: out, err: err}
	}
}

func cmdResetRisk(ctx context.Context, auth *gesture.Authenticator) tea.Cmd {
	return func() tea.Msg {
		risky, err := auth.ResetRisk(ctx)
		return resetRiskMsg{risky: risky, err: err}
	}
}

func cmdReset(ctx context.Context, auth *gesture.Authenticator, override bool) tea.Cmd {
	return func() tea.Msg {
		return resetDoneMsg{err: auth.Reset(ctx, override)}
	}
}

func cmdLoadEntries(ctx context.Context, entries service.EntryService, category, term string) tea.Cmd {
	return func() tea.Msg {
		list, err := entries.Search(ctx, category, term)
		if err != nil {
			return entriesLoadedMsg{err: err}
		}
		categories, err := entries.Categories(ctx)
		if err != nil {
			return entriesLoadedMsg{err: err}
		}
		stale, err := entries.DueForRotation(ctx, time.Now())
		if err != nil {
			return entriesLoadedMsg{err: err}
		}

		due := make(map[string]bool, len(stale))
		for _, e := range stale {
			due[e.ID] = true
		}
		return entriesLoadedMsg{entries: list, categories: categories, due: due}
	}
}

func cmdSaveEntry(ctx context.Context, entries service.EntryService, id string, draft models.EntryDraft) tea.Cmd {
	return func() tea.Msg {
		var (
			entry models.PasswordEntry
			err   error
		)
		if id == "" {
			entry, err = entries.Add(ctx, draft)
		} else {
			entry, err = entries.Update(ctx, id, draft)
		}
		return entrySavedMsg{entry: entry, err: err}
	}
}

func cmdDeleteEntry(ctx context.Context, entries service.EntryService, id string) tea.Cmd {
	return func() tea.Msg {
		return entryDeletedMsg{err: entries.Delete(ctx, id)}
	}
}

func cmdCopy(what, value string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{what: what, err: writeClipboard(value)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
