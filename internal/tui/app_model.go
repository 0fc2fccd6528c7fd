// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-gesture-vault/internal/gesture"
	"github.com/MKhiriev/go-gesture-vault/internal/logger"
	"github.com/MKhiriev/go-gesture-vault/internal/service"
	"github.com/MKhiriev/go-gesture-vault/internal/vault"
	"github.com/MKhiriev/go-gesture-vault/models"
)

type screen int

const (
	screenGesture screen = iota
	screenList
	screenDetail
	screenForm
	screenConfirmDelete
	screenConfirmReset
)

type listState struct {
	items      []models.PasswordEntry
	idx        int
	categories []string
	catIdx     int
	search     textinput.Model
	searching  bool
	due        map[string]bool
	loading    bool
}

func newListState() listState {
	search := textinput.New()
	search.Placeholder = "site or username"
	search.Prompt = ""
	return listState{
		categories: []string{service.CategoryAll},
		search:     search,
		due:        map[string]bool{},
	}
}

func (l listState) current() (models.PasswordEntry, bool) {
	if len(l.items) == 0 || l.idx < 0 || l.idx >= len(l.items) {
		return models.PasswordEntry{}, false
	}
	return l.items[l.idx], true
}

func (l listState) category() string {
	if l.catIdx < 0 || l.catIdx >= len(l.categories) {
		return service.CategoryAll
	}
	return l.categories[l.catIdx]
}

// appModel routes keys to the active screen. Every key press counts as
// vault activity.
type appModel struct {
	ctx       context.Context
	auth      *gesture.Authenticator
	session   Session
	entries   service.EntryService
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	screen       screen
	pad          padModel
	list         listState
	form         formModel
	detailReveal bool
	resetRisky   bool

	status        string
	errMsg        string
	showBuildInfo bool
	quitByUser    bool
}

func newAppModel(ctx context.Context, auth *gesture.Authenticator, session Session, services *service.Services,
	buildInfo models.AppBuildInfo, log *logger.Logger) appModel {
	return appModel{
		ctx:       ctx,
		auth:      auth,
		session:   session,
		entries:   services.EntryService,
		buildInfo: buildInfo,
		logger:    log,
		screen:    screenGesture,
		pad:       newPadModel(),
		list:      newListState(),
	}
}

func (m appModel) Init() tea.Cmd {
	return waitForLock(m.session.LockEvents())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case lockedMsg:
		return m.onLocked(msg)
	case gestureResultMsg:
		return m.onGestureResult(msg)
	case resetRiskMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.resetRisky = msg.risky
		m.screen = screenConfirmReset
		return m, nil
	case resetDoneMsg:
		m.screen = screenGesture
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.pad = newPadModel()
		m.status = "Gesture cleared. Draw a new pattern"
		return m, nil
	case entriesLoadedMsg:
		return m.onEntriesLoaded(msg)
	case entrySavedMsg:
		m.form.saving = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.screen = screenList
		m.status = "Saved " + msg.entry.Site
		return m, tea.Batch(m.reload(), cmdClearStatus())
	case entryDeletedMsg:
		m.screen = screenList
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Entry deleted"
		return m, tea.Batch(m.reload(), cmdClearStatus())
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Clipboard unavailable: " + msg.err.Error()
			return m, nil
		}
		m.status = msg.what + " copied"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.onKey(msg)
	}

	// cursor blink and other non-key input messages
	var cmd tea.Cmd
	switch {
	case m.screen == screenForm:
		m.form, cmd, _ = m.form.update(msg)
	case m.screen == screenList && m.list.searching:
		m.list.search, cmd = m.list.search.Update(msg)
	}
	return m, cmd
}

func (m appModel) onKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.session.Touch()

	if k.String() == "ctrl+c" {
		m.quitByUser = true
		return m, tea.Quit
	}
	if m.showBuildInfo {
		if key.Matches(k, keys.esc) || key.Matches(k, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	}
	m.errMsg = ""

	switch m.screen {
	case screenGesture:
		return m.updateGesture(k)
	case screenList:
		return m.updateList(k)
	case screenDetail:
		return m.updateDetail(k)
	case screenForm:
		return m.updateForm(k)
	case screenConfirmDelete:
		return m.updateConfirmDelete(k)
	case screenConfirmReset:
		return m.updateConfirmReset(k)
	}
	return m, nil
}

func (m appModel) onLocked(msg lockedMsg) (tea.Model, tea.Cmd) {
	m.auth.Locked()
	m = m.lockedView()
	if msg.event.Reason == vault.LockReasonTimeout {
		m.status = "Vault locked after inactivity"
	} else {
		m.status = "Vault locked"
	}
	return m, waitForLock(m.session.LockEvents())
}

// lockedView drops every decrypted value held by the UI.
func (m appModel) lockedView() appModel {
	m.screen = screenGesture
	m.pad = newPadModel()
	m.list = newListState()
	m.form = formModel{}
	m.detailReveal = false
	return m
}

func (m appModel) onGestureResult(msg gestureResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.status = ""
		m.errMsg = humanizeError(msg.err)
		return m, nil
	}

	switch msg.outcome {
	case gesture.OutcomeConfirmRequired:
		m.status = "Draw the same pattern again to confirm"
	case gesture.OutcomeUnlocked:
		m.status = ""
		m.screen = screenList
		m.list.loading = true
		return m, m.reload()
	}
	return m, nil
}

func (m appModel) onEntriesLoaded(msg entriesLoadedMsg) (tea.Model, tea.Cmd) {
	m.list.loading = false
	if msg.err != nil {
		if !errors.Is(msg.err, vault.ErrStorageLocked) {
			m.errMsg = humanizeError(msg.err)
		}
		return m, nil
	}

	current := m.list.category()
	m.list.items = msg.entries
	m.list.due = msg.due
	m.list.categories = append([]string{service.CategoryAll}, msg.categories...)
	m.list.catIdx = 0
	for i, c := range m.list.categories {
		if c == current {
			m.list.catIdx = i
		}
	}
	m.list.idx = clamp(m.list.idx, 0, max(len(m.list.items)-1, 0))
	return m, nil
}

func (m appModel) reload() tea.Cmd {
	return cmdLoadEntries(m.ctx, m.entries, m.list.category(), m.list.search.Value())
}

// ── gesture pad ──────────────────────────────────────────────────────────────

func (m appModel) updateGesture(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	drawing := m.auth.State() == gesture.StateDrawing

	if cell, ok := cellFromKey(k.String()); ok {
		m.pad.cursor = cell
		return m.touchCell(drawing), nil
	}

	switch {
	case key.Matches(k, keys.up):
		m.pad = m.pad.move(0, -1)
		return m.extendIfDrawing(drawing), nil
	case key.Matches(k, keys.down):
		m.pad = m.pad.move(0, 1)
		return m.extendIfDrawing(drawing), nil
	case key.Matches(k, keys.left):
		m.pad = m.pad.move(-1, 0)
		return m.extendIfDrawing(drawing), nil
	case key.Matches(k, keys.right):
		m.pad = m.pad.move(1, 0)
		return m.extendIfDrawing(drawing), nil
	case key.Matches(k, keys.draw):
		return m.touchCell(drawing), nil
	case key.Matches(k, keys.enter):
		if !drawing {
			return m, nil
		}
		return m, cmdEndPath(m.ctx, m.auth)
	case key.Matches(k, keys.esc):
		m.auth.CancelPath()
		return m, nil
	case key.Matches(k, keys.centerTap):
		if m.auth.TapReset(time.Now()) {
			return m, cmdResetRisk(m.ctx, m.auth)
		}
		return m, nil
	case key.Matches(k, keys.info):
		if !drawing {
			m.showBuildInfo = true
		}
		return m, nil
	case key.Matches(k, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) touchCell(drawing bool) appModel {
	if drawing {
		_ = m.auth.ExtendPath(m.pad.cursor)
		return m
	}
	m.status = ""
	m.auth.BeginPath(m.pad.cursor)
	return m
}

func (m appModel) extendIfDrawing(drawing bool) appModel {
	if drawing {
		_ = m.auth.ExtendPath(m.pad.cursor)
	}
	return m
}

// ── list ─────────────────────────────────────────────────────────────────────

func (m appModel) updateList(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.searching {
		switch {
		case key.Matches(k, keys.esc), key.Matches(k, keys.enter):
			m.list.searching = false
			m.list.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.list.search, cmd = m.list.search.Update(k)
		m.list.idx = 0
		return m, tea.Batch(cmd, m.reload())
	}

	switch {
	case key.Matches(k, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(k, keys.down):
		if m.list.idx < len(m.list.items)-1 {
			m.list.idx++
		}
	case key.Matches(k, keys.left):
		m.list.catIdx = (m.list.catIdx - 1 + len(m.list.categories)) % len(m.list.categories)
		m.list.idx = 0
		return m, m.reload()
	case key.Matches(k, keys.right):
		m.list.catIdx = (m.list.catIdx + 1) % len(m.list.categories)
		m.list.idx = 0
		return m, m.reload()
	case key.Matches(k, keys.search):
		m.list.searching = true
		return m, m.list.search.Focus()
	case key.Matches(k, keys.newItem):
		m.form = newFormModel(nil)
		m.screen = screenForm
		return m, textinput.Blink
	case key.Matches(k, keys.enter):
		if _, ok := m.list.current(); ok {
			m.detailReveal = false
			m.screen = screenDetail
		}
	case key.Matches(k, keys.lock):
		m.auth.Lock()
		m = m.lockedView()
		m.status = "Vault locked"
	case key.Matches(k, keys.info):
		m.showBuildInfo = true
	case key.Matches(k, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	default:
		return m.entryAction(k)
	}
	return m, nil
}

// entryAction handles the keys shared by the list and the detail screen.
func (m appModel) entryAction(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	entry, ok := m.list.current()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(k, keys.edit):
		m.form = newFormModel(&entry)
		m.screen = screenForm
		return m, textinput.Blink
	case key.Matches(k, keys.delete):
		m.screen = screenConfirmDelete
	case key.Matches(k, keys.copy):
		return m, cmdCopy("Password", entry.Password)
	case key.Matches(k, keys.copyUser):
		return m, cmdCopy("Username", entry.Username)
	}
	return m, nil
}

// ── detail ───────────────────────────────────────────────────────────────────

func (m appModel) updateDetail(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(k, keys.esc):
		m.detailReveal = false
		m.screen = screenList
		return m, nil
	case key.Matches(k, keys.reveal):
		m.detailReveal = !m.detailReveal
		return m, nil
	case key.Matches(k, keys.lock):
		m.auth.Lock()
		m = m.lockedView()
		m.status = "Vault locked"
		return m, nil
	}
	return m.entryAction(k)
}

// ── form ─────────────────────────────────────────────────────────────────────

func (m appModel) updateForm(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(k, keys.esc) {
		m.screen = screenList
		m.form = formModel{}
		return m, nil
	}

	form, cmd, submit := m.form.update(k)
	m.form = form
	if submit && !m.form.saving {
		m.form.saving = true
		return m, cmdSaveEntry(m.ctx, m.entries, m.form.editingID, m.form.draft())
	}
	return m, cmd
}

// ── confirmations ────────────────────────────────────────────────────────────

func (m appModel) updateConfirmDelete(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(k, keys.yes):
		entry, ok := m.list.current()
		if !ok {
			m.screen = screenList
			return m, nil
		}
		return m, cmdDeleteEntry(m.ctx, m.entries, entry.ID)
	case key.Matches(k, keys.no), key.Matches(k, keys.esc):
		m.screen = screenList
	}
	return m, nil
}

func (m appModel) updateConfirmReset(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(k, keys.yes):
		return m, cmdReset(m.ctx, m.auth, m.resetRisky)
	case key.Matches(k, keys.no), key.Matches(k, keys.esc):
		m.screen = screenGesture
	}
	return m, nil
}
