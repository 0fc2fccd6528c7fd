// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-gesture-vault/internal/gesture"
	"github.com/MKhiriev/go-gesture-vault/internal/service"
)

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.screen {
	case screenGesture:
		body = m.gestureView()
	case screenList:
		body = m.listView()
	case screenDetail:
		body = m.detailView()
	case screenForm:
		body = m.formView()
	case screenConfirmDelete:
		body = m.confirmDeleteView()
	case screenConfirmReset:
		body = m.confirmResetView()
	}

	return appStyle.Render(body + m.footer())
}

func (m appModel) footer() string {
	var b strings.Builder
	if m.status != "" {
		b.WriteString("\n\n" + m.status)
	}
	if m.errMsg != "" {
		b.WriteString("\n\n" + errorStyle.Render(m.errMsg))
	}
	return b.String()
}

func (m appModel) gestureView() string {
	var title string
	switch m.auth.Phase() {
	case gesture.StateNoGestureSet:
		title = "CREATE AN UNLOCK PATTERN"
	case gesture.StateAwaitingConfirmation:
		title = "CONFIRM YOUR PATTERN"
	default:
		title = "DRAW YOUR PATTERN TO UNLOCK"
	}

	drawing := m.auth.State() == gesture.StateDrawing
	data := m.pad.render(m.auth.CurrentPath(), drawing)
	if drawing {
		data += fmt.Sprintf("\n\n%d dots", len(m.auth.CurrentPath()))
	}

	return renderPage(title, data,
		"arrows/1-9: move  space: draw  enter: finish  esc: cancel  r: tap centre  v: about  q: quit")
}

func (m appModel) listView() string {
	var b strings.Builder

	b.WriteString("Category: < " + m.list.category() + " >\n")
	search := "Search: " + m.list.search.View()
	if m.list.searching {
		search += "  (enter/esc: done)"
	}
	b.WriteString(search + "\n\n")

	switch {
	case m.list.loading:
		b.WriteString("Loading...\n")
	case len(m.list.items) == 0:
		b.WriteString("No entries\n")
	default:
		for i, e := range m.list.items {
			cursor := "  "
			if i == m.list.idx {
				cursor = "> "
			}
			line := fmt.Sprintf("%s%-28s %-24s [%s]", cursor, fitText(e.Site, 28), fitText(e.Username, 24), e.Category)
			if m.list.due[e.ID] {
				line += warnStyle.Render("  rotate")
			}
			b.WriteString(line + "\n")
		}
	}

	if n := len(m.list.due); n > 0 {
		b.WriteString("\n" + warnStyle.Render(fmt.Sprintf("%d password(s) older than %d days", n, int(service.ReminderPeriod.Hours()/24))))
	}

	return renderPage(strings.ToUpper(appName), b.String(),
		"↑/↓: select  ←/→: category  /: search  n: new  e: edit  d: delete  c/u: copy  enter: open  L: lock  q: quit")
}

func (m appModel) detailView() string {
	e, ok := m.list.current()
	if !ok {
		return renderPage("ENTRY", "", "esc: back")
	}

	password := maskSecret(e.Password)
	if m.detailReveal {
		password = valueOrDash(e.Password)
	}

	var b strings.Builder
	b.WriteString("Site:     " + valueOrDash(e.Site) + "\n")
	b.WriteString("Username: " + valueOrDash(e.Username) + "\n")
	b.WriteString("Password: " + password + "\n")
	b.WriteString("Category: " + valueOrDash(e.Category) + "\n")
	b.WriteString("Created:  " + e.Created().Format(time.DateOnly))
	if m.list.due[e.ID] {
		b.WriteString("\n\n" + warnStyle.Render("This password is due for rotation"))
	}

	return renderPage(strings.ToUpper(fitText(e.Site, 40)), b.String(),
		"p: show/hide  c: copy password  u: copy username  e: edit  d: delete  L: lock  esc: back")
}

func (m appModel) formView() string {
	title := "NEW ENTRY"
	if m.form.editingID != "" {
		title = "EDIT ENTRY"
	}
	if len(m.form.inputs) == 0 {
		return renderPage(title, "", "esc: back")
	}
	return renderPage(title, m.form.view(), "tab/↑/↓: field  enter: next  ctrl+s: save  esc: cancel")
}

func (m appModel) confirmDeleteView() string {
	e, _ := m.list.current()
	content := "Delete \"" + e.Site + "\"?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}

func (m appModel) confirmResetView() string {
	content := "Reset the unlock pattern?\n\n"
	if m.resetRisky {
		content += warnStyle.Render("Some records are still encrypted with the current gesture.\n"+
			"They will become unreadable after the reset.") + "\n\n"
	} else {
		content += "Your entries are kept. You will draw a new pattern next.\n\n"
	}
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
