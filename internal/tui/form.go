// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-gesture-vault/internal/validators"
	"github.com/MKhiriev/go-gesture-vault/models"
)

const (
	formSite = iota
	formUsername
	formPassword
	formCategory
	formFieldCount
)

var formLabels = [formFieldCount]string{"Site", "Username", "Password", "Category"}

// formModel edits one entry. editingID is empty for a new entry.
type formModel struct {
	inputs    []textinput.Model
	focus     int
	editingID string
	saving    bool
}

func newFormModel(entry *models.PasswordEntry) formModel {
	inputs := make([]textinput.Model, formFieldCount)
	for i := range inputs {
		in := textinput.New()
		in.CharLimit = validators.MaxFieldLength
		in.Prompt = ""
		inputs[i] = in
	}
	inputs[formSite].Placeholder = "example.com"
	inputs[formUsername].Placeholder = "user@example.com"
	inputs[formPassword].EchoMode = textinput.EchoPassword
	inputs[formPassword].EchoCharacter = '•'
	inputs[formCategory].Placeholder = models.DefaultCategory

	f := formModel{inputs: inputs}
	if entry != nil {
		f.editingID = entry.ID
		f.inputs[formSite].SetValue(entry.Site)
		f.inputs[formUsername].SetValue(entry.Username)
		f.inputs[formPassword].SetValue(entry.Password)
		f.inputs[formCategory].SetValue(entry.Category)
	}
	f.inputs[formSite].Focus()
	return f
}

func (f formModel) draft() models.EntryDraft {
	return models.EntryDraft{
		Site:     strings.TrimSpace(f.inputs[formSite].Value()),
		Username: strings.TrimSpace(f.inputs[formUsername].Value()),
		Password: f.inputs[formPassword].Value(),
		Category: strings.TrimSpace(f.inputs[formCategory].Value()),
	}
}

func (f formModel) setFocus(i int) (formModel, tea.Cmd) {
	i = (i + formFieldCount) % formFieldCount
	f.inputs[f.focus].Blur()
	f.focus = i
	return f, f.inputs[f.focus].Focus()
}

// update returns submit=true when the user asked to save.
func (f formModel) update(msg tea.Msg) (formModel, tea.Cmd, bool) {
	var cmd tea.Cmd

	if k, ok := msg.(tea.KeyMsg); ok {
		arrow := k.Type != tea.KeyRunes
		switch {
		case key.Matches(k, keys.tab), arrow && key.Matches(k, keys.down):
			f, cmd = f.setFocus(f.focus + 1)
			return f, cmd, false
		case key.Matches(k, keys.backtab), arrow && key.Matches(k, keys.up):
			f, cmd = f.setFocus(f.focus - 1)
			return f, cmd, false
		case key.Matches(k, keys.save):
			return f, nil, true
		case key.Matches(k, keys.enter):
			if f.focus == formFieldCount-1 {
				return f, nil, true
			}
			f, cmd = f.setFocus(f.focus + 1)
			return f, cmd, false
		}
	}

	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd, false
}

func (f formModel) view() string {
	var b strings.Builder
	for i, in := range f.inputs {
		marker := "  "
		if i == f.focus {
			marker = "> "
		}
		b.WriteString(marker + formLabels[i] + ": " + in.View() + "\n")
	}
	if f.saving {
		b.WriteString("\nSaving...\n")
	}
	return b.String()
}
