// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-gesture-vault/internal/gesture"
	"github.com/MKhiriev/go-gesture-vault/internal/validators"
	"github.com/MKhiriev/go-gesture-vault/models"
)

func TestPadModel_MoveClamps(t *testing.T) {
	p := newPadModel()
	assert.Equal(t, gesture.CenterCell, p.cursor)

	p = p.move(-1, -1)
	assert.Equal(t, 0, p.cursor)
	p = p.move(-1, 0).move(0, -1)
	assert.Equal(t, 0, p.cursor)
	p = p.move(5, 5)
	assert.Equal(t, 8, p.cursor)
	p = p.move(-1, 0)
	assert.Equal(t, 7, p.cursor)
}

func TestCellFromKey(t *testing.T) {
	for n := 1; n <= 9; n++ {
		cell, ok := cellFromKey(fmt.Sprint(n))
		assert.True(t, ok)
		assert.Equal(t, n-1, cell)
	}
	for _, s := range []string{"0", "a", "10", ""} {
		_, ok := cellFromKey(s)
		assert.False(t, ok, s)
	}
}

func TestPadModel_RenderShowsOrder(t *testing.T) {
	out := newPadModel().render(gesture.Pattern{0, 4, 8}, true)
	assert.Contains(t, out, "1")
	assert.Contains(t, out, "[2]")
	assert.Contains(t, out, "3")
}

func TestHumanizeError(t *testing.T) {
	assert.Equal(t, "", humanizeError(nil))
	assert.Equal(t, "Wrong pattern", humanizeError(gesture.ErrAccessDenied))
	assert.Equal(t, "Patterns do not match. Draw a new pattern", humanizeError(gesture.ErrConfirmationMismatch))
	assert.Equal(t, "Site is required", humanizeError(fmt.Errorf("validation: %w", validators.ErrEmptySite)))
	assert.Equal(t, "plain", humanizeError(errors.New("plain")))
}

func TestFormModel_PrefillAndDraft(t *testing.T) {
	f := newFormModel(&models.PasswordEntry{ID: "x", Site: " s ", Username: "u", Password: " p ", Category: "Work"})
	assert.Equal(t, "x", f.editingID)

	d := f.draft()
	assert.Equal(t, "s", d.Site)
	assert.Equal(t, " p ", d.Password)
	assert.Equal(t, "Work", d.Category)
}

func TestViewHelpers(t *testing.T) {
	assert.Equal(t, "-", valueOrDash(""))
	assert.Equal(t, "abc", fitText("abc", 5))
	assert.Equal(t, "ab...", fitText("abcdefgh", 5))
	assert.Equal(t, "••••", maskSecret("abcd"))
	assert.Equal(t, 12, len([]rune(maskSecret("a very long password indeed"))))
}
