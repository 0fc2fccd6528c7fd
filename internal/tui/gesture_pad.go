// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-gesture-vault/internal/gesture"
)

const padSide = 3

// padModel is the keyboard cursor over the 3x3 grid. The drawn path itself
// is owned by the authenticator.
type padModel struct {
	cursor int
}

func newPadModel() padModel {
	return padModel{cursor: gesture.CenterCell}
}

// move shifts the cursor by (dx, dy), clamped to the grid.
func (p padModel) move(dx, dy int) padModel {
	row, col := p.cursor/padSide, p.cursor%padSide
	row = clamp(row+dy, 0, padSide-1)
	col = clamp(col+dx, 0, padSide-1)
	p.cursor = row*padSide + col
	return p
}

// cellFromKey maps the digit keys 1-9 to cells 0-8.
func cellFromKey(s string) (int, bool) {
	if len(s) != 1 {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > gesture.GridSize {
		return 0, false
	}
	return n - 1, true
}

// render draws the grid; drawn cells show their position in the path.
func (p padModel) render(path gesture.Pattern, drawing bool) string {
	order := make(map[int]int, len(path))
	for i, c := range path {
		order[c] = i + 1
	}

	var rows []string
	for r := 0; r < padSide; r++ {
		cells := make([]string, 0, padSide)
		for c := 0; c < padSide; c++ {
			idx := r*padSide + c
			label := "·"
			style := cellStyle
			if n, ok := order[idx]; ok {
				label = strconv.Itoa(n)
				style = drawnCellStyle
			}
			if idx == p.cursor {
				style = style.Reverse(true)
				if drawing || label == "·" {
					label = "[" + label + "]"
				}
			}
			cells = append(cells, style.Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n\n")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
