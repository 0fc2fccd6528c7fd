// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gesture

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-gesture-vault/internal/crypto"
)

const (
	// GridSize is the number of cells on the 3x3 pad.
	GridSize = 9
	// CenterCell is the index of the middle cell.
	CenterCell = 4
	// MinPatternLength is the fewest distinct cells an accepted pattern has.
	MinPatternLength = 4
)

// Pattern is an ordered sequence of grid cells. Order matters: a reversed or
// rotated sequence is a different pattern.
type Pattern []int

// Canonical returns the comma-joined form used as the vault secret and as
// the hash input, e.g. "0,4,8,6".
func (p Pattern) Canonical() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ",")
}

// Hash returns the one-way digest persisted as the gesture hash.
func (p Pattern) Hash() string {
	return crypto.HashGesture(p.Canonical())
}

// Equal reports whether p and o have the same canonical form.
func (p Pattern) Equal(o Pattern) bool {
	return p.Canonical() == o.Canonical()
}

// Validate checks grid bounds, uniqueness and the minimum length.
func (p Pattern) Validate() error {
	seen := make(map[int]struct{}, len(p))
	for _, c := range p {
		if c < 0 || c >= GridSize {
			return fmt.Errorf("%w: cell %d outside the grid", ErrInvalidPattern, c)
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: cell %d repeated", ErrInvalidPattern, c)
		}
		seen[c] = struct{}{}
	}
	if len(p) < MinPatternLength {
		return ErrTooShort
	}
	return nil
}

// ParsePattern reads a canonical string back into a Pattern.
func ParsePattern(s string) (Pattern, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrTooShort
	}
	fields := strings.Split(s, ",")
	p := make(Pattern, 0, len(fields))
	for _, f := range fields {
		c, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, f)
		}
		p = append(p, c)
	}
	return p, p.Validate()
}

// Path accumulates cells while a pattern is being drawn. Cells already on
// the path are skipped.
type Path struct {
	cells   []int
	visited [GridSize]bool
}

// Add appends cell unless it is off-grid or already visited, and reports
// whether it was added.
func (p *Path) Add(cell int) bool {
	if cell < 0 || cell >= GridSize || p.visited[cell] {
		return false
	}
	p.visited[cell] = true
	p.cells = append(p.cells, cell)
	return true
}

// Contains reports whether cell is on the path.
func (p *Path) Contains(cell int) bool {
	return cell >= 0 && cell < GridSize && p.visited[cell]
}

// Len returns the number of cells drawn so far.
func (p *Path) Len() int {
	return len(p.cells)
}

// Pattern returns a copy of the drawn cells.
func (p *Path) Pattern() Pattern {
	return append(Pattern(nil), p.cells...)
}
