// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gesture

import "errors"

var (
	// ErrTooShort is returned during setup for a pattern with fewer than
	// [MinPatternLength] cells.
	ErrTooShort = errors.New("pattern too short")

	// ErrInvalidPattern is returned for out-of-grid or repeated cells.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrConfirmationMismatch is returned when the confirmation drawing
	// differs from the first one. Both drawings are discarded.
	ErrConfirmationMismatch = errors.New("patterns do not match")

	// ErrAccessDenied is returned when an unlock pattern does not match the
	// stored gesture hash.
	ErrAccessDenied = errors.New("access denied")

	// ErrStorageUnlockFailed is returned when the pattern matched but the
	// vault refused to open.
	ErrStorageUnlockFailed = errors.New("storage unlock failed")

	// ErrNotDrawing is returned by path operations with no path in progress.
	ErrNotDrawing = errors.New("no path in progress")
)
