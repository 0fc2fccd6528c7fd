// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gesture

import "time"

const (
	// ResetTaps is the number of consecutive centre taps that requests a
	// gesture reset.
	ResetTaps = 7
	// ResetTapWindow is the longest allowed gap between two taps.
	ResetTapWindow = 3 * time.Second
)

// ResetTrigger counts taps on the centre control. A gap longer than the
// window restarts the count at one.
type ResetTrigger struct {
	required int
	window   time.Duration
	count    int
	last     time.Time
}

// NewResetTrigger returns a trigger with the default tap count and window.
func NewResetTrigger() *ResetTrigger {
	return &ResetTrigger{required: ResetTaps, window: ResetTapWindow}
}

// Tap registers a tap at now and reports whether it completed the sequence.
// Completing the sequence resets the counter.
func (r *ResetTrigger) Tap(now time.Time) bool {
	if r.count == 0 || now.Sub(r.last) > r.window {
		r.count = 1
	} else {
		r.count++
	}
	r.last = now

	if r.count >= r.required {
		r.count = 0
		return true
	}
	return false
}

// Count returns the taps registered in the current sequence.
func (r *ResetTrigger) Count() int {
	return r.count
}
