// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of the client process.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers together.
package workers

import (
	"context"
	"time"
)

// Worker is a background job with an explicit lifecycle.
//
// Start returns immediately; the work runs on its own goroutine until ctx is
// cancelled or Stop is called. Stop blocks until that goroutine has exited
// and is a no-op on an idle worker.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// AutoLocker is the part of the vault the auto-lock worker drives.
type AutoLocker interface {
	CheckAutoLock(now time.Time) bool
}
