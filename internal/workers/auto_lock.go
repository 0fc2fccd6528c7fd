// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-gesture-vault/internal/logger"
)

// DefaultAutoLockInterval is used when a non-positive interval is given.
const DefaultAutoLockInterval = time.Minute

type autoLockWorker struct {
	locker   AutoLocker
	interval time.Duration
	logger   *logger.Logger
	now      func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewAutoLockWorker creates a worker that asks locker to check for
// inactivity every interval. The worker is idle until Start is called.
func NewAutoLockWorker(locker AutoLocker, interval time.Duration, log *logger.Logger) Worker {
	if interval <= 0 {
		interval = DefaultAutoLockInterval
	}
	return &autoLockWorker{
		locker:   locker,
		interval: interval,
		logger:   log,
		now:      time.Now,
	}
}

// Start stops any previous run, then launches the ticker goroutine.
func (w *autoLockWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if w.locker.CheckAutoLock(w.now()) {
					w.logger.Info().
						Str("func", "autoLockWorker.Start").
						Dur("interval", w.interval).
						Msg("vault locked after inactivity")
				}
			}
		}
	}()
}

func (w *autoLockWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
