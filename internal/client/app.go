// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-gesture-vault/internal/config"
	"github.com/MKhiriev/go-gesture-vault/internal/crypto"
	"github.com/MKhiriev/go-gesture-vault/internal/gesture"
	"github.com/MKhiriev/go-gesture-vault/internal/logger"
	"github.com/MKhiriev/go-gesture-vault/internal/service"
	"github.com/MKhiriev/go-gesture-vault/internal/store"
	"github.com/MKhiriev/go-gesture-vault/internal/tui"
	"github.com/MKhiriev/go-gesture-vault/internal/vault"
	"github.com/MKhiriev/go-gesture-vault/internal/workers"
	"github.com/MKhiriev/go-gesture-vault/models"
)

// App owns every long-lived component of one vault process.
type App struct {
	slots     store.SlotStorage
	vault     *vault.Storage
	auth      *gesture.Authenticator
	services  *service.Services
	workers   *workers.Workers
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// NewApp opens the configured slot backend and builds the engine on top of
// it. The vault starts locked (or uninitialized); call [App.Close] when done.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	slots, err := store.NewSlotStorage(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create slot storage: %w", err)
	}

	codec := crypto.NewCodec(cfg.Vault.KDFIterations)
	fallback := crypto.NewVersionedDecryptor(codec, cfg.Vault.KDFLegacyIterations...)

	v, err := vault.New(ctx, slots, codec, fallback, log.WithComponent("vault"),
		vault.WithAutoLockTimeout(cfg.Vault.AutoLockTimeout))
	if err != nil {
		_ = slots.Close()
		return nil, fmt.Errorf("create vault: %w", err)
	}

	log.Info().
		Str("func", "client.NewApp").
		Str("state", v.State().String()).
		Dur("auto_lock", v.AutoLockTimeout()).
		Msg("vault opened")

	return &App{
		slots:     slots,
		vault:     v,
		auth:      gesture.NewAuthenticator(v, log.WithComponent("gesture")),
		services:  service.NewServices(v, codec, fallback, log.WithComponent("service")),
		workers:   workers.NewWorkers(workers.NewAutoLockWorker(v, cfg.Vault.AutoLockCheckInterval, log.WithComponent("workers"))),
		buildInfo: buildInfo,
		logger:    log,
	}, nil
}

// Run shows the terminal UI with auto-lock running and locks the vault on
// exit. Quitting from the UI is not an error.
func (a *App) Run(ctx context.Context) error {
	ui, err := tui.New(a.auth, a.vault, a.services, a.buildInfo, a.logger.WithComponent("tui"))
	if err != nil {
		return fmt.Errorf("create ui: %w", err)
	}

	a.workers.Start(ctx)
	defer a.workers.Stop()
	defer a.vault.Lock()

	err = ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Unlock opens the vault with p outside the UI.
func (a *App) Unlock(ctx context.Context, p gesture.Pattern) error {
	state, err := a.auth.Load(ctx)
	if err != nil {
		return fmt.Errorf("load gesture: %w", err)
	}
	if state == gesture.StateNoGestureSet {
		return ErrNoGesture
	}

	out, err := a.auth.Submit(ctx, p)
	if err != nil {
		return err
	}
	if out != gesture.OutcomeUnlocked {
		return ErrNotUnlocked
	}
	return nil
}

// ResetGesture clears the stored gesture. Without force it refuses while
// records still depend on the current gesture.
func (a *App) ResetGesture(ctx context.Context, force bool) error {
	if _, err := a.auth.Load(ctx); err != nil {
		return fmt.Errorf("load gesture: %w", err)
	}
	return a.auth.Reset(ctx, force)
}

// Services returns the entry and backup services bound to the vault.
func (a *App) Services() *service.Services {
	return a.services
}

// Close locks the vault and releases the slot backend.
func (a *App) Close() error {
	a.vault.Lock()
	return a.slots.Close()
}
