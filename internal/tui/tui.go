// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end: the gesture pad, the entry list,
// the entry form and the confirmation dialogs.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-gesture-vault/internal/gesture"
	"github.com/MKhiriev/go-gesture-vault/internal/logger"
	"github.com/MKhiriev/go-gesture-vault/internal/service"
	"github.com/MKhiriev/go-gesture-vault/models"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	auth      *gesture.Authenticator
	session   Session
	services  *service.Services
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(auth *gesture.Authenticator, session Session, services *service.Services,
	buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if auth == nil || session == nil || services == nil {
		return nil, errors.New("tui: authenticator, session and services are required")
	}
	return &TUI{
		auth:      auth,
		session:   session,
		services:  services,
		buildInfo: buildInfo,
		logger:    log,
	}, nil
}

// Run shows the UI until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	if _, err := t.auth.Load(ctx); err != nil {
		return err
	}

	model := newAppModel(ctx, t.auth, t.session, t.services, t.buildInfo, t.logger)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
