// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/MKhiriev/go-gesture-vault/internal/client"
	"github.com/MKhiriev/go-gesture-vault/internal/gesture"
)

func readSecret(cmd *cobra.Command, prompt string) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), prompt)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(b), nil
}

// unlockInteractive asks for the gesture as comma-separated cell indexes
// (0 top-left to 8 bottom-right) and opens the vault with it.
func unlockInteractive(cmd *cobra.Command, app *client.App) error {
	raw, err := readSecret(cmd, "Gesture (cells 0-8, e.g. 0,4,8,6): ")
	if err != nil {
		return err
	}
	p, err := gesture.ParsePattern(raw)
	if err != nil {
		return err
	}
	return app.Unlock(cmd.Context(), p)
}
