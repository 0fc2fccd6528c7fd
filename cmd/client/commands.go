// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-gesture-vault/internal/service"
	"github.com/MKhiriev/go-gesture-vault/internal/utils"
	"github.com/MKhiriev/go-gesture-vault/models"
)

// annotationNoVault marks commands that must not open the vault.
const annotationNoVault = "no-vault"

func newExportCmd(rt *cliState) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a passphrase-encrypted backup of all entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := unlockInteractive(cmd, rt.app); err != nil {
				return err
			}

			pass, err := readSecret(cmd, "Backup passphrase: ")
			if err != nil {
				return err
			}
			confirm, err := readSecret(cmd, "Repeat passphrase: ")
			if err != nil {
				return err
			}

			blob, err := rt.app.Services().BackupService.Export(ctx, pass, confirm)
			if err != nil {
				return err
			}

			path := filepath.Join(dir, service.BackupFileName(time.Now()))
			if err = utils.WriteFileAtomic(path, blob, 0o600); err != nil {
				return fmt.Errorf("failed to write backup: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Backup created at: %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "out", "o", ".", "Directory the backup file is written to")
	return cmd
}

func newImportCmd(rt *cliState) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "import <backup-file>",
		Short: "Restore entries from a backup file",
		Long: `Restore entries from a backup file.
merge keeps existing entries and adds those with new ids; overwrite replaces
every entry. Without --mode the last used mode is applied.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			// empty mode defers to the last mode used
			var importMode models.ImportMode
			if mode != "" {
				parsed, err := models.ParseImportMode(mode)
				if err != nil {
					return err
				}
				importMode = parsed
			}

			blob, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read backup: %w", err)
			}
			if err = unlockInteractive(cmd, rt.app); err != nil {
				return err
			}

			pass, err := readSecret(cmd, "Backup passphrase: ")
			if err != nil {
				return err
			}

			res, err := rt.app.Services().BackupService.Import(ctx, blob, pass, importMode)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d entries (%s, %d skipped)\n",
				res.Imported, res.Total, res.Mode, res.Skipped)
			return nil
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", "", "Import mode: merge or overwrite")
	return cmd
}

func newResetGestureCmd(rt *cliState) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset-gesture",
		Short: "Forget the unlock gesture and keep the entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := rt.app.ResetGesture(cmd.Context(), force); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Gesture cleared. Draw a new one on the next start.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Reset even when records still depend on the current gesture")
	return cmd
}

func newVersionCmd(rt *cliState) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoVault: "true"},
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", rt.buildInfo.BuildVersion())
			fmt.Fprintf(out, "Build date: %s\n", rt.buildInfo.BuildDate())
			fmt.Fprintf(out, "Build commit: %s\n", rt.buildInfo.BuildCommit())
		},
	}
}
