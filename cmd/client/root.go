// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-gesture-vault/internal/client"
	"github.com/MKhiriev/go-gesture-vault/internal/config"
	"github.com/MKhiriev/go-gesture-vault/internal/logger"
	"github.com/MKhiriev/go-gesture-vault/models"
)

// cliState is shared by the subcommands. It is filled in by the root
// PersistentPreRunE and released by PersistentPostRunE.
type cliState struct {
	flags     *config.StructuredConfig
	app       *client.App
	log       *logger.Logger
	logCloser io.Closer
	buildInfo models.AppBuildInfo
}

func newRootCmd() *cobra.Command {
	rt := &cliState{buildInfo: models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)}

	root := &cobra.Command{
		Use:   "securepass",
		Short: "Offline password vault unlocked by a gesture",
		Long: `securepass keeps site credentials in a local encrypted vault.
Run it without a subcommand to open the gesture pad and the entry list.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  rt.open,
		PersistentPostRunE: rt.close,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return rt.app.Run(cmd.Context())
		},
	}
	rt.flags = config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newExportCmd(rt),
		newImportCmd(rt),
		newResetGestureCmd(rt),
		newVersionCmd(rt),
	)
	return root
}

func (rt *cliState) open(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations[annotationNoVault] == "true" {
		return nil
	}

	cfg, err := config.GetStructuredConfig(rt.flags)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log, closer, err := logger.NewFileLogger("securepass", cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: logging disabled: %v\n", err)
	}
	rt.log, rt.logCloser = log, closer
	log.Debug().Any("config", cfg).Msg("received configs")

	app, err := client.NewApp(cmd.Context(), cfg, rt.buildInfo, log)
	if err != nil {
		log.Err(err).Msg("init client app error")
		return err
	}
	rt.app = app
	return nil
}

func (rt *cliState) close(_ *cobra.Command, _ []string) error {
	var err error
	if rt.app != nil {
		err = rt.app.Close()
	}
	if rt.logCloser != nil {
		_ = rt.logCloser.Close()
	}
	return err
}
