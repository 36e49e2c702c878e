// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/olegiv/folio/internal/config"
	"github.com/olegiv/folio/internal/logging"
)

const rootLongDescription = `folio serves a single-page portfolio: a landing page with scroll-tracked
navigation over a dot grid background, and a case study overlay.

Configuration is read from FOLIO_* environment variables. A .env file in the
working directory is loaded first when present.`

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "folio",
		Short:         "Portfolio web server",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			// A missing .env is normal in production.
			if envFile != "" {
				if err := godotenv.Load(envFile); err != nil {
					return fmt.Errorf("loading %s: %w", envFile, err)
				}
				return nil
			}
			_ = godotenv.Load()
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "load environment from this file instead of ./.env")

	root.AddCommand(newServeCmd(), newBackdropCmd(), newVersionCmd())
	return root
}

// loadRuntime loads the configuration and builds the logger. The closer
// releases the log file.
func loadRuntime() (*config.Config, *slog.Logger, io.Closer, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}
	logger, closer := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	slog.SetDefault(logger)
	return cfg, logger, closer, nil
}
