// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/olegiv/folio/internal/dotgrid"
	"github.com/olegiv/folio/internal/viewport"
)

func newBackdropCmd() *cobra.Command {
	var (
		width, height int
		output        string
	)

	cmd := &cobra.Command{
		Use:   "backdrop",
		Short: "Render the dot grid background to a PNG file",
		Long: `Render the dot grid background with the configured spacing, radius and
color. Use -o - to write the PNG to standard output.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, closer, err := loadRuntime()
			if err != nil {
				return err
			}
			defer func() { _ = closer.Close() }()

			renderer, err := dotgrid.NewRenderer(cfg.Grid(), logger)
			if err != nil {
				return err
			}
			b := dotgrid.NewBackdrop(dotgrid.BackdropConfig{
				Renderer: renderer,
				MaxSize:  cfg.BackdropMaxSize(),
				Logger:   logger,
			})

			vp := b.Clamp(viewport.Viewport{Width: width, Height: height})
			data, err := b.Render(vp)
			if err != nil {
				return err
			}

			if output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			cmd.PrintErrf("wrote %s (%dx%d, %d bytes)\n", output, vp.Width, vp.Height, len(data))
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "W", dotgrid.DesktopViewport.Width, "image width in pixels")
	cmd.Flags().IntVarP(&height, "height", "H", dotgrid.DesktopViewport.Height, "image height in pixels")
	cmd.Flags().StringVarP(&output, "output", "o", "backdrop.png", "output file, or - for stdout")
	return cmd
}
