// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/olegiv/folio/internal/dotgrid"
	"github.com/olegiv/folio/internal/scheduler"
	"github.com/olegiv/folio/internal/version"
)

const (
	shutdownTimeout      = 30 * time.Second
	limiterSweepInterval = time.Minute
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, logger, closer, err := loadRuntime()
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	logger.Info("starting folio", "version", version.Get().String(), "env", cfg.Env)

	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Error("error closing cache", "error", err)
		}
	}()

	// Background work
	sched := scheduler.New(logger)
	if err := sched.AddBackdropWarm(cfg.BackdropWarmSpec, a.backdrop, dotgrid.Presets()); err != nil {
		return fmt.Errorf("scheduling backdrop warm: %w", err)
	}
	if a.geoip.Enabled() {
		if err := sched.AddGeoIPReload(cfg.GeoIPReloadSpec, a.geoip); err != nil {
			return fmt.Errorf("scheduling geoip reload: %w", err)
		}
	}
	a.healthHandler.SetJobs(sched)
	sched.Start()
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		sched.Stop(stopCtx)
	}()
	go func() {
		if err := sched.Trigger(ctx, scheduler.JobWarmBackdrop); err != nil && ctx.Err() == nil {
			logger.Warn("initial backdrop warm failed", "error", err)
		}
	}()
	go a.limiter.Run(ctx, limiterSweepInterval)
	go a.imgLimit.Run(ctx, limiterSweepInterval)

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           a.routes(),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
