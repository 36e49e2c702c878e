// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestContextHandler_AddsRequestInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewContextHandler(slog.NewTextHandler(&buf, nil)))

	ctx := WithRequestInfo(context.Background(), RequestInfo{ID: "req-1", Path: "/contact"})
	logger.InfoContext(ctx, "contact submission discarded")

	out := buf.String()
	if !strings.Contains(out, "request_id=req-1") {
		t.Errorf("output missing request_id: %s", out)
	}
	if !strings.Contains(out, "path=/contact") {
		t.Errorf("output missing path: %s", out)
	}
}

func TestContextHandler_NoRequestInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewContextHandler(slog.NewTextHandler(&buf, nil)))

	logger.Info("starting")

	if strings.Contains(buf.String(), "request_id") {
		t.Errorf("unexpected request_id: %s", buf.String())
	}
}

func TestContextHandler_WithAttrsKeepsWrapping(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewContextHandler(slog.NewTextHandler(&buf, nil))).
		With("component", "backdrop").
		WithGroup("grid")

	ctx := WithRequestInfo(context.Background(), RequestInfo{ID: "req-2"})
	logger.InfoContext(ctx, "rendered", "width", 390)

	out := buf.String()
	if !strings.Contains(out, "component=backdrop") {
		t.Errorf("output missing component: %s", out)
	}
	if !strings.Contains(out, "request_id=req-2") {
		t.Errorf("output missing request_id: %s", out)
	}
	if strings.Contains(out, "path=") {
		t.Errorf("empty path should be omitted: %s", out)
	}
}

func TestContextHandler_Enabled(t *testing.T) {
	h := NewContextHandler(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn}))

	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Info should be disabled at Warn level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("Error should be enabled at Warn level")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew_WritesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.log")
	var stderr bytes.Buffer

	logger, closer := New(Options{Level: "debug", File: path, Stderr: &stderr})
	logger.Debug("backdrop cache warmed", "sizes", 3)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "backdrop cache warmed") {
		t.Errorf("log file missing record: %s", data)
	}
	if !strings.Contains(stderr.String(), "backdrop cache warmed") {
		t.Errorf("stderr missing record: %s", stderr.String())
	}
}

func TestNew_NoFile(t *testing.T) {
	var stderr bytes.Buffer

	logger, closer := New(Options{Level: "warn", Stderr: &stderr})
	logger.Info("hidden")
	logger.Warn("shown")
	_ = closer.Close()

	if strings.Contains(stderr.String(), "hidden") {
		t.Errorf("info record logged at warn level: %s", stderr.String())
	}
	if !strings.Contains(stderr.String(), "shown") {
		t.Errorf("warn record missing: %s", stderr.String())
	}
}
