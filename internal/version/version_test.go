// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package version

import (
	"runtime/debug"
	"testing"
)

func TestInfoString(t *testing.T) {
	info := Info{
		Version:   "v1.0.0",
		GitCommit: "abc1234",
		BuildTime: "2025-01-30T12:00:00Z",
	}

	want := "folio v1.0.0 (commit abc1234, built 2025-01-30T12:00:00Z)"
	if got := info.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestGetNeverEmpty(t *testing.T) {
	info := Get()

	if info.Version == "" {
		t.Error("Version should default to a non-empty value")
	}
	if info.GitCommit == "" {
		t.Error("GitCommit should default to a non-empty value")
	}
	if info.BuildTime == "" {
		t.Error("BuildTime should default to a non-empty value")
	}
}

func TestFillFromBuildInfo(t *testing.T) {
	bi := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	}

	got := fillFromBuildInfo(Info{}, bi)
	if got.Version != "v0.3.0" {
		t.Errorf("Version = %q, want %q", got.Version, "v0.3.0")
	}
	if got.GitCommit != "0123456" {
		t.Errorf("GitCommit = %q, want %q", got.GitCommit, "0123456")
	}
	if got.BuildTime != "2026-01-02T03:04:05Z" {
		t.Errorf("BuildTime = %q, want %q", got.BuildTime, "2026-01-02T03:04:05Z")
	}

	// ldflags values win.
	got = fillFromBuildInfo(Info{Version: "v9", GitCommit: "fff"}, bi)
	if got.Version != "v9" || got.GitCommit != "fff" {
		t.Errorf("ldflags values overwritten: %+v", got)
	}

	bi.Main.Version = "(devel)"
	if got = fillFromBuildInfo(Info{}, bi); got.Version != "" {
		t.Errorf("Version = %q, want empty for (devel)", got.Version)
	}
}
