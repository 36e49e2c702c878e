// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestAssetPath(t *testing.T) {
	base := t.TempDir()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "simple file", input: "profile.png", want: filepath.Join(base, "profile.png")},
		{name: "leading slash", input: "/resume.pdf", want: filepath.Join(base, "resume.pdf")},
		{name: "nested", input: "projects/netflix-dashboard.png", want: filepath.Join(base, "projects", "netflix-dashboard.png")},
		{name: "empty", input: "", wantErr: true},
		{name: "traversal", input: "../etc/passwd", wantErr: true},
		{name: "nested traversal", input: "projects/../../secret", wantErr: true},
		{name: "dot segment", input: "./profile.png", wantErr: true},
		{name: "double slash", input: "projects//x.png", wantErr: true},
		{name: "backslash", input: "..\\secret", wantErr: true},
		{name: "trailing slash", input: "projects/", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AssetPath(base, tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsafePath) {
					t.Fatalf("AssetPath(%q) error = %v; want ErrUnsafePath", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("AssetPath(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("AssetPath(%q) = %q; want %q", tt.input, got, tt.want)
			}
		})
	}
}
