// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsafePath is returned for asset names that would escape the assets
// directory or name a directory.
var ErrUnsafePath = errors.New("unsafe asset path")

// AssetPath resolves a slash-separated asset name (as found in a URL) to a
// file under baseDir. Names with "..", absolute names and empty names are
// rejected.
func AssetPath(baseDir, name string) (string, error) {
	name = strings.TrimPrefix(name, "/")
	if name == "" || strings.Contains(name, "\\") || strings.ContainsRune(name, 0) {
		return "", fmt.Errorf("%w: %q", ErrUnsafePath, name)
	}
	for _, part := range strings.Split(name, "/") {
		if part == "" || part == "." || part == ".." {
			return "", fmt.Errorf("%w: %q", ErrUnsafePath, name)
		}
	}

	absBase, err := filepath.Abs(filepath.Clean(baseDir))
	if err != nil {
		return "", fmt.Errorf("resolving assets dir: %w", err)
	}
	full := filepath.Join(absBase, filepath.FromSlash(name))

	// Ensure target is within base (with trailing separator to prevent
	// matching /assets-other when base is /assets)
	if !strings.HasPrefix(full, absBase+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrUnsafePath, name)
	}
	return full, nil
}
