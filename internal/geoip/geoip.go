// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package geoip resolves visitor IP addresses to ISO country codes using a
// MaxMind GeoLite2-Country database. Without a database every public
// address resolves to the empty string.
package geoip

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/netip"
	"os"
	"sync"
	"time"

	"github.com/oschwald/maxminddb-golang"
)

// Local is reported for loopback, private and link-local addresses.
const Local = "LOCAL"

// Lookup resolves IP addresses to countries. It is safe for concurrent use
// and can swap its database while serving.
type Lookup struct {
	path   string
	logger *slog.Logger

	mu      sync.RWMutex
	db      *maxminddb.Reader
	modTime time.Time
}

// geoRecord matches the GeoLite2-Country database structure.
type geoRecord struct {
	Country struct {
		ISOCode string `maxminddb:"iso_code"`
	} `maxminddb:"country"`
}

// Open loads the database at path. An empty path returns a disabled Lookup
// and no error.
func Open(path string, logger *slog.Logger) (*Lookup, error) {
	if logger == nil {
		logger = slog.Default()
	}
	l := &Lookup{path: path, logger: logger}
	if path == "" {
		return l, nil
	}
	if err := l.Reload(context.Background()); err != nil {
		return nil, err
	}
	return l, nil
}

// Reload reopens the database when the file changed on disk. Its signature
// fits scheduler jobs.
func (l *Lookup) Reload(_ context.Context) error {
	if l.path == "" {
		return nil
	}

	info, err := os.Stat(l.path)
	if err != nil {
		return fmt.Errorf("geoip database: %w", err)
	}

	l.mu.RLock()
	unchanged := l.db != nil && info.ModTime().Equal(l.modTime)
	l.mu.RUnlock()
	if unchanged {
		return nil
	}

	db, err := maxminddb.Open(l.path)
	if err != nil {
		return fmt.Errorf("opening geoip database: %w", err)
	}

	l.mu.Lock()
	old := l.db
	l.db, l.modTime = db, info.ModTime()
	l.mu.Unlock()

	if old != nil {
		_ = old.Close()
	}
	l.logger.Info("geoip database loaded", "path", l.path, "built", time.Unix(int64(db.Metadata.BuildEpoch), 0).UTC())
	return nil
}

// Country returns the ISO 3166 code for ip, Local for non-public
// addresses, and "" when ip is invalid or unknown.
func (l *Lookup) Country(ip string) string {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return ""
	}
	addr = addr.Unmap()
	if addr.IsLoopback() || addr.IsPrivate() || addr.IsLinkLocalUnicast() || addr.IsUnspecified() {
		return Local
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.db == nil {
		return ""
	}

	var record geoRecord
	if err := l.db.Lookup(net.IP(addr.AsSlice()), &record); err != nil {
		return ""
	}
	return record.Country.ISOCode
}

// Enabled reports whether a database is loaded.
func (l *Lookup) Enabled() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.db != nil
}

// Close releases the database.
func (l *Lookup) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}
