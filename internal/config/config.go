// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads folio's configuration from the environment.
package config

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/olegiv/folio/internal/dotgrid"
	"github.com/olegiv/folio/internal/viewport"
)

// knownWeakSecrets contains example secrets that must never be used.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// ErrInvalid is wrapped by every validation error returned from Load.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ServerHost string `env:"FOLIO_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"FOLIO_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"FOLIO_ENV" envDefault:"development"`
	LogLevel   string `env:"FOLIO_LOG_LEVEL" envDefault:"info"`
	LogFile    string `env:"FOLIO_LOG_FILE"` // Optional rotating log file; stderr only when empty

	// SiteURL is the public base URL used in canonical links, robots.txt
	// and the sitemap. Derived from the request Host when empty.
	SiteURL string `env:"FOLIO_SITE_URL"`

	// SecretKey authenticates CSRF tokens. Generated per process when unset.
	SecretKey string `env:"FOLIO_SECRET_KEY"`

	ContentPath string `env:"FOLIO_CONTENT_PATH"` // Optional YAML override of the embedded content
	AssetsDir   string `env:"FOLIO_ASSETS_DIR" envDefault:"./assets"`

	// Section tracking and background grid
	ActivationThreshold float64 `env:"FOLIO_ACTIVATION_THRESHOLD" envDefault:"250"`
	GridSpacing         float64 `env:"FOLIO_GRID_SPACING" envDefault:"18"`
	GridRadius          float64 `env:"FOLIO_GRID_RADIUS" envDefault:"0.8"`
	GridColor           string  `env:"FOLIO_GRID_COLOR" envDefault:"rgba(71, 85, 105, 0.25)"`
	BackdropMaxWidth    int     `env:"FOLIO_BACKDROP_MAX_WIDTH" envDefault:"3840"`
	BackdropMaxHeight   int     `env:"FOLIO_BACKDROP_MAX_HEIGHT" envDefault:"2160"`
	BackdropStep        int     `env:"FOLIO_BACKDROP_STEP" envDefault:"240"` // Served sizes round up to this
	BackdropWarmSpec    string  `env:"FOLIO_BACKDROP_WARM_SPEC" envDefault:"@every 30m"`
	BackdropRate        float64 `env:"FOLIO_BACKDROP_RATE" envDefault:"5"` // Requests per second per client IP
	BackdropBurst       int     `env:"FOLIO_BACKDROP_BURST" envDefault:"20"`

	// Cache configuration
	RedisURL     string `env:"FOLIO_REDIS_URL"`                        // Optional Redis URL for distributed caching
	CachePrefix  string `env:"FOLIO_CACHE_PREFIX" envDefault:"folio:"` // Redis key prefix
	CacheTTL     int    `env:"FOLIO_CACHE_TTL" envDefault:"3600"`      // Default cache TTL in seconds
	CacheMaxSize int    `env:"FOLIO_CACHE_MAX_SIZE" envDefault:"256"`  // Max memory cache entries

	// Optional GeoLite2-Country database for tagging contact submissions
	GeoIPDBPath     string `env:"FOLIO_GEOIP_DB"`
	GeoIPReloadSpec string `env:"FOLIO_GEOIP_RELOAD_SPEC" envDefault:"@daily"`

	// Contact form rate limiting
	ContactRate  float64 `env:"FOLIO_CONTACT_RATE" envDefault:"0.2"` // Requests per second per client IP
	ContactBurst int     `env:"FOLIO_CONTACT_BURST" envDefault:"3"`

	// CORS origins allowed to read /api endpoints
	CORSOrigins []string `env:"FOLIO_CORS_ORIGINS" envSeparator:"," envDefault:"*"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// IsProduction returns true if the application is running in production mode.
// Only production pages are indexable by search engines.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// CacheTTLDuration returns the default cache TTL.
func (c Config) CacheTTLDuration() time.Duration {
	return time.Duration(c.CacheTTL) * time.Second
}

// Grid returns the dot grid configuration. Load has already validated it.
func (c Config) Grid() dotgrid.Config {
	color, err := dotgrid.ParseColor(c.GridColor)
	if err != nil {
		color = dotgrid.DefaultColor
	}
	return dotgrid.Config{Spacing: c.GridSpacing, Radius: c.GridRadius, Color: color}
}

// BackdropMaxSize returns the largest backdrop the server renders.
func (c Config) BackdropMaxSize() viewport.Viewport {
	return viewport.Viewport{Width: c.BackdropMaxWidth, Height: c.BackdropMaxHeight}
}

// MinSecretKeyLength is the minimum length of FOLIO_SECRET_KEY.
const MinSecretKeyLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.SecretKey == "" {
		key, err := generateSecret()
		if err != nil {
			return nil, fmt.Errorf("generating secret key: %w", err)
		}
		cfg.SecretKey = key
		slog.Warn("FOLIO_SECRET_KEY not set; using a per-process key")
		return cfg, nil
	}

	if len(cfg.SecretKey) < MinSecretKeyLength {
		return nil, fmt.Errorf("%w: FOLIO_SECRET_KEY must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			ErrInvalid, MinSecretKeyLength, len(cfg.SecretKey))
	}
	for _, weak := range knownWeakSecrets {
		if cfg.SecretKey == weak {
			return nil, fmt.Errorf("%w: FOLIO_SECRET_KEY is a known default value and must not be used", ErrInvalid)
		}
	}
	if !hasMinimumEntropy(cfg.SecretKey) {
		slog.Warn("FOLIO_SECRET_KEY has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.ServerPort <= 0 || c.ServerPort > 65535:
		return fmt.Errorf("%w: FOLIO_SERVER_PORT %d out of range", ErrInvalid, c.ServerPort)
	case c.ActivationThreshold <= 0:
		return fmt.Errorf("%w: FOLIO_ACTIVATION_THRESHOLD must be positive", ErrInvalid)
	case c.BackdropMaxWidth <= 0 || c.BackdropMaxHeight <= 0:
		return fmt.Errorf("%w: backdrop max size must be positive", ErrInvalid)
	case c.BackdropStep <= 0:
		return fmt.Errorf("%w: FOLIO_BACKDROP_STEP must be positive", ErrInvalid)
	case c.BackdropRate <= 0 || c.BackdropBurst <= 0:
		return fmt.Errorf("%w: backdrop rate and burst must be positive", ErrInvalid)
	case c.ContactRate <= 0 || c.ContactBurst <= 0:
		return fmt.Errorf("%w: contact rate and burst must be positive", ErrInvalid)
	case c.SiteURL != "" && !strings.HasPrefix(c.SiteURL, "https://") && !strings.HasPrefix(c.SiteURL, "http://"):
		return fmt.Errorf("%w: FOLIO_SITE_URL must start with http:// or https://", ErrInvalid)
	}
	c.SiteURL = strings.TrimSuffix(c.SiteURL, "/")

	color, err := dotgrid.ParseColor(c.GridColor)
	if err != nil {
		return fmt.Errorf("%w: FOLIO_GRID_COLOR: %w", ErrInvalid, err)
	}
	grid := dotgrid.Config{Spacing: c.GridSpacing, Radius: c.GridRadius, Color: color}
	if err := grid.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

func generateSecret() (string, error) {
	b := make([]byte, MinSecretKeyLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
