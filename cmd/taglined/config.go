package main

import (
	"time"

	"github.com/dmitrymomot/tagline/pkg/httpserver"
	"github.com/dmitrymomot/tagline/pkg/legacy"
	"github.com/dmitrymomot/tagline/pkg/ratelimiter"
)

// appConfig is the daemon configuration read from the environment.
type appConfig struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Name string `env:"APP_NAME" envDefault:"taglined"`

	// LogLevel overrides the level implied by Env: debug, info, warn or error.
	LogLevel string `env:"LOG_LEVEL"`

	// LegacyDSN enables the legacy block scanner when set.
	LegacyDSN      string        `env:"LEGACY_DB_DSN"`
	LegacyCacheTTL time.Duration `env:"LEGACY_CACHE_TTL" envDefault:"1h"`

	// LegacyRescan is a cron schedule for refreshing the scan in the
	// background, for example "@every 15m". Empty disables it.
	LegacyRescan        string        `env:"LEGACY_RESCAN_SCHEDULE"`
	LegacyRescanTimeout time.Duration `env:"LEGACY_RESCAN_TIMEOUT" envDefault:"30s"`

	// TrustedProxies lists addresses or CIDR prefixes whose forwarding
	// headers are believed. Without it clients are keyed by RemoteAddr.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	HTTP      httpserver.Config
	RateLimit ratelimiter.Config
}

func (c appConfig) legacyCacheTTL() time.Duration {
	if c.LegacyCacheTTL <= 0 {
		return legacy.DefaultCacheTTL
	}
	return c.LegacyCacheTTL
}
