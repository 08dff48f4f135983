package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected in production.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	// DBPath is the SQLite DSN. The default keeps all data in memory so the
	// store resets on restart; point it at a file for a persistent dev setup.
	DBPath        string `env:"FOLIO_DB_PATH" envDefault:":memory:"`
	SessionSecret string `env:"FOLIO_SESSION_SECRET,required"`
	ServerHost    string `env:"FOLIO_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"FOLIO_SERVER_PORT" envDefault:"8080"`
	Env           string `env:"FOLIO_ENV" envDefault:"development"`
	LogLevel      string `env:"FOLIO_LOG_LEVEL" envDefault:"info"`

	// SiteURL is the public base URL, used in robots.txt and the sitemap.
	SiteURL string `env:"FOLIO_SITE_URL" envDefault:"http://localhost:8080"`

	// Seeded admin account
	AdminUsername string `env:"FOLIO_ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"FOLIO_ADMIN_PASSWORD" envDefault:"changeme"`

	// Cache configuration
	RedisURL    string `env:"FOLIO_REDIS_URL"`                       // Optional Redis URL for the response cache
	CachePrefix string `env:"FOLIO_CACHE_PREFIX" envDefault:"folio:"` // Redis key prefix
	CacheTTL    int    `env:"FOLIO_CACHE_TTL" envDefault:"300"`      // Response cache TTL in seconds

	// Event log retention in days; older rows are pruned by the scheduler.
	EventRetentionDays int `env:"FOLIO_EVENT_RETENTION_DAYS" envDefault:"7"`

	// Login protection
	LoginMaxAttempts    int `env:"FOLIO_LOGIN_MAX_ATTEMPTS" envDefault:"5"`
	LoginLockoutMinutes int `env:"FOLIO_LOGIN_LOCKOUT_MINUTES" envDefault:"15"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// MinSessionSecretLength is the minimum required length for the session secret.
const MinSessionSecretLength = 32

// MinAdminPasswordLength matches the login validation constraint; a seeded
// password shorter than this could never be used to sign in.
const MinAdminPasswordLength = 6

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Validate session secret length
	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("FOLIO_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	// Reject known weak/default secrets
	for _, weak := range knownWeakSecrets {
		if cfg.SessionSecret == weak {
			return nil, fmt.Errorf("FOLIO_SESSION_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	if len(cfg.AdminPassword) < MinAdminPasswordLength {
		return nil, fmt.Errorf("FOLIO_ADMIN_PASSWORD must be at least %d characters", MinAdminPasswordLength)
	}

	if cfg.AdminPassword == "changeme" && !cfg.IsDevelopment() {
		slog.Warn("FOLIO_ADMIN_PASSWORD is the default value; set a real password before exposing the admin editor")
	}

	// Warn about low-entropy secrets
	if !hasMinimumEntropy(cfg.SessionSecret) {
		slog.Warn("FOLIO_SESSION_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	return cfg, nil
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
