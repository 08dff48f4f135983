package config

import (
	"os"
	"testing"
)

func setEnv(t *testing.T, key, value string) {
	t.Helper()
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("failed to set %s: %v", key, err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	// Clear environment and set only required var
	os.Clearenv()
	setEnv(t, "FOLIO_SESSION_SECRET", "test-secret-key-32-bytes-long!!!")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// Check defaults
	if cfg.DBPath != ":memory:" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, ":memory:")
	}
	if cfg.ServerHost != "localhost" {
		t.Errorf("ServerHost = %q, want %q", cfg.ServerHost, "localhost")
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort = %d, want %d", cfg.ServerPort, 8080)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want %q", cfg.Env, "development")
	}
	if cfg.AdminUsername != "admin" {
		t.Errorf("AdminUsername = %q, want %q", cfg.AdminUsername, "admin")
	}
	if cfg.CacheTTL != 300 {
		t.Errorf("CacheTTL = %d, want %d", cfg.CacheTTL, 300)
	}
	if cfg.UseRedisCache() {
		t.Error("UseRedisCache() = true with no FOLIO_REDIS_URL set")
	}
}

func TestLoad_CustomValues(t *testing.T) {
	os.Clearenv()
	customSecret := "custom-secret-key-32-bytes-long!"
	setEnv(t, "FOLIO_SESSION_SECRET", customSecret)
	setEnv(t, "FOLIO_DB_PATH", "/custom/folio.db")
	setEnv(t, "FOLIO_SERVER_HOST", "0.0.0.0")
	setEnv(t, "FOLIO_SERVER_PORT", "3000")
	setEnv(t, "FOLIO_ENV", "production")
	setEnv(t, "FOLIO_ADMIN_USERNAME", "editor")
	setEnv(t, "FOLIO_ADMIN_PASSWORD", "sup3r-secret")
	setEnv(t, "FOLIO_REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.SessionSecret != customSecret {
		t.Errorf("SessionSecret = %q, want %q", cfg.SessionSecret, customSecret)
	}
	if cfg.DBPath != "/custom/folio.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "/custom/folio.db")
	}
	if cfg.ServerAddr() != "0.0.0.0:3000" {
		t.Errorf("ServerAddr() = %q, want %q", cfg.ServerAddr(), "0.0.0.0:3000")
	}
	if cfg.Env != "production" {
		t.Errorf("Env = %q, want %q", cfg.Env, "production")
	}
	if cfg.AdminUsername != "editor" {
		t.Errorf("AdminUsername = %q, want %q", cfg.AdminUsername, "editor")
	}
	if !cfg.UseRedisCache() {
		t.Error("UseRedisCache() = false with FOLIO_REDIS_URL set")
	}
}

func TestLoad_RequiredSessionSecret(t *testing.T) {
	os.Clearenv()
	// Don't set FOLIO_SESSION_SECRET

	_, err := Load()
	if err == nil {
		t.Fatal("Load() should fail when FOLIO_SESSION_SECRET is not set")
	}
}

func TestLoad_ShortSessionSecret(t *testing.T) {
	os.Clearenv()
	setEnv(t, "FOLIO_SESSION_SECRET", "too-short")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() should fail for a session secret below the minimum length")
	}
}

func TestLoad_WeakSessionSecret(t *testing.T) {
	os.Clearenv()
	setEnv(t, "FOLIO_SESSION_SECRET", "change-me-to-32-byte-secret-key!")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() should reject a known default session secret")
	}
}

func TestLoad_ShortAdminPassword(t *testing.T) {
	os.Clearenv()
	setEnv(t, "FOLIO_SESSION_SECRET", "test-secret-key-32-bytes-long!!!")
	setEnv(t, "FOLIO_ADMIN_PASSWORD", "short")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() should reject an admin password below the login minimum")
	}
}
