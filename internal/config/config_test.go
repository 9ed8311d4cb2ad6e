package config

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"DATABASE_PATH", "SERVER_PORT", "SESSION_MAX_AGE", "REMEMBER_MAX_AGE",
		"LOG_LEVEL", "LOGIN_RATE_PER_MIN", "LOGIN_BURST",
	} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DatabasePath != "buddystream.db" {
		t.Errorf("DatabasePath = %q", cfg.DatabasePath)
	}
	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %q", cfg.ServerPort)
	}
	if cfg.SessionMaxAge != 86400 {
		t.Errorf("SessionMaxAge = %d", cfg.SessionMaxAge)
	}
	if cfg.RememberMaxAge != 2592000 {
		t.Errorf("RememberMaxAge = %d", cfg.RememberMaxAge)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.LoginRatePerMin != 10 || cfg.LoginBurst != 10 {
		t.Errorf("login throttle = %d/%d, want 10/10", cfg.LoginRatePerMin, cfg.LoginBurst)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DATABASE_PATH", "/tmp/test.db")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SESSION_MAX_AGE", "120")
	t.Setenv("REMEMBER_MAX_AGE", "240")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOGIN_RATE_PER_MIN", "5")
	t.Setenv("LOGIN_BURST", "3")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DatabasePath != "/tmp/test.db" {
		t.Errorf("DatabasePath = %q", cfg.DatabasePath)
	}
	if cfg.ServerPort != "9090" {
		t.Errorf("ServerPort = %q", cfg.ServerPort)
	}
	if cfg.SessionMaxAge != 120 || cfg.RememberMaxAge != 240 {
		t.Errorf("lifetimes = %d/%d, want 120/240", cfg.SessionMaxAge, cfg.RememberMaxAge)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.LoginRatePerMin != 5 || cfg.LoginBurst != 3 {
		t.Errorf("login throttle = %d/%d, want 5/3", cfg.LoginRatePerMin, cfg.LoginBurst)
	}
}

func TestLoadConfigRejectsNonPositiveLifetimes(t *testing.T) {
	t.Setenv("SESSION_MAX_AGE", "-5")
	t.Setenv("REMEMBER_MAX_AGE", "0")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.SessionMaxAge != 86400 {
		t.Errorf("SessionMaxAge = %d, want default for negative input", cfg.SessionMaxAge)
	}
	if cfg.RememberMaxAge != 2592000 {
		t.Errorf("RememberMaxAge = %d, want default for zero input", cfg.RememberMaxAge)
	}
}
