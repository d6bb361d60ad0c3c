package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Server.Port != "4000" {
		t.Errorf("expected default port 4000, got %s", cfg.Server.Port)
	}
	if cfg.Gateway.Timeout != 30*time.Second {
		t.Errorf("expected default gateway timeout 30s, got %s", cfg.Gateway.Timeout)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 {
		t.Errorf("expected 2 default origins, got %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("GATEWAY_TIMEOUT", "5s")
	t.Setenv("NEW_RELIC_ENABLED", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")

	cfg := Load()

	if cfg.Server.Port != "9999" {
		t.Errorf("expected port 9999, got %s", cfg.Server.Port)
	}
	if cfg.Gateway.Timeout != 5*time.Second {
		t.Errorf("expected gateway timeout 5s, got %s", cfg.Gateway.Timeout)
	}
	if !cfg.NewRelic.Enabled {
		t.Error("expected New Relic enabled")
	}

	origins := cfg.CORS.AllowedOrigins
	if len(origins) != 2 || origins[0] != "https://app.example.com" || origins[1] != "https://admin.example.com" {
		t.Errorf("expected trimmed origin list, got %v", origins)
	}
}

func TestLoad_MalformedEnvFallsBackToDefaults(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("GATEWAY_TIMEOUT", "soon")

	cfg := Load()

	if cfg.Redis.DB != 0 {
		t.Errorf("expected default redis DB 0, got %d", cfg.Redis.DB)
	}
	if cfg.Gateway.Timeout != 30*time.Second {
		t.Errorf("expected default gateway timeout, got %s", cfg.Gateway.Timeout)
	}
}
