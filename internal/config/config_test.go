package config

import (
	"testing"
	"time"
)

func TestFromViperDefaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "PORT", "SESSION_SECRET", "QUOTES_DB_PATH", "MIGRATIONS_DIR", "TEMPLATES_DIR",
		"SESSION_MAX_IDLE", "METRICS_ENABLED", "AI_BASE_URL", "AI_API_KEY", "AI_MODEL",
		"AI_TIMEOUT", "AI_REQUESTS_PER_MINUTE",
	} {
		unset(t, key)
	}

	cfg := fromViper(newViper())

	if !cfg.IsDev() || cfg.Port != "8080" {
		t.Fatalf("unexpected env/port: %q %q", cfg.Env, cfg.Port)
	}
	if cfg.QuotesDBPath != "" || cfg.MigrationsDir != "migrations" || cfg.TemplatesDir != "web/templates" {
		t.Fatalf("unexpected paths: %+v", cfg)
	}
	if cfg.SessionMaxIdle != 12*time.Hour || !cfg.MetricsEnabled {
		t.Fatalf("unexpected session/metrics config: %+v", cfg)
	}
	if cfg.AI.Model != "gpt-4o-mini" || cfg.AI.Timeout != time.Minute || cfg.AI.RequestsPerMinute != 30 {
		t.Fatalf("unexpected ai config: %+v", cfg.AI)
	}
}

func TestFromViperReadsEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("PORT", "9090")
	t.Setenv("QUOTES_DB_PATH", "/var/lib/printcost/quotes.db")
	t.Setenv("SESSION_MAX_IDLE", "30m")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("AI_BASE_URL", "https://llm.example.com/v1")
	t.Setenv("AI_TIMEOUT", "15s")
	t.Setenv("AI_REQUESTS_PER_MINUTE", "5")

	cfg := fromViper(newViper())

	if cfg.IsDev() || cfg.Port != "9090" {
		t.Fatalf("unexpected env/port: %q %q", cfg.Env, cfg.Port)
	}
	if cfg.QuotesDBPath != "/var/lib/printcost/quotes.db" {
		t.Fatalf("QuotesDBPath = %q", cfg.QuotesDBPath)
	}
	if cfg.SessionMaxIdle != 30*time.Minute || cfg.MetricsEnabled {
		t.Fatalf("unexpected session/metrics config: %+v", cfg)
	}
	if cfg.AI.BaseURL != "https://llm.example.com/v1" || cfg.AI.Timeout != 15*time.Second || cfg.AI.RequestsPerMinute != 5 {
		t.Fatalf("unexpected ai config: %+v", cfg.AI)
	}
}
