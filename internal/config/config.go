package config

import (
	"log/slog"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	Env            string
	Port           string
	SessionSecret  string
	QuotesDBPath   string
	MigrationsDir  string
	TemplatesDir   string
	SessionMaxIdle time.Duration
	MetricsEnabled bool
	AI             AI
}

// AI configures the text-completion provider.
type AI struct {
	BaseURL           string
	APIKey            string
	Model             string
	Timeout           time.Duration
	RequestsPerMinute int
}

// IsDev reports whether the server runs in development mode.
func (c Config) IsDev() bool {
	return c.Env == "dev"
}

// Load reads environment variables and returns a populated Config.
func Load() Config {
	// Best-effort: production should use real env injection.
	if err := loadDotEnv(".env"); err != nil {
		slog.Warn("failed to read .env", "err", err)
	}

	return fromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "dev")
	v.SetDefault("PORT", "8080")
	v.SetDefault("SESSION_SECRET", "")
	v.SetDefault("QUOTES_DB_PATH", "")
	v.SetDefault("MIGRATIONS_DIR", "migrations")
	v.SetDefault("TEMPLATES_DIR", "web/templates")
	v.SetDefault("SESSION_MAX_IDLE", 12*time.Hour)
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("AI_BASE_URL", "")
	v.SetDefault("AI_API_KEY", "")
	v.SetDefault("AI_MODEL", "gpt-4o-mini")
	v.SetDefault("AI_TIMEOUT", 60*time.Second)
	v.SetDefault("AI_REQUESTS_PER_MINUTE", 30)
	return v
}

func fromViper(v *viper.Viper) Config {
	cfg := Config{
		Env:            v.GetString("APP_ENV"),
		Port:           v.GetString("PORT"),
		SessionSecret:  v.GetString("SESSION_SECRET"),
		QuotesDBPath:   v.GetString("QUOTES_DB_PATH"),
		MigrationsDir:  v.GetString("MIGRATIONS_DIR"),
		TemplatesDir:   v.GetString("TEMPLATES_DIR"),
		SessionMaxIdle: v.GetDuration("SESSION_MAX_IDLE"),
		MetricsEnabled: v.GetBool("METRICS_ENABLED"),
		AI: AI{
			BaseURL:           v.GetString("AI_BASE_URL"),
			APIKey:            v.GetString("AI_API_KEY"),
			Model:             v.GetString("AI_MODEL"),
			Timeout:           v.GetDuration("AI_TIMEOUT"),
			RequestsPerMinute: v.GetInt("AI_REQUESTS_PER_MINUTE"),
		},
	}

	if cfg.SessionSecret == "" {
		slog.Warn("SESSION_SECRET is not set")
	}
	if cfg.AI.BaseURL == "" {
		slog.Warn("AI_BASE_URL is not set; AI estimates are disabled")
	}

	return cfg
}
