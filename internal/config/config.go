package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		UI
		Locale
		Session
		Demo
		Audit
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
		Environment              string // "development" or "production"
		SeedOnStart              bool   // Seed demo rows even outside development
	}
	Database struct {
		Path     string
		LogLevel string // silent, error, warn, info
	}
	UI struct {
		TemplatesPath string
		StaticPath    string
	}
	Locale struct {
		Tag            string // BCP 47 tag used for number formatting, e.g. "pt-BR"
		CurrencySymbol string
	}
	Session struct {
		Secret        string
		Lifetime      time.Duration
		SecureCookies bool // Set to false for local dev without HTTPS
		CSRFEnabled   bool
	}
	Demo struct {
		Enabled bool // Block every write operation
	}
	Audit struct {
		Retention time.Duration // Events older than this are pruned on start; 0 keeps everything
	}
)

// IsDevelopment reports whether the application runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Global.Environment, EnvDevelopment)
}

// ShouldSeed reports whether demonstration rows should be inserted on start.
func (c *Config) ShouldSeed() bool {
	return c.IsDevelopment() || c.Global.SeedOnStart
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8190)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("app_env", EnvProduction)
	v.SetDefault("seed_on_start", false)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_log_level", "warn")
	v.SetDefault("templates_path", "./templates")
	v.SetDefault("static_path", "./static")

	// Locale defaults for a pt-BR storefront
	v.SetDefault("locale", "pt-BR")
	v.SetDefault("currency_symbol", "R$")

	// Session and form protection defaults
	v.SetDefault("session_secret", "") // Auto-generated if empty
	v.SetDefault("session_lifetime", "12h")
	v.SetDefault("secure_cookies", true)
	v.SetDefault("csrf_enabled", true)

	v.SetDefault("demo_mode", false)
	v.SetDefault("audit_retention", "2160h")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
			Environment:              v.GetString("APP_ENV"),
			SeedOnStart:              v.GetBool("SEED_ON_START"),
		},
		Database: Database{
			Path:     v.GetString("DATABASE_PATH"),
			LogLevel: v.GetString("DATABASE_LOG_LEVEL"),
		},
		UI: UI{
			TemplatesPath: v.GetString("TEMPLATES_PATH"),
			StaticPath:    v.GetString("STATIC_PATH"),
		},
		Locale: Locale{
			Tag:            v.GetString("LOCALE"),
			CurrencySymbol: v.GetString("CURRENCY_SYMBOL"),
		},
		Session: Session{
			Secret:        v.GetString("SESSION_SECRET"),
			Lifetime:      v.GetDuration("SESSION_LIFETIME"),
			SecureCookies: v.GetBool("SECURE_COOKIES"),
			CSRFEnabled:   v.GetBool("CSRF_ENABLED"),
		},
		Demo: Demo{
			Enabled: v.GetBool("DEMO_MODE"),
		},
		Audit: Audit{
			Retention: v.GetDuration("AUDIT_RETENTION"),
		},
	}
}
