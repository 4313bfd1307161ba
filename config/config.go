package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultChecklistURL is the Model Y delivery checklist.
const DefaultChecklistURL = "https://raw.githubusercontent.com/polymorphic/tesla-model-y-checklist/refs/heads/master/README.md"

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig
	Sentry     SentryConfig

	// Checklist specifics
	Checklist ChecklistConfig
	Session   SessionConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
	TrustedProxies  []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type SentryConfig struct {
	DSN string
}

type ChecklistConfig struct {
	DefaultSourceURL string
	FetchTimeout     time.Duration
	Interactive      bool
	AllowedLinkHosts []string
	DefaultTheme     string
}

type SessionConfig struct {
	MaxSessions int
	TTL         time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
// A .env file in the working directory is loaded into the environment first.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.HTTPServer.TrustedProxies = getList("http_server.trusted_proxies")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	cfg.Sentry.DSN = viper.GetString("sentry.dsn")
	if dsn := viper.GetString("sentry_dsn"); dsn != "" {
		cfg.Sentry.DSN = dsn
	}

	// Checklist
	cfg.Checklist.DefaultSourceURL = viper.GetString("checklist.default_source_url")
	cfg.Checklist.FetchTimeout = viper.GetDuration("checklist.fetch_timeout")
	cfg.Checklist.Interactive = viper.GetBool("checklist.interactive")
	cfg.Checklist.DefaultTheme = viper.GetString("checklist.default_theme")
	cfg.Checklist.AllowedLinkHosts = getList("checklist.allowed_link_hosts")

	// Sessions
	cfg.Session.MaxSessions = viper.GetInt("session.max_sessions")
	cfg.Session.TTL = viper.GetDuration("session.ttl")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 120)

	// Checklist defaults
	viper.SetDefault("checklist.default_source_url", DefaultChecklistURL)
	viper.SetDefault("checklist.fetch_timeout", "15s")
	viper.SetDefault("checklist.interactive", true)
	viper.SetDefault("checklist.default_theme", "light")
	viper.SetDefault("session.max_sessions", 1000)
	viper.SetDefault("session.ttl", "24h")
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port %d is out of range", cfg.HTTPServer.Port)
	}
	if cfg.Checklist.FetchTimeout <= 0 {
		return fmt.Errorf("checklist.fetch_timeout must be positive")
	}
	if cfg.Session.MaxSessions <= 0 {
		return fmt.Errorf("session.max_sessions must be positive")
	}
	if cfg.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be positive")
	}
	switch cfg.Checklist.DefaultTheme {
	case "light", "dark":
	default:
		return fmt.Errorf("checklist.default_theme must be light or dark, got %q", cfg.Checklist.DefaultTheme)
	}
	return nil
}

// getList reads key either as a YAML list or a comma separated env value.
func getList(key string) []string {
	if list := splitList(viper.GetString(key)); len(list) > 0 {
		return list
	}
	return viper.GetStringSlice(key)
}

// splitList splits a comma separated env value, since viper does not
// parse arrays from env seamlessly.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
