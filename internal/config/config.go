// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Meli      MeliConfig      `yaml:"meli"`
	Favorites FavoritesConfig `yaml:"favorites"`
	Notify    NotifyConfig    `yaml:"notify"`
	Logging   LoggingConfig   `yaml:"logging"`
	Tracing   TracingConfig   `yaml:"tracing"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings. The database is
// optional; leaving host empty disables favorites.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// Enabled reports whether a database was configured.
func (d *DatabaseConfig) Enabled() bool {
	return d.Host != ""
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// MeliConfig defines MercadoLibre API settings.
type MeliConfig struct {
	BaseURL      string          `yaml:"base_url"`
	SiteID       string          `yaml:"site_id"`
	ClientID     string          `yaml:"client_id"`
	ClientSecret string          `yaml:"client_secret"`
	TokenURL     string          `yaml:"token_url"`
	UserAgent    string          `yaml:"user_agent"`
	Timeout      time.Duration   `yaml:"timeout"`
	RateLimit    RateLimitConfig `yaml:"rate_limit"`
}

// Authenticated reports whether app credentials were configured.
func (m *MeliConfig) Authenticated() bool {
	return m.ClientID != "" && m.ClientSecret != ""
}

// RateLimitConfig defines MercadoLibre API rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// FavoritesConfig defines the background refresh of saved products.
type FavoritesConfig struct {
	RefreshInterval time.Duration `yaml:"refresh_interval"`
	RefreshDisabled bool          `yaml:"refresh_disabled"`
}

// NotifyConfig defines where favorite price changes are reported.
type NotifyConfig struct {
	DiscordWebhookURL string `yaml:"discord_webhook_url"`
	DropsOnly         bool   `yaml:"drops_only"`
}

// Enabled reports whether a webhook was configured.
func (n *NotifyConfig) Enabled() bool {
	return n.DiscordWebhookURL != ""
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// TracingConfig defines OTLP trace export. Tracing is off unless an
// endpoint is set.
type TracingConfig struct {
	Endpoint    string  `yaml:"endpoint"` // host:port of an OTLP gRPC collector
	Insecure    bool    `yaml:"insecure"`
	SampleRatio float64 `yaml:"sample_ratio"`
	ServiceName string  `yaml:"service_name"`
}

// Enabled reports whether trace export was configured.
func (t *TracingConfig) Enabled() bool {
	return t.Endpoint != ""
}

// siteIDPattern matches MercadoLibre site identifiers such as MLA or MLB.
var siteIDPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Default returns a configuration with every default applied. It is used
// by CLI commands that run without a config file.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyMeliDefaults(&cfg.Meli)
	applyFavoritesDefaults(&cfg.Favorites)
	applyLoggingDefaults(&cfg.Logging)
	applyTracingDefaults(&cfg.Tracing)
}

func applyMeliDefaults(m *MeliConfig) {
	if m.BaseURL == "" {
		m.BaseURL = "https://api.mercadolibre.com"
	}
	if m.SiteID == "" {
		m.SiteID = "MLA"
	}
	if m.TokenURL == "" {
		m.TokenURL = "https://api.mercadolibre.com/oauth/token"
	}
	if m.UserAgent == "" {
		m.UserAgent = "mercado-search/1.0"
	}
	if m.Timeout == 0 {
		m.Timeout = 30 * time.Second
	}
	applyRateLimitDefaults(&m.RateLimit)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 10.0
	}
	if r.Burst == 0 {
		r.Burst = 20
	}
	if r.DailyLimit == 0 {
		r.DailyLimit = 50000
	}
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyFavoritesDefaults(f *FavoritesConfig) {
	if f.RefreshInterval == 0 {
		f.RefreshInterval = 6 * time.Hour
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func applyTracingDefaults(t *TracingConfig) {
	if t.SampleRatio == 0 {
		t.SampleRatio = 1.0
	}
	if t.ServiceName == "" {
		t.ServiceName = "mercado-search"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Enabled() {
		if cfg.Database.Name == "" {
			errs = append(errs, fmt.Errorf("database.name is required when database.host is set"))
		}
		if cfg.Database.User == "" {
			errs = append(errs, fmt.Errorf("database.user is required when database.host is set"))
		}
	}

	if !siteIDPattern.MatchString(cfg.Meli.SiteID) {
		errs = append(
			errs,
			fmt.Errorf("meli.site_id must be three uppercase letters (got %q)", cfg.Meli.SiteID),
		)
	}
	if (cfg.Meli.ClientID == "") != (cfg.Meli.ClientSecret == "") {
		errs = append(
			errs,
			fmt.Errorf("meli.client_id and meli.client_secret must be set together"),
		)
	}
	if cfg.Meli.RateLimit.PerSecond < 0 || cfg.Meli.RateLimit.Burst < 0 ||
		cfg.Meli.RateLimit.DailyLimit < 0 {
		errs = append(errs, fmt.Errorf("meli.rate_limit values must be positive"))
	}

	if cfg.Favorites.RefreshInterval < time.Minute {
		errs = append(
			errs,
			fmt.Errorf("favorites.refresh_interval must be at least 1m (got %s)", cfg.Favorites.RefreshInterval),
		)
	}

	if cfg.Notify.Enabled() && !strings.HasPrefix(cfg.Notify.DiscordWebhookURL, "https://") &&
		!strings.HasPrefix(cfg.Notify.DiscordWebhookURL, "http://") {
		errs = append(errs, fmt.Errorf("notify.discord_webhook_url must be an http(s) URL"))
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(
			errs,
			fmt.Errorf(
				"logging.level must be one of: debug, info, warn, error (got %q)",
				cfg.Logging.Level,
			),
		)
	}
	switch cfg.Logging.Format {
	case "text", "json":
	default:
		errs = append(
			errs,
			fmt.Errorf("logging.format must be one of: text, json (got %q)", cfg.Logging.Format),
		)
	}

	if cfg.Tracing.SampleRatio < 0 || cfg.Tracing.SampleRatio > 1 {
		errs = append(
			errs,
			fmt.Errorf("tracing.sample_ratio must be between 0 and 1 (got %g)", cfg.Tracing.SampleRatio),
		)
	}

	return errors.Join(errs...)
}
