package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "empty config uses defaults",
			yaml: `{}`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.False(t, cfg.Database.Enabled())
				assert.False(t, cfg.Meli.Authenticated())
				assert.Equal(t, "MLA", cfg.Meli.SiteID)
				assert.False(t, cfg.Tracing.Enabled())
				assert.InDelta(t, 1.0, cfg.Tracing.SampleRatio, 0.001)
				assert.Equal(t, "mercado-search", cfg.Tracing.ServiceName)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.True(t, cfg.Database.Enabled())
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.Database.PoolSize)
				assert.Equal(t, "https://api.mercadolibre.com", cfg.Meli.BaseURL)
				assert.Equal(t, "https://api.mercadolibre.com/oauth/token", cfg.Meli.TokenURL)
				assert.Equal(t, "mercado-search/1.0", cfg.Meli.UserAgent)
				assert.Equal(t, 30*time.Second, cfg.Meli.Timeout)
				assert.InDelta(t, 10.0, cfg.Meli.RateLimit.PerSecond, 0.001)
				assert.Equal(t, 20, cfg.Meli.RateLimit.Burst)
				assert.Equal(t, int64(50000), cfg.Meli.RateLimit.DailyLimit)
				assert.Equal(t, 6*time.Hour, cfg.Favorites.RefreshInterval)
				assert.False(t, cfg.Favorites.RefreshDisabled)
				assert.False(t, cfg.Notify.Enabled())
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "env var substitution",
			yaml: `
meli:
  client_id: "${TEST_MELI_CLIENT_ID}"
  client_secret: "${TEST_MELI_CLIENT_SECRET}"
`,
			envVars: map[string]string{
				"TEST_MELI_CLIENT_ID":     "12345",
				"TEST_MELI_CLIENT_SECRET": "s3cret",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "12345", cfg.Meli.ClientID)
				assert.Equal(t, "s3cret", cfg.Meli.ClientSecret)
				assert.True(t, cfg.Meli.Authenticated())
			},
		},
		{
			name: "database host without name",
			yaml: `
database:
  host: localhost
  user: testuser
`,
			wantErr: "database.name is required when database.host is set",
		},
		{
			name: "database host without user",
			yaml: `
database:
  host: localhost
  name: testdb
`,
			wantErr: "database.user is required when database.host is set",
		},
		{
			name: "invalid site id",
			yaml: `
meli:
  site_id: argentina
`,
			wantErr: `meli.site_id must be three uppercase letters (got "argentina")`,
		},
		{
			name: "client id without secret",
			yaml: `
meli:
  client_id: "12345"
`,
			wantErr: "meli.client_id and meli.client_secret must be set together",
		},
		{
			name: "negative rate limit",
			yaml: `
meli:
  rate_limit:
    burst: -1
`,
			wantErr: "meli.rate_limit values must be positive",
		},
		{
			name: "refresh interval too short",
			yaml: `
favorites:
  refresh_interval: 10s
`,
			wantErr: "favorites.refresh_interval must be at least 1m",
		},
		{
			name: "invalid logging level",
			yaml: `
logging:
  level: verbose
`,
			wantErr: `logging.level must be one of: debug, info, warn, error (got "verbose")`,
		},
		{
			name: "invalid logging format",
			yaml: `
logging:
  format: xml
`,
			wantErr: `logging.format must be one of: text, json (got "xml")`,
		},
		{
			name: "multiple errors joined",
			yaml: `
meli:
  site_id: x
logging:
  format: xml
`,
			wantErr: "meli.site_id must be three uppercase letters",
		},
		{
			name: "sample ratio out of range",
			yaml: `
tracing:
  endpoint: localhost:4317
  sample_ratio: 1.5
`,
			wantErr: "tracing.sample_ratio must be between 0 and 1 (got 1.5)",
		},
		{
			name: "webhook without scheme",
			yaml: `
notify:
  discord_webhook_url: discord.com/api/webhooks/1/abc
`,
			wantErr: "notify.discord_webhook_url must be an http(s) URL",
		},
		{
			name:    "invalid YAML",
			yaml:    `{{{not valid yaml`,
			wantErr: "parsing config YAML",
		},
		{
			name: "full config with overrides",
			yaml: `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 60s
  write_timeout: 60s
database:
  host: db.example.com
  port: 5433
  name: mercado_prod
  user: admin
  password: pass
  sslmode: require
  pool_size: 20
meli:
  base_url: http://localhost:8089
  site_id: MLB
  client_id: my-client
  client_secret: my-secret
  timeout: 5s
  rate_limit:
    per_second: 2.5
    burst: 5
    daily_limit: 1000
favorites:
  refresh_interval: 30m
  refresh_disabled: true
notify:
  discord_webhook_url: https://discord.com/api/webhooks/1/abc
  drops_only: true
logging:
  level: debug
  format: json
tracing:
  endpoint: otel-collector:4317
  insecure: true
  sample_ratio: 0.25
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 60*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, "db.example.com", cfg.Database.Host)
				assert.Equal(t, 5433, cfg.Database.Port)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, 20, cfg.Database.PoolSize)
				assert.Equal(t, "http://localhost:8089", cfg.Meli.BaseURL)
				assert.Equal(t, "MLB", cfg.Meli.SiteID)
				assert.Equal(t, "my-client", cfg.Meli.ClientID)
				assert.Equal(t, 5*time.Second, cfg.Meli.Timeout)
				assert.InDelta(t, 2.5, cfg.Meli.RateLimit.PerSecond, 0.001)
				assert.Equal(t, 5, cfg.Meli.RateLimit.Burst)
				assert.Equal(t, int64(1000), cfg.Meli.RateLimit.DailyLimit)
				assert.Equal(t, 30*time.Minute, cfg.Favorites.RefreshInterval)
				assert.True(t, cfg.Favorites.RefreshDisabled)
				assert.True(t, cfg.Notify.Enabled())
				assert.True(t, cfg.Notify.DropsOnly)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
				assert.True(t, cfg.Tracing.Enabled())
				assert.True(t, cfg.Tracing.Insecure)
				assert.InDelta(t, 0.25, cfg.Tracing.SampleRatio, 0.001)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only parallelize tests that don't modify env vars.
			if len(tt.envVars) == 0 {
				t.Parallel()
			}

			// Set env vars for this test.
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			// Write YAML to a temp file.
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NotNil(t, cfg)
	assert.Equal(t, "MLA", cfg.Meli.SiteID)
	assert.Equal(t, 8080, cfg.Server.Port)
	require.NoError(t, validate(cfg))
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  DatabaseConfig
		want string
	}{
		{
			name: "basic DSN",
			cfg: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				Name:     "testdb",
				User:     "testuser",
				Password: "testpass",
				SSLMode:  "disable",
			},
			want: "host=localhost port=5432 dbname=testdb user=testuser password=testpass sslmode=disable",
		},
		{
			name: "production DSN",
			cfg: DatabaseConfig{
				Host:     "db.example.com",
				Port:     5433,
				Name:     "mercado",
				User:     "admin",
				Password: "s3cret",
				SSLMode:  "require",
			},
			want: "host=db.example.com port=5433 dbname=mercado user=admin password=s3cret sslmode=require",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.cfg.DSN())
		})
	}
}
