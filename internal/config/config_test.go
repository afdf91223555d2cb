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
			name: "valid minimal config",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "testdb", cfg.Database.Name)
				assert.Equal(t, "testuser", cfg.Database.User)
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
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 5*time.Minute, cfg.Server.WriteTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.Database.PoolSize)

				assert.Equal(t, 30*time.Second, cfg.Checker.DefaultTimeout)
				assert.Equal(t, 1, cfg.Checker.Concurrency)
				assert.Equal(t, time.Second, cfg.Checker.BatchDelay)
				require.NotNil(t, cfg.Checker.OptimisticDefault)
				assert.True(t, *cfg.Checker.OptimisticDefault)
				assert.InDelta(t, 1.0, cfg.Checker.PriceChangeThreshold, 0.0001)
				assert.NotEmpty(t, cfg.Checker.UserAgent)

				assert.Equal(t, time.Hour, cfg.Schedule.CheckInterval)
				assert.Equal(t, 20, cfg.Schedule.PriorityLimit)
				assert.Equal(t, 30, cfg.Schedule.RoutineLimit)
				assert.Equal(t, 24*time.Hour, cfg.Schedule.StaleAfter)
				assert.Equal(t, 7*24*time.Hour, cfg.Schedule.PriorityWindow)
				assert.Zero(t, cfg.Schedule.BatchBudget)

				assert.InDelta(t, 0.40, cfg.Scoring.Weights.Availability, 0.0001)
				assert.InDelta(t, 0.30, cfg.Scoring.Weights.Reliability, 0.0001)
				assert.Equal(t, 30, cfg.Scoring.HistoryWindowDays)

				assert.Equal(t, LockBackendMemory, cfg.Lock.Backend)
				assert.Equal(t, 2*time.Minute, cfg.Lock.TTL)
				assert.Equal(t, "inventory-tracker", cfg.Telemetry.ServiceName)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "env var substitution",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
  password: "${TEST_DB_PASSWORD}"
lock:
  backend: redis
  redis:
    addr: "${TEST_REDIS_ADDR}"
`,
			envVars: map[string]string{
				"TEST_DB_PASSWORD": "secret123",
				"TEST_REDIS_ADDR":  "redis:6379",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "secret123", cfg.Database.Password)
				assert.Equal(t, "redis:6379", cfg.Lock.Redis.Addr)
			},
		},
		{
			name: "missing required database.host",
			yaml: `
database:
  name: testdb
  user: testuser
`,
			wantErr: "database.host is required",
		},
		{
			name: "missing required database.name",
			yaml: `
database:
  host: localhost
  user: testuser
`,
			wantErr: "database.name is required",
		},
		{
			name: "missing required database.user",
			yaml: `
database:
  host: localhost
  name: testdb
`,
			wantErr: "database.user is required",
		},
		{
			name: "invalid lock backend",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
lock:
  backend: etcd
`,
			wantErr: `lock.backend must be one of: memory, redis (got "etcd")`,
		},
		{
			name: "redis backend missing addr",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
lock:
  backend: redis
`,
			wantErr: "lock.redis.addr is required when backend is redis",
		},
		{
			name: "weights must sum to one",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
scoring:
  weights:
    availability: 0.5
    reliability: 0.5
    price_stability: 0.5
    delivery: 0.5
`,
			wantErr: "scoring.weights must sum to 1.0",
		},
		{
			name: "discord enabled without webhook",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
notifications:
  discord:
    enabled: true
`,
			wantErr: "notifications.discord.webhook_url is required",
		},
		{
			name: "telemetry enabled without endpoint",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
telemetry:
  enabled: true
`,
			wantErr: "telemetry.endpoint is required",
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
  name: inventory_prod
  user: admin
  password: pass
  sslmode: require
  pool_size: 20
checker:
  user_agent: test-agent
  default_timeout: 10s
  concurrency: 4
  batch_delay: 2s
  optimistic_default: false
  price_change_threshold: 0.5
  browser:
    enabled: true
    control_url: ws://chrome:9222
schedule:
  check_interval: 30m
  priority_limit: 10
  routine_limit: 50
  batch_budget: 20m
scoring:
  weights:
    availability: 0.5
    reliability: 0.3
    price_stability: 0.1
    delivery: 0.1
  history_window_days: 14
lock:
  backend: redis
  ttl: 5m
  redis:
    addr: localhost:6379
    db: 2
notifications:
  discord:
    enabled: true
    webhook_url: https://discord.com/api/webhooks/123
telemetry:
  enabled: true
  endpoint: otel-collector:4317
  insecure: true
  sample_ratio: 0.25
logging:
  level: debug
  format: json
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 60*time.Second, cfg.Server.WriteTimeout)
				assert.Equal(t, "db.example.com", cfg.Database.Host)
				assert.Equal(t, 20, cfg.Database.PoolSize)
				assert.Equal(t, "test-agent", cfg.Checker.UserAgent)
				assert.Equal(t, 4, cfg.Checker.Concurrency)
				assert.Equal(t, 2*time.Second, cfg.Checker.BatchDelay)
				require.NotNil(t, cfg.Checker.OptimisticDefault)
				assert.False(t, *cfg.Checker.OptimisticDefault)
				assert.True(t, cfg.Checker.Browser.Enabled)
				assert.Equal(t, "ws://chrome:9222", cfg.Checker.Browser.ControlURL)
				assert.Equal(t, 30*time.Minute, cfg.Schedule.CheckInterval)
				assert.Equal(t, 10, cfg.Schedule.PriorityLimit)
				assert.Equal(t, 20*time.Minute, cfg.Schedule.BatchBudget)
				assert.InDelta(t, 0.5, cfg.Scoring.Weights.Availability, 0.0001)
				assert.Equal(t, 14, cfg.Scoring.HistoryWindowDays)
				assert.Equal(t, LockBackendRedis, cfg.Lock.Backend)
				assert.Equal(t, 2, cfg.Lock.Redis.DB)
				assert.True(t, cfg.Notifications.Discord.Enabled)
				assert.True(t, cfg.Telemetry.Insecure)
				assert.InDelta(t, 0.25, cfg.Telemetry.SampleRatio, 0.0001)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only parallelize tests that don't modify env vars.
			if len(tt.envVars) == 0 {
				t.Parallel()
			}

			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

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

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	cfg := DatabaseConfig{
		Host:     "db.example.com",
		Port:     5433,
		Name:     "inventory",
		User:     "admin",
		Password: "s3cret",
		SSLMode:  "require",
	}
	assert.Equal(t,
		"host=db.example.com port=5433 dbname=inventory user=admin password=s3cret sslmode=require",
		cfg.DSN(),
	)
}
