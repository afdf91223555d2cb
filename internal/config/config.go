// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Lock backends.
const (
	LockBackendMemory = "memory"
	LockBackendRedis  = "redis"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Checker       CheckerConfig       `yaml:"checker"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Scoring       ScoringConfig       `yaml:"scoring"`
	Lock          LockConfig          `yaml:"lock"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Telemetry     TelemetryConfig     `yaml:"telemetry"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// CheckerConfig controls how stores are contacted.
type CheckerConfig struct {
	UserAgent      string        `yaml:"user_agent"`
	DefaultTimeout time.Duration `yaml:"default_timeout"`
	// Concurrency is the number of stores checked in parallel within a batch.
	Concurrency int           `yaml:"concurrency"`
	BatchDelay  time.Duration `yaml:"batch_delay"`
	// OptimisticDefault reports a scraped page as available when nothing on
	// it says otherwise. Stores can override it.
	OptimisticDefault    *bool         `yaml:"optimistic_default"`
	PriceChangeThreshold float64       `yaml:"price_change_threshold"`
	MaxBodyBytes         int64         `yaml:"max_body_bytes"`
	Browser              BrowserConfig `yaml:"browser"`
}

// BrowserConfig configures the headless browser used for render_js stores.
type BrowserConfig struct {
	Enabled    bool          `yaml:"enabled"`
	ControlURL string        `yaml:"control_url"` // connect to an existing browser instead of launching one
	Bin        string        `yaml:"bin"`
	Timeout    time.Duration `yaml:"timeout"`
}

// ScheduleConfig defines the check cadence and batch sizes.
type ScheduleConfig struct {
	CheckInterval  time.Duration `yaml:"check_interval"`
	PriorityLimit  int           `yaml:"priority_limit"`
	RoutineLimit   int           `yaml:"routine_limit"`
	StaleAfter     time.Duration `yaml:"stale_after"`
	PriorityWindow time.Duration `yaml:"priority_window"`
	BatchBudget    time.Duration `yaml:"batch_budget"` // 0 disables the overall deadline
	StaleJobAfter  time.Duration `yaml:"stale_job_after"`
}

// ScoringConfig defines scoring weights and the history window.
type ScoringConfig struct {
	Weights           ScoringWeights `yaml:"weights"`
	HistoryWindowDays int            `yaml:"history_window_days"`
}

// ScoringWeights defines the relative weight of each sub-score.
type ScoringWeights struct {
	Availability   float64 `yaml:"availability"`
	Reliability    float64 `yaml:"reliability"`
	PriceStability float64 `yaml:"price_stability"`
	Delivery       float64 `yaml:"delivery"`
}

func (w ScoringWeights) sum() float64 {
	return w.Availability + w.Reliability + w.PriceStability + w.Delivery
}

// LockConfig selects the per-product lock backend.
type LockConfig struct {
	Backend string        `yaml:"backend"` // memory, redis
	TTL     time.Duration `yaml:"ttl"`
	Redis   RedisConfig   `yaml:"redis"`
}

// RedisConfig defines Redis connection settings.
type RedisConfig struct {
	Addr      string `yaml:"addr"`
	Password  string `yaml:"password"`
	DB        int    `yaml:"db"`
	KeyPrefix string `yaml:"key_prefix"`
}

// NotificationsConfig defines notification targets.
type NotificationsConfig struct {
	Discord DiscordConfig `yaml:"discord"`
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
	// NotifyPriceChanges also posts when only the price moved.
	NotifyPriceChanges bool `yaml:"notify_price_changes"`
}

// TelemetryConfig defines OpenTelemetry tracing settings.
type TelemetryConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Endpoint    string  `yaml:"endpoint"`
	Insecure    bool    `yaml:"insecure"`
	ServiceName string  `yaml:"service_name"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

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
	applyCheckerDefaults(&cfg.Checker)
	applyScheduleDefaults(&cfg.Schedule)
	applyScoringDefaults(&cfg.Scoring)
	applyLockDefaults(&cfg.Lock)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyLoggingDefaults(&cfg.Logging)
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
		// Multi-product checks hold the request open for the whole batch.
		s.WriteTimeout = 5 * time.Minute
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

func applyCheckerDefaults(c *CheckerConfig) {
	if c.UserAgent == "" {
		c.UserAgent = "Mozilla/5.0 (compatible; InventoryTracker/1.0)"
	}
	if c.DefaultTimeout == 0 {
		c.DefaultTimeout = 30 * time.Second
	}
	if c.Concurrency == 0 {
		c.Concurrency = 1
	}
	if c.BatchDelay == 0 {
		c.BatchDelay = time.Second
	}
	if c.OptimisticDefault == nil {
		v := true
		c.OptimisticDefault = &v
	}
	if c.PriceChangeThreshold == 0 {
		c.PriceChangeThreshold = 1.0
	}
	if c.MaxBodyBytes == 0 {
		c.MaxBodyBytes = 5 << 20
	}
	if c.Browser.Timeout == 0 {
		c.Browser.Timeout = 45 * time.Second
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.CheckInterval == 0 {
		s.CheckInterval = time.Hour
	}
	if s.PriorityLimit == 0 {
		s.PriorityLimit = 20
	}
	if s.RoutineLimit == 0 {
		s.RoutineLimit = 30
	}
	if s.StaleAfter == 0 {
		s.StaleAfter = 24 * time.Hour
	}
	if s.PriorityWindow == 0 {
		s.PriorityWindow = 7 * 24 * time.Hour
	}
	if s.StaleJobAfter == 0 {
		s.StaleJobAfter = 2 * time.Hour
	}
}

func applyScoringDefaults(s *ScoringConfig) {
	if s.Weights == (ScoringWeights{}) {
		s.Weights = ScoringWeights{
			Availability:   0.40,
			Reliability:    0.30,
			PriceStability: 0.15,
			Delivery:       0.15,
		}
	}
	if s.HistoryWindowDays == 0 {
		s.HistoryWindowDays = 30
	}
}

func applyLockDefaults(l *LockConfig) {
	if l.Backend == "" {
		l.Backend = LockBackendMemory
	}
	if l.TTL == 0 {
		l.TTL = 2 * time.Minute
	}
	if l.Redis.KeyPrefix == "" {
		l.Redis.KeyPrefix = "invt:lock:"
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.ServiceName == "" {
		t.ServiceName = "inventory-tracker"
	}
	if t.SampleRatio == 0 {
		t.SampleRatio = 1.0
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

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	if cfg.Checker.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("checker.concurrency must be at least 1"))
	}
	if cfg.Checker.PriceChangeThreshold < 0 {
		errs = append(errs, fmt.Errorf("checker.price_change_threshold must not be negative"))
	}

	if cfg.Schedule.PriorityLimit < 0 || cfg.Schedule.RoutineLimit < 0 {
		errs = append(errs, fmt.Errorf("schedule limits must not be negative"))
	}

	w := cfg.Scoring.Weights
	if w.Availability < 0 || w.Reliability < 0 || w.PriceStability < 0 || w.Delivery < 0 {
		errs = append(errs, fmt.Errorf("scoring.weights must not be negative"))
	} else if math.Abs(w.sum()-1) > 0.001 {
		errs = append(errs, fmt.Errorf("scoring.weights must sum to 1.0 (got %.3f)", w.sum()))
	}

	switch cfg.Lock.Backend {
	case LockBackendMemory:
	case LockBackendRedis:
		if cfg.Lock.Redis.Addr == "" {
			errs = append(errs, fmt.Errorf("lock.redis.addr is required when backend is redis"))
		}
	default:
		errs = append(errs, fmt.Errorf(
			"lock.backend must be one of: memory, redis (got %q)", cfg.Lock.Backend,
		))
	}

	if cfg.Notifications.Discord.Enabled && cfg.Notifications.Discord.WebhookURL == "" {
		errs = append(errs, fmt.Errorf("notifications.discord.webhook_url is required when discord is enabled"))
	}

	if cfg.Telemetry.Enabled && cfg.Telemetry.Endpoint == "" {
		errs = append(errs, fmt.Errorf("telemetry.endpoint is required when telemetry is enabled"))
	}
	if cfg.Telemetry.SampleRatio < 0 || cfg.Telemetry.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf("telemetry.sample_ratio must be between 0 and 1"))
	}

	return errors.Join(errs...)
}
