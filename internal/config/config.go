// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Dealer        DealerConfig        `yaml:"dealer"`
	Matching      MatchingConfig      `yaml:"matching"`
	Fingerprints  FingerprintsConfig  `yaml:"fingerprints"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Notifications NotificationsConfig `yaml:"notifications"`
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

// DealerConfig identifies the dealer that owns the sales history. The ID is
// part of every alert dedup key; the time zone decides the key's calendar
// day.
type DealerConfig struct {
	ID       string `yaml:"id"`
	Timezone string `yaml:"timezone"`
}

// Location loads the dealer time zone.
func (d *DealerConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(d.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading dealer timezone %q: %w", d.Timezone, err)
	}
	return loc, nil
}

// MatchingConfig defines match windows, scoring policy and batch sizes.
type MatchingConfig struct {
	YearWindow      int             `yaml:"year_window"`
	KmWindow        int             `yaml:"km_window"`
	MinUnderBuy     float64         `yaml:"min_under_buy"`
	ReferenceMode   string          `yaml:"reference_mode"` // fixed, pool_max
	ReferenceProfit float64         `yaml:"reference_profit"`
	Weights         MatchingWeights `yaml:"weights"`
	Concurrency     int             `yaml:"concurrency"`
	BatchSize       int             `yaml:"batch_size"`
	// ReferenceData overrides the embedded reference tables when set.
	ReferenceData string `yaml:"reference_data"`
}

// MatchingWeights defines the relative weight of each scoring factor.
type MatchingWeights struct {
	Km     float64 `yaml:"km"`
	Profit float64 `yaml:"profit"`
}

// FingerprintsConfig defines how fingerprints are derived from sales.
type FingerprintsConfig struct {
	ExpiryDays int `yaml:"expiry_days"`
}

// ScheduleConfig defines cron intervals. Zero values take the defaults.
type ScheduleConfig struct {
	MatchingInterval    time.Duration `yaml:"matching_interval"`
	AlertsInterval      time.Duration `yaml:"alerts_interval"`
	FingerprintInterval time.Duration `yaml:"fingerprint_interval"`
	StaggerOffset       time.Duration `yaml:"stagger_offset"`
}

// NotificationsConfig defines notification targets.
type NotificationsConfig struct {
	Slack SlackConfig `yaml:"slack"`
}

// SlackConfig defines Slack incoming webhook settings.
type SlackConfig struct {
	Enabled    bool    `yaml:"enabled"`
	WebhookURL string  `yaml:"webhook_url"`
	Channel    string  `yaml:"channel"`
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
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

	return Parse(data)
}

// Parse is Load for an in-memory document.
func Parse(data []byte) (*Config, error) {
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
	applyDealerDefaults(&cfg.Dealer)
	applyMatchingDefaults(&cfg.Matching)
	applyFingerprintDefaults(&cfg.Fingerprints)
	applyScheduleDefaults(&cfg.Schedule)
	applySlackDefaults(&cfg.Notifications.Slack)
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

func applyDealerDefaults(d *DealerConfig) {
	if d.Timezone == "" {
		d.Timezone = "UTC"
	}
}

func applyMatchingDefaults(m *MatchingConfig) {
	if m.YearWindow == 0 {
		m.YearWindow = 2
	}
	if m.KmWindow == 0 {
		m.KmWindow = 15000
	}
	if m.MinUnderBuy == 0 {
		m.MinUnderBuy = 1500
	}
	if m.ReferenceMode == "" {
		m.ReferenceMode = "fixed"
	}
	if m.ReferenceProfit == 0 {
		m.ReferenceProfit = 20000
	}
	if m.Weights.Km == 0 && m.Weights.Profit == 0 {
		m.Weights.Km = 0.40
		m.Weights.Profit = 0.60
	}
	if m.Concurrency == 0 {
		m.Concurrency = 4
	}
	if m.BatchSize == 0 {
		m.BatchSize = 500
	}
}

func applyFingerprintDefaults(f *FingerprintsConfig) {
	if f.ExpiryDays == 0 {
		f.ExpiryDays = 120
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.MatchingInterval == 0 {
		s.MatchingInterval = 30 * time.Minute
	}
	if s.AlertsInterval == 0 {
		s.AlertsInterval = 15 * time.Minute
	}
	if s.FingerprintInterval == 0 {
		s.FingerprintInterval = 24 * time.Hour
	}
	if s.StaggerOffset == 0 {
		s.StaggerOffset = 30 * time.Second
	}
}

func applySlackDefaults(s *SlackConfig) {
	if s.PerSecond == 0 {
		s.PerSecond = 1
	}
	if s.Burst == 0 {
		s.Burst = 1
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

	if cfg.Dealer.ID == "" {
		errs = append(errs, fmt.Errorf("dealer.id is required"))
	}
	if _, err := cfg.Dealer.Location(); err != nil {
		errs = append(errs, fmt.Errorf("dealer.timezone is invalid: %q", cfg.Dealer.Timezone))
	}

	errs = append(errs, validateMatching(&cfg.Matching)...)

	if cfg.Fingerprints.ExpiryDays < 0 {
		errs = append(errs, fmt.Errorf("fingerprints.expiry_days must not be negative"))
	}

	if cfg.Notifications.Slack.Enabled && cfg.Notifications.Slack.WebhookURL == "" {
		errs = append(
			errs,
			fmt.Errorf("notifications.slack.webhook_url is required when slack is enabled"),
		)
	}

	return errors.Join(errs...)
}

func validateMatching(m *MatchingConfig) []error {
	var errs []error

	switch m.ReferenceMode {
	case "fixed", "pool_max":
	default:
		errs = append(
			errs,
			fmt.Errorf("matching.reference_mode must be one of: fixed, pool_max (got %q)", m.ReferenceMode),
		)
	}
	if m.YearWindow < 0 {
		errs = append(errs, fmt.Errorf("matching.year_window must not be negative"))
	}
	if m.KmWindow < 0 {
		errs = append(errs, fmt.Errorf("matching.km_window must not be negative"))
	}
	if m.Weights.Km < 0 || m.Weights.Profit < 0 {
		errs = append(errs, fmt.Errorf("matching.weights must not be negative"))
	}
	if m.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("matching.concurrency must be at least 1"))
	}
	return errs
}
