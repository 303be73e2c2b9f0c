package config

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"code.cloudfoundry.org/scalingengine/cloud"
	"code.cloudfoundry.org/scalingengine/db"
	"code.cloudfoundry.org/scalingengine/helpers"
	"code.cloudfoundry.org/scalingengine/models"

	"gopkg.in/yaml.v3"
)

const (
	DefaultLoggingLevel    = "info"
	DefaultServerPort      = 8080
	DefaultHealthPort      = 8081
	DefaultEventTimeout    = 10 * time.Minute
	DefaultEventWorkers    = 10
	DefaultEventQueueSize  = 100
	DefaultMonitorInterval = 5 * time.Second
	DefaultCacheTTL        = 10 * time.Minute
	DefaultCacheCleanup    = 15 * time.Minute
	DefaultMaxAmount       = 10
	DefaultValidDuration   = 1 * time.Second
	DefaultTimeZone        = "UTC"
)

type DBConfig struct {
	PolicyDB       db.DatabaseConfig `yaml:"policy_db"`
	ScalingStateDB db.DatabaseConfig `yaml:"scaling_state_db"`
}

type EventConfig struct {
	Timeout     time.Duration `yaml:"timeout"`
	WorkerCount int           `yaml:"worker_count"`
	QueueSize   int           `yaml:"queue_size"`
}

type MonitorConfig struct {
	Interval time.Duration `yaml:"interval"`
}

type CacheConfig struct {
	TTL             time.Duration `yaml:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

type RateLimitConfig struct {
	MaxAmount     int           `yaml:"max_amount"`
	ValidDuration time.Duration `yaml:"valid_duration"`
}

type Config struct {
	Cloud       cloud.ClientConfig    `yaml:"cloud"`
	Logging     helpers.LoggingConfig `yaml:"logging"`
	Server      helpers.ServerConfig  `yaml:"server"`
	Health      models.HealthConfig   `yaml:"health"`
	DB          DBConfig              `yaml:"db"`
	Event       EventConfig           `yaml:"event"`
	Monitor     MonitorConfig         `yaml:"monitor"`
	PolicyCache CacheConfig           `yaml:"policy_cache"`
	RateLimit   RateLimitConfig       `yaml:"rate_limit"`
	TimeZone    string                `yaml:"time_zone"`
}

func defaultConfig() Config {
	return Config{
		Logging: helpers.LoggingConfig{Level: DefaultLoggingLevel},
		Server:  helpers.ServerConfig{Port: DefaultServerPort},
		Health:  models.HealthConfig{Port: DefaultHealthPort},
		Event: EventConfig{
			Timeout:     DefaultEventTimeout,
			WorkerCount: DefaultEventWorkers,
			QueueSize:   DefaultEventQueueSize,
		},
		Monitor: MonitorConfig{Interval: DefaultMonitorInterval},
		PolicyCache: CacheConfig{
			TTL:             DefaultCacheTTL,
			CleanupInterval: DefaultCacheCleanup,
		},
		RateLimit: RateLimitConfig{
			MaxAmount:     DefaultMaxAmount,
			ValidDuration: DefaultValidDuration,
		},
		TimeZone: DefaultTimeZone,
	}
}

func LoadConfig(reader io.Reader) (*Config, error) {
	conf := defaultConfig()

	dec := yaml.NewDecoder(reader)
	dec.KnownFields(true)
	err := dec.Decode(&conf)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	conf.Logging.Level = strings.ToLower(conf.Logging.Level)
	return &conf, nil
}

func (c *Config) Validate() error {
	if c.Cloud.APIUrl == "" {
		return fmt.Errorf("Configuration error: cloud.api_url is empty")
	}
	if c.DB.PolicyDB.URL == "" {
		return fmt.Errorf("Configuration error: db.policy_db.url is empty")
	}
	if c.DB.ScalingStateDB.URL == "" {
		return fmt.Errorf("Configuration error: db.scaling_state_db.url is empty")
	}
	if c.Event.Timeout <= 0 {
		return fmt.Errorf("Configuration error: event.timeout is less than or equal to 0")
	}
	if c.Event.WorkerCount <= 0 {
		return fmt.Errorf("Configuration error: event.worker_count is less than or equal to 0")
	}
	if c.Event.QueueSize <= 0 {
		return fmt.Errorf("Configuration error: event.queue_size is less than or equal to 0")
	}
	if c.Monitor.Interval <= 0 {
		return fmt.Errorf("Configuration error: monitor.interval is less than or equal to 0")
	}
	if c.RateLimit.MaxAmount <= 0 {
		return fmt.Errorf("Configuration error: rate_limit.max_amount is less than or equal to 0")
	}
	if c.RateLimit.ValidDuration <= 0 {
		return fmt.Errorf("Configuration error: rate_limit.valid_duration is less than or equal to 0 ns")
	}
	if _, err := time.LoadLocation(c.TimeZone); err != nil {
		return fmt.Errorf("Configuration error: time_zone is invalid: %w", err)
	}
	return c.Health.Validate()
}
