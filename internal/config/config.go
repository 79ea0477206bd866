// Package config loads runtime configuration for rxstorm.
//
// Configuration is layered: built-in defaults, then an optional TOML file,
// then RXSTORM_* environment variables. A missing config file is not an
// error; the defaults are always valid.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Config is the root runtime configuration.
type Config struct {
	// Strict selects the fail-fast protocol-violation policy.
	Strict bool `toml:"strict"`

	// Scheduler configures the background execution contexts.
	Scheduler SchedulerConfig `toml:"scheduler"`

	// Log configures logging.
	Log LogConfig `toml:"log"`
}

// SchedulerConfig configures the pool and serial schedulers.
type SchedulerConfig struct {
	// Workers is the size of the concurrent background pool.
	Workers int `toml:"workers"`

	// QueueSize is the task queue capacity for background contexts.
	QueueSize int `toml:"queue_size"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is the minimum log level: debug, info, warn, or error.
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Strict: false,
		Scheduler: SchedulerConfig{
			Workers:   4,
			QueueSize: 1024,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from path, overlays environment variables, and
// validates the result. An empty path or missing file yields the defaults
// plus the environment overlay.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Missing file is fine, keep defaults.
		case err != nil:
			return cfg, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv overlays RXSTORM_* environment variables onto the config.
// Unparseable values are ignored.
func (c *Config) applyEnv() {
	if v := os.Getenv("RXSTORM_STRICT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Strict = b
		}
	}
	if v := os.Getenv("RXSTORM_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Scheduler.Workers = n
		}
	}
	if v := os.Getenv("RXSTORM_QUEUE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Scheduler.QueueSize = n
		}
	}
	if v := os.Getenv("RXSTORM_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	if c.Scheduler.Workers < 1 {
		return fmt.Errorf("%w: workers=%d", ErrInvalidWorkers, c.Scheduler.Workers)
	}
	if c.Scheduler.QueueSize < 1 {
		return fmt.Errorf("%w: queue_size=%d", ErrInvalidQueueSize, c.Scheduler.QueueSize)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}
	return nil
}
