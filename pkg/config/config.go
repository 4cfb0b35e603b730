// Package config loads runtime configuration in three layers: struct
// defaults, an optional YAML file, then RFM_-prefixed environment
// variables, each overriding the last.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists where a config file is searched, in order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "RFM_CONFIG"

const envPrefix = "RFM_"

// Config holds everything the CLI needs to run one analysis.
type Config struct {
	DSN       string    `koanf:"dsn"`
	CompanyID string    `koanf:"company_id"`
	StoreID   string    `koanf:"store_id"`
	Cutoff    string    `koanf:"cutoff"` // "YYYY-MM-DD"; empty means today (UTC)
	Output    string    `koanf:"output"`
	Log       LogConfig `koanf:"log"`
}

// LogConfig controls log verbosity and output format.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // "console" or "json"
}

func defaultConfig() *Config {
	return &Config{
		Output: "reports",
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// envKeys maps environment variables onto koanf paths. Variables outside
// this map are ignored.
var envKeys = map[string]string{
	"RFM_DSN":        "dsn",
	"RFM_COMPANY_ID": "company_id",
	"RFM_STORE_ID":   "store_id",
	"RFM_CUTOFF":     "cutoff",
	"RFM_OUTPUT":     "output",
	"RFM_LOG_LEVEL":  "log.level",
	"RFM_LOG_FORMAT": "log.format",
}

// Load builds the configuration from defaults, config file and
// environment, in that precedence order (environment wins).
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return envKeys[s]
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// Validate checks the fields an analysis run cannot proceed without.
func (c *Config) Validate() error {
	if c.DSN == "" {
		return fmt.Errorf("dsn is required (flag -dsn or RFM_DSN)")
	}
	if c.CompanyID == "" {
		return fmt.Errorf("company id is required (flag -company or RFM_COMPANY_ID)")
	}
	if c.Cutoff != "" {
		if _, err := time.Parse("2006-01-02", c.Cutoff); err != nil {
			return fmt.Errorf("cutoff: %w", err)
		}
	}
	return nil
}

// CutoffTime returns the analysis cutoff as a UTC midnight timestamp,
// defaulting to now's date when no cutoff was configured.
func (c *Config) CutoffTime(now time.Time) (time.Time, error) {
	if c.Cutoff == "" {
		y, m, d := now.UTC().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse("2006-01-02", c.Cutoff)
	if err != nil {
		return time.Time{}, fmt.Errorf("cutoff: %w", err)
	}
	return t, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
