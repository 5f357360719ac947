// ============================================================================
// commons - Shared Service Utilities
// ============================================================================
//
// Package:     config
// Description: TOML/YAML configuration with defaults and environment overrides
// Created:     2026-10-02
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	cmnerror "github.com/msto63/commons/foundation/core/error"
	cmnlog "github.com/msto63/commons/foundation/core/log"
)

// Environment variables read by the loader
const (
	EnvConfigPath   = "COMMONS_CONFIG"
	EnvLogLevel     = "COMMONS_LOG_LEVEL"
	EnvLogCIDSource = "COMMONS_LOG_CID_SOURCE"
	EnvLogCIDLength = "COMMONS_LOG_CID_LENGTH"
)

// Supported correlation id sources
const (
	CIDSourceRandom       = "random"
	CIDSourceAlphanumeric = "alphanumeric"
	CIDSourceHex          = "hex"
	CIDSourceUUID         = "uuid"
)

// Supported log outputs
const (
	OutputStdout = "stdout"
	OutputStderr = "stderr"
)

// MaxCIDLength bounds log.cid_length
const MaxCIDLength = 64

// Config holds the complete library configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Log     LogConfig     `toml:"log" yaml:"log"`
	Cache   CacheConfig   `toml:"cache" yaml:"cache"`
}

// GeneralConfig holds general settings
type GeneralConfig struct {
	Name        string `toml:"name" yaml:"name"`
	Environment string `toml:"environment" yaml:"environment"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level     string `toml:"level" yaml:"level"`
	Format    string `toml:"format" yaml:"format"`
	Output    string `toml:"output" yaml:"output"`
	CIDSource string `toml:"cid_source" yaml:"cid_source"`
	CIDLength int    `toml:"cid_length" yaml:"cid_length"`
}

// CacheConfig holds cache manager settings
type CacheConfig struct {
	AllowJSONKeys    bool     `toml:"allow_json_keys" yaml:"allow_json_keys"`
	MetricsNamespace string   `toml:"metrics_namespace" yaml:"metrics_namespace"`
	LoadTimeout      Duration `toml:"load_timeout" yaml:"load_timeout"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, selected by extension
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		return nil, cmnerror.IllegalArgument("unsupported config format " + ext)
	}

	cfg.applyDefaults()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefault loads path, falling back to COMMONS_CONFIG. Without either
// the defaults are used, still subject to environment overrides.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		return Load(path)
	}

	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration and returns an IllegalArgument exception
// for the first invalid value
func (c *Config) Validate() error {
	if _, err := cmnlog.ParseLevel(c.Log.Level); err != nil {
		return cmnerror.IllegalArgument("invalid log.level").WithCause(err)
	}
	if _, err := cmnlog.ParseFormat(c.Log.Format); err != nil {
		return cmnerror.IllegalArgument("invalid log.format").WithCause(err)
	}
	switch c.Log.Output {
	case OutputStdout, OutputStderr:
	default:
		return cmnerror.IllegalArgument("invalid log.output " + c.Log.Output)
	}
	switch c.Log.CIDSource {
	case CIDSourceRandom, CIDSourceAlphanumeric, CIDSourceHex, CIDSourceUUID:
	default:
		return cmnerror.IllegalArgument("invalid log.cid_source " + c.Log.CIDSource)
	}
	if c.Log.CIDLength < 1 || c.Log.CIDLength > MaxCIDLength {
		return cmnerror.IllegalArgument(fmt.Sprintf("log.cid_length must be between 1 and %d", MaxCIDLength))
	}
	if c.Cache.LoadTimeout.Duration < 0 {
		return cmnerror.IllegalArgument("cache.load_timeout must not be negative")
	}
	return nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.Name == "" {
		c.General.Name = "commons"
	}
	if c.General.Environment == "" {
		c.General.Environment = "development"
	}

	if c.Log.Level == "" {
		c.Log.Level = "trace"
	}
	if c.Log.Format == "" {
		c.Log.Format = "line"
	}
	if c.Log.Output == "" {
		c.Log.Output = OutputStdout
	}
	if c.Log.CIDSource == "" {
		c.Log.CIDSource = CIDSourceRandom
	}
	if c.Log.CIDLength == 0 {
		c.Log.CIDLength = cmnlog.DefaultCIDLength
	}

	if c.Cache.MetricsNamespace == "" {
		c.Cache.MetricsNamespace = "commons"
	}
}

// applyEnv applies COMMONS_LOG_* overrides
func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogCIDSource); v != "" {
		c.Log.CIDSource = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogCIDLength); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cmnerror.IllegalArgument("invalid " + EnvLogCIDLength).WithCause(err)
		}
		c.Log.CIDLength = n
	}
	return nil
}
