// Package config holds the gateway's runtime configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultListenAddr      = ":8080"
	DefaultUpstreamBaseURL = "https://radio.garden/api"
	DefaultRequestTimeout  = Duration(8 * time.Second)
	DefaultLogLevel        = "info"
)

// Config is the gateway configuration, loadable from a YAML file with every
// field optional.
type Config struct {
	ListenAddr      string   `yaml:"listen_addr"`
	UpstreamBaseURL string   `yaml:"upstream_base_url"`
	RequestTimeout  Duration `yaml:"request_timeout"`
	LogLevel        string   `yaml:"log_level"`
	PrettyLog       bool     `yaml:"pretty_log"`
}

// Duration accepts both "8s" strings and plain second counts in YAML.
type Duration time.Duration

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!int" {
		var seconds int64
		if err := value.Decode(&seconds); err != nil {
			return fmt.Errorf("invalid duration value: %w", err)
		}
		*d = Duration(time.Duration(seconds) * time.Second)
		return nil
	}

	var text string
	if err := value.Decode(&text); err != nil {
		return fmt.Errorf("invalid duration value: %w", err)
	}
	parsed, err := time.ParseDuration(text)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(parsed)
	return nil
}

// Default returns a Config with all defaults applied.
func Default() *Config {
	return &Config{
		ListenAddr:      DefaultListenAddr,
		UpstreamBaseURL: DefaultUpstreamBaseURL,
		RequestTimeout:  DefaultRequestTimeout,
		LogLevel:        DefaultLogLevel,
	}
}

// Load reads the config file at path. A missing file is not an error; the
// defaults are returned. Fields absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// normalize backfills zero values so a sparse file cannot produce an
// unusable config.
func (c *Config) normalize() {
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}
	if c.UpstreamBaseURL == "" {
		c.UpstreamBaseURL = DefaultUpstreamBaseURL
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}
