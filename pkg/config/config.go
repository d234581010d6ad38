// Package config loads the server configuration from an optional YAML file
// merged with environment overrides. The API key is the only required
// setting; everything else has a workable default for a local vault.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultHost     = "127.0.0.1"
	defaultPort     = 27124
	defaultProtocol = "https"
	defaultTimeout  = 30 * time.Second
)

// SearchConfig tunes the complex-search runner.
type SearchConfig struct {
	// Workers bounds the concurrent fetch pool; 1 reproduces a
	// sequential scan.
	Workers int `yaml:"workers"`

	// IncludeContent returns matched files with their content instead of
	// paths only.
	IncludeContent bool `yaml:"include_content"`

	// AbortOnFetchError fails a whole scan on the first unreadable file
	// instead of skipping it.
	AbortOnFetchError bool `yaml:"abort_on_fetch_error"`
}

// Config is the full server configuration.
type Config struct {
	// APIKey authenticates against the Obsidian Local REST API. Required.
	APIKey string `yaml:"api_key"`

	// Host, Port, and Protocol locate the vault server. The Local REST
	// API defaults to HTTPS on 27124 with a self-signed certificate.
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Protocol string `yaml:"protocol"`

	// VerifyTLS enables certificate verification. Off by default because
	// of the self-signed certificate.
	VerifyTLS bool `yaml:"verify_tls"`

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration `yaml:"timeout"`

	Search SearchConfig `yaml:"search"`
}

// DefaultPath returns the default config file location,
// ~/.obsidian-mcp/config.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".obsidian-mcp", "config.yaml"), nil
}

// Load reads the config file at path (skipped silently when missing),
// applies environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Host:     defaultHost,
		Port:     defaultPort,
		Protocol: defaultProtocol,
		Timeout:  defaultTimeout,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// No file is fine; env vars may carry everything.
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if key := os.Getenv("OBSIDIAN_API_KEY"); key != "" {
		cfg.APIKey = key
	}
	if host := os.Getenv("OBSIDIAN_HOST"); host != "" {
		cfg.Host = host
	}
	if port := os.Getenv("OBSIDIAN_PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil {
			cfg.Port = n
		}
	}
	if protocol := os.Getenv("OBSIDIAN_PROTOCOL"); protocol != "" {
		cfg.Protocol = protocol
	}
}

// Validate checks the configuration for the settings the server cannot run
// without.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("OBSIDIAN_API_KEY environment variable (or api_key in the config file) is required")
	}
	if c.Protocol != "http" && c.Protocol != "https" {
		return fmt.Errorf("invalid protocol %q: must be http or https", c.Protocol)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	return nil
}

// BaseURL renders the vault server's base URL.
func (c *Config) BaseURL() string {
	return fmt.Sprintf("%s://%s:%d", c.Protocol, c.Host, c.Port)
}
