package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	App       AppConfig       `yaml:"app"`
	Limits    LimitsConfig    `yaml:"limits"`
	Validator ValidatorConfig `yaml:"validator"`
	Server    ServerConfig    `yaml:"server"`
	Mcp       McpConfig       `yaml:"mcp"`
}

type AppConfig struct {
	LogLevel    string   `yaml:"log_level"`
	LogOutputs  []string `yaml:"log_outputs"`
	ShowInvalid bool     `yaml:"show_invalid"`
}

// LimitsConfig bounds the combinatorial expansion of one input line.
// A zero value disables the corresponding limit.
type LimitsConfig struct {
	MaxTokens          int `yaml:"max_tokens"`
	MaxDigitsPerToken  int `yaml:"max_digits_per_token"`
	MaxCandidates      int `yaml:"max_candidates"`
	MaxInterpretations int `yaml:"max_interpretations"`
}

type RuleConfig struct {
	Length   int      `yaml:"length"`
	Prefixes []string `yaml:"prefixes"`
}

type ValidatorConfig struct {
	Name   string       `yaml:"name"`
	Region string       `yaml:"region"`
	Rules  []RuleConfig `yaml:"rules"`
}

type ServerConfig struct {
	Host             string `yaml:"host"`
	Port             int    `yaml:"port"`
	BatchConcurrency int    `yaml:"batch_concurrency"`
	MaxBatchSize     int    `yaml:"max_batch_size"`
}

type McpConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// GetAddress returns the listen address of the HTTP server.
func (s ServerConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		App: AppConfig{
			LogLevel:    "info",
			LogOutputs:  []string{"stderr"},
			ShowInvalid: true,
		},
		Limits: LimitsConfig{
			MaxTokens:          16,
			MaxDigitsPerToken:  14,
			MaxCandidates:      1 << 16,
			MaxInterpretations: 1 << 20,
		},
		Validator: ValidatorConfig{
			Name:   "prefix",
			Region: "GR",
		},
		Server: ServerConfig{
			Port:             8080,
			BatchConcurrency: 4,
			MaxBatchSize:     100,
		},
		Mcp: McpConfig{
			Enabled: true,
			Path:    "/mcp",
		},
	}
}

// LoadConfig reads a YAML file over the defaults. A missing file at the
// default location is not an error; pass required=true to insist on it.
func LoadConfig(path string, required bool) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that numeric settings are in range.
func (c *Config) Validate() error {
	if c.Limits.MaxTokens < 0 || c.Limits.MaxDigitsPerToken < 0 || c.Limits.MaxCandidates < 0 ||
		c.Limits.MaxInterpretations < 0 {
		return fmt.Errorf("limits must not be negative")
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	if c.Server.BatchConcurrency < 1 {
		return fmt.Errorf("server batch_concurrency must be at least 1")
	}
	for i, rule := range c.Validator.Rules {
		if rule.Length <= 0 {
			return fmt.Errorf("validator rule %d: length must be positive", i)
		}
		if len(rule.Prefixes) == 0 {
			return fmt.Errorf("validator rule %d: at least one prefix is required", i)
		}
	}
	return nil
}
