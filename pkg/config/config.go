// Package config provides configuration management for bank-report.
// Settings are layered: built-in defaults, then an optional YAML file,
// then environment variables (including a .env file).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/pigeonworks-llc/bank-report/pkg/summary"
)

// Config represents the application configuration.
type Config struct {
	Report ReportConfig `yaml:"report"`
	Log    LogConfig    `yaml:"log"`
}

// ReportConfig represents report generation settings.
type ReportConfig struct {
	Output string `yaml:"output" env:"BANK_REPORT_OUTPUT"`
	Title  string `yaml:"title" env:"BANK_REPORT_TITLE"`
	TopN   int    `yaml:"top_n" env:"BANK_REPORT_TOP_N"`
	Policy string `yaml:"policy" env:"BANK_REPORT_POLICY"`
}

// LogConfig represents the log file sink used at elevated verbosity.
type LogConfig struct {
	File string `yaml:"file" env:"BANK_REPORT_LOG_FILE"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Report: ReportConfig{
			Output: "report.md",
			Title:  "Report",
			TopN:   summary.DefaultTopN,
			Policy: string(summary.PolicyTruncateFirst),
		},
		Log: LogConfig{
			File: "bank-report.log",
		},
	}
}

// Load loads configuration from defaults, an optional file and environment variables.
// A path ending in .yaml or .yml is read as YAML; any other path is read as a
// .env file. Without a path, .env in the current directory is loaded if present.
func Load(path ...string) (*Config, error) {
	cfg := Default()

	configPath := ""
	if len(path) > 0 {
		configPath = path[0]
	}

	switch {
	case isYAML(configPath):
		fileCfg, err := readYAML(configPath)
		if err != nil {
			return nil, err
		}
		if err := mergo.Merge(&cfg, *fileCfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge config file: %w", err)
		}
		// Try to load .env from current directory (ignore error if not found)
		_ = godotenv.Load()
	case configPath != "":
		if err := godotenv.Load(configPath); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	default:
		_ = godotenv.Load()
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return &cfg, nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func readYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	var problems []string

	if c.Report.Output == "" {
		problems = append(problems, "report output path cannot be empty")
	}
	if c.Report.TopN < 0 {
		problems = append(problems, fmt.Sprintf("invalid top_n %d: must not be negative", c.Report.TopN))
	}
	if _, err := summary.ParsePolicy(c.Report.Policy); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}

	return nil
}

// SelectionPolicy returns the parsed report selection policy.
func (c *Config) SelectionPolicy() summary.Policy {
	policy, err := summary.ParsePolicy(c.Report.Policy)
	if err != nil {
		return summary.PolicyTruncateFirst
	}
	return policy
}
