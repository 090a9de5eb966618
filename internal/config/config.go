// Package config provides configuration loading and validation for the CLI and
// the HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults used when neither the config file nor a flag sets a value.
const (
	DefaultPort         = 3000
	DefaultMaxBodyBytes = 10 << 20 // 10 MiB
	DefaultFormat       = "json"
	DefaultOutDir       = "out"
	DefaultJobs         = 4
)

// Formats accepted in the format field.
var Formats = []string{"json", "text", "markdown", "html"}

// formatAliases are short names accepted alongside Formats.
var formatAliases = []string{"txt", "md"}

// Config represents the configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Server
	Port         int   `json:"port,omitempty" yaml:"port,omitempty"`                     // HTTP listen port
	MaxBodyBytes int64 `json:"max_body_bytes,omitempty" yaml:"max_body_bytes,omitempty"` // Request body limit for /build-resume

	// Output
	Format string `json:"format,omitempty" yaml:"format,omitempty"`   // Output format: json, text, markdown or html
	OutDir string `json:"out_dir,omitempty" yaml:"out_dir,omitempty"` // Directory for CLI build output
	Jobs   int    `json:"jobs,omitempty" yaml:"jobs,omitempty"`       // Concurrent CLI builds

	// Document
	Font              string `json:"font,omitempty" yaml:"font,omitempty"`                             // Font family for every run
	WorkAuthorization string `json:"work_authorization,omitempty" yaml:"work_authorization,omitempty"` // Statement under the contact line

	// Behavior
	Verbose bool `json:"verbose,omitempty" yaml:"verbose,omitempty"` // Print detailed debug information
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Port:         DefaultPort,
		MaxBodyBytes: DefaultMaxBodyBytes,
		Format:       DefaultFormat,
		OutDir:       DefaultOutDir,
		Jobs:         DefaultJobs,
	}
}

// LoadConfig loads configuration from a JSON file, or YAML when the file
// extension is .yaml or .yml.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate numeric ranges
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.MaxBodyBytes < 0 {
		return fmt.Errorf("config error: 'max_body_bytes' must be non-negative")
	}
	if c.Jobs < 0 {
		return fmt.Errorf("config error: 'jobs' must be non-negative")
	}

	if c.Format != "" && !validFormat(c.Format) {
		return fmt.Errorf("config error: unknown format %q (expected one of %s)", c.Format, strings.Join(Formats, ", "))
	}

	if c.Font != "" && strings.TrimSpace(c.Font) == "" {
		return fmt.Errorf("config error: 'font' must not be blank")
	}

	return nil
}

func validFormat(format string) bool {
	format = strings.TrimSpace(format)
	for _, names := range [][]string{Formats, formatAliases} {
		for _, f := range names {
			if strings.EqualFold(f, format) {
				return true
			}
		}
	}
	return false
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Format == "" {
		result.Format = defaults.Format
	}
	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.Font == "" {
		result.Font = defaults.Font
	}
	if result.WorkAuthorization == "" {
		result.WorkAuthorization = defaults.WorkAuthorization
	}

	// Numeric fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.MaxBodyBytes == 0 {
		result.MaxBodyBytes = defaults.MaxBodyBytes
	}
	if result.Jobs == 0 {
		result.Jobs = defaults.Jobs
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
