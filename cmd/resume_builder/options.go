package main

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/composer"
	"github.com/jonathan/resume-builder/internal/config"
)

// loadConfig reads the optional --config file. An empty path yields an empty
// config so flags and defaults fill every field.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Config{}, nil
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return *cfg, nil
}

// finalizeConfig fills unset fields from the built-in defaults and validates
// the result.
func finalizeConfig(cfg config.Config) (config.Config, error) {
	cfg = cfg.MergeWithDefaults(config.Default())
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// composerOptions maps the document settings of cfg onto composition options.
func composerOptions(cfg config.Config) composer.Options {
	opts := composer.DefaultOptions()
	if cfg.Font != "" {
		opts.Style = opts.Style.WithFont(cfg.Font)
	}
	if cfg.WorkAuthorization != "" {
		opts.WorkAuthorization = cfg.WorkAuthorization
	}
	return opts
}
