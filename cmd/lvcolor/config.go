package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	defaultMaxColors = 16
	defaultFormat    = formatJSONName

	envMaxColors = "LVCOLOR_MAX_COLORS"
	envFormat    = "LVCOLOR_FORMAT"
)

// configFile is the on-disk YAML layout.
type configFile struct {
	MaxColors   int    `yaml:"max_colors"`
	MaxVertices int    `yaml:"max_vertices"`
	Format      string `yaml:"format"`
}

// resolveConfig fills opts with flag > env > config file > default precedence.
// A missing default config file is ignored; a missing --config file is an error.
func resolveConfig(cmd *cobra.Command, opts *options) error {
	flags := cmd.Flags()

	cfg, err := loadConfigFile(opts.configPath)
	if err != nil {
		return err
	}

	if !flags.Changed("max-colors") {
		if cfg.MaxColors > 0 {
			opts.maxColors = cfg.MaxColors
		}
		if v := os.Getenv(envMaxColors); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s=%q: %w", envMaxColors, v, err)
			}
			opts.maxColors = n
		}
	}
	if !flags.Changed("max-vertices") && cfg.MaxVertices > 0 {
		opts.maxVertices = cfg.MaxVertices
	}
	if !flags.Changed("format") {
		if cfg.Format != "" {
			opts.format = cfg.Format
		}
		if v := os.Getenv(envFormat); v != "" {
			opts.format = v
		}
	}

	if opts.maxColors < 0 {
		return fmt.Errorf("max-colors must be ≥ 0, got %d", opts.maxColors)
	}
	if opts.maxVertices < 0 {
		return fmt.Errorf("max-vertices must be ≥ 0, got %d", opts.maxVertices)
	}
	if _, ok := formatters[opts.format]; !ok {
		return fmt.Errorf("unknown format %q (json|table|quiet)", opts.format)
	}

	opts.log.WithFields(logrus.Fields{
		"max_colors":   opts.maxColors,
		"max_vertices": opts.maxVertices,
		"format":       opts.format,
	}).Debug("config resolved")

	return nil
}

// loadConfigFile reads path, or ~/.lvcolor/config.yaml when path is empty.
func loadConfigFile(path string) (configFile, error) {
	var cfg configFile

	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".lvcolor", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
