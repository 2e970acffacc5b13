package config

import (
	"errors"
	"io"
	"os"

	"go.yaml.in/yaml/v3"
)

const (
	DefaultPrompt   = "db > "
	DefaultMaxPages = 100
)

type Config struct {
	Home     string `yaml:"home"`
	LogDir   string `yaml:"log_dir"`
	LogLevel string `yaml:"log_level"`
	Prompt   string `yaml:"prompt"`
	Color    bool   `yaml:"color"`
	MaxPages int    `yaml:"max_pages"`
}

func LoadConfig(homeOverride, configOverride string) (*Config, error) {
	paths, err := ResolvePaths(homeOverride, configOverride)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Home:     paths.Home,
		LogDir:   paths.LogDir,
		LogLevel: "info",
		Prompt:   DefaultPrompt,
		Color:    true,
		MaxPages: DefaultMaxPages,
	}

	f, err := os.Open(paths.Config)
	if err == nil {
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	} else if !errors.Is(err, os.ErrNotExist) || configOverride != "" {
		return nil, err
	}

	// The page cache can never grow past the fixed maximum
	if cfg.MaxPages <= 0 || cfg.MaxPages > DefaultMaxPages {
		cfg.MaxPages = DefaultMaxPages
	}

	if err := os.MkdirAll(cfg.LogDir, 0o755); err != nil {
		return nil, err
	}

	return cfg, nil
}
