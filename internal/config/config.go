// Package config loads the optional .deadpages.yaml configuration file.
//
// The tool works with no configuration at all: the built-in layout assumption
// locates the book. A config file exists for projects whose layout differs or
// that want certain pages exempted from the check.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/deadpages/internal/errors"
)

// FileName is the configuration file searched for in the working directory
// and its ancestors.
const FileName = ".deadpages.yaml"

// Config represents the application configuration.
type Config struct {
	// Book overrides the built-in book root resolution. Relative paths are
	// resolved against the config file's directory at load time.
	Book string `yaml:"book,omitempty"`

	// Ignore lists glob patterns, relative to the book root, for pages that
	// are never reported as dead (drafts, templates, vendored docs).
	Ignore []string `yaml:"ignore,omitempty"`
}

// Load loads configuration from the specified file.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.ConfigReadError(configPath, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.ConfigParseError(configPath, err)
	}

	if cfg.Book != "" && !filepath.IsAbs(cfg.Book) {
		cfg.Book = filepath.Join(filepath.Dir(configPath), cfg.Book)
	}

	return &cfg, nil
}

// Discover walks from dir toward the filesystem root looking for FileName.
// Returns the loaded config and its path, or (nil, "", nil) when no config
// file exists anywhere on the chain.
func Discover(dir string) (*Config, string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, "", nil
	}

	for {
		candidate := filepath.Join(abs, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			cfg, err := Load(candidate)
			if err != nil {
				return nil, "", err
			}
			return cfg, candidate, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return nil, "", nil
		}
		abs = parent
	}
}
