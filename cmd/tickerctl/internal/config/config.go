// Package config loads the optional ticker.yaml project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the optional ticker.yaml configuration.
type Config struct {
	Ticker TickerConfig `yaml:"ticker"`
}

// TickerConfig contains the default ticker parameters used when a command
// doesn't override them with flags.
type TickerConfig struct {
	FieldLen   int    `yaml:"field_len,omitempty"`
	Spacer     string `yaml:"spacer,omitempty"`
	Type       string `yaml:"type,omitempty"`
	Smooth     bool   `yaml:"smooth,omitempty"`
	ReadingCPM int    `yaml:"reading_cpm,omitempty"`
}

// Resolved contains resolved configuration values with defaults applied.
type Resolved struct {
	Root       string
	ModulePath string
	FieldLen   int
	Spacer     string
	Type       string
	Smooth     bool
	ReadingCPM int
}

// LoadOptional reads ticker.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "ticker.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read ticker.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse ticker.yaml: %w", err)
	}
	return &cfg, nil
}

// Resolve loads ticker.yaml (if present) and fills in defaults.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	fieldLen := cfg.Ticker.FieldLen
	if fieldLen <= 0 {
		fieldLen = 24
	}

	spacer := cfg.Ticker.Spacer
	if spacer == "" {
		spacer = "   |   "
	}

	tickerType := strings.ToLower(strings.TrimSpace(cfg.Ticker.Type))
	if tickerType == "" {
		tickerType = "bounce"
	}
	if tickerType != "bounce" && tickerType != "loop" {
		return nil, fmt.Errorf("ticker.type must be \"bounce\" or \"loop\" (got %q)", tickerType)
	}

	readingCPM := cfg.Ticker.ReadingCPM
	if readingCPM <= 0 {
		readingCPM = 1000
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		FieldLen:   fieldLen,
		Spacer:     spacer,
		Type:       tickerType,
		Smooth:     cfg.Ticker.Smooth,
		ReadingCPM: readingCPM,
	}, nil
}

// FindProjectRoot walks up from the current directory looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

// modulePath reads the module directive out of dir/go.mod directly: this
// tool only needs the one line, not full go.mod parsing.
func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if path, ok := strings.CutPrefix(line, "module "); ok {
			return strings.TrimSpace(path), nil
		}
	}
	return "", fmt.Errorf("could not determine module path from go.mod")
}
