// Package config handles bef.toml runner configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file the runner looks for.
const FileName = "bef.toml"

// Config holds runner settings. Every field has a command-line flag; the
// file supplies defaults and flags override it.
type Config struct {
	Run     Run     `toml:"run"`
	Display Display `toml:"display"`
}

// Run controls execution pacing and reproducibility.
type Run struct {
	// Delay between steps in milliseconds.
	Delay int `toml:"delay"`
	// Seed for the ? command's RNG; 0 seeds from the clock.
	Seed int64 `toml:"seed"`
	// Trace prints command, stack, and output after every step.
	Trace bool `toml:"trace"`
	// Debug pauses for Enter after every step.
	Debug bool `toml:"debug"`
}

// Display selects which panes the runner redraws between steps.
type Display struct {
	Playfield bool `toml:"playfield"`
	Stack     bool `toml:"stack"`
}

// Default returns the configuration used when no bef.toml exists.
func Default() *Config {
	return &Config{}
}

// Load parses a bef.toml file from the given directory. A missing file is
// not an error; the defaults are returned.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	c := Default()
	if err := toml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	return c, nil
}
