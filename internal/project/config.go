// Package project holds the optional per-directory configuration file
// and the content digest type shared with the disk cache.
package project

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is looked up in the working directory.
const ConfigFileName = "lace.toml"

// Digest is a sha256 content digest.
type Digest = [32]byte

// Config mirrors lace.toml. Zero values mean "not set"; CLI flags win
// over file values.
type Config struct {
	Check CheckConfig `toml:"check"`
}

type CheckConfig struct {
	// Files checked when the command gets no arguments.
	Files []string `toml:"files"`
	// MaxDiagnostics caps reported diagnostics per file.
	MaxDiagnostics int `toml:"max_diagnostics"`
	// Color is "auto", "on" or "off".
	Color string `toml:"color"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Check: CheckConfig{
			MaxDiagnostics: 100,
			Color:          "auto",
		},
	}
}

// Load reads dir/lace.toml on top of the defaults. The second result
// reports whether a file was found; a missing file is not an error.
func Load(dir string) (*Config, bool, error) {
	cfg := Default()
	path := filepath.Join(dir, ConfigFileName)
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, false, nil
		}
		return nil, false, err
	}
	if cfg.Check.MaxDiagnostics <= 0 {
		cfg.Check.MaxDiagnostics = Default().Check.MaxDiagnostics
	}
	if cfg.Check.Color == "" {
		cfg.Check.Color = Default().Check.Color
	}
	return cfg, true, nil
}
