package plc

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/lowgrav/lgpd/dataset"
)

var (
	// ErrUnavailable is returned when the environment does not point at
	// a usable likelihood installation.
	ErrUnavailable = errors.New("plc: likelihood data unavailable")

	// ErrNotImplemented is returned for operations that require the
	// native clik library, which this module does not link.
	ErrNotImplemented = errors.New("plc: native clik evaluation not implemented")
)

// Config carries the environment contract for locating Planck data.
type Config struct {
	// Root is the directory holding published bandpower files.
	Root string `env:"PLC_ROOT"`

	// ClikPath optionally points at a clik installation. It is recorded
	// for provenance but never loaded.
	ClikPath string `env:"CLIK_PATH"`
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("plc: parse environment: %w", err)
	}

	return cfg, nil
}

// Validate checks that Root names an existing directory.
func (c Config) Validate() error {
	if c.Root == "" {
		return fmt.Errorf("%w: PLC_ROOT is not set; point it at a directory of bandpower files", ErrUnavailable)
	}

	info, err := os.Stat(c.Root)
	if err != nil {
		return fmt.Errorf("%w: PLC_ROOT=%s: %v", ErrUnavailable, c.Root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: PLC_ROOT=%s is not a directory", ErrUnavailable, c.Root)
	}

	return nil
}

// Repository validates the configuration and returns a dataset
// repository rooted at the likelihood data directory.
func (c Config) Repository() (*dataset.Repository, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &dataset.Repository{Root: c.Root}, nil
}

// Clik is the placeholder for native likelihood evaluation. It always
// fails: callers are expected to fit against bandpower files instead.
func (c Config) Clik(name string) error {
	return fmt.Errorf("%w: requested %q via CLIK_PATH=%s", ErrNotImplemented, name, c.ClikPath)
}
