// Package keyval provides core.Storage drivers for durable session
// persistence: a file-backed driver (one file per key) and an in-memory
// driver for tests and ephemeral use.
package keyval

import (
	"errors"
	"log/slog"

	"github.com/jotlabs/jot/pkg/core"
)

// Driver selects a storage backend.
type Driver string

const (
	DriverMemory Driver = "memory"
	DriverFile   Driver = "file"
)

var (
	ErrUnknownDriver = errors.New("unknown storage driver")
	ErrInvalidConfig = errors.New("invalid storage configuration")
	ErrInvalidKey    = errors.New("invalid storage key")
)

// Option configures a storage driver.
type Option func(*config)

type config struct {
	dir    string
	logger *slog.Logger
}

// WithDir sets the directory for the file driver. Required for DriverFile.
func WithDir(dir string) Option {
	return func(c *config) {
		c.dir = dir
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// New creates a storage backend for the given driver.
func New(driver Driver, opts ...Option) (core.Storage, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	switch driver {
	case DriverMemory:
		return NewMemory(), nil

	case DriverFile:
		if cfg.dir == "" {
			return nil, ErrInvalidConfig
		}
		return NewFile(cfg.dir, cfg.logger), nil

	default:
		return nil, ErrUnknownDriver
	}
}
