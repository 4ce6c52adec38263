package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/steved/routetable/pkg/report"
)

var Version = "dev"

type Config struct {
	// Format is the output format, one of report.Formats
	Format string

	// Snapshot is a snapshot file to replay instead of querying the local host
	Snapshot string

	// SkipMalformed drops malformed rows with a warning instead of aborting
	SkipMalformed bool
}

type Option func(*Config) error

func NewConfig(options ...Option) (*Config, error) {
	cfg := &Config{Format: "text"}

	for _, option := range options {
		if err := option(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, cfg.Validate()
}

func WithFormat(format string) Option {
	return func(cfg *Config) error {
		cfg.Format = strings.ToLower(format)
		return nil
	}
}

func WithSnapshot(path string) Option {
	return func(cfg *Config) error {
		cfg.Snapshot = path
		return nil
	}
}

func WithSkipMalformed(skip bool) Option {
	return func(cfg *Config) error {
		cfg.SkipMalformed = skip
		return nil
	}
}

func (c *Config) Validate() error {
	if !slices.Contains(report.Formats, c.Format) {
		return fmt.Errorf("invalid format %q, expected one of %s", c.Format, strings.Join(report.Formats, ", "))
	}

	return nil
}
