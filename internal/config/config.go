// Package config loads the CLI's runtime settings by layering
// defaults, an optional YAML file, and environment variables.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds the CLI runtime settings. Engine configuration lives in
// the tournament file itself; this only locates it and toggles
// observability.
type Config struct {
	// Tournament is the path to the tournament YAML file.
	Tournament string `koanf:"tournament"`

	// Metrics enables Prometheus metric registration.
	Metrics bool `koanf:"metrics"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		Tournament: "tournament.yaml",
		Metrics:    false,
	}
}

// Load builds a Config by layering defaults, optional file, and env
// vars. Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if ROSTRUM_CONFIG is set
//  3. env (prefix ROSTRUM_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("ROSTRUM_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: ROSTRUM_TOURNAMENT, ROSTRUM_METRICS, ...
	// mapped to the flat koanf keys on the struct.
	envProvider := env.Provider("ROSTRUM_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "rostrum_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.Tournament == "" {
		return nil, errors.New("tournament path must not be empty")
	}
	return &cfg, nil
}
