package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// EnvMaxExpansions overrides max_expansions on every profile when set.
const EnvMaxExpansions = "CRUCIBLE_MAX_EXPANSIONS"

// Load reads the profiles file at path, applies defaults and environment
// overrides, and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("configuration file %q: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a profiles document. Unknown keys are rejected so that a
// misspelled field does not silently fall back to its default. An empty
// document yields the default profiles.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := ApplyEnvOverrides(&cfg); err != nil {
		return nil, err
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyEnvOverrides applies CRUCIBLE_MAX_EXPANSIONS to every profile.
// A value that is not an integer yields a ValidationError matching
// ErrInvalidProfile; range checks are left to Validate.
func ApplyEnvOverrides(cfg *Config) error {
	raw, ok := os.LookupEnv(EnvMaxExpansions)
	if !ok || raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return ValidationError{Errors: []FieldError{{
			Field:   EnvMaxExpansions,
			Message: fmt.Sprintf("must be an integer, got %q", raw),
			Err:     ErrInvalidProfile,
		}}}
	}
	for i := range cfg.Profiles {
		cfg.Profiles[i].MaxExpansions = n
	}
	return nil
}
