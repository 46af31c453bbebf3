package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variables that override the suppression policy, so a pipeline
// can toggle suppression without editing the config file.
const (
	EnvSuppressFailures = "TESTGATE_SUPPRESS_FAILURES"
	EnvSuppressFlaky    = "TESTGATE_SUPPRESS_FLAKY"
)

// ApplyEnv overrides suppression flags from the process environment.
func ApplyEnv(cfg *Config) error {
	return ApplyEnvFrom(cfg, os.LookupEnv)
}

// ApplyEnvFrom overrides suppression flags using lookup. Unset or empty
// variables leave the configured value alone.
func ApplyEnvFrom(cfg *Config, lookup func(string) (string, bool)) error {
	overrides := []struct {
		name   string
		target *bool
	}{
		{EnvSuppressFailures, &cfg.Suppress.Failures},
		{EnvSuppressFlaky, &cfg.Suppress.Flaky},
	}

	for _, o := range overrides {
		raw, ok := lookup(o.name)
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		v, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return &ValidationError{
				Field:   o.name,
				Message: fmt.Sprintf("must be a boolean, got %q", raw),
			}
		}
		*o.target = v
	}
	return nil
}
