package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a configuration for errors and returns warnings for non-fatal issues.
func Validate(cfg *Config) (warnings []string, err error) {
	if err := validateResults(cfg); err != nil {
		return nil, err
	}

	if err := validateReport(cfg); err != nil {
		return nil, err
	}

	if cfg.Suppress.Failures && cfg.Suppress.Flaky {
		warnings = append(warnings, "suppress.flaky has no effect while suppress.failures is enabled")
	}

	return warnings, nil
}

func validateResults(cfg *Config) error {
	for i, pattern := range cfg.Results.Paths {
		if err := ValidatePattern(pattern); err != nil {
			err.Field = fmt.Sprintf("results.paths[%d]", i)
			return err
		}
	}
	return nil
}

func validateReport(cfg *Config) error {
	if cfg.Report.History != "" && filepath.Clean(cfg.Report.History) == filepath.Clean(cfg.Report.Output) {
		return &ValidationError{
			Field:   "report.history",
			Message: "must differ from report.output",
		}
	}
	return nil
}

// ValidatePattern checks that a result path is a usable glob pattern.
func ValidatePattern(pattern string) *ValidationError {
	if strings.TrimSpace(pattern) == "" {
		return &ValidationError{Field: "results path", Message: "must not be empty"}
	}
	if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
		return &ValidationError{
			Field:   "results path",
			Message: fmt.Sprintf("invalid glob pattern %q", pattern),
		}
	}
	return nil
}
