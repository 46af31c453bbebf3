// Package config provides configuration loading and validation for .testgate/config.yaml.
package config

import "github.com/AndreyAkinshin/testgate/internal/verdict"

// Config represents the complete .testgate/config.yaml configuration.
type Config struct {
	Suppress SuppressConfig `yaml:"suppress" json:"suppress"`
	Results  ResultsConfig  `yaml:"results" json:"results"`
	Report   ReportConfig   `yaml:"report" json:"report"`
}

// SuppressConfig selects which test failures are ignored when gating.
type SuppressConfig struct {
	Failures bool `yaml:"failures" json:"failures"` // Suppress every failure; wins over Flaky
	Flaky    bool `yaml:"flaky" json:"flaky"`       // Suppress failures of tests flagged as flaky
}

// ResultsConfig locates the result files written by the test step.
type ResultsConfig struct {
	Paths []string `yaml:"paths,omitempty" json:"paths,omitempty"`
}

// ReportConfig configures the machine-readable report.
type ReportConfig struct {
	Output   string `yaml:"output,omitempty" json:"output,omitempty"`
	History  string `yaml:"history,omitempty" json:"history,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty" json:"disabled,omitempty"`
}

// Suppression returns the suppression policy for the verdict.
func (c *Config) Suppression() verdict.SuppressionConfig {
	return verdict.SuppressionConfig{
		SuppressAllFailures:   c.Suppress.Failures,
		SuppressFlakyFailures: c.Suppress.Flaky,
	}
}
