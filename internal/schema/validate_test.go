package schema

import (
	"strings"
	"testing"
)

func TestValidateConfig_Valid(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"empty":   `{}`,
		"minimal": `{"suppress": {"flaky": true}}`,
		"full": `{
			"suppress": {"failures": false, "flaky": true},
			"results": {"paths": ["build/test-results/**/*.json"]},
			"report": {"output": ".testgate/report.json", "history": ".testgate/history.jsonl", "disabled": false}
		}`,
		"unknown fields are allowed": `{"suppress": {"flaky": true}, "extra": 1}`,
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if err := ValidateConfig([]byte(data)); err != nil {
				t.Errorf("expected valid config, got error: %v", err)
			}
		})
	}
}

func TestValidateConfig_Invalid(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"root not object":     `[]`,
		"flag not boolean":    `{"suppress": {"flaky": "yes"}}`,
		"paths not array":     `{"results": {"paths": "**/*.json"}}`,
		"empty path":          `{"results": {"paths": [""]}}`,
		"output not a string": `{"report": {"output": 42}}`,
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := ValidateConfig([]byte(data))
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), "config validation failed") {
				t.Errorf("error = %q, want to contain %q", err.Error(), "config validation failed")
			}
		})
	}
}

func TestValidateConfig_InvalidJSON(t *testing.T) {
	t.Parallel()
	err := ValidateConfig([]byte(`{"suppress":`))
	if err == nil || !strings.Contains(err.Error(), "invalid JSON") {
		t.Errorf("ValidateConfig() error = %v, want invalid JSON error", err)
	}
}

func TestValidateConfigValue(t *testing.T) {
	t.Parallel()
	v := map[string]any{
		"suppress": map[string]any{"failures": true},
	}
	if err := ValidateConfigValue(v); err != nil {
		t.Errorf("ValidateConfigValue() error = %v", err)
	}
}
