package config

import (
	"testing"
)

// FuzzLoadWithWarnings tests YAML decoding and unknown field detection with arbitrary input.
// Run: go test -fuzz=FuzzLoadWithWarnings -fuzztime=30s ./internal/config
func FuzzLoadWithWarnings(f *testing.F) {
	seeds := []string{
		// Valid minimal config
		"suppress:\n  flaky: true\n",
		// Valid config with all sections
		"suppress: {failures: true}\nresults: {paths: ['**/*.json']}\nreport: {output: r.json}\n",
		// Edge cases: empty document
		"",
		// Edge cases: null
		"null",
		// Edge cases: sequence at root (invalid root type)
		"- a\n- b\n",
		// Edge cases: scalar at root
		"just a string",
		// Edge cases: section is a scalar
		"suppress: yes\n",
		// Edge cases: non-string keys
		"1: 2\n",
		// Edge cases: anchors and aliases
		"base: &b {flaky: true}\nsuppress: *b\n",
		// Edge cases: Unicode
		"report: {output: \"отчёт.json\"}\n",
		// Malformed: unclosed flow mapping
		"suppress: {flaky: true",
		// Malformed: bad indentation
		"suppress:\n flaky: true\n  failures: false\n",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, data string) {
		cfg, warnings, err := LoadWithWarnings([]byte(data))
		if err != nil {
			if cfg != nil || warnings != nil {
				t.Errorf("LoadWithWarnings() returned values alongside error %v", err)
			}
			return
		}
		if cfg == nil {
			t.Fatal("LoadWithWarnings() returned nil config without error")
		}
		// Validation must never panic on anything that decoded.
		applyDefaults(cfg)
		_, _ = Validate(cfg)
	})
}
