package gate

import (
	"errors"
	"strings"
	"testing"

	"github.com/AndreyAkinshin/testgate/internal/testrun"
	"github.com/AndreyAkinshin/testgate/internal/verdict"
	"github.com/AndreyAkinshin/testgate/pkg/testgate"
)

func TestDecide(t *testing.T) {
	t.Parallel()

	stable := testrun.Result{Name: "B", Status: testrun.StatusFailed}
	flaky := testrun.Result{Name: "C", Status: testrun.StatusFailed, Flakiness: testrun.Flakiness{Kind: testrun.Flaky}}
	results := []testrun.Result{{Name: "A", Status: testrun.StatusPassed}, stable, flaky}

	tests := []struct {
		name        string
		outcome     verdict.GatherOutcome
		cfg         verdict.SuppressionConfig
		wantPassed  bool
		wantExit    int
		wantSummary string
	}{
		{
			name:        "no failures",
			outcome:     verdict.Gathered(results[:1]),
			wantPassed:  true,
			wantExit:    testgate.ExitSuccess,
			wantSummary: "no failed tests",
		},
		{
			name:        "unsuppressed failures",
			outcome:     verdict.Gathered(results),
			wantExit:    testgate.ExitFailure,
			wantSummary: "2 failed, 2 not suppressed",
		},
		{
			name:        "flaky suppression leaves stable failure",
			outcome:     verdict.Gathered(results),
			cfg:         verdict.SuppressionConfig{SuppressFlakyFailures: true},
			wantExit:    testgate.ExitFailure,
			wantSummary: "2 failed, 1 not suppressed",
		},
		{
			name:        "flaky suppression covers all",
			outcome:     verdict.Gathered([]testrun.Result{flaky}),
			cfg:         verdict.SuppressionConfig{SuppressFlakyFailures: true},
			wantPassed:  true,
			wantExit:    testgate.ExitSuccess,
			wantSummary: "all suppressed (Suppressed all flaky tests)",
		},
		{
			name:        "suppress all",
			outcome:     verdict.Gathered(results),
			cfg:         verdict.SuppressionConfig{SuppressAllFailures: true},
			wantPassed:  true,
			wantExit:    testgate.ExitSuccess,
			wantSummary: "2 failed, all suppressed",
		},
		{
			name:        "gathering error",
			outcome:     verdict.GatherFailed(errors.New("timeout")),
			cfg:         verdict.SuppressionConfig{SuppressAllFailures: true},
			wantExit:    testgate.ExitFailure,
			wantSummary: "could not gather test results: timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := Decide(verdict.Determine(tt.outcome, tt.cfg))
			if d.Passed != tt.wantPassed {
				t.Errorf("Passed = %v, want %v", d.Passed, tt.wantPassed)
			}
			if d.ExitCode != tt.wantExit {
				t.Errorf("ExitCode = %d, want %d", d.ExitCode, tt.wantExit)
			}
			if !strings.Contains(d.Summary, tt.wantSummary) {
				t.Errorf("Summary = %q, want to contain %q", d.Summary, tt.wantSummary)
			}
		})
	}
}

func TestDecide_ZeroFailed(t *testing.T) {
	t.Parallel()
	d := Decide(verdict.Failed{})
	if !d.Passed || d.ExitCode != testgate.ExitSuccess {
		t.Errorf("Decide(Failed{}) = %+v, want passed", d)
	}
}

func TestDecide_ZeroDetermineError(t *testing.T) {
	t.Parallel()
	d := Decide(verdict.DetermineError{})
	if d.Passed || d.ExitCode != testgate.ExitFailure {
		t.Errorf("Decide(DetermineError{}) = %+v, want failed", d)
	}
	if d.Summary != "could not gather test results: gathering test results failed" {
		t.Errorf("Summary = %q", d.Summary)
	}
}
