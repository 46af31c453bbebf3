package testgate_test

import (
	stderrors "errors"
	"testing"

	"github.com/AndreyAkinshin/testgate/internal/errors"
	"github.com/AndreyAkinshin/testgate/internal/gate"
	"github.com/AndreyAkinshin/testgate/internal/testrun"
	"github.com/AndreyAkinshin/testgate/internal/verdict"
	"github.com/AndreyAkinshin/testgate/pkg/testgate"
)

// Pipelines branch on these numbers, so they must never change.
func TestExitCodeValues(t *testing.T) {
	tests := []struct {
		name     string
		constant int
		expected int
	}{
		{"ExitSuccess", testgate.ExitSuccess, 0},
		{"ExitFailure", testgate.ExitFailure, 1},
		{"ExitConfigError", testgate.ExitConfigError, 2},
		{"ExitEnvError", testgate.ExitEnvError, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.constant != tt.expected {
				t.Errorf("testgate.%s = %d, want %d", tt.name, tt.constant, tt.expected)
			}
		})
	}
}

// TestGateExitCodes runs each verdict through the gate and checks the
// exit code a pipeline would see.
func TestGateExitCodes(t *testing.T) {
	t.Parallel()

	failed := testrun.Result{Name: "Checkout", Status: testrun.StatusFailed}
	flaky := testrun.Result{Name: "Search", Status: testrun.StatusLost, Flakiness: testrun.Flakiness{Kind: testrun.Flaky}}

	tests := []struct {
		name    string
		outcome verdict.GatherOutcome
		cfg     verdict.SuppressionConfig
		want    int
	}{
		{"all passed", verdict.Gathered([]testrun.Result{{Name: "A", Status: testrun.StatusPassed}}), verdict.SuppressionConfig{}, testgate.ExitSuccess},
		{"unsuppressed failure", verdict.Gathered([]testrun.Result{failed}), verdict.SuppressionConfig{}, testgate.ExitFailure},
		{"flaky failure suppressed", verdict.Gathered([]testrun.Result{flaky}), verdict.SuppressionConfig{SuppressFlakyFailures: true}, testgate.ExitSuccess},
		{"stable failure survives flaky suppression", verdict.Gathered([]testrun.Result{failed, flaky}), verdict.SuppressionConfig{SuppressFlakyFailures: true}, testgate.ExitFailure},
		{"everything suppressed", verdict.Gathered([]testrun.Result{failed, flaky}), verdict.SuppressionConfig{SuppressAllFailures: true}, testgate.ExitSuccess},
		{"gathering failed", verdict.GatherFailed(stderrors.New("results.json: invalid JSON")), verdict.SuppressionConfig{SuppressAllFailures: true}, testgate.ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := gate.Decide(verdict.Determine(tt.outcome, tt.cfg))
			if d.ExitCode != tt.want {
				t.Errorf("exit code = %d, want %d (%s)", d.ExitCode, tt.want, d.Summary)
			}
		})
	}
}

// TestErrorExitCodes checks that every error kind the CLI can return maps
// onto the public exit codes.
func TestErrorExitCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unreadable results", errors.FileError(errors.KindRuntime, "out/r.json", "cannot read results", stderrors.New("permission denied")), testgate.ExitFailure},
		{"bad flag", errors.Configf("check: unknown flag %q", "--bogus"), testgate.ExitConfigError},
		{"invalid config", errors.WrapKind(errors.KindValidation, stderrors.New("suppress.flaky: expected boolean"), "invalid config"), testgate.ExitConfigError},
		{"report not writable", errors.WrapKind(errors.KindEnvironment, stderrors.New("read-only file system"), "cannot save report"), testgate.ExitEnvError},
		{"plain error", stderrors.New("boom"), testgate.ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := errors.GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
