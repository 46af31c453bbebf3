package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AndreyAkinshin/testgate/internal/cli"
	"github.com/AndreyAkinshin/testgate/internal/report"
	"github.com/AndreyAkinshin/testgate/pkg/testgate"
)

func fixtureConfig(name string) string {
	return filepath.Join(fixturesDir(), name, ".testgate", "config.yaml")
}

func TestCLI_ExitCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"mixed fails", []string{"-q", "--config", fixtureConfig("mixed"), "check", "--no-report"}, testgate.ExitFailure},
		{"mixed flaky suppressed still fails", []string{"-q", "--config", fixtureConfig("mixed"), "check", "--no-report", "--suppress-flaky"}, testgate.ExitFailure},
		{"mixed all suppressed", []string{"-q", "--config", fixtureConfig("mixed"), "check", "--no-report", "--suppress-failures"}, testgate.ExitSuccess},
		{"flaky-only passes", []string{"-q", "--config", fixtureConfig("flaky-only"), "check"}, testgate.ExitSuccess},
		{"broken fails", []string{"-q", "--config", fixtureConfig("broken"), "check", "--no-report", "--suppress-failures"}, testgate.ExitFailure},
		{"green on defaults", []string{"-q", "check", "--no-report", "--results", filepath.Join(fixturesDir(), "green", "**", "*.json")}, testgate.ExitSuccess},
		{"validate mixed", []string{"-q", "--config", fixtureConfig("mixed"), "config", "validate"}, testgate.ExitSuccess},
		{"missing config", []string{"-q", "--config", filepath.Join(fixturesDir(), "nope.yaml"), "check"}, testgate.ExitConfigError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := cli.Run(tt.args); got != tt.want {
				t.Errorf("Run(%v) = %d, want %d", tt.args, got, tt.want)
			}
		})
	}
}

func TestCLI_Report(t *testing.T) {
	t.Parallel()
	out := filepath.Join(t.TempDir(), "reports", "gate.json")

	code := cli.Run([]string{"-q", "--config", fixtureConfig("mixed"), "check", "--suppress-flaky", "--report", out})
	if code != testgate.ExitFailure {
		t.Fatalf("exit code = %d, want %d", code, testgate.ExitFailure)
	}

	r, err := report.Read(out)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if r.Total != 4 {
		t.Errorf("Total = %d, want 4", r.Total)
	}
	if len(r.Remaining) != 1 || r.Remaining[0].Name != "checkout.CartTest.removeItem" {
		t.Errorf("not_suppressed = %+v", r.Remaining)
	}
	if len(r.Suppressed) != 1 || r.Suppressed[0].Flakiness.Reason != "MBS-4471" {
		t.Errorf("suppressed = %+v", r.Suppressed)
	}

	if _, err := os.Stat(filepath.Join(fixturesDir(), "mixed", ".testgate", "report.json")); !os.IsNotExist(err) {
		t.Errorf("fixture directory must stay clean, stat error = %v", err)
	}
}
