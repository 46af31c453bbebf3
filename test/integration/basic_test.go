// Package integration contains integration tests for testgate.
package integration

import (
	"context"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/AndreyAkinshin/testgate/internal/gate"
	"github.com/AndreyAkinshin/testgate/internal/gather"
	"github.com/AndreyAkinshin/testgate/internal/project"
	"github.com/AndreyAkinshin/testgate/internal/verdict"
)

var (
	fixturesDirOnce sync.Once
	fixturesDirPath string
)

// fixturesDir returns the path to the test fixtures directory.
func fixturesDir() string {
	fixturesDirOnce.Do(func() {
		_, filename, _, _ := runtime.Caller(0)
		fixturesDirPath = filepath.Join(filepath.Dir(filename), "..", "fixtures")
	})
	return fixturesDirPath
}

// determine runs the gather, verdict and gate pipeline for a fixture project.
func determine(t *testing.T, fixture string, cfg func(*verdict.SuppressionConfig)) (verdict.Result, gate.Decision) {
	t.Helper()
	proj, err := project.LoadProjectFrom(filepath.Join(fixturesDir(), fixture))
	if err != nil {
		t.Fatalf("failed to load %s project: %v", fixture, err)
	}
	for _, w := range proj.Warnings {
		t.Errorf("unexpected warning: %s", w)
	}

	suppression := proj.Config.Suppression()
	if cfg != nil {
		cfg(&suppression)
	}
	outcome := gather.Gather(context.Background(), proj.Root, proj.Config.Results.Paths)
	result := verdict.Determine(outcome, suppression)
	return result, gate.Decide(result)
}

func TestMixedProject_NoSuppression(t *testing.T) {
	t.Parallel()
	result, decision := determine(t, "mixed", nil)

	failed, ok := result.(verdict.Failed)
	if !ok {
		t.Fatalf("result = %T, want verdict.Failed", result)
	}
	if failed.Count() != 2 {
		t.Errorf("Count() = %d, want 2", failed.Count())
	}
	// JSON shard sorts before YAML shard.
	if failed.Failed[0].Name != "checkout.CartTest.removeItem" || failed.Failed[1].Name != "search.QueryTest.suggest" {
		t.Errorf("Failed = %+v", failed.Failed)
	}
	if _, ok := failed.Suppression.(verdict.NoSuppression); !ok {
		t.Errorf("Suppression = %T, want NoSuppression", failed.Suppression)
	}
	if failed.NotSuppressedCount() != 2 || decision.Passed {
		t.Errorf("NotSuppressedCount() = %d, Passed = %v", failed.NotSuppressedCount(), decision.Passed)
	}
}

func TestMixedProject_SuppressFlaky(t *testing.T) {
	t.Parallel()
	result, decision := determine(t, "mixed", func(c *verdict.SuppressionConfig) {
		c.SuppressFlakyFailures = true
	})

	failed, ok := result.(verdict.Failed)
	if !ok {
		t.Fatalf("result = %T, want verdict.Failed", result)
	}
	remaining := failed.NotSuppressed()
	if len(remaining) != 1 || remaining[0].Name != "checkout.CartTest.removeItem" {
		t.Errorf("NotSuppressed() = %+v", remaining)
	}
	if decision.Passed {
		t.Error("decision should fail while a stable test fails")
	}
}

func TestMixedProject_SuppressAll(t *testing.T) {
	t.Parallel()
	result, decision := determine(t, "mixed", func(c *verdict.SuppressionConfig) {
		c.SuppressAllFailures = true
		c.SuppressFlakyFailures = true
	})

	failed, ok := result.(verdict.Failed)
	if !ok {
		t.Fatalf("result = %T, want verdict.Failed", result)
	}
	if _, ok := failed.Suppression.(verdict.SuppressedAll); !ok {
		t.Errorf("Suppression = %T, want SuppressedAll", failed.Suppression)
	}
	if failed.NotSuppressedCount() != 0 || !decision.Passed {
		t.Errorf("NotSuppressedCount() = %d, Passed = %v", failed.NotSuppressedCount(), decision.Passed)
	}
}

func TestFlakyOnlyProject(t *testing.T) {
	t.Parallel()
	result, decision := determine(t, "flaky-only", nil)

	failed, ok := result.(verdict.Failed)
	if !ok {
		t.Fatalf("result = %T, want verdict.Failed", result)
	}
	if _, ok := failed.Suppression.(verdict.SuppressedFlaky); !ok {
		t.Errorf("Suppression = %T, want SuppressedFlaky", failed.Suppression)
	}
	if !decision.Passed {
		t.Errorf("decision = %+v, want passed", decision)
	}
}

func TestBrokenProject(t *testing.T) {
	t.Parallel()
	result, decision := determine(t, "broken", func(c *verdict.SuppressionConfig) {
		c.SuppressAllFailures = true
	})

	if _, ok := result.(verdict.DetermineError); !ok {
		t.Fatalf("result = %T, want verdict.DetermineError", result)
	}
	if decision.Passed {
		t.Error("a gathering error must never pass the gate")
	}
}
