// Package gate turns a verdict into the pass/fail decision of a CI step.
package gate

import (
	"fmt"

	"github.com/AndreyAkinshin/testgate/internal/verdict"
	"github.com/AndreyAkinshin/testgate/pkg/testgate"
)

// Decision is the gating outcome of a run.
type Decision struct {
	Passed   bool
	ExitCode int
	Summary  string
}

// Decide maps a verdict to a Decision. A run passes when no test failed or
// when every failed test was suppressed.
func Decide(result verdict.Result) Decision {
	switch r := result.(type) {
	case verdict.NoFailed:
		return Decision{Passed: true, ExitCode: testgate.ExitSuccess, Summary: "no failed tests"}
	case verdict.Failed:
		remaining := r.NotSuppressedCount()
		if remaining == 0 {
			return Decision{
				Passed:   true,
				ExitCode: testgate.ExitSuccess,
				Summary:  fmt.Sprintf("%d failed, all suppressed (%s)", r.Count(), r.Applied().Description()),
			}
		}
		return Decision{
			ExitCode: testgate.ExitFailure,
			Summary:  fmt.Sprintf("%d failed, %d not suppressed", r.Count(), remaining),
		}
	case verdict.DetermineError:
		return Decision{
			ExitCode: testgate.ExitFailure,
			Summary:  "could not gather test results: " + r.Error(),
		}
	default:
		return Decision{ExitCode: testgate.ExitFailure, Summary: fmt.Sprintf("unknown verdict %T", result)}
	}
}
