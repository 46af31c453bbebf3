// Package verdict decides whether a batch of test results counts as a failed
// run and which failures are suppressed by policy.
//
// Determine is pure: it performs no I/O, never mutates its inputs and is safe
// to call concurrently.
package verdict

import "github.com/AndreyAkinshin/testgate/internal/testrun"

// GatherOutcome is the result of collecting the test results of a run:
// either the gathered results or the error that prevented gathering.
type GatherOutcome struct {
	results []testrun.Result
	err     error
}

// Gathered returns a successful outcome holding results.
func Gathered(results []testrun.Result) GatherOutcome {
	return GatherOutcome{results: results}
}

// GatherFailed returns a failed outcome. A nil err is still treated as a
// gathering failure.
func GatherFailed(err error) GatherOutcome {
	if err == nil {
		err = errUnknownGather
	}
	return GatherOutcome{err: err}
}

// Results returns the gathered results, or nil if gathering failed.
func (o GatherOutcome) Results() []testrun.Result {
	return o.results
}

// Err returns the gathering error, or nil on success.
func (o GatherOutcome) Err() error {
	return o.err
}

// SuppressionConfig selects which failures are suppressed.
// The two switches are independent; when both are set SuppressAllFailures wins.
type SuppressionConfig struct {
	SuppressAllFailures   bool
	SuppressFlakyFailures bool
}

// Determine classifies a run.
func Determine(outcome GatherOutcome, cfg SuppressionConfig) Result {
	if outcome.err != nil {
		return DetermineError{Err: outcome.err}
	}

	var failed []testrun.Result
	for _, r := range outcome.results {
		if !r.Status.IsSuccessful() {
			failed = append(failed, r)
		}
	}

	if len(failed) == 0 {
		return NoFailed{}
	}

	switch {
	case cfg.SuppressAllFailures:
		return Failed{
			Failed:      failed,
			Suppression: SuppressedAll{tests: clone(failed)},
		}
	case cfg.SuppressFlakyFailures:
		var flaky []testrun.Result
		for _, r := range failed {
			if r.Flakiness.IsFlaky() {
				flaky = append(flaky, r)
			}
		}
		return Failed{
			Failed:      failed,
			Suppression: SuppressedFlaky{tests: flaky},
		}
	default:
		return Failed{Failed: failed, Suppression: NoSuppression{}}
	}
}

// Determiner binds a SuppressionConfig so callers can pass the policy around
// as a value.
type Determiner struct {
	Config SuppressionConfig
}

// Determine classifies a run with the bound configuration.
func (d Determiner) Determine(outcome GatherOutcome) Result {
	return Determine(outcome, d.Config)
}

func clone(results []testrun.Result) []testrun.Result {
	if results == nil {
		return nil
	}
	out := make([]testrun.Result, len(results))
	copy(out, results)
	return out
}
