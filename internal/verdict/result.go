package verdict

import (
	"errors"

	"github.com/AndreyAkinshin/testgate/internal/testrun"
)

var errUnknownGather = errors.New("gathering test results failed")

// Result is the outcome of Determine. It is one of DetermineError, NoFailed
// or Failed; the set is closed by the unexported method.
type Result interface {
	// Count returns the number of failed tests. It is zero for anything but Failed.
	Count() int
	isResult()
}

// DetermineError reports that the test results could not be gathered.
// Err is the gathering error exactly as supplied.
type DetermineError struct {
	Err error
}

func (DetermineError) Count() int { return 0 }
func (DetermineError) isResult()  {}

// Error implements error so a DetermineError can be returned directly.
func (e DetermineError) Error() string {
	if e.Err == nil {
		return errUnknownGather.Error()
	}
	return e.Err.Error()
}

func (e DetermineError) Unwrap() error {
	return e.Err
}

// NoFailed reports that results were gathered and none failed.
type NoFailed struct{}

func (NoFailed) Count() int { return 0 }
func (NoFailed) isResult()  {}

// Failed reports that at least one test failed.
type Failed struct {
	// Failed holds every failed test in the order it was gathered.
	Failed      []testrun.Result
	Suppression Suppression
}

func (f Failed) Count() int { return len(f.Failed) }
func (Failed) isResult()    {}

// NotSuppressed returns the failed tests not covered by the suppression,
// in the order of f.Failed.
func (f Failed) NotSuppressed() []testrun.Result {
	suppressed := suppressionTests(f.Suppression)
	if len(suppressed) == 0 {
		return clone(f.Failed)
	}

	skip := make(map[testrun.Result]struct{}, len(suppressed))
	for _, r := range suppressed {
		skip[r] = struct{}{}
	}

	var out []testrun.Result
	for _, r := range f.Failed {
		if _, ok := skip[r]; !ok {
			out = append(out, r)
		}
	}
	return out
}

// Applied returns the suppression of f, or NoSuppression on a zero Failed.
func (f Failed) Applied() Suppression {
	if f.Suppression == nil {
		return NoSuppression{}
	}
	return f.Suppression
}

// NotSuppressedCount returns len(f.NotSuppressed()).
func (f Failed) NotSuppressedCount() int {
	return len(f.NotSuppressed())
}

// Suppression describes which failed tests were suppressed and why.
// It is one of NoSuppression, SuppressedAll or SuppressedFlaky.
type Suppression interface {
	// Tests returns the suppressed tests.
	Tests() []testrun.Result
	// Description is a human-readable explanation of the suppression.
	Description() string
	isSuppression()
}

// NoSuppression suppresses nothing.
type NoSuppression struct{}

func (NoSuppression) Tests() []testrun.Result { return nil }
func (NoSuppression) Description() string     { return "No suppressed tests" }
func (NoSuppression) isSuppression()          {}

// SuppressedAll suppresses every failed test.
type SuppressedAll struct {
	tests []testrun.Result
}

// NewSuppressedAll returns a SuppressedAll covering tests.
func NewSuppressedAll(tests []testrun.Result) SuppressedAll {
	return SuppressedAll{tests: clone(tests)}
}

func (s SuppressedAll) Tests() []testrun.Result { return clone(s.tests) }
func (SuppressedAll) Description() string       { return "Suppressed all failures by configuration" }
func (SuppressedAll) isSuppression()            {}

// SuppressedFlaky suppresses the failed tests flagged as flaky.
type SuppressedFlaky struct {
	tests []testrun.Result
}

// NewSuppressedFlaky returns a SuppressedFlaky covering tests.
func NewSuppressedFlaky(tests []testrun.Result) SuppressedFlaky {
	return SuppressedFlaky{tests: clone(tests)}
}

func (s SuppressedFlaky) Tests() []testrun.Result { return clone(s.tests) }
func (SuppressedFlaky) Description() string       { return "Suppressed all flaky tests" }
func (SuppressedFlaky) isSuppression()            {}

// Kind returns a stable machine-readable name for a suppression.
func Kind(s Suppression) string {
	switch s.(type) {
	case SuppressedAll:
		return "suppressed_all"
	case SuppressedFlaky:
		return "suppressed_flaky"
	default:
		return "none"
	}
}

// suppressionTests tolerates a nil Suppression on a zero Failed.
func suppressionTests(s Suppression) []testrun.Result {
	if s == nil {
		return nil
	}
	return s.Tests()
}
