// Package testrun defines the per-test execution records consumed by testgate.
package testrun

import (
	"fmt"
	"strings"
)

// Status is the outcome of a single test execution.
type Status int

// StatusUnknown is the zero value. It marks a record whose status was never
// set and is never successful.
const (
	StatusUnknown Status = iota
	StatusPassed
	StatusFailed
	StatusSkipped
	StatusLost // the runner never reported a result
)

var statusNames = map[Status]string{
	StatusPassed:  "passed",
	StatusFailed:  "failed",
	StatusSkipped: "skipped",
	StatusLost:    "lost",
}

// ParseStatus converts a string to a Status.
// Returns false if the string is not a valid status.
func ParseStatus(s string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "passed", "pass", "success":
		return StatusPassed, true
	case "failed", "fail", "failure":
		return StatusFailed, true
	case "skipped", "skip":
		return StatusSkipped, true
	case "lost":
		return StatusLost, true
	default:
		return StatusUnknown, false
	}
}

// ValidStatuses returns the canonical status names.
func ValidStatuses() []string {
	return []string{"passed", "failed", "skipped", "lost"}
}

func (s Status) String() string {
	if s == StatusUnknown {
		return "unknown"
	}
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// IsSuccessful reports whether the status counts as a non-failure.
// Skipped tests are successful; lost tests are not.
func (s Status) IsSuccessful() bool {
	return s == StatusPassed || s == StatusSkipped
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	name, ok := statusNames[s]
	if !ok {
		return nil, fmt.Errorf("invalid status %d", int(s))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, ok := ParseStatus(string(text))
	if !ok {
		return fmt.Errorf("invalid status %q (valid: %s)", string(text), strings.Join(ValidStatuses(), ", "))
	}
	*s = parsed
	return nil
}

// FlakinessKind tells whether a test is known to fail nondeterministically.
type FlakinessKind int

const (
	Stable FlakinessKind = iota
	Flaky
)

func (k FlakinessKind) String() string {
	if k == Flaky {
		return "flaky"
	}
	return "stable"
}

// MarshalText implements encoding.TextMarshaler.
func (k FlakinessKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *FlakinessKind) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "stable":
		*k = Stable
	case "flaky":
		*k = Flaky
	default:
		return fmt.Errorf("invalid flakiness %q (valid: stable, flaky)", string(text))
	}
	return nil
}

// Flakiness is the flakiness classification attached to a test by an
// external mechanism (for example a @Flaky annotation).
type Flakiness struct {
	Kind   FlakinessKind `json:"kind" yaml:"kind"`
	Reason string        `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// IsFlaky reports whether the test is flagged as flaky.
func (f Flakiness) IsFlaky() bool {
	return f.Kind == Flaky
}

// Result is one test's execution record.
//
// Result is a comparable value: two results are the same test run when all
// fields are equal.
type Result struct {
	Name      string        `json:"name" yaml:"name"`
	Status    Status        `json:"status" yaml:"status"`
	Flakiness Flakiness     `json:"flakiness" yaml:"flakiness"`
	Reason    string        `json:"reason,omitempty" yaml:"reason,omitempty"`
	Duration  Duration      `json:"duration,omitempty" yaml:"duration,omitempty"`
}

// File is the on-disk document holding the results of one test run or shard.
// Every test needs a name and a status.
type File struct {
	Tests []Result `json:"tests" yaml:"tests"`
}
