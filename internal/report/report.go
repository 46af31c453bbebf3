// Package report renders a verdict for humans and persists it for tools.
package report

import (
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/AndreyAkinshin/testgate/internal/gate"
	"github.com/AndreyAkinshin/testgate/internal/testrun"
	"github.com/AndreyAkinshin/testgate/internal/verdict"
)

// Verdict kinds as they appear in reports.
const (
	KindError    = "error"
	KindNoFailed = "no_failed"
	KindFailed   = "failed"
)

// Report is the machine-readable record of one check.
type Report struct {
	RunID       string           `json:"run_id"`
	CreatedAt   time.Time        `json:"created_at"`
	Kind        string           `json:"kind"`
	Passed      bool             `json:"passed"`
	Summary     string           `json:"summary"`
	Error       string           `json:"error,omitempty"`
	Fingerprint string           `json:"fingerprint,omitempty"`
	Total       int              `json:"total"`
	Counts      Counts           `json:"counts"`
	Suppression *Suppression     `json:"suppression,omitempty"`
	Failed      []testrun.Result `json:"failed,omitempty"`
	Suppressed  []testrun.Result `json:"suppressed,omitempty"`
	Remaining   []testrun.Result `json:"not_suppressed,omitempty"`
}

// Counts summarizes a Failed verdict.
type Counts struct {
	Failed        int `json:"failed"`
	Suppressed    int `json:"suppressed"`
	NotSuppressed int `json:"not_suppressed"`
}

// Suppression records the policy that applied.
type Suppression struct {
	Kind        string `json:"kind"`
	Description string `json:"description"`
}

// NewRunID returns a new lexicographically sortable run identifier.
func NewRunID() string {
	return ulid.Make().String()
}

// Input carries everything Build needs besides the verdict itself.
type Input struct {
	RunID       string
	CreatedAt   time.Time
	Total       int // Number of gathered results
	Fingerprint string
}

// Build assembles the report for a verdict and its gate decision.
func Build(in Input, result verdict.Result, decision gate.Decision) Report {
	r := Report{
		RunID:       in.RunID,
		CreatedAt:   in.CreatedAt.UTC(),
		Passed:      decision.Passed,
		Summary:     decision.Summary,
		Fingerprint: in.Fingerprint,
		Total:       in.Total,
	}
	if r.RunID == "" {
		r.RunID = NewRunID()
	}

	switch v := result.(type) {
	case verdict.DetermineError:
		r.Kind = KindError
		r.Error = v.Error()
		r.Fingerprint = ""
	case verdict.NoFailed:
		r.Kind = KindNoFailed
	case verdict.Failed:
		suppressed := v.Applied().Tests()
		remaining := v.NotSuppressed()
		r.Kind = KindFailed
		r.Failed = v.Failed
		r.Suppressed = suppressed
		r.Remaining = remaining
		r.Counts = Counts{
			Failed:        v.Count(),
			Suppressed:    len(suppressed),
			NotSuppressed: len(remaining),
		}
		r.Suppression = &Suppression{
			Kind:        verdict.Kind(v.Applied()),
			Description: v.Applied().Description(),
		}
	}

	return r
}
