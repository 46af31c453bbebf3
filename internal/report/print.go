package report

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/AndreyAkinshin/testgate/internal/gate"
	"github.com/AndreyAkinshin/testgate/internal/output"
	"github.com/AndreyAkinshin/testgate/internal/testrun"
	"github.com/AndreyAkinshin/testgate/internal/verdict"
)

// Print writes a human-readable summary of a verdict.
func Print(w *output.Writer, total int, result verdict.Result, decision gate.Decision) {
	w.SummaryHeader("Test Gate")

	switch v := result.(type) {
	case verdict.DetermineError:
		w.SummaryFailed("Error", v.Error())

	case verdict.NoFailed:
		w.SummaryPassed("Tests", fmt.Sprintf("%d", total))
		w.SummaryPassed("Failed", "0")

	case verdict.Failed:
		suppressed := v.Applied().Tests()
		w.SummaryItem("Tests", fmt.Sprintf("%d", total))
		w.SummaryFailed("Failed", fmt.Sprintf("%d", v.Count()))
		w.SummaryItem("Suppression", v.Applied().Description())
		if len(suppressed) > 0 {
			w.SummaryItem("Suppressed", fmt.Sprintf("%d", len(suppressed)))
		}

		remaining := v.NotSuppressed()
		if len(remaining) > 0 {
			w.Println("")
			w.SummarySectionLabel("Failed Tests:")
			for _, r := range remaining {
				w.SummaryTest(r.Name, false, failureDetail(r))
			}
		}
		if len(suppressed) > 0 {
			w.Println("")
			w.SummarySectionLabel("Suppressed Tests:")
			for _, r := range suppressed {
				w.SummaryTest(r.Name, true, failureDetail(r))
			}
		}
	}

	if decision.Passed {
		w.FinalSuccess("PASSED: %s", decision.Summary)
	} else {
		w.FinalFailure("FAILED: %s", decision.Summary)
	}
}

// failureDetail describes why a test is listed, e.g. "Lost, flaky: JIRA-1".
func failureDetail(r testrun.Result) string {
	var parts []string
	if r.Status != testrun.StatusFailed {
		parts = append(parts, cases.Title(language.English).String(r.Status.String()))
	}
	if r.Flakiness.IsFlaky() {
		flaky := "flaky"
		if r.Flakiness.Reason != "" {
			flaky += ": " + r.Flakiness.Reason
		}
		parts = append(parts, flaky)
	}
	if r.Reason != "" {
		parts = append(parts, r.Reason)
	}
	return strings.Join(parts, ", ")
}
