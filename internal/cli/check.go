package cli

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/AndreyAkinshin/testgate/internal/config"
	"github.com/AndreyAkinshin/testgate/internal/errors"
	"github.com/AndreyAkinshin/testgate/internal/gate"
	"github.com/AndreyAkinshin/testgate/internal/gather"
	"github.com/AndreyAkinshin/testgate/internal/project"
	"github.com/AndreyAkinshin/testgate/internal/report"
	"github.com/AndreyAkinshin/testgate/internal/verdict"
)

// CheckOptions holds the flags of the check command. Flags only ever
// enable suppression; they never switch off what config or env enabled.
type CheckOptions struct {
	SuppressFailures bool
	SuppressFlaky    bool
	Results          []string // Replaces results.paths when non-empty
	Report           string   // Replaces report.output when non-empty
	NoReport         bool
}

func parseCheckFlags(args []string) (*CheckOptions, error) {
	opts := &CheckOptions{}

	i := 0
	for i < len(args) {
		arg := args[i]

		switch {
		case arg == "--suppress-failures":
			opts.SuppressFailures = true
			i++
		case arg == "--suppress-flaky":
			opts.SuppressFlaky = true
			i++
		case arg == "--no-report":
			opts.NoReport = true
			i++
		case arg == "--results" || arg == "--report":
			if i+1 >= len(args) || args[i+1] == "" {
				return nil, errors.Configf("check: %s requires a value", arg)
			}
			opts.set(arg, args[i+1])
			i += 2
		case strings.HasPrefix(arg, "--results=") || strings.HasPrefix(arg, "--report="):
			name, value, _ := strings.Cut(arg, "=")
			if value == "" {
				return nil, errors.Configf("check: %s requires a value", name)
			}
			opts.set(name, value)
			i++
		case strings.HasPrefix(arg, "-"):
			return nil, errors.Configf("check: unknown flag %q", arg)
		default:
			return nil, errors.Configf("check: unexpected argument %q", arg)
		}
	}

	if opts.NoReport && opts.Report != "" {
		return nil, errors.Config("check: --report and --no-report are mutually exclusive")
	}
	return opts, nil
}

func (o *CheckOptions) set(name, value string) {
	switch name {
	case "--results":
		o.Results = append(o.Results, value)
	case "--report":
		o.Report = value
	}
}

// apply layers the flags over cfg.
func (o *CheckOptions) apply(cfg *config.Config) error {
	if o.SuppressFailures {
		cfg.Suppress.Failures = true
	}
	if o.SuppressFlaky {
		cfg.Suppress.Flaky = true
	}
	if len(o.Results) > 0 {
		for _, p := range o.Results {
			if verr := config.ValidatePattern(p); verr != nil {
				verr.Field = "--results"
				return errors.WrapKind(errors.KindValidation, verr, "invalid flag")
			}
		}
		cfg.Results.Paths = o.Results
	}
	if o.Report != "" {
		cfg.Report.Output = o.Report
	}
	if o.NoReport {
		cfg.Report.Disabled = true
	}
	return nil
}

// cmdCheck gathers results, determines the verdict and gates the run.
func (a *app) cmdCheck(args []string, opts *GlobalOptions) int {
	if wantsHelp(args) {
		a.printCheckUsage()
		return 0
	}

	checkOpts, err := parseCheckFlags(args)
	if err != nil {
		return a.fail(err)
	}

	proj, err := a.loadProject(opts)
	if err != nil {
		return a.fail(err)
	}
	a.printWarnings(proj)

	cfg := proj.Config
	if err := config.ApplyEnvFrom(cfg, a.lookupEnv); err != nil {
		return a.fail(errors.WrapKind(errors.KindValidation, err, "invalid environment"))
	}
	if err := checkOpts.apply(cfg); err != nil {
		return a.fail(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a.out.Debug("root: %s", proj.Root)
	a.out.Debug("results: %s", strings.Join(cfg.Results.Paths, ", "))

	outcome := gather.Gather(ctx, proj.Root, cfg.Results.Paths)
	determiner := verdict.Determiner{Config: cfg.Suppression()}
	result := determiner.Determine(outcome)
	decision := gate.Decide(result)
	total := len(outcome.Results())

	a.out.Debug("gathered %d results, verdict %T", total, result)

	if opts.Quiet {
		if !decision.Passed {
			a.out.ErrorPrefix("%s", decision.Summary)
		}
	} else {
		report.Print(a.out, total, result, decision)
	}

	if !cfg.Report.Disabled {
		if err := a.writeReport(proj, outcome, result, decision); err != nil {
			return a.fail(err)
		}
	}

	return decision.ExitCode
}

func (a *app) writeReport(proj *project.Project, outcome verdict.GatherOutcome, result verdict.Result, decision gate.Decision) error {
	in := report.Input{
		RunID:     report.NewRunID(),
		CreatedAt: a.now(),
		Total:     len(outcome.Results()),
	}
	if outcome.Err() == nil {
		fp, err := gather.Fingerprint(outcome.Results())
		if err != nil {
			return errors.Wrap(err, "cannot fingerprint results")
		}
		in.Fingerprint = fp
	}
	r := report.Build(in, result, decision)

	path := proj.Resolve(proj.Config.Report.Output)
	if err := report.Write(path, r); err != nil {
		return errors.WrapKind(errors.KindEnvironment, err, "cannot save report")
	}
	a.out.Info("Report: %s", path)
	a.out.Debug("run id: %s", r.RunID)

	if proj.Config.Report.History != "" {
		history := proj.Resolve(proj.Config.Report.History)
		if err := report.AppendHistory(history, r); err != nil {
			return errors.WrapKind(errors.KindEnvironment, err, "cannot update history")
		}
		a.out.Debug("history: %s", history)
	}
	return nil
}

// printCheckUsage prints the help text for the check command.
func (a *app) printCheckUsage() {
	w := a.out

	w.HelpTitle("testgate check - gate the run on gathered test results")

	w.HelpSection("Usage:")
	w.HelpUsage("testgate check [flags]")

	w.HelpSection("Description:")
	w.Println("  Loads every result file matching the configured patterns, collects the")
	w.Println("  tests that did not pass and applies the suppression policy. The run")
	w.Println("  passes when nothing failed or every failure was suppressed.")
	w.Println("  Relative paths are resolved against the project root.")

	w.HelpSection("Flags:")
	w.HelpFlag("--suppress-failures", "Suppress every failure", helpFlagWidthCheck)
	w.HelpFlag("--suppress-flaky", "Suppress failures of flaky tests", helpFlagWidthCheck)
	w.HelpFlag("--results <glob>", "Result files to load (repeatable)", helpFlagWidthCheck)
	w.HelpFlag("--report <path>", "Where to write the JSON report", helpFlagWidthCheck)
	w.HelpFlag("--no-report", "Do not write a report", helpFlagWidthCheck)
	w.HelpFlag("-h, --help", "Show this help", helpFlagWidthCheck)

	w.HelpSection("Exit Codes:")
	w.HelpCommand("0", "No failures, or all failures suppressed", 2)
	w.HelpCommand("1", "Unsuppressed failures, or results could not be gathered", 2)
	w.HelpCommand("2", "Invalid configuration or flags", 2)
	w.HelpCommand("3", "Report could not be written", 2)

	w.HelpSection("Examples:")
	w.HelpExample("testgate check", "Use .testgate/config.yaml")
	w.HelpExample("testgate check --suppress-flaky --results 'shard-*/results.json'", "")
	w.Println("")
}
