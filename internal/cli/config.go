package cli

import (
	"strings"

	"github.com/AndreyAkinshin/testgate/internal/config"
	"github.com/AndreyAkinshin/testgate/internal/errors"
	"github.com/AndreyAkinshin/testgate/internal/project"
	"github.com/AndreyAkinshin/testgate/internal/verdict"
)

// cmdConfig handles configuration utilities.
func (a *app) cmdConfig(args []string, opts *GlobalOptions) int {
	if len(args) == 0 {
		a.out.ErrorPrefix("config: subcommand required (validate, show)")
		return errors.ExitConfigError
	}

	switch args[0] {
	case "validate":
		return a.cmdConfigValidate(opts)
	case "show":
		return a.cmdConfigShow(opts)
	case "-h", "--help":
		a.printConfigUsage()
		return 0
	default:
		a.out.ErrorPrefix("config: unknown subcommand %q", args[0])
		return errors.ExitConfigError
	}
}

// cmdConfigValidate requires an actual config file, unlike check which
// runs on defaults when there is none.
func (a *app) cmdConfigValidate(opts *GlobalOptions) int {
	if opts.ConfigPath == "" {
		if _, err := project.FindRootFrom(a.dir); err != nil {
			return a.fail(errors.WrapKind(errors.KindConfig, err, "nothing to validate"))
		}
	}

	proj, err := a.loadProject(opts)
	if err != nil {
		return a.fail(err)
	}

	a.out.ValidationSuccess("Configuration is valid.")
	a.out.SummaryItem("Config", proj.ConfigPath)
	a.out.SummaryItem("Results", strings.Join(proj.Config.Results.Paths, ", "))
	a.out.SummaryItem("Suppression", describeSuppression(proj.Config.Suppression()))
	if proj.Config.Report.Disabled {
		a.out.SummaryItem("Report", "disabled")
	} else {
		a.out.SummaryItem("Report", proj.Config.Report.Output)
	}
	if len(proj.Warnings) > 0 {
		a.out.SummarySectionLabel("Warnings:")
		a.out.List(proj.Warnings)
	}
	return 0
}

// cmdConfigShow prints the configuration check would run with, including
// defaults and environment overrides.
func (a *app) cmdConfigShow(opts *GlobalOptions) int {
	proj, err := a.loadProject(opts)
	if err != nil {
		return a.fail(err)
	}
	a.printWarnings(proj)

	cfg := proj.Config
	if err := config.ApplyEnvFrom(cfg, a.lookupEnv); err != nil {
		return a.fail(errors.WrapKind(errors.KindValidation, err, "invalid environment"))
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return a.fail(errors.Wrap(err, "cannot render config"))
	}
	a.out.Print("%s", data)
	return 0
}

func describeSuppression(cfg verdict.SuppressionConfig) string {
	switch {
	case cfg.SuppressAllFailures:
		return "all failures"
	case cfg.SuppressFlakyFailures:
		return "flaky failures"
	default:
		return "none"
	}
}

// printConfigUsage prints the help text for the config command.
func (a *app) printConfigUsage() {
	w := a.out

	w.HelpTitle("testgate config - configuration utilities")

	w.HelpSection("Usage:")
	w.HelpUsage("testgate config <subcommand>")

	w.HelpSection("Subcommands:")
	w.HelpCommand("validate", "Validate the project configuration", helpFlagWidthShort)
	w.HelpCommand("show", "Print the effective configuration as YAML", helpFlagWidthShort)

	w.HelpSection("Options:")
	w.HelpFlag("-h, --help", "Show this help", helpFlagWidthShort)

	w.HelpSection("Examples:")
	w.HelpExample("testgate config validate", "Validate .testgate/config.yaml")
	w.HelpExample("TESTGATE_SUPPRESS_FLAKY=1 testgate config show", "Show config with an env override")
	w.Println("")
}
