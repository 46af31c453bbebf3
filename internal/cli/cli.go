// Package cli provides the command-line interface for testgate.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/AndreyAkinshin/testgate/internal/errors"
	"github.com/AndreyAkinshin/testgate/internal/output"
	"github.com/AndreyAkinshin/testgate/internal/project"
)

// Version is set at build time.
var Version = "dev"

// Help text alignment widths for consistent formatting.
const (
	helpFlagWidthShort  = 10 // Width for short flags like "-h, --help"
	helpFlagWidthGlobal = 16 // Width for global flags like "--config <path>"
	helpFlagWidthCheck  = 22 // Width for check flags like "--results <glob>"
)

// app holds everything a command needs from its surroundings.
type app struct {
	out       *output.Writer
	dir       string // Directory project discovery starts from
	lookupEnv func(string) (string, bool)
	now       func() time.Time
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	cwd, err := os.Getwd()
	if err != nil {
		err := errors.Environment(fmt.Sprintf("cannot determine working directory: %v", err))
		output.New().ErrorPrefix("%v", err)
		return err.ExitCode()
	}
	a := &app{
		out:       output.New(),
		dir:       cwd,
		lookupEnv: os.LookupEnv,
		now:       time.Now,
	}
	return a.run(args)
}

func (a *app) run(args []string) int {
	if len(args) == 0 {
		a.printUsage()
		return 0
	}

	switch args[0] {
	case "-h", "--help", "help":
		a.printUsage()
		return 0
	case "--version", "version":
		a.out.Println("testgate %s", Version)
		return 0
	}

	opts, remaining, err := parseGlobalFlags(args)
	if err != nil {
		return a.fail(err)
	}
	a.out.SetQuiet(opts.Quiet)
	a.out.SetVerbose(opts.Verbose)

	if len(remaining) == 0 {
		a.printUsage()
		return 0
	}
	cmd := remaining[0]
	cmdArgs := remaining[1:]

	switch cmd {
	case "check":
		return a.cmdCheck(cmdArgs, opts)
	case "config":
		return a.cmdConfig(cmdArgs, opts)
	case "help":
		a.printUsage()
		return 0
	case "version":
		a.out.Println("testgate %s", Version)
		return 0
	default:
		a.out.ErrorPrefix("unknown command %q", cmd)
		a.out.Hint("Run 'testgate help' for usage.")
		return errors.ExitConfigError
	}
}

// GlobalOptions holds parsed global flags.
type GlobalOptions struct {
	Quiet      bool
	Verbose    bool
	ConfigPath string
}

// wantsHelp returns true if args contain -h or --help.
func wantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
	}
	return false
}

// parseGlobalFlags extracts global flags from anywhere in the argument list
// and returns the rest untouched, so command flags reach their command.
func parseGlobalFlags(args []string) (*GlobalOptions, []string, error) {
	opts := &GlobalOptions{}
	var remaining []string

	i := 0
	for i < len(args) {
		arg := args[i]

		switch {
		case arg == "-q" || arg == "--quiet":
			opts.Quiet = true
			i++
		case arg == "-v" || arg == "--verbose":
			opts.Verbose = true
			i++
		case arg == "--config":
			if i+1 >= len(args) {
				return nil, nil, errors.Config("--config requires a value")
			}
			opts.ConfigPath = args[i+1]
			i += 2
		case strings.HasPrefix(arg, "--config="):
			opts.ConfigPath = strings.TrimPrefix(arg, "--config=")
			if opts.ConfigPath == "" {
				return nil, nil, errors.Config("--config requires a value")
			}
			i++
		default:
			remaining = append(remaining, arg)
			i++
		}
	}

	if opts.Quiet && opts.Verbose {
		return nil, nil, errors.Config("--quiet and --verbose are mutually exclusive")
	}

	return opts, remaining, nil
}

// fail reports err and returns its exit code.
func (a *app) fail(err error) int {
	a.out.ErrorPrefix("%v", err)
	return errors.GetExitCode(err)
}

// loadProject loads the explicit --config file when given, otherwise the
// nearest project config above the working directory, falling back to
// defaults when there is none. Config warnings are left to the caller.
func (a *app) loadProject(opts *GlobalOptions) (*project.Project, error) {
	var (
		proj *project.Project
		err  error
	)
	if opts.ConfigPath != "" {
		proj, err = project.LoadConfigFile(a.abs(opts.ConfigPath))
	} else {
		proj, err = project.LoadOrDefault(a.dir)
	}
	if err != nil {
		return nil, errors.WrapKind(errors.KindConfig, err, "cannot load project")
	}

	if proj.ConfigPath != "" {
		a.out.Debug("config: %s", proj.ConfigPath)
	} else {
		a.out.Debug("config: none found, using defaults")
	}
	return proj, nil
}

func (a *app) printWarnings(proj *project.Project) {
	for _, w := range proj.Warnings {
		a.out.Warning("%s", w)
	}
}

func (a *app) abs(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(a.dir, path)
}

func (a *app) printUsage() {
	w := a.out

	w.HelpTitle("testgate - gate CI pipelines on gathered test results")

	w.HelpSection("Usage:")
	w.HelpUsage("testgate [flags] <command> [args]")

	w.HelpSection("Commands:")
	w.HelpCommand("check", "Gather results, apply suppression and gate the run", 16)
	w.HelpCommand("config validate", "Validate the project configuration", 16)
	w.HelpCommand("config show", "Print the effective configuration", 16)
	w.HelpCommand("version", "Show version information", 16)

	a.printGlobalFlags()

	w.HelpSection("Environment:")
	w.HelpEnvVar("TESTGATE_SUPPRESS_FAILURES", "Override suppress.failures (true/false)", 26)
	w.HelpEnvVar("TESTGATE_SUPPRESS_FLAKY", "Override suppress.flaky (true/false)", 26)
	w.HelpEnvVar("NO_COLOR", "Disable colored output", 26)

	w.HelpSection("Examples:")
	w.HelpExample("testgate check", "Gate on results found by the configured patterns")
	w.HelpExample("testgate check --suppress-flaky", "Ignore failures of flaky tests")
	w.HelpExample("testgate check --results 'out/**/*.json'", "Gate on an explicit set of result files")
	w.HelpExample("testgate config validate", "Validate .testgate/config.yaml")
	w.Println("")
}

func (a *app) printGlobalFlags() {
	w := a.out
	w.HelpSection("Global Flags:")
	w.HelpFlag("-q, --quiet", "Minimal output (errors only)", helpFlagWidthGlobal)
	w.HelpFlag("-v, --verbose", "Print diagnostics to stderr", helpFlagWidthGlobal)
	w.HelpFlag("--config <path>", "Use this config file instead of discovery", helpFlagWidthGlobal)
	w.HelpFlag("-h, --help", "Show this help", helpFlagWidthGlobal)
	w.HelpFlag("--version", "Show version", helpFlagWidthGlobal)
}
