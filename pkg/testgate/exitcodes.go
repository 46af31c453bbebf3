// Package testgate provides public constants for CI pipelines and tools
// that invoke the testgate CLI.
package testgate

// Exit codes returned by the testgate CLI.
// Pipelines can branch on these symbolically instead of on magic numbers.
const (
	// ExitSuccess indicates the run passed: no failed tests, or every failure was suppressed.
	ExitSuccess = 0

	// ExitFailure indicates unsuppressed test failures or that results could not be gathered.
	ExitFailure = 1

	// ExitConfigError indicates a configuration error (invalid config, bad flag, etc.).
	ExitConfigError = 2

	// ExitEnvError indicates an environment error (unwritable report directory, lock failure, etc.).
	ExitEnvError = 3
)
