// Package errors provides structured error types and exit codes for testgate.
package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/AndreyAkinshin/testgate/pkg/testgate"
)

// Exit codes, mirrored from pkg/testgate for internal callers.
const (
	ExitSuccess          = testgate.ExitSuccess
	ExitRuntimeError     = testgate.ExitFailure
	ExitConfigError      = testgate.ExitConfigError
	ExitEnvironmentError = testgate.ExitEnvError
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindValidation
	KindEnvironment
)

// GateError is the base error type for testgate.
type GateError struct {
	Kind    ErrorKind
	Message string
	Path    string // File the error relates to, if any
	Cause   error  // Underlying error
}

func (e *GateError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", e.Path, msg)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *GateError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *GateError) ExitCode() int {
	switch e.Kind {
	case KindConfig, KindValidation:
		return ExitConfigError
	case KindEnvironment:
		return ExitEnvironmentError
	default:
		return ExitRuntimeError
	}
}

// New creates a new runtime error.
func New(message string) *GateError {
	return &GateError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *GateError {
	return New(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string) *GateError {
	return &GateError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *GateError {
	return Config(fmt.Sprintf(format, args...))
}

// Environment creates a new environment error.
func Environment(message string) *GateError {
	return &GateError{
		Kind:    KindEnvironment,
		Message: message,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *GateError {
	return &GateError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// WrapKind wraps an error with additional context and an explicit kind.
func WrapKind(kind ErrorKind, err error, message string) *GateError {
	return &GateError{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

// FileError creates an error for a specific file.
func FileError(kind ErrorKind, path, message string, cause error) *GateError {
	return &GateError{
		Kind:    kind,
		Path:    path,
		Message: message,
		Cause:   cause,
	}
}

// GetExitCode returns the exit code for an error.
// Wrapped GateErrors are found through the error chain.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ge *GateError
	if stderrors.As(err, &ge) {
		return ge.ExitCode()
	}
	return ExitRuntimeError
}
