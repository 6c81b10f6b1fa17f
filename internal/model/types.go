package model

import (
	"fmt"
)

// Options holds the fully parsed per-invocation configuration.
//
// It is assembled exactly once by the cli layer (flags merged over
// config-file defaults) and passed read-only into every component that
// needs it. There is no ambient global; anything that cares about
// verbosity, the ignore list, or the timeout receives an Options value
// or the individual field it needs.
type Options struct {
	// Verbose is the verbosity level, incremented once per -v flag.
	// At level 0 task output is captured and discarded; at level 1 and
	// above it is shown on the terminal.
	Verbose int

	// Ignore lists exercise directory names to skip during dispatch,
	// accumulated from repeated -i/--ignore flags and the config file.
	Ignore []string

	// Timeout is the per-test timeout in seconds forwarded to the test
	// runner. Zero means no timeout flag is passed.
	Timeout int

	// Track is the exercise-platform language track used for downloads.
	Track string
}

// Ignored reports whether the given target name appears in the ignore list.
func (o Options) Ignored(target string) bool {
	for _, name := range o.Ignore {
		if name == target {
			return true
		}
	}
	return false
}

// ExitCode defines the process exit codes used by the CLI.
//
// Only success and the generic failure code are fixed. External-tool
// failures and test-runner failures propagate whatever exit code the
// failing process produced, so most ExitCode values are constructed
// dynamically from subprocess results.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error, including
	// unknown or ambiguous command names.
	ExitGeneralError ExitCode = 1
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes at a single point (cli.Execute)
// instead of scattering os.Exit calls through the call stack.
//
// A CLIError with an empty Message has already been reported to the
// user (for example, a failed tool's captured output was printed by
// the task runner); Execute exits with its code without printing
// anything further.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description. Empty means
	// the error was already reported.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// SilentExit creates a CLIError that carries only an exit code.
// Used when the failure has already been surfaced to the user.
func SilentExit(code ExitCode) *CLIError {
	return &CLIError{Code: code}
}
