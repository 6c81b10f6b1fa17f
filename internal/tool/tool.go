// Package tool wraps the external command-line programs that exdrill
// delegates to: the version-control tool (git), the exercise-platform
// tool (exercism), and the test runner (pytest).
//
// All network and version-control behavior lives in those programs;
// this package only spawns them, echoes the command line being run,
// and converts non-zero exits into errors that carry the captured
// output and the exact exit code.
package tool

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// ExitError reports a wrapped program exiting with a non-zero status.
// It carries the program's combined stdout/stderr output and its exact
// exit code so the task runner can surface both.
type ExitError struct {
	// Cmd is the program name that failed.
	Cmd string

	// Output is the combined stdout/stderr captured from the program.
	Output []byte

	// Code is the program's exit code.
	Code int
}

// Error satisfies the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Cmd, e.Code)
}

// Run executes a program with its error stream merged into its standard
// output, echoing the shell-equivalent command line to out first.
//
// On success the captured output is written to out (which the task
// runner points at the terminal in verbose mode and at a discarded
// buffer otherwise). On a non-zero exit the output is NOT written to
// out; it is returned inside an *ExitError so the caller can decide
// where to surface it.
func Run(out io.Writer, name string, args ...string) error {
	echo(out, name, args)

	// #nosec G204 — args are constructed internally, not from user input
	cmd := exec.Command(name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Cmd: name, Output: output, Code: exitErr.ExitCode()}
		}
		// The program could not be started at all (e.g. not installed).
		return fmt.Errorf("%s: %w", name, err)
	}

	_, _ = out.Write(output)
	return nil
}

// Exec executes a program with its output streamed to out and returns
// the program's exit code instead of treating a non-zero exit as an
// error. This matches the test-runner contract: a failing test suite is
// a result to propagate, not a tool malfunction.
//
// The returned error is non-nil only when the program could not be
// started.
func Exec(out io.Writer, name string, args ...string) (int, error) {
	echo(out, name, args)

	// #nosec G204 — args are constructed internally, not from user input
	cmd := exec.Command(name, args...)
	cmd.Stdout = out
	cmd.Stderr = out

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return 0, nil
}

// Git runs the version-control tool with the given arguments.
func Git(out io.Writer, args ...string) error {
	return Run(out, "git", args...)
}

// Exercism runs the exercise-platform tool with the given arguments.
func Exercism(out io.Writer, args ...string) error {
	return Run(out, "exercism", args...)
}

// echo prints the shell-equivalent command line, mirroring what a user
// would have typed to run the tool by hand.
func echo(out io.Writer, name string, args []string) {
	fmt.Fprintln(out, strings.Join(append([]string{name}, args...), " "))
}
