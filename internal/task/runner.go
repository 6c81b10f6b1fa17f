// Package task wraps workflow actions with consistent start/success/
// failure reporting and output capture.
//
// The wrapper announces "<Verb> <target>..." before an action runs,
// then either shows the action's own output (verbose mode) or captures
// and discards it. Capture works by writer injection: actions write all
// of their output to the io.Writer they are handed, so in quiet mode
// the runner simply hands them a throwaway buffer. Nothing ever
// swaps process-level streams, and every exit path leaves the real
// terminal writer untouched.
package task

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mmr-tortoise/exdrill/internal/model"
	"github.com/mmr-tortoise/exdrill/internal/tool"
	"github.com/mmr-tortoise/exdrill/internal/ui"
)

// Action is one unit of work against a single target. It writes all of
// its console output to out and returns a status code (zero meaning
// success) plus an error for abnormal failures. A non-zero code with a
// nil error is the test-runner case: the action ran to completion and
// its result is propagated as the process exit code.
type Action func(out io.Writer) (int, error)

// Runner wraps actions with progress reporting and output capture.
type Runner struct {
	// Out is the real terminal writer. All runner-level reporting goes
	// here; action output goes here only in verbose mode.
	Out io.Writer

	// Verbose controls whether action output is shown or captured.
	Verbose bool
}

// New creates a Runner reporting to out.
func New(out io.Writer, verbose bool) *Runner {
	return &Runner{Out: out, Verbose: verbose}
}

// Run executes one action against one target with wrapped reporting.
//
// The sequence is:
//  1. Print "<verb> <target>..." without a trailing newline.
//  2. Verbose: newline, then run the action writing straight to Out.
//     Quiet: run the action against a discarded buffer.
//  3. Success: print "Done". The action's status code is returned to
//     the caller unchanged (the dispatch loop stops on non-zero).
//  4. A tool.ExitError: print the failed tool's captured output,
//     trailing whitespace trimmed, and return a silent CLIError
//     carrying the tool's exact exit code.
//  5. Any other error: print "Failed" and return the error, wrapped
//     with the general exit code if it doesn't already carry one.
func (r *Runner) Run(verb, target string, action Action) (int, error) {
	fmt.Fprintf(r.Out, "%s %s...", verb, target)

	var code int
	var err error
	if r.Verbose {
		fmt.Fprintln(r.Out)
		code, err = action(r.Out)
	} else {
		var captured bytes.Buffer
		code, err = action(&captured)
	}

	if err != nil {
		var exitErr *tool.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(r.Out)
			fmt.Fprintln(r.Out, strings.TrimRight(string(exitErr.Output), " \t\r\n"))
			return 0, model.SilentExit(model.ExitCode(exitErr.Code))
		}

		fmt.Fprintln(r.Out, ui.Failed())
		var cliErr *model.CLIError
		if errors.As(err, &cliErr) {
			return 0, err
		}
		return 0, model.WrapCLIError(model.ExitGeneralError, fmt.Sprintf("%s %s", strings.ToLower(verb), target), err)
	}

	fmt.Fprintln(r.Out, ui.Done())
	return code, nil
}
