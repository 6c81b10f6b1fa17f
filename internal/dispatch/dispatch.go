// Package dispatch expands target patterns and runs each resolved
// command against each matching exercise, stopping at the first
// failure.
//
// Execution is strictly sequential: patterns in the order given,
// targets in glob order within a pattern, commands in the order the
// user listed them for every target. There is no aggregation of partial
// failures; the first non-success result wins and becomes the process
// exit code.
package dispatch

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/mmr-tortoise/exdrill/internal/model"
	"github.com/mmr-tortoise/exdrill/internal/task"
)

// Action is one workflow operation applied to one target. It writes its
// output to out and returns a status code (zero meaning success) plus
// an error for abnormal failures.
type Action func(out io.Writer, target string) (int, error)

// Command pairs an action with the progress verb announced while it runs.
type Command struct {
	// Verb is the title-cased progress verb, e.g. "Migrating".
	Verb string

	// Do is the action applied to each target.
	Do Action
}

// Run expands each pattern as a filesystem glob and applies every
// command to every resulting target not present in the ignore list.
//
// The first failure stops everything: an action error propagates as-is,
// and a non-zero action status becomes a silent CLIError carrying that
// status as the exit code. Patterns that match nothing simply
// contribute no targets.
func Run(r *task.Runner, commands []Command, patterns, ignore []string) error {
	ignored := make(map[string]bool, len(ignore))
	for _, name := range ignore {
		ignored[name] = true
	}

	for _, pattern := range patterns {
		targets, err := filepath.Glob(pattern)
		if err != nil {
			return model.WrapCLIError(model.ExitGeneralError,
				fmt.Sprintf("bad target pattern %q", pattern), err)
		}

		for _, target := range targets {
			if ignored[target] {
				continue
			}
			for _, c := range commands {
				code, err := r.Run(c.Verb, target, func(out io.Writer) (int, error) {
					return c.Do(out, target)
				})
				if err != nil {
					return err
				}
				if code != 0 {
					return model.SilentExit(model.ExitCode(code))
				}
			}
		}
	}
	return nil
}
