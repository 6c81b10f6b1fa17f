// Package command defines the fixed set of workflow commands and the
// prefix resolver that maps user-typed names onto them.
//
// The command set is a closed enumeration rather than a runtime registry
// of callables: every command the CLI knows is a Kind constant, and
// Resolve matches a typed prefix against the known names. Duplicate
// names are impossible by construction, so the only resolution failures
// are "unknown" (no name starts with the prefix) and "ambiguous" (more
// than one does).
package command

import (
	"fmt"
	"strings"

	"github.com/mmr-tortoise/exdrill/internal/model"
)

// Kind identifies one of the workflow commands.
//
// The constants are declared in sorted name order so that iterating the
// kinds yields names in the same order Names returns them.
type Kind int

const (
	// Checkin stages an exercise directory with the version-control tool.
	Checkin Kind = iota

	// Migrate downloads a fresh copy of an exercise and reconciles its
	// metadata, README, and test file with the local solution.
	Migrate

	// Restore discards an exercise directory and checks it back out from
	// version control.
	Restore

	// Submit uploads an exercise's solution file to the exercise platform.
	Submit

	// Test runs the test suite for an exercise.
	Test

	numKinds // sentinel, keep last
)

// kindNames maps each Kind to its command name, indexed by the constant
// values above.
var kindNames = [numKinds]string{
	Checkin: "checkin",
	Migrate: "migrate",
	Restore: "restore",
	Submit:  "submit",
	Test:    "test",
}

// kindVerbs maps each Kind to the progress verb announced by the task
// runner while the command is running against a target.
var kindVerbs = [numKinds]string{
	Checkin: "Checking in",
	Migrate: "Migrating",
	Restore: "Restoring",
	Submit:  "Submitting",
	Test:    "Testing",
}

// String returns the command name. It satisfies fmt.Stringer so Kinds
// format naturally in error messages and logs.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Verb returns the title-cased progress verb for the command,
// e.g. "Migrating" for Migrate.
func (k Kind) Verb() string {
	return kindVerbs[k]
}

// Names returns all command names in sorted order. The result is a
// fresh slice each call; callers may modify it freely.
func Names() []string {
	names := make([]string, numKinds)
	copy(names, kindNames[:])
	return names
}

// Resolve returns the unique Kind whose name starts with prefix.
//
// Zero matches yields an "unknown command" error and multiple matches an
// "ambiguous command" error listing the candidates; both carry
// ExitGeneralError so the process exits with status 1 before any task
// runs.
func Resolve(prefix string) (Kind, error) {
	var matches []Kind
	for k := Kind(0); k < numKinds; k++ {
		if strings.HasPrefix(kindNames[k], prefix) {
			matches = append(matches, k)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return 0, model.NewCLIError(model.ExitGeneralError,
			fmt.Sprintf("unknown command %q (choose from %s)", prefix, strings.Join(Names(), ", ")))
	default:
		names := make([]string, len(matches))
		for i, k := range matches {
			names[i] = k.String()
		}
		return 0, model.NewCLIError(model.ExitGeneralError,
			fmt.Sprintf("ambiguous command %q; choose from %s", prefix, strings.Join(names, ", ")))
	}
}

// ResolveList resolves each prefix in order, failing fast on the first
// unknown or ambiguous name.
func ResolveList(prefixes []string) ([]Kind, error) {
	kinds := make([]Kind, 0, len(prefixes))
	for _, p := range prefixes {
		k, err := Resolve(p)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
