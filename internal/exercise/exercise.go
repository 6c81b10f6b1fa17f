// Package exercise implements the workflow actions that operate on a
// single exercise directory: migrate, test, submit, restore, checkin.
//
// Each action writes its console output to the io.Writer it is handed
// (the task runner decides whether that writer is the terminal or a
// discarded capture buffer) and delegates all external behavior to the
// tool package. The actions themselves only glue tool invocations
// together with a little file copying.
package exercise

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mmr-tortoise/exdrill/internal/command"
	"github.com/mmr-tortoise/exdrill/internal/model"
	"github.com/mmr-tortoise/exdrill/internal/solution"
	"github.com/mmr-tortoise/exdrill/internal/tool"
)

// Tasks holds the configuration shared by all workflow actions.
//
// The run/exec fields default to the tool package and exist so tests
// can substitute recorded fakes without spawning real subprocesses.
type Tasks struct {
	// Track is the language track passed to the platform download.
	Track string

	// Timeout is the per-test timeout in seconds forwarded to pytest;
	// zero means no --timeout flag.
	Timeout int

	run  func(out io.Writer, name string, args ...string) error
	exec func(out io.Writer, name string, args ...string) (int, error)
}

// New creates the task set for the given options.
func New(opts model.Options) *Tasks {
	return &Tasks{
		Track:   opts.Track,
		Timeout: opts.Timeout,
		run:     tool.Run,
		exec:    tool.Exec,
	}
}

// Action returns the action function for a command kind, normalized to
// the status-code-plus-error shape the task runner expects.
func (t *Tasks) Action(k command.Kind) func(out io.Writer, target string) (int, error) {
	switch k {
	case command.Migrate:
		return statusless(t.Migrate)
	case command.Test:
		return t.Test
	case command.Submit:
		return statusless(t.Submit)
	case command.Restore:
		return statusless(t.Restore)
	case command.Checkin:
		return statusless(t.Checkin)
	}
	panic(fmt.Sprintf("no action for command %v", k))
}

// statusless adapts an error-only action to the (status, error) shape.
func statusless(fn func(out io.Writer, target string) error) func(out io.Writer, target string) (int, error) {
	return func(out io.Writer, target string) (int, error) {
		return 0, fn(out, target)
	}
}

// Migrate brings a locally solved exercise up to date with the platform.
//
// If the exercise already carries the solution marker it is left alone.
// Otherwise the exercise is downloaded fresh; when the platform tool
// places the download in a sibling "<exercise>-2" directory, the
// marker, README, and test file are copied over from it and the sibling
// is removed. When no sibling appears, the download overwrote the local
// solution file, so it is restored from version control.
func (t *Tasks) Migrate(out io.Writer, exercise string) error {
	if solution.Exists(exercise) {
		fmt.Fprintf(out, "%s has already been migrated\n", exercise)
		if meta, err := solution.Load(exercise); err == nil && meta.URL != "" {
			fmt.Fprintf(out, "solution: %s\n", meta.URL)
		}
		return nil
	}

	if err := t.run(out, "exercism", "download", "-t", t.Track, "-e", exercise); err != nil {
		return err
	}

	srcDir := exercise + "-2"
	if info, err := os.Stat(srcDir); err != nil || !info.IsDir() {
		// The download landed in the exercise directory itself and
		// clobbered the local solution file; bring it back.
		file := SolutionFile(exercise)
		fmt.Fprintf(out, "Restoring %s\n", file)
		return t.run(out, "git", "checkout", "--", filepath.Join(exercise, file))
	}

	for _, name := range []string{solution.Marker, ReadmeFile, TestFile(exercise)} {
		src := filepath.Join(srcDir, name)
		dst := filepath.Join(exercise, name)
		fmt.Fprintf(out, "Copying %s -> %s\n", src, dst)
		if err := copyFile(src, dst); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "Removing %s/\n", srcDir)
	return os.RemoveAll(srcDir)
}

// Test runs the test suite for an exercise and returns pytest's exit
// code as the action status. A red suite is a result, not an error:
// the dispatch loop stops with pytest's own exit code.
func (t *Tasks) Test(out io.Writer, exercise string) (int, error) {
	args := []string{"-x", exercise}
	if t.Timeout > 0 {
		args = append(args, "--timeout", strconv.Itoa(t.Timeout))
	}
	return t.exec(out, "pytest", args...)
}

// Submit uploads the exercise's solution file to the platform.
func (t *Tasks) Submit(out io.Writer, exercise string) error {
	return t.run(out, "exercism", "submit", filepath.Join(exercise, SolutionFile(exercise)))
}

// Restore throws away the exercise directory and checks it back out
// from version control.
func (t *Tasks) Restore(out io.Writer, exercise string) error {
	fmt.Fprintf(out, "Removing %s/\n", exercise)
	if err := os.RemoveAll(exercise); err != nil {
		return err
	}
	return t.run(out, "git", "checkout", "--", exercise)
}

// Checkin stages the exercise directory with the version-control tool.
func (t *Tasks) Checkin(out io.Writer, exercise string) error {
	return t.run(out, "git", "add", exercise)
}

// copyFile copies src to dst, preserving the source file mode.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, info.Mode().Perm())
}
