package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/exdrill/internal/config"
	"github.com/mmr-tortoise/exdrill/internal/model"
)

// chdir switches the working directory for the test and restores it on
// cleanup; stand-in for t.Chdir, which needs Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })
}

// isolate moves the test into an empty working directory and an empty
// HOME so no real config file leaks into option building.
func isolate(t *testing.T) {
	t.Helper()
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

// writeFile writes a file in the current (isolated) working directory.
func writeFile(name, contents string) error {
	return os.WriteFile(name, []byte(contents), 0o644)
}

// execRoot runs the root command with the given args and returns the
// error cobra surfaces along with the captured output.
func execRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestHelpListsCommands(t *testing.T) {
	isolate(t)

	out, err := execRoot(t, "--help")
	require.NoError(t, err)

	for _, name := range []string{"checkin", "migrate", "restore", "submit", "test"} {
		assert.Contains(t, out, name)
	}
}

func TestUnknownCommand(t *testing.T) {
	isolate(t)

	_, err := execRoot(t, "zz", "two-fer")

	var cliErr *model.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, model.ExitGeneralError, cliErr.Code)
	assert.Contains(t, cliErr.Message, "unknown command")
}

func TestRequiresCommandAndPattern(t *testing.T) {
	isolate(t)

	_, err := execRoot(t, "test")
	assert.Error(t, err, "a command without a pattern is a usage error")
}

// A pattern that matches nothing is not an error; the dispatch loop
// simply has no targets.
func TestNoMatchingTargets(t *testing.T) {
	isolate(t)

	_, err := execRoot(t, "te", "no-such-exercise-*")
	assert.NoError(t, err)
}

// Delimited command lists resolve every prefix before anything runs.
func TestDelimitedCommandListResolvesAll(t *testing.T) {
	isolate(t)

	_, err := execRoot(t, "mi,zz", "no-such-exercise-*")

	var cliErr *model.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Contains(t, cliErr.Message, `"zz"`)
}

func TestBuildOptionsDefaults(t *testing.T) {
	opts := buildOptions(&rootFlags{}, config.File{}, false)

	assert.Equal(t, 0, opts.Verbose)
	assert.Equal(t, 0, opts.Timeout)
	assert.Equal(t, "python", opts.Track)
	assert.Empty(t, opts.Ignore)
}

func TestBuildOptionsConfigDefaults(t *testing.T) {
	cfg := config.File{Track: "rust", Timeout: 20, Ignore: []string{"leap"}}

	opts := buildOptions(&rootFlags{}, cfg, false)

	assert.Equal(t, "rust", opts.Track)
	assert.Equal(t, 20, opts.Timeout)
	assert.Equal(t, []string{"leap"}, opts.Ignore)
}

// Flags override config-file values; ignore lists combine.
func TestBuildOptionsFlagsWin(t *testing.T) {
	cfg := config.File{Track: "rust", Timeout: 20, Ignore: []string{"leap"}}
	flags := &rootFlags{verbose: 2, track: "go", timeout: 5, ignore: []string{"bob"}}

	opts := buildOptions(flags, cfg, true)

	assert.Equal(t, 2, opts.Verbose)
	assert.Equal(t, "go", opts.Track)
	assert.Equal(t, 5, opts.Timeout)
	assert.Equal(t, []string{"leap", "bob"}, opts.Ignore)
}

// An explicit -t 0 disables the config-file timeout.
func TestBuildOptionsExplicitZeroTimeout(t *testing.T) {
	cfg := config.File{Timeout: 20}

	opts := buildOptions(&rootFlags{timeout: 0}, cfg, true)
	assert.Equal(t, 0, opts.Timeout)
}

// Config-file loading feeds option building end to end.
func TestRootReadsConfigFile(t *testing.T) {
	isolate(t)
	require.NoError(t, writeFile(config.FileName, "track: go\n"))

	// The config is malformed-free and the run has no targets, so this
	// exercises the load path without running any tool.
	_, err := execRoot(t, "te", "no-such-exercise-*")
	assert.NoError(t, err)
}

func TestRootRejectsMalformedConfig(t *testing.T) {
	isolate(t)
	require.NoError(t, writeFile(config.FileName, "track: [oops\n"))

	_, err := execRoot(t, "te", "no-such-exercise-*")

	var cliErr *model.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Contains(t, cliErr.Message, "config file")
}
