package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(`
track: rust
timeout: 45
ignore:
  - two-fer
  - leap
`), 0o644))

	f, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "rust", f.Track)
	assert.Equal(t, 45, f.Timeout)
	assert.Equal(t, []string{"two-fer", "leap"}, f.Ignore)
}

func TestLoadPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("timeout: 10\n"), 0o644))

	f, err := Load(path)
	require.NoError(t, err)

	assert.Empty(t, f.Track)
	assert.Equal(t, 10, f.Timeout)
	assert.Empty(t, f.Ignore)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("track: [unterminated\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadDefaultFromWorkingDirectory(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile(FileName, []byte("track: go\n"), 0o644))

	f, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, "go", f.Track)
}

func TestLoadDefaultMissing(t *testing.T) {
	chdir(t, t.TempDir())
	// Point HOME somewhere empty so a real user config can't leak in.
	t.Setenv("HOME", t.TempDir())

	f, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, File{}, f)
}
