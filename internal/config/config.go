// Package config loads optional workflow defaults from a YAML file.
//
// The file is looked up as ".exdrill.yaml" first in the current working
// directory, then in the user's home directory. It supplies defaults
// for the track, the test timeout, and the ignore list; command-line
// flags always win over file values. A missing file is not an error —
// the zero File simply applies no defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name searched for in the working and
// home directories.
const FileName = ".exdrill.yaml"

// File holds the optional defaults a config file can supply.
type File struct {
	// Track is the default exercise-platform language track.
	Track string `yaml:"track"`

	// Timeout is the default per-test timeout in seconds.
	Timeout int `yaml:"timeout"`

	// Ignore lists exercise names skipped by default during dispatch.
	Ignore []string `yaml:"ignore"`
}

// Load reads and parses the config file at path.
func Load(path string) (File, error) {
	var f File

	data, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return f, nil
}

// LoadDefault looks for the config file in the working directory, then
// the home directory, and loads the first one found. When neither
// exists it returns the zero File with no error.
func LoadDefault() (File, error) {
	candidates := []string{FileName}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, FileName))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return Load(path)
	}
	return File{}, nil
}
