// Package solution reads the exercise-platform marker file that records
// a downloaded solution's metadata.
//
// The marker (".solution.json") is written by the exercism tool next to
// the exercise sources. Its presence is what the migrate command checks
// to decide whether an exercise has already been migrated. The file is
// parsed tolerant of JSONC-isms (comments, trailing commas) via
// github.com/tidwall/jsonc, since it is hand-editable and some tool
// versions have emitted trailing commas.
package solution

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// Marker is the metadata file name whose presence indicates an exercise
// has completed migration.
const Marker = ".solution.json"

// Metadata is the subset of the marker file the CLI cares about.
// Unknown fields are ignored during parsing.
type Metadata struct {
	// Track is the language track the solution belongs to.
	Track string `json:"track"`

	// Exercise is the exercise slug.
	Exercise string `json:"exercise"`

	// ID is the platform-assigned solution identifier.
	ID string `json:"id"`

	// URL is the solution's page on the exercise platform.
	URL string `json:"url"`

	// Handle is the platform username that owns the solution.
	Handle string `json:"handle"`
}

// Path returns the marker file path inside the given exercise directory.
func Path(exerciseDir string) string {
	return filepath.Join(exerciseDir, Marker)
}

// Exists reports whether the exercise directory contains a marker file.
func Exists(exerciseDir string) bool {
	info, err := os.Stat(Path(exerciseDir))
	return err == nil && !info.IsDir()
}

// Load reads and parses the marker file for the given exercise directory.
func Load(exerciseDir string) (*Metadata, error) {
	data, err := os.ReadFile(Path(exerciseDir))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", Marker, err)
	}

	var meta Metadata
	if err := json.Unmarshal(jsonc.ToJSON(data), &meta); err != nil {
		return nil, fmt.Errorf("failed to parse %s in %s: %w", Marker, exerciseDir, err)
	}
	return &meta, nil
}
