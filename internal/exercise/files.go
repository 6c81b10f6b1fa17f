package exercise

import "strings"

// ReadmeFile is the exercise README name shipped by the platform.
const ReadmeFile = "README.md"

// Underscored converts an exercise slug to the module-name form used
// for its Python files ("two-fer" -> "two_fer").
func Underscored(exercise string) string {
	return strings.ReplaceAll(exercise, "-", "_")
}

// SolutionFile returns the solution file name for an exercise slug.
func SolutionFile(exercise string) string {
	return Underscored(exercise) + ".py"
}

// TestFile returns the test file name for an exercise slug.
func TestFile(exercise string) string {
	return Underscored(exercise) + "_test.py"
}
