// Package model defines the shared domain types for the exdrill CLI.
//
// It holds the read-only Options value assembled by the cli layer, the
// process exit-code type, and the CLIError type used to carry exit codes
// up the call stack. Keeping these here avoids import cycles between the
// cli, task, and dispatch packages, all of which speak in these types.
package model
