// Package cli implements the cobra command surface for exdrill.
//
// The tool has a single root command taking a delimited list of
// command-name prefixes followed by one or more glob patterns over
// exercise directories:
//
//	exdrill mi,te 'two-*' leap
//
// Prefixes are resolved against the fixed command set (see
// internal/command), patterns are expanded by the dispatch loop, and
// the first failing task decides the process exit code.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/exdrill/internal/command"
	"github.com/mmr-tortoise/exdrill/internal/config"
	"github.com/mmr-tortoise/exdrill/internal/dispatch"
	"github.com/mmr-tortoise/exdrill/internal/exercise"
	"github.com/mmr-tortoise/exdrill/internal/model"
	"github.com/mmr-tortoise/exdrill/internal/task"
	"github.com/mmr-tortoise/exdrill/internal/ui"
)

// Version, Commit, and Date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// defaultTrack is used when neither the --track flag nor the config
// file names a track.
const defaultTrack = "python"

// rootFlags holds the flag values for the root command.
// These are bound to cobra flags in NewRootCommand.
type rootFlags struct {
	verbose int      // -v: repeatable verbosity count
	ignore  []string // -i: accumulated delimited ignore list
	timeout int      // -t: test timeout in seconds
	track   string   // --track: exercise-platform language track
}

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "exdrill <command>[,<command>...] <exercise-pattern>...",
		Short: "Exercise-workflow automation for exercism solutions",
		Long: fmt.Sprintf(`exdrill automates the daily loop of working through programming exercises:
downloading, testing, submitting, and restoring solutions. It shells out to
the exercism CLI, git, and pytest; nothing is reimplemented locally.

Commands may be abbreviated to any unique prefix and combined in one
delimited list. Exercise arguments are glob patterns over directory names.

Known commands: %s

Examples:
  exdrill test two-fer
  exdrill mi,te 'two-*'
  exdrill sub two-fer leap
  exdrill -v -t 30 test '*'`, strings.Join(command.Names(), ", ")),

		// At least one command token and one exercise pattern.
		Args: cobra.MinimumNArgs(2),

		// SilenceUsage prevents cobra from printing usage on every error.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically;
		// Execute formats them itself.
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, flags)
		},
	}

	cmd.Flags().CountVarP(&flags.verbose, "verbose", "v", "Show task output (repeatable)")
	cmd.Flags().VarP(NewListValue(&flags.ignore), "ignore", "i", "Exercise names to skip (delimited list, repeatable)")
	cmd.Flags().IntVarP(&flags.timeout, "timeout", "t", 0, "Per-test timeout in seconds forwarded to pytest")
	cmd.Flags().StringVar(&flags.track, "track", "", "Exercise-platform language track (default \"python\")")

	return cmd
}

// runRoot parses the positional arguments, merges flags over config-file
// defaults, and hands off to the dispatch loop.
func runRoot(cmd *cobra.Command, args []string, flags *rootFlags) error {
	cfg, err := config.LoadDefault()
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "config file", err)
	}
	opts := buildOptions(flags, cfg, cmd.Flags().Changed("timeout"))

	// First positional: delimited command prefixes.
	kinds, err := command.ResolveList(SplitList(args[0]))
	if err != nil {
		return err
	}
	if len(kinds) == 0 {
		return model.NewCLIError(model.ExitGeneralError, "no command given")
	}

	// Remaining positionals: delimited glob patterns.
	var patterns []string
	for _, arg := range args[1:] {
		patterns = append(patterns, SplitList(arg)...)
	}
	if len(patterns) == 0 {
		return model.NewCLIError(model.ExitGeneralError, "no exercise pattern given")
	}

	tasks := exercise.New(opts)
	commands := make([]dispatch.Command, len(kinds))
	for i, k := range kinds {
		commands[i] = dispatch.Command{Verb: k.Verb(), Do: tasks.Action(k)}
	}

	runner := task.New(cmd.OutOrStdout(), opts.Verbose > 0)
	return dispatch.Run(runner, commands, patterns, opts.Ignore)
}

// buildOptions merges command-line flags over config-file defaults.
// Flags win wherever both are present; timeoutSet distinguishes an
// explicit `-t 0` from an unset flag.
func buildOptions(flags *rootFlags, cfg config.File, timeoutSet bool) model.Options {
	opts := model.Options{
		Verbose: flags.verbose,
		Timeout: cfg.Timeout,
		Track:   cfg.Track,
	}
	if timeoutSet {
		opts.Timeout = flags.timeout
	}
	if flags.track != "" {
		opts.Track = flags.track
	}
	if opts.Track == "" {
		opts.Track = defaultTrack
	}
	opts.Ignore = append(append([]string{}, cfg.Ignore...), flags.ignore...)
	return opts
}

// Execute runs the root command and handles exit codes.
// This is the single place where errors become process termination:
// CLIErrors carry their own exit codes, and a CLIError with an empty
// message was already reported (e.g. a failed tool's output) and exits
// silently. Everything else prints and exits with the general code.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		var cliErr *model.CLIError
		if errors.As(err, &cliErr) {
			if cliErr.Message != "" {
				printError(cliErr.Error())
			}
			os.Exit(int(cliErr.Code))
		}

		printError(err.Error())
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError outputs an error line to stderr.
func printError(message string) {
	fmt.Fprintln(os.Stderr, ui.Errorf("Error: "+message))
}
