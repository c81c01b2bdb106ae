package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Execute runs the root command
func Execute(ctx context.Context, version, commit, buildDate string) error {
	rootCmd := newRootCommand(version, commit, buildDate)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCommand(version, commit, buildDate string) *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "struct-migrator",
		Short: "Derive structural migrations between record shapes",
		Long: `struct-migrator converts records of one shape into another shape whose
fields partially overlap.

A migration from A to B:
  - drops fields present only in A
  - fills fields present only in B from registered defaults
  - reorders the result into B's field order

Shapes, defaults, migrations and records are declared in YAML or TOML
definition files, or analyzed from Go structs for code generation.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newExplainCommand())
	rootCmd.AddCommand(newGenCommand())
	rootCmd.AddCommand(newDemoCommand())

	return rootCmd
}
