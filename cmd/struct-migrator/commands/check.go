package commands

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"struct-migrator/internal/diagnostic"
	"struct-migrator/internal/migrate"
)

func newCheckCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Derive the migrations of a definition file and report diagnostics",
		Long: `Derive every migration declared in FILE without applying it. Errors such as
missing default providers are reported together with warnings about dropped
or retyped fields and likely renames.`,
		Example: `  # Check a definition file
  struct-migrator check ./examples/versions/versions.yaml

  # Fail on warnings too
  struct-migrator check --strict ./examples/versions/versions.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadSet(args[0])
			if err != nil {
				return err
			}

			var all diagnostic.Diagnostics
			for _, p := range set.Migrations {
				_, diags := migrate.Resolve(p.Source, p.Target, set.Registry)
				all.Merge(diags)
			}

			printDiagnostics(cmd.OutOrStdout(), all)

			log.Info().
				Str("file", args[0]).
				Int("errors", len(all.Errors)).
				Int("warnings", len(all.Warnings)).
				Msg("Checked migrations")

			if all.HasErrors() {
				return fmt.Errorf("%d migration error(s): %w", len(all.Errors), all.Err())
			}

			if strict && len(all.Warnings) > 0 {
				return fmt.Errorf("%d warning(s) in strict mode", len(all.Warnings))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d migration(s)\n", len(set.Migrations))

			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as errors")

	return cmd
}

func printDiagnostics(w io.Writer, diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		fmt.Fprintf(w, "%-7s %s\n", d.Severity, d)
	}
}
