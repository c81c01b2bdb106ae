package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"struct-migrator/internal/migrate"
)

func newExplainCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explain FILE",
		Short: "Print the per-field plan of every migration in a definition file",
		Example: `  struct-migrator explain ./examples/versions/versions.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadSet(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for i, p := range set.Migrations {
				m, diags := migrate.Resolve(p.Source, p.Target, set.Registry)
				if diags.HasErrors() {
					printDiagnostics(w, diags)
					return fmt.Errorf("deriving %s -> %s: %w", p.Source.Name(), p.Target.Name(), diags.Err())
				}

				if i > 0 {
					fmt.Fprintln(w)
				}

				fmt.Fprint(w, m)
				printDiagnostics(w, diags)
			}

			return nil
		},
	}
}
