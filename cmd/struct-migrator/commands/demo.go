package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"struct-migrator/examples/versions"
	"struct-migrator/internal/defaults"
	"struct-migrator/internal/migrate"
	"struct-migrator/internal/record"
)

var demoWide = versions.Wide{
	One:     "One",
	Two:     2,
	Three:   false,
	Field1:  "test",
	Field2:  "test",
	Field3:  "test",
	Field4:  "test",
	Field5:  "test",
	Field6:  "test",
	Field7:  1,
	Field8:  2.0,
	Field9:  2.0,
	Field10: "test",
	Field11: 11,
	Field12: true,
	Field13: "thirteen",
	Field14: 14.0,
}

func newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Migrate a 17-field record into a reordered 12-field projection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := migrate.For[versions.Wide, versions.Narrow](defaults.Builtin())
			if err != nil {
				return err
			}

			in, err := record.FromStruct(demoWide)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprint(w, m)
			fmt.Fprintln(w)
			fmt.Fprintln(w, "in: ", in)
			fmt.Fprintln(w, "out:", m.Apply(in))

			return nil
		},
	}
}
