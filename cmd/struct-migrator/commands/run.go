package commands

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"struct-migrator/internal/mapping"
	"struct-migrator/internal/migrate"
	"struct-migrator/internal/record"
)

func newRunCommand() *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Migrate the records of a definition file",
		Long: `Derive every migration declared in FILE and apply it to each record whose
shape is the migration's source. Results are printed as YAML documents in
target field order.`,
		Example: `  # Migrate records and print them as YAML
  struct-migrator run ./examples/versions/versions.yaml

  # Print go-spew dumps instead
  struct-migrator run --dump ./examples/versions/versions.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadSet(args[0])
			if err != nil {
				return err
			}

			cache := migrate.NewCache(set.Registry, migrate.WithLogger(log.Logger))

			results, err := migrateRecords(set, cache)
			if err != nil {
				return err
			}

			log.Info().
				Str("file", args[0]).
				Int("migrations", cache.Len()).
				Int("records", len(results)).
				Msg("Migrated records")

			if dump {
				spew.Fdump(cmd.OutOrStdout(), results)
				return nil
			}

			return writeYAML(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "print go-spew dumps instead of YAML")

	return cmd
}

// migrated is one record converted by one migration.
type migrated struct {
	Source string        `yaml:"source"`
	Target string        `yaml:"target"`
	Record record.Record `yaml:"record"`
}

// migrateRecords applies every migration of set to the records of its
// source shape, in record order and then migration order.
func migrateRecords(set *mapping.Set, cache *migrate.Cache) ([]migrated, error) {
	var out []migrated

	for _, r := range set.Records {
		for _, p := range set.Migrations {
			if p.Source.String() != r.Shape().String() {
				continue
			}

			m, err := cache.Get(p.Source, p.Target)
			if err != nil {
				return nil, fmt.Errorf("deriving %s -> %s: %w", p.Source.Name(), p.Target.Name(), err)
			}

			out = append(out, migrated{
				Source: p.Source.Name(),
				Target: p.Target.Name(),
				Record: m.Apply(r),
			})
		}
	}

	return out, nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}

	return enc.Close()
}
