package commands

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"struct-migrator/internal/analyze"
	"struct-migrator/internal/defaults"
	"struct-migrator/internal/gen"
	"struct-migrator/internal/migrate"
)

func newGenCommand() *cobra.Command {
	var (
		pkgs     []string
		source   string
		target   string
		out      string
		defsFile string
		config   = gen.DefaultGeneratorConfig()
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a Go migration function between two structs",
		Long: `Load Go packages, derive the migration between the shapes of two structs
and emit a statically typed conversion function. Defaults for added fields
come from the builtin registry, extended by the defaults of --defs.`,
		Example: `  # Print the generated function
  struct-migrator gen --pkg ./examples/versions --source ProductV1 --target ProductV2 \
    --defs ./examples/versions/versions.yaml

  # Write it into a directory
  struct-migrator gen --pkg ./examples/versions --source versions.Wide --target versions.Narrow --out ./generated`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			graph, err := analyze.NewAnalyzer("").LoadPackages(pkgs...)
			if err != nil {
				return err
			}

			src, err := findStruct(graph, source)
			if err != nil {
				return err
			}

			dst, err := findStruct(graph, target)
			if err != nil {
				return err
			}

			reg := defaults.Builtin()
			if defsFile != "" {
				set, err := loadSet(defsFile)
				if err != nil {
					return err
				}

				reg = set.Registry
			}

			m, err := migrate.Derive(src.Shape, dst.Shape, reg)
			if err != nil {
				return fmt.Errorf("deriving %s -> %s: %w", src.ID, dst.ID, err)
			}

			if out != "" {
				config.OutputDir = out
			}

			file, err := gen.NewGenerator(config).Generate(m, src, dst)
			if err != nil {
				return err
			}

			if out == "" {
				_, err = cmd.OutOrStdout().Write(file.Content)
				return err
			}

			if err := gen.WriteFiles([]gen.GeneratedFile{*file}, out); err != nil {
				return err
			}

			log.Info().
				Str("source", src.ID.String()).
				Str("target", dst.ID.String()).
				Str("file", file.Filename).
				Str("dir", out).
				Msg("Generated migration")

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&pkgs, "pkg", nil, "package patterns to analyze")
	cmd.Flags().StringVar(&source, "source", "", "source struct name")
	cmd.Flags().StringVar(&target, "target", "", "target struct name")
	cmd.Flags().StringVar(&out, "out", "", "output directory (stdout when empty)")
	cmd.Flags().StringVar(&defsFile, "defs", "", "definition file providing extra defaults")
	cmd.Flags().StringVar(&config.PackageName, "package", config.PackageName, "generated package name")
	cmd.Flags().StringVar(&config.PkgPath, "pkg-path", "", "import path of the generated package")
	cmd.Flags().BoolVar(&config.GenerateComments, "comments", config.GenerateComments, "comment every assignment with its plan")

	_ = cmd.MarkFlagRequired("pkg")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

var errStructNotFound = errors.New("struct not found")

func findStruct(graph *analyze.Graph, name string) (*analyze.StructInfo, error) {
	info := graph.Find(name)
	if info == nil {
		return nil, fmt.Errorf("%w: %q (missing or ambiguous)", errStructNotFound, name)
	}

	return info, nil
}
