package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"struct-migrator/internal/defaults"
	"struct-migrator/internal/mapping"
)

// loadSet reads and compiles a definition file on top of the builtin
// defaults.
func loadSet(path string) (*mapping.Set, error) {
	def, err := mapping.LoadFile(path)
	if err != nil {
		return nil, err
	}

	set, diags := mapping.Compile(def, defaults.Builtin())
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid definition %s: %w", path, diags.Err())
	}

	log.Debug().
		Str("file", path).
		Int("shapes", len(set.Shapes)).
		Int("migrations", len(set.Migrations)).
		Int("records", len(set.Records)).
		Msg("Loaded definition")

	return set, nil
}
