package mapping

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadFile loads a definition file, choosing the decoder by extension.
func LoadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ParseTOML(data)
	case ".yaml", ".yml", "":
		return Parse(data)
	default:
		return nil, fmt.Errorf("unsupported definition file extension %q", filepath.Ext(path))
	}
}

// Parse parses YAML data into a Definition.
func Parse(data []byte) (*Definition, error) {
	var def Definition

	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse definition YAML: %w", err)
	}

	applyDefaults(&def)

	return &def, nil
}

// ParseTOML parses TOML data into a Definition.
func ParseTOML(data []byte) (*Definition, error) {
	var def Definition

	meta, err := toml.Decode(string(data), &def)
	if err != nil {
		return nil, fmt.Errorf("failed to parse definition TOML: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown definition keys: %v", undecoded)
	}

	applyDefaults(&def)

	return &def, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(def *Definition) {
	if def.Version == "" {
		def.Version = "1"
	}
}

// Marshal serializes a Definition to YAML.
func Marshal(def *Definition) ([]byte, error) {
	return yaml.Marshal(def)
}

// WriteFile writes a Definition as YAML to the given path.
func WriteFile(def *Definition, path string) error {
	data, err := Marshal(def)
	if err != nil {
		return fmt.Errorf("failed to marshal definition: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write definition file %s: %w", path, err)
	}

	return nil
}
