package mapping

// Definition is the root of a definition file.
type Definition struct {
	// Version of the definition schema (for future compatibility).
	Version string `yaml:"version,omitempty" toml:"version" validate:"omitempty,oneof=1"`

	// Defaults maps type tags to default literals.
	Defaults map[string]any `yaml:"defaults,omitempty" toml:"defaults"`

	// Shapes declares the record shapes, in order.
	Shapes []ShapeDef `yaml:"shapes" toml:"shapes" validate:"required,min=1,dive"`

	// Migrations lists the shape pairs to derive.
	Migrations []MigrationDef `yaml:"migrations,omitempty" toml:"migrations" validate:"dive"`

	// Records are sample values to migrate.
	Records []RecordDef `yaml:"records,omitempty" toml:"records" validate:"dive"`
}

// ShapeDef declares one record shape.
type ShapeDef struct {
	Name   string     `yaml:"name" toml:"name" validate:"required"`
	Fields []FieldDef `yaml:"fields" toml:"fields" validate:"dive"`
}

// FieldDef declares one field of a shape.
type FieldDef struct {
	Name string `yaml:"name" toml:"name" validate:"required"`
	Type string `yaml:"type" toml:"type" validate:"required"`
}

// MigrationDef names a source and a target shape.
type MigrationDef struct {
	Source string `yaml:"source" toml:"source" validate:"required"`
	Target string `yaml:"target" toml:"target" validate:"required,nefield=Source"`
}

// RecordDef is a sample record of a declared shape.
type RecordDef struct {
	Shape  string         `yaml:"shape" toml:"shape" validate:"required"`
	Values map[string]any `yaml:"values" toml:"values"`
}
