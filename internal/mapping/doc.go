// Package mapping loads migration definition files.
//
// A definition file declares record shapes, default values for custom
// type tags, the migrations to derive and sample records to migrate. YAML
// (.yaml, .yml) and TOML (.toml) are both accepted.
//
// # Schema Overview
//
//	version: "1"
//	defaults:
//	  Status: "new"          # type tag -> default literal
//	shapes:
//	  - name: V1
//	    fields:
//	      - {name: one, type: string}
//	      - {name: two, type: int}
//	  - name: V2
//	    fields:
//	      - {name: one, type: string}
//	      - {name: status, type: Status}
//	migrations:
//	  - {source: V1, target: V2}
//	records:
//	  - shape: V1
//	    values: {one: "One", two: 2}
//
// Literals for builtin type tags (int, float64, time.Duration, ...) are
// converted to the tag's Go type; literals for other tags are kept as
// decoded. Defaults declared in the file take precedence over the builtins.
package mapping
