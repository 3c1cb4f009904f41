// Package manifest parses and validates the build registration table: the
// ordered YAML list of embedded template archives that is registered at
// startup. Validation runs against an embedded JSON Schema.
package manifest
