// Package rfcgen generates protocol registry code from RFC assignment tables.
//
// rfcgen is the codegen companion of a DNS query tool: RFCs publish their
// registries as loosely aligned text tables, and keeping the project's
// enumerated types, record scaffolding, and test stubs in sync with those
// tables by hand is error-prone. Each subpackage can be used independently:
//
//   - table: extract (code, symbol, description) records from a registry table
//   - render: emit an enumerated type from extracted records
//   - scaffold: emit record-struct and test-stub boilerplate for new types
//   - registry: pull answer record types out of piped JSON responses
//   - genconfig: TOML/YAML configuration for batch generation runs
//   - watch: regenerate output when a source table changes
//
// # Quick Start
//
// Table extraction:
//
//	import "github.com/randalmurphal/rfcgen/table"
//	tbl, err := table.Extract(text)
//
// Enum generation:
//
//	import "github.com/randalmurphal/rfcgen/render"
//	src, err := render.Enum(render.EnumSpec{Name: "CertType", Records: tbl.Records})
//
// Or from the command line:
//
//	rfcgen enum CertType < cert_table.txt
//
// # Design Philosophy
//
//   - Resilience over strictness: registry tables carry headers, footnotes,
//     and reserved ranges; malformed rows are skipped and reported, never fatal
//   - Typed specs with named fields for all generation, no positional args
//   - Each package usable independently
//   - Interfaces for extensibility, concrete types for simplicity
package rfcgen
