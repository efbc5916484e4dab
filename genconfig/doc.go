// Package genconfig loads generation-run configuration.
//
// A config file describes one or more generation runs, each mapping a
// source assignment table to a generated type:
//
//	[[generation]]
//	type  = "CertType"
//	table = "tables/cert.txt"
//	out   = "gen/cert_type.go"
//	repr  = "uint16"
//
// Both TOML and YAML are accepted, dispatched on file extension. YAML
// configs use a top-level "generations" list with the same keys.
package genconfig
