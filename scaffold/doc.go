// Package scaffold emits boilerplate source for new protocol record types.
//
// Adding a record type to the protocol project means writing the same
// skeleton every time: the record-data struct that carries the header's
// RDLENGTH, a constructor, a String method, and a sample-driven test stub.
// This package renders those skeletons from typed spec structs with named
// fields; there is no positional-argument interpolation, so a reordered
// call site cannot silently swap the type name and the file stem.
//
// Example usage:
//
//	src, err := scaffold.Record(scaffold.NewRecordSpec("csync"))
//	stub, err := scaffold.Test(scaffold.NewTestSpec("csync"))
package scaffold
