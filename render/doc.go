// Package render generates enumerated-type source from assignment records.
//
// The renderer consumes the record sequence produced by package table and
// emits one constant per assigned code, carrying the numeric discriminant
// and the original table description as a trailing comment:
//
//	const (
//	    PKIX CertType = 1 // X.509 as per PKIX
//	    SPKI CertType = 2 // SPKI certificate
//	)
//
// Placeholder rows (Reserved, Available, Experimental) and multi-value
// ranges never become constants; they are listed in the generated type's
// doc comment instead.
//
// All rendering goes through a typed spec struct with named fields — there
// is deliberately no positional-argument surface.
//
// Example usage:
//
//	src, err := render.Enum(render.EnumSpec{
//	    Name:    "CertType",
//	    Records: tbl.Records,
//	})
package render
