// Package table extracts assignment records from RFC-style registry tables.
//
// IANA registry sections in RFCs enumerate numeric codes, their symbolic
// names, and free-text descriptions in loosely aligned columns:
//
//	    1  PKIX      X.509 as per PKIX
//	    2  SPKI      SPKI certificate
//	9-252            Available for IANA assignment
//
// Extract turns one such block into an ordered sequence of Records, skipping
// blank lines, headers, footnotes, and anything else that does not look like
// an assignment row. Individual malformed rows never abort the extraction;
// they are reported as diagnostics on the resulting Table.
//
// Core types:
//   - Record: one parsed (code, symbol, description) row
//   - Code: a single numeric code or a closed numeric range
//   - Table: the extracted records plus skip/ordering diagnostics
//
// Example usage:
//
//	t, err := table.Extract(text)
//	if err != nil {
//	    // the input contained no parseable rows at all
//	}
//	for _, rec := range t.Records {
//	    fmt.Printf("%s %s = %s\n", rec.Symbol, rec.Code, rec.Description)
//	}
package table
