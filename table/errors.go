package table

import "errors"

// Sentinel errors for table extraction.
var (
	// ErrNoRecords is returned when the input contains no parseable
	// assignment rows. Individual malformed rows are skipped silently;
	// only total failure is escalated.
	ErrNoRecords = errors.New("no assignment records found")

	// ErrBadCode is returned for a code token that is neither a
	// non-negative integer nor a LOW-HIGH range.
	ErrBadCode = errors.New("unparseable code token")
)
