package table

import (
	"fmt"
	"strconv"
	"strings"
)

// Code is a numeric assignment: a single value when Lo == Hi, otherwise the
// closed range Lo..Hi (e.g. "256-65279" in the source table).
type Code struct {
	Lo uint64 `json:"lo" yaml:"lo" jsonschema:"description=First (or only) code value"`
	Hi uint64 `json:"hi" yaml:"hi" jsonschema:"description=Last code value; equal to lo for single assignments"`
}

// IsRange reports whether the code covers more than one value.
func (c Code) IsRange() bool {
	return c.Lo != c.Hi
}

// String renders the code the way the source table writes it: "1" or "9-252".
func (c Code) String() string {
	if c.IsRange() {
		return fmt.Sprintf("%d-%d", c.Lo, c.Hi)
	}
	return strconv.FormatUint(c.Lo, 10)
}

// ParseCode parses a code token from an assignment row. The token is either
// a bare non-negative integer or a hyphen-joined pair LOW-HIGH denoting a
// closed range. Anything else is unparseable.
func ParseCode(token string) (Code, error) {
	if lo, hi, isRange := strings.Cut(token, "-"); isRange {
		l, err := strconv.ParseUint(lo, 10, 64)
		if err != nil {
			return Code{}, fmt.Errorf("%w: %q", ErrBadCode, token)
		}
		h, err := strconv.ParseUint(hi, 10, 64)
		if err != nil {
			return Code{}, fmt.Errorf("%w: %q", ErrBadCode, token)
		}
		if h < l {
			return Code{}, fmt.Errorf("%w: inverted range %q", ErrBadCode, token)
		}
		return Code{Lo: l, Hi: h}, nil
	}

	n, err := strconv.ParseUint(token, 10, 64)
	if err != nil {
		return Code{}, fmt.Errorf("%w: %q", ErrBadCode, token)
	}
	return Code{Lo: n, Hi: n}, nil
}

// Record is one parsed assignment row.
type Record struct {
	// Code is the numeric code or code range assigned by the row.
	Code Code `json:"code" yaml:"code"`

	// Symbol is the second column, kept verbatim and case-preserved. For
	// placeholder rows the table puts a status word here ("Available",
	// "Experimental") rather than an identifier; see IsPlaceholder.
	Symbol string `json:"symbol,omitempty" yaml:"symbol,omitempty"`

	// Description is the remainder of the row with runs of whitespace
	// collapsed to single spaces.
	Description string `json:"description" yaml:"description"`

	// Line is the 1-based line number of the row in the source text.
	Line int `json:"-" yaml:"-"`
}

// placeholderWords are the status markers RFC registry tables put in the
// symbol column for rows that do not assign a real symbolic name.
var placeholderWords = map[string]bool{
	"Reserved":     true,
	"Available":    true,
	"Unassigned":   true,
	"Experimental": true,
}

// IsPlaceholder reports whether the record marks a reserved, unassigned, or
// experimental range rather than assigning a symbolic name. Such records are
// kept by Extract but excluded from variant generation by the renderer.
func (r Record) IsPlaceholder() bool {
	return placeholderWords[r.Symbol]
}

// SkippedLine describes a non-blank line that produced no record.
type SkippedLine struct {
	// Line is the 1-based line number in the source text.
	Line int

	// Text is the trimmed line content.
	Text string

	// Reason says why the line was dropped.
	Reason string
}

// Table is the parsed form of one assignment table.
type Table struct {
	// Records holds the parsed rows in document order.
	Records []Record

	// Skipped holds the non-blank lines that produced no record, in
	// document order. Skips are policy, not errors; callers wanting to
	// debug a malformed source table can report them.
	Skipped []SkippedLine

	// Unordered holds line numbers of records whose code begins before the
	// end of the preceding record's code. Source tables are assumed
	// pre-sorted and non-overlapping; a violation here means the input is
	// suspect, but extraction still succeeds.
	Unordered []int
}

// Extractor parses RFC-style assignment tables.
type Extractor struct{}

// NewExtractor creates a table extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses one assignment table. Each non-blank line is split on runs
// of whitespace; lines with at least three fields and a numeric first field
// become Records, everything else is skipped. Extract is a pure function of
// its input: no I/O, no retained state.
//
// Extract returns ErrNoRecords when the text yields no records at all,
// which almost always means the caller passed the wrong input.
func (e *Extractor) Extract(text string) (*Table, error) {
	t := &Table{}

	var prevHi uint64
	for i, raw := range strings.Split(text, "\n") {
		lineNo := i + 1
		fields := strings.Fields(raw)

		// Blank separator lines are not worth a diagnostic.
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 3 {
			t.Skipped = append(t.Skipped, SkippedLine{
				Line:   lineNo,
				Text:   strings.TrimSpace(raw),
				Reason: "fewer than three fields",
			})
			continue
		}

		code, err := ParseCode(fields[0])
		if err != nil {
			t.Skipped = append(t.Skipped, SkippedLine{
				Line:   lineNo,
				Text:   strings.TrimSpace(raw),
				Reason: "unparseable code token " + strconv.Quote(fields[0]),
			})
			continue
		}

		if len(t.Records) > 0 && code.Lo <= prevHi {
			t.Unordered = append(t.Unordered, lineNo)
		}
		prevHi = code.Hi

		t.Records = append(t.Records, Record{
			Code:        code,
			Symbol:      fields[1],
			Description: strings.Join(fields[2:], " "),
			Line:        lineNo,
		})
	}

	if len(t.Records) == 0 {
		return nil, fmt.Errorf("%w: no assignment rows in input", ErrNoRecords)
	}
	return t, nil
}

// Extract is a convenience function using a default extractor.
func Extract(text string) (*Table, error) {
	return NewExtractor().Extract(text)
}
