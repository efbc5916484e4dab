package render

import (
	"fmt"

	"github.com/randalmurphal/rfcgen/table"
)

// EnumSpec configures one enumerated-type generation run.
type EnumSpec struct {
	// Name is the generated type's name. Required.
	Name string

	// Repr is the underlying integer type. Default: "uint16".
	Repr string

	// Doc is an optional first line for the type's doc comment. Default:
	// a line naming the type and its origin.
	Doc string

	// Records are the assignment records to generate from, in table order.
	Records []table.Record
}

// enumData is the resolved template input.
type enumData struct {
	Name     string
	Repr     string
	Doc      string
	Variants []variant
	Omitted  []table.Record
}

type variant struct {
	Symbol      string
	Value       uint64
	Description string
}

const enumTemplate = `{{comment .Doc}}
{{- if .Omitted}}
//
// Rows not represented as variants:
{{- range .Omitted}}
//	{{.Code}} {{.Symbol}} {{.Description}}
{{- end}}
{{- end}}
type {{.Name}} {{.Repr}}

const (
{{- range .Variants}}
	{{ident .Symbol}} {{$.Name}} = {{.Value}} // {{.Description}}
{{- end}}
)
`

// Enum renders an enumerated-type declaration from the spec. Placeholder
// records and range records are omitted from the constant block and listed
// in the doc comment; every remaining record becomes one constant whose
// value is the record's code and whose trailing comment is the record's
// description.
func Enum(spec EnumSpec) (string, error) {
	if !isIdentifier(spec.Name) {
		return "", fmt.Errorf("%w: %q", ErrBadName, spec.Name)
	}

	data := enumData{
		Name: spec.Name,
		Repr: spec.Repr,
		Doc:  spec.Doc,
	}
	if data.Repr == "" {
		data.Repr = "uint16"
	}
	if data.Doc == "" {
		data.Doc = fmt.Sprintf("%s is generated from its registry assignment table.", spec.Name)
	}

	seen := make(map[string]bool)
	for _, rec := range spec.Records {
		if rec.IsPlaceholder() || rec.Code.IsRange() {
			data.Omitted = append(data.Omitted, rec)
			continue
		}
		sym := Identifier(rec.Symbol)
		if sym == "" {
			data.Omitted = append(data.Omitted, rec)
			continue
		}
		if seen[sym] {
			return "", fmt.Errorf("%w: %q", ErrDuplicateSymbol, sym)
		}
		seen[sym] = true

		data.Variants = append(data.Variants, variant{
			Symbol:      rec.Symbol,
			Value:       rec.Code.Lo,
			Description: rec.Description,
		})
	}
	if len(data.Variants) == 0 {
		return "", fmt.Errorf("%w: every record is a placeholder or range", ErrNoVariants)
	}

	return NewEngine().Render("enum", enumTemplate, data)
}

// isIdentifier reports whether name can be used verbatim as a type name.
func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	return Identifier(name) == name
}
