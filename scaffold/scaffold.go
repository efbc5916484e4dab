package scaffold

import (
	"errors"
	"fmt"
	"strings"

	"github.com/randalmurphal/rfcgen/render"
)

// ErrBadName is returned when a spec's type name is not an identifier.
var ErrBadName = errors.New("invalid record type name")

// RecordSpec configures record-struct scaffolding for one record type.
type RecordSpec struct {
	// TypeName is the record mnemonic, upper-cased (e.g. "CSYNC").
	TypeName string

	// FileBase is the lower-cased file stem (e.g. "csync").
	FileBase string

	// Package is the package clause of the generated file. Default "rfc".
	Package string

	// RFC optionally names the defining document for the header comment.
	RFC string
}

// NewRecordSpec derives a RecordSpec from a record mnemonic, applying the
// conventional case mapping: type names are upper-case, file stems lower.
func NewRecordSpec(name string) RecordSpec {
	return RecordSpec{
		TypeName: strings.ToUpper(name),
		FileBase: strings.ToLower(name),
		Package:  "rfc",
	}
}

// TestSpec configures a sample-driven test stub for one record type.
type TestSpec struct {
	// TypeName is the record mnemonic, upper-cased.
	TypeName string

	// FileBase is the lower-cased file stem.
	FileBase string

	// Package is the package clause of the generated file. Default "rfc".
	Package string

	// SampleFile is the captured sample the test decodes. Default
	// "testdata/<filebase>.pcap".
	SampleFile string

	// Expect is the expected String() rendering of the decoded record.
	// Left empty in fresh stubs; filled in once the sample is captured.
	Expect string
}

// NewTestSpec derives a TestSpec from a record mnemonic.
func NewTestSpec(name string) TestSpec {
	base := strings.ToLower(name)
	return TestSpec{
		TypeName:   strings.ToUpper(name),
		FileBase:   base,
		Package:    "rfc",
		SampleFile: "testdata/" + base + ".pcap",
	}
}

const recordTemplate = `package {{.Package}}

{{if .RFC}}// {{.TypeName}} is the {{.TypeName}} record data, defined in {{.RFC}}.
{{else}}// {{.TypeName}} is the {{.TypeName}} record data.
{{end}}type {{.TypeName}} struct {
	// rdLength is carried over from the record header during decoding.
	rdLength uint16
}

// New{{.TypeName}} creates a {{.TypeName}} holding the header's RDLENGTH.
func New{{.TypeName}}(rdLength uint16) *{{.TypeName}} {
	return &{{.TypeName}}{rdLength: rdLength}
}

func (r *{{.TypeName}}) String() string {
	return ""
}
`

const testTemplate = `package {{.Package}}

import "testing"

func Test{{.TypeName}}(t *testing.T) {
	resp := readSampleResponse(t, "{{.SampleFile}}")

	rd, ok := resp.Answer[0].RData.(*{{.TypeName}})
	if !ok {
		t.Fatalf("answer 0 is not a {{.TypeName}}")
	}
	if got := rd.String(); got != "{{.Expect}}" {
		t.Errorf("String() = %q, want %q", got, "{{.Expect}}")
	}
}
`

// Record renders the record-struct skeleton for spec.
func Record(spec RecordSpec) (string, error) {
	if err := checkName(spec.TypeName); err != nil {
		return "", err
	}
	if spec.Package == "" {
		spec.Package = "rfc"
	}
	return render.NewEngine().Render("record", recordTemplate, spec)
}

// Test renders the sample-driven test stub for spec.
func Test(spec TestSpec) (string, error) {
	if err := checkName(spec.TypeName); err != nil {
		return "", err
	}
	if spec.Package == "" {
		spec.Package = "rfc"
	}
	if spec.SampleFile == "" {
		spec.SampleFile = "testdata/" + strings.ToLower(spec.TypeName) + ".pcap"
	}
	return render.NewEngine().Render("test", testTemplate, spec)
}

func checkName(name string) error {
	if name == "" || render.Identifier(name) != name {
		return fmt.Errorf("%w: %q", ErrBadName, name)
	}
	return nil
}
