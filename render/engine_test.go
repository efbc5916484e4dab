package render

import (
	"errors"
	"testing"
)

func TestEngine_Render(t *testing.T) {
	e := NewEngine()
	out, err := e.Render("t", "hello {{upper .Name}}", map[string]string{"Name": "world"})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if out != "hello WORLD" {
		t.Errorf("Render() = %q, want \"hello WORLD\"", out)
	}
}

func TestEngine_RenderParseError(t *testing.T) {
	e := NewEngine()
	if _, err := e.Render("t", "{{unterminated", nil); !errors.Is(err, ErrParse) {
		t.Errorf("Render() error = %v, want ErrParse", err)
	}
}

func TestEngine_RenderExecuteError(t *testing.T) {
	e := NewEngine()
	if _, err := e.Render("t", "{{.Missing.Field}}", 42); !errors.Is(err, ErrExecute) {
		t.Errorf("Render() error = %v, want ErrExecute", err)
	}
}

func TestEngine_AddFunc(t *testing.T) {
	e := NewEngine()
	e.AddFunc("double", func(s string) string { return s + s })

	out, err := e.Render("t", `{{double "ab"}}`, nil)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if out != "abab" {
		t.Errorf("Render() = %q, want \"abab\"", out)
	}
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"PKIX", "PKIX"},
		{"NSAP-PTR", "NSAPPTR"},
		{"X25", "X25"},
		{"*", ""},
		{"2Fast2", "Fast2"},
		{"under_score", "under_score"},
	}

	for _, tt := range tests {
		if got := Identifier(tt.in); got != tt.want {
			t.Errorf("Identifier(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestComment(t *testing.T) {
	got := comment("first line\n\nthird line\n")
	want := "// first line\n//\n// third line"
	if got != want {
		t.Errorf("comment() = %q, want %q", got, want)
	}
}
