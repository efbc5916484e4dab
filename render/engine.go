package render

import (
	"fmt"
	"strings"
	"text/template"
	"unicode"
)

// Engine executes source-generation templates with the shared helper
// functions. The zero value is not usable; create one with NewEngine.
type Engine struct {
	funcs template.FuncMap
}

// NewEngine creates a template engine with the default helper functions.
func NewEngine() *Engine {
	return &Engine{
		funcs: defaultFuncs(),
	}
}

// AddFunc adds a custom template function available under the given name.
func (e *Engine) AddFunc(name string, fn any) {
	e.funcs[name] = fn
}

// Render parses and executes one template against data.
func (e *Engine) Render(name, text string, data any) (string, error) {
	tmpl, err := template.New(name).Funcs(e.funcs).Parse(text)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrParse, err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecute, err)
	}
	return buf.String(), nil
}

// defaultFuncs returns the built-in template functions.
func defaultFuncs() template.FuncMap {
	return template.FuncMap{
		"ident":   Identifier,
		"upper":   strings.ToUpper,
		"lower":   strings.ToLower,
		"join":    strings.Join,
		"comment": comment,
	}
}

// Identifier maps a table symbol onto a source identifier: characters that
// cannot appear in an identifier are dropped (the registry for DNS RR types
// contains symbols like "NSAP-PTR" which become "NSAPPTR").
func Identifier(symbol string) string {
	var b strings.Builder
	for _, r := range symbol {
		switch {
		case unicode.IsLetter(r) || r == '_':
			b.WriteRune(r)
		case unicode.IsDigit(r) && b.Len() > 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// comment prefixes every line of s with "// ".
func comment(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		if line == "" {
			lines[i] = "//"
		} else {
			lines[i] = "// " + line
		}
	}
	return strings.Join(lines, "\n")
}
