package render

import "errors"

// Sentinel errors for rendering operations.
var (
	// ErrBadName is returned when the requested type name is empty or not
	// usable as an identifier.
	ErrBadName = errors.New("invalid type name")

	// ErrNoVariants is returned when no record survives placeholder and
	// range filtering, so there is nothing to generate.
	ErrNoVariants = errors.New("no generatable variants")

	// ErrDuplicateSymbol is returned when two assigned records share a
	// symbol; the generated constants would collide.
	ErrDuplicateSymbol = errors.New("duplicate symbol")

	// ErrParse is returned when a template fails to parse.
	ErrParse = errors.New("template parse error")

	// ErrExecute is returned when template execution fails.
	ErrExecute = errors.New("template execution error")
)
