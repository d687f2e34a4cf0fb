package gml

import (
	"github.com/a7medJamal/gml/internal/parser"
)

// DefaultNamespace is the GML 2.x namespace URI geometries are matched
// against unless overridden.
const DefaultNamespace = parser.DefaultNamespace

// ParseOptions configures parsing behavior.
type ParseOptions struct {
	// Namespace overrides the namespace URI geometry elements must
	// carry. Empty means DefaultNamespace. Constructing differently
	// configured parsers is how namespace variants are supported; there
	// is no process-wide namespace state.
	Namespace string

	// MaxDepth bounds nesting of MultiGeometry collections. Zero or
	// negative means the default limit. Deeply nested untrusted input
	// fails cleanly instead of exhausting the call stack.
	MaxDepth int

	// ValidateGeometry: if true, validate decoded coordinates against
	// geographic bounds after parsing.
	// Default: false. GML 2.1.1 readers are traditionally permissive;
	// ring closure and polygon well-formedness are never checked here.
	ValidateGeometry bool
}

// DefaultParseOptions returns parse options with defaults.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		Namespace:        DefaultNamespace,
		MaxDepth:         parser.DefaultMaxDepth,
		ValidateGeometry: false,
	}
}
