package gml

import (
	"bytes"
	"io"
	"strings"

	"github.com/a7medJamal/gml/internal/parser"
	"github.com/a7medJamal/gml/pkg/geom"
)

// Parser decodes GML 2.1.1 geometry documents.
//
// Create a parser with NewParser and use Read, ReadString or ReadBytes to
// decode the first geometry element of a document.
type Parser interface {
	// Read decodes the first geometry element from r.
	//
	// The whole geometry is built in memory before being returned;
	// trailing content after the first geometry element is never
	// inspected. Any malformed or unsupported input aborts the parse
	// with an error and no partial geometry.
	Read(r io.Reader) (geom.Geometry, error)

	// ReadString decodes the first geometry element from a document string.
	ReadString(doc string) (geom.Geometry, error)

	// ReadBytes decodes the first geometry element from a raw document.
	ReadBytes(doc []byte) (geom.Geometry, error)

	// ReadWithOptions decodes with custom options.
	ReadWithOptions(r io.Reader, opts ParseOptions) (geom.Geometry, error)
}

// NewParser creates a GML parser with default settings.
//
// Example:
//
//	p := gml.NewParser()
//	g, err := p.ReadString(`<gml:Point xmlns:gml="http://www.opengis.net/gml">` +
//		`<gml:coord><gml:X>1.5</gml:X><gml:Y>2.5</gml:Y></gml:coord></gml:Point>`)
func NewParser() Parser {
	return &parserWrapper{}
}

// parserWrapper wraps the internal decoder.
type parserWrapper struct{}

func (p *parserWrapper) Read(r io.Reader) (geom.Geometry, error) {
	return p.ReadWithOptions(r, DefaultParseOptions())
}

func (p *parserWrapper) ReadString(doc string) (geom.Geometry, error) {
	return p.Read(strings.NewReader(doc))
}

func (p *parserWrapper) ReadBytes(doc []byte) (geom.Geometry, error) {
	return p.Read(bytes.NewReader(doc))
}

func (p *parserWrapper) ReadWithOptions(r io.Reader, opts ParseOptions) (geom.Geometry, error) {
	dec := parser.NewDecoder()
	if opts.Namespace != "" {
		dec.Namespace = opts.Namespace
	}
	if opts.MaxDepth > 0 {
		dec.MaxDepth = opts.MaxDepth
	}
	g, err := dec.Decode(r)
	if err != nil {
		return nil, err
	}
	if opts.ValidateGeometry {
		if err := geom.ValidateGeometry(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}
