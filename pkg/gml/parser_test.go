package gml

import (
	"strings"
	"testing"

	"github.com/a7medJamal/gml/pkg/geom"
)

const pointDoc = `<?xml version="1.0" encoding="UTF-8"?>
<gml:Point xmlns:gml="http://www.opengis.net/gml"><gml:coord><gml:X>1.5</gml:X><gml:Y>2.5</gml:Y></gml:coord></gml:Point>`

// TestParserEntryPoints tests that every input form decodes identically.
func TestParserEntryPoints(t *testing.T) {
	p := NewParser()

	fromString, err := p.ReadString(pointDoc)
	if err != nil {
		t.Fatalf("ReadString failed: %v", err)
	}
	fromBytes, err := p.ReadBytes([]byte(pointDoc))
	if err != nil {
		t.Fatalf("ReadBytes failed: %v", err)
	}
	fromReader, err := p.Read(strings.NewReader(pointDoc))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if !geom.Equal(fromString, fromBytes) || !geom.Equal(fromString, fromReader) {
		t.Error("entry points disagree on the same document")
	}
	pt := fromString.(*geom.Point)
	if pt.Coord != (geom.Coordinate{X: 1.5, Y: 2.5}) {
		t.Errorf("expected (1.5, 2.5), got %v", pt.Coord)
	}
}

// TestParseIdempotence tests that parsing the same document twice yields
// structurally equal trees.
func TestParseIdempotence(t *testing.T) {
	doc := `<gml:MultiGeometry xmlns:gml="http://www.opengis.net/gml">` +
		`<gml:geometryMember><gml:Point><gml:coord><gml:X>1</gml:X><gml:Y>2</gml:Y></gml:coord></gml:Point></gml:geometryMember>` +
		`<gml:geometryMember><gml:LineString>` +
		`<gml:coord><gml:X>3</gml:X><gml:Y>4</gml:Y></gml:coord>` +
		`<gml:coord><gml:X>5</gml:X><gml:Y>6</gml:Y></gml:coord>` +
		`</gml:LineString></gml:geometryMember>` +
		`</gml:MultiGeometry>`

	p := NewParser()
	first, err := p.ReadString(doc)
	if err != nil {
		t.Fatalf("first parse failed: %v", err)
	}
	second, err := p.ReadString(doc)
	if err != nil {
		t.Fatalf("second parse failed: %v", err)
	}
	if !geom.Equal(first, second) {
		t.Error("expected structurally equal trees from repeated parses")
	}
}

// TestParseWithValidation tests opt-in coordinate validation.
func TestParseWithValidation(t *testing.T) {
	doc := `<gml:Point xmlns:gml="http://www.opengis.net/gml">` +
		`<gml:coord><gml:X>200</gml:X><gml:Y>10</gml:Y></gml:coord></gml:Point>`

	p := NewParser()

	// Permissive by default.
	if _, err := p.ReadString(doc); err != nil {
		t.Fatalf("default parse failed: %v", err)
	}

	opts := DefaultParseOptions()
	opts.ValidateGeometry = true
	if _, err := p.ReadWithOptions(strings.NewReader(doc), opts); err == nil {
		t.Error("expected a validation error for x=200")
	}
}

// TestParseMaxDepthOption tests that the nesting limit is honored.
func TestParseMaxDepthOption(t *testing.T) {
	doc := `<gml:MultiGeometry xmlns:gml="http://www.opengis.net/gml">` +
		`<gml:MultiGeometry><gml:MultiGeometry>` +
		`</gml:MultiGeometry></gml:MultiGeometry>` +
		`</gml:MultiGeometry>`

	opts := DefaultParseOptions()
	opts.MaxDepth = 1
	if _, err := NewParser().ReadWithOptions(strings.NewReader(doc), opts); err == nil {
		t.Error("expected a depth error")
	}

	opts.MaxDepth = 10
	if _, err := NewParser().ReadWithOptions(strings.NewReader(doc), opts); err != nil {
		t.Errorf("parse failed under sufficient limit: %v", err)
	}
}

// TestRoundTripPolygon tests encode-then-decode fidelity for a polygon
// with interior rings.
func TestRoundTripPolygon(t *testing.T) {
	f := geom.NewFactory()
	shell := f.CreateLinearRing([]geom.Coordinate{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0},
	})
	holes := []*geom.LinearRing{
		f.CreateLinearRing([]geom.Coordinate{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 1}}),
		f.CreateLinearRing([]geom.Coordinate{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 5}}),
	}
	original := f.CreatePolygon(shell, holes)

	doc, err := NewWriter().Write(original)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	decoded, err := NewParser().ReadString(doc)
	if err != nil {
		t.Fatalf("decode failed: %v\ndocument: %s", err, doc)
	}

	if !geom.Equal(original, decoded) {
		t.Errorf("round trip mismatch\ndocument: %s", doc)
	}
}

// TestRoundTripAllVariants tests encode-then-decode for each variant.
func TestRoundTripAllVariants(t *testing.T) {
	f := geom.NewFactory()
	ring := f.CreateLinearRing([]geom.Coordinate{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0},
	})

	tests := []struct {
		name     string
		geometry geom.Geometry
	}{
		{"point", f.CreatePoint(geom.Coordinate{X: -71.05, Y: 42.35})},
		{"linestring", f.CreateLineString([]geom.Coordinate{{X: 1, Y: 2}, {X: 3, Y: 4}})},
		{"empty linestring", f.CreateLineString(nil)},
		{"polygon", f.CreatePolygon(ring, nil)},
		{"multipoint", f.CreateMultiPoint([]*geom.Point{
			f.CreatePoint(geom.Coordinate{X: 1, Y: 1}),
			f.CreatePoint(geom.Coordinate{X: 2, Y: 2}),
		})},
		{"multilinestring", f.CreateMultiLineString([]*geom.LineString{
			f.CreateLineString([]geom.Coordinate{{X: 1, Y: 1}, {X: 2, Y: 2}}),
		})},
		{"multipolygon", f.CreateMultiPolygon([]*geom.Polygon{
			f.CreatePolygon(ring, nil),
		})},
		{"nested collection", f.CreateGeometryCollection([]geom.Geometry{
			f.CreateGeometryCollection([]geom.Geometry{
				f.CreatePoint(geom.Coordinate{X: 1, Y: 2}),
			}),
			f.CreatePoint(geom.Coordinate{X: 3, Y: 4}),
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := NewWriter().Write(tt.geometry)
			if err != nil {
				t.Fatalf("encode failed: %v", err)
			}
			decoded, err := NewParser().ReadString(doc)
			if err != nil {
				t.Fatalf("decode failed: %v\ndocument: %s", err, doc)
			}
			if !geom.Equal(tt.geometry, decoded) {
				t.Errorf("round trip mismatch\ndocument: %s", doc)
			}
		})
	}
}

// TestWriterCustomPrefix tests unprefixed output with a default xmlns.
func TestWriterCustomPrefix(t *testing.T) {
	f := geom.NewFactory()
	w := NewWriter()
	w.Prefix = ""
	doc, err := w.Write(f.CreatePoint(geom.Coordinate{X: 1, Y: 2}))
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	expected := `<Point xmlns="http://www.opengis.net/gml"><coord><X>1</X><Y>2</Y></coord></Point>`
	if doc != expected {
		t.Errorf("Expected %s\ngot      %s", expected, doc)
	}

	// Default-namespace documents decode the same as prefixed ones.
	decoded, err := NewParser().ReadString(doc)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded.(*geom.Point).Coord != (geom.Coordinate{X: 1, Y: 2}) {
		t.Errorf("unexpected coordinate: %v", decoded.(*geom.Point).Coord)
	}
}
