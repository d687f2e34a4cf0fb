// Package gml decodes the GML 2.1.1 geometry vocabulary into an
// in-memory geometry object model.
//
// The supported subset is the coord-based encoding of Point, LineString,
// Polygon, MultiPoint, MultiLineString, MultiPolygon and the
// MultiGeometry collection wrapper. Element names are matched
// case-sensitively against a single configurable namespace URI.
//
// # Basic Usage
//
//	p := gml.NewParser()
//	g, err := p.ReadString(doc)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	switch g := g.(type) {
//	case *geom.Point:
//	    fmt.Println("point at", g.Coord)
//	case *geom.Polygon:
//	    fmt.Println("polygon with", len(g.Holes), "holes")
//	}
//
// # Options
//
// Namespace and nesting limits are per-parser configuration:
//
//	g, err := p.ReadWithOptions(r, gml.ParseOptions{
//	    Namespace: "http://www.opengis.net/gml",
//	    MaxDepth:  10,
//	})
//
// # Error Handling
//
// Any input that does not conform to the expected grammar aborts the
// whole parse: no recovery, no partial geometry. The concrete error
// types live in the internal decoder and distinguish unsupported
// elements, truncated documents, bad coordinate text and excessive
// nesting.
//
// # Encoding
//
// Writer produces the same subset back out, which also gives round-trip
// coverage in tests:
//
//	w := gml.NewWriter()
//	doc, err := w.Write(g)
package gml
