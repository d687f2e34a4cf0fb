package parser

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/a7medJamal/gml/pkg/geom"
)

// GML 2.1.1 geometry element names (OGC 02-009 geometry.xsd).
// Matching is case-sensitive and namespace-qualified.
const (
	elemPoint           = "Point"
	elemLineString      = "LineString"
	elemLinearRing      = "LinearRing"
	elemPolygon         = "Polygon"
	elemMultiPoint      = "MultiPoint"
	elemMultiLineString = "MultiLineString"
	elemMultiPolygon    = "MultiPolygon"
	elemMultiGeometry   = "MultiGeometry"

	elemCoord = "coord"
	elemX     = "X"
	elemY     = "Y"

	elemOuterBoundaryIs  = "outerBoundaryIs"
	elemInnerBoundaryIs  = "innerBoundaryIs"
	elemPointMember      = "pointMember"
	elemLineStringMember = "lineStringMember"
	elemPolygonMember    = "polygonMember"
)

// DefaultNamespace is the GML 2.x namespace URI.
const DefaultNamespace = "http://www.opengis.net/gml"

// DefaultMaxDepth bounds nesting of MultiGeometry collections.
const DefaultMaxDepth = 100

// Decoder decodes one GML 2.1.1 geometry from an XML token stream.
//
// The decoder is a recursive-descent parser with one reader per geometry
// kind. Each reader drives the cursor over exactly its element's subtree
// and builds its value bottom-up through the factory. Trailing content
// after the first geometry element is never inspected.
//
// A Decoder holds no state between calls and may be reused, but not
// concurrently.
type Decoder struct {
	// Namespace is the namespace URI geometry elements must carry.
	Namespace string

	// MaxDepth bounds nesting of aggregate geometries.
	MaxDepth int

	// Factory assembles the decoded geometry values.
	Factory *geom.Factory
}

// NewDecoder returns a decoder for the standard GML namespace.
func NewDecoder() *Decoder {
	return &Decoder{
		Namespace: DefaultNamespace,
		MaxDepth:  DefaultMaxDepth,
		Factory:   geom.NewFactory(),
	}
}

// Decode reads the first geometry element from r.
func (d *Decoder) Decode(r io.Reader) (geom.Geometry, error) {
	return d.decode(newCursor(r))
}

// DecodeString reads the first geometry element from a document string.
func (d *Decoder) DecodeString(doc string) (geom.Geometry, error) {
	return d.Decode(strings.NewReader(doc))
}

// decode skips prologue nodes (XML declaration, whitespace, comments)
// and dispatches on the first start-element.
func (d *Decoder) decode(cur *cursor) (geom.Geometry, error) {
	for {
		if err := cur.advance(); err != nil {
			return nil, &ErrTruncatedElement{Element: "document", Err: err}
		}
		if cur.kind == nodeStart {
			break
		}
	}
	return d.readGeometry(cur, 0)
}

// readGeometry dispatches on the current start-element. The supported
// dispatch set is closed: the seven top-level GML 2.1.1 geometry kinds.
func (d *Decoder) readGeometry(cur *cursor, depth int) (geom.Geometry, error) {
	if depth > d.MaxDepth {
		return nil, &ErrDepthExceeded{Limit: d.MaxDepth}
	}
	if cur.name.Space != d.Namespace {
		return nil, &ErrUnsupportedElement{Name: qualified(cur.name)}
	}
	// Errors are checked before the concrete result is converted to the
	// Geometry interface, so a failed parse always returns a nil interface.
	switch cur.name.Local {
	case elemPoint:
		p, err := d.readPoint(cur)
		if err != nil {
			return nil, err
		}
		return p, nil
	case elemLineString:
		ls, err := d.readLineString(cur)
		if err != nil {
			return nil, err
		}
		return ls, nil
	case elemPolygon:
		p, err := d.readPolygon(cur)
		if err != nil {
			return nil, err
		}
		return p, nil
	case elemMultiPoint:
		m, err := d.readMultiPoint(cur)
		if err != nil {
			return nil, err
		}
		return m, nil
	case elemMultiLineString:
		m, err := d.readMultiLineString(cur)
		if err != nil {
			return nil, err
		}
		return m, nil
	case elemMultiPolygon:
		m, err := d.readMultiPolygon(cur)
		if err != nil {
			return nil, err
		}
		return m, nil
	case elemMultiGeometry:
		gc, err := d.readGeometryCollection(cur, depth)
		if err != nil {
			return nil, err
		}
		return gc, nil
	default:
		return nil, &ErrUnsupportedElement{Name: qualified(cur.name)}
	}
}

// readCoordinate decodes one coord element's X/Y children. Either may
// appear first. On return the cursor sits on the coord end tag.
func (d *Decoder) readCoordinate(cur *cursor) (geom.Coordinate, error) {
	var c geom.Coordinate
	for {
		if err := cur.advance(); err != nil {
			return geom.Coordinate{}, &ErrTruncatedElement{Element: elemCoord, Err: err}
		}
		switch {
		case cur.kind == nodeStart && d.is(cur.name, elemX):
			v, err := d.readOrdinate(cur, elemX)
			if err != nil {
				return geom.Coordinate{}, err
			}
			c.X = v
		case cur.kind == nodeStart && d.is(cur.name, elemY):
			v, err := d.readOrdinate(cur, elemY)
			if err != nil {
				return geom.Coordinate{}, err
			}
			c.Y = v
		case cur.kind == nodeEnd && d.is(cur.name, elemCoord):
			return c, nil
		}
	}
}

// readOrdinate advances onto the text child of an X or Y element and
// parses it as a float64.
func (d *Decoder) readOrdinate(cur *cursor, elem string) (float64, error) {
	if err := cur.advance(); err != nil {
		return 0, &ErrTruncatedElement{Element: elem, Err: err}
	}
	if cur.kind != nodeText {
		// Empty element such as <gml:X/>.
		return 0, &ErrInvalidCoordinateText{Text: ""}
	}
	text := strings.TrimSpace(cur.text)
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &ErrInvalidCoordinateText{Text: text, Err: err}
	}
	return v, nil
}

// readPoint consumes nodes until the point's coord element, decodes it
// and returns. The point's own end tag is left for the caller's loop; by
// well-formedness nothing of interest precedes it.
func (d *Decoder) readPoint(cur *cursor) (*geom.Point, error) {
	for {
		if err := cur.advance(); err != nil {
			return nil, &ErrTruncatedElement{Element: elemPoint, Err: err}
		}
		if cur.kind == nodeStart && d.is(cur.name, elemCoord) {
			c, err := d.readCoordinate(cur)
			if err != nil {
				return nil, err
			}
			return d.Factory.CreatePoint(c), nil
		}
	}
}

// readLineString accumulates coord children in document order until the
// first end-element. For valid input that end tag closes the line string
// itself (or the ring, when called through readLinearRing). A line
// string with no coords is legal and yields an empty sequence.
func (d *Decoder) readLineString(cur *cursor) (*geom.LineString, error) {
	var coords []geom.Coordinate
	for {
		if err := cur.advance(); err != nil {
			return nil, &ErrTruncatedElement{Element: elemLineString, Err: err}
		}
		switch {
		case cur.kind == nodeStart && d.is(cur.name, elemCoord):
			c, err := d.readCoordinate(cur)
			if err != nil {
				return nil, err
			}
			coords = append(coords, c)
		case cur.kind == nodeEnd:
			return d.Factory.CreateLineString(coords), nil
		}
	}
}

// readLinearRing reads a coordinate sequence and reinterprets it as a
// ring. Closure is not checked here; see geom.Factory.
func (d *Decoder) readLinearRing(cur *cursor) (*geom.LinearRing, error) {
	ls, err := d.readLineString(cur)
	if err != nil {
		return nil, err
	}
	return d.Factory.CreateLinearRing(ls.Coords), nil
}

// readPolygon reads one optional outerBoundaryIs ring and any number of
// innerBoundaryIs rings, terminating on the Polygon end tag. A repeated
// outer boundary is not expected in valid input; the last one wins.
func (d *Decoder) readPolygon(cur *cursor) (*geom.Polygon, error) {
	var shell *geom.LinearRing
	var holes []*geom.LinearRing
	for {
		if err := cur.advance(); err != nil {
			return nil, &ErrTruncatedElement{Element: elemPolygon, Err: err}
		}
		switch {
		case cur.kind == nodeStart && d.is(cur.name, elemOuterBoundaryIs):
			ring, err := d.readLinearRing(cur)
			if err != nil {
				return nil, err
			}
			shell = ring
		case cur.kind == nodeStart && d.is(cur.name, elemInnerBoundaryIs):
			ring, err := d.readLinearRing(cur)
			if err != nil {
				return nil, err
			}
			holes = append(holes, ring)
		case cur.kind == nodeEnd && d.is(cur.name, elemPolygon):
			// A nil shell is passed through; polygon well-formedness
			// is the factory's and consumer's concern.
			return d.Factory.CreatePolygon(shell, holes), nil
		}
	}
}

// readMultiPoint accumulates pointMember children in document order,
// terminating on the MultiPoint end tag.
func (d *Decoder) readMultiPoint(cur *cursor) (*geom.MultiPoint, error) {
	var points []*geom.Point
	for {
		if err := cur.advance(); err != nil {
			return nil, &ErrTruncatedElement{Element: elemMultiPoint, Err: err}
		}
		switch {
		case cur.kind == nodeStart && d.is(cur.name, elemPointMember):
			p, err := d.readPoint(cur)
			if err != nil {
				return nil, err
			}
			points = append(points, p)
		case cur.kind == nodeEnd && d.is(cur.name, elemMultiPoint):
			return d.Factory.CreateMultiPoint(points), nil
		}
	}
}

// readMultiLineString accumulates lineStringMember children in document
// order, terminating on the MultiLineString end tag.
func (d *Decoder) readMultiLineString(cur *cursor) (*geom.MultiLineString, error) {
	var lines []*geom.LineString
	for {
		if err := cur.advance(); err != nil {
			return nil, &ErrTruncatedElement{Element: elemMultiLineString, Err: err}
		}
		switch {
		case cur.kind == nodeStart && d.is(cur.name, elemLineStringMember):
			l, err := d.readLineString(cur)
			if err != nil {
				return nil, err
			}
			lines = append(lines, l)
		case cur.kind == nodeEnd && d.is(cur.name, elemMultiLineString):
			return d.Factory.CreateMultiLineString(lines), nil
		}
	}
}

// readMultiPolygon accumulates polygonMember children in document order,
// terminating on the MultiPolygon end tag.
func (d *Decoder) readMultiPolygon(cur *cursor) (*geom.MultiPolygon, error) {
	var polygons []*geom.Polygon
	for {
		if err := cur.advance(); err != nil {
			return nil, &ErrTruncatedElement{Element: elemMultiPolygon, Err: err}
		}
		switch {
		case cur.kind == nodeStart && d.is(cur.name, elemPolygonMember):
			p, err := d.readPolygon(cur)
			if err != nil {
				return nil, err
			}
			polygons = append(polygons, p)
		case cur.kind == nodeEnd && d.is(cur.name, elemMultiPolygon):
			return d.Factory.CreateMultiPolygon(polygons), nil
		}
	}
}

// readGeometryCollection generalizes the Multi* pattern: any supported
// geometry start-element becomes a member via readGeometry, including
// nested MultiGeometry elements. This is the only reader that recurses
// without bound in the input, so depth is checked on every dispatch.
func (d *Decoder) readGeometryCollection(cur *cursor, depth int) (*geom.GeometryCollection, error) {
	var members []geom.Geometry
	for {
		if err := cur.advance(); err != nil {
			return nil, &ErrTruncatedElement{Element: elemMultiGeometry, Err: err}
		}
		switch {
		case cur.kind == nodeStart && cur.name.Space == d.Namespace && isGeometryElement(cur.name.Local):
			g, err := d.readGeometry(cur, depth+1)
			if err != nil {
				return nil, err
			}
			members = append(members, g)
		case cur.kind == nodeEnd && d.is(cur.name, elemMultiGeometry):
			return d.Factory.CreateGeometryCollection(members), nil
		}
	}
}

// is reports whether a qualified name matches local within the
// configured namespace.
func (d *Decoder) is(name xml.Name, local string) bool {
	return name.Local == local && name.Space == d.Namespace
}

// isGeometryElement reports whether local is one of the seven supported
// geometry element names.
func isGeometryElement(local string) bool {
	switch local {
	case elemPoint, elemLineString, elemPolygon,
		elemMultiPoint, elemMultiLineString, elemMultiPolygon,
		elemMultiGeometry:
		return true
	}
	return false
}

func qualified(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}
