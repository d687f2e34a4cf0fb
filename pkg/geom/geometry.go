package geom

// GeometryType identifies the concrete variant of a Geometry value.
type GeometryType int

const (
	GeometryTypePoint GeometryType = iota + 1
	GeometryTypeLineString
	GeometryTypeLinearRing
	GeometryTypePolygon
	GeometryTypeMultiPoint
	GeometryTypeMultiLineString
	GeometryTypeMultiPolygon
	GeometryTypeGeometryCollection
)

func (t GeometryType) String() string {
	switch t {
	case GeometryTypePoint:
		return "Point"
	case GeometryTypeLineString:
		return "LineString"
	case GeometryTypeLinearRing:
		return "LinearRing"
	case GeometryTypePolygon:
		return "Polygon"
	case GeometryTypeMultiPoint:
		return "MultiPoint"
	case GeometryTypeMultiLineString:
		return "MultiLineString"
	case GeometryTypeMultiPolygon:
		return "MultiPolygon"
	case GeometryTypeGeometryCollection:
		return "GeometryCollection"
	default:
		return "Unknown"
	}
}

// Coordinate is an ordered (x, y) pair of double-precision ordinates.
// Coordinates are plain values; equality is value equality.
type Coordinate struct {
	X float64
	Y float64
}

// Geometry is the closed set of geometry variants produced by the decoder.
//
// The set is fixed: Point, LineString, LinearRing, Polygon, MultiPoint,
// MultiLineString, MultiPolygon and GeometryCollection. Consumers dispatch
// with a type switch over the concrete pointer types.
type Geometry interface {
	// Type returns the variant tag for this geometry.
	Type() GeometryType

	// Bounds returns the rectangular extent of this geometry.
	// Empty geometries return an empty Bounds.
	Bounds() Bounds

	sealed()
}

// Point is a single position.
type Point struct {
	Coord Coordinate
}

func (p *Point) Type() GeometryType { return GeometryTypePoint }
func (p *Point) sealed()            {}

func (p *Point) Bounds() Bounds {
	return NewBounds().ExtendCoordinate(p.Coord)
}

// LineString is an ordered coordinate sequence. Order is significant: it
// defines the direction of the path. The sequence may be empty.
type LineString struct {
	Coords []Coordinate
}

func (l *LineString) Type() GeometryType { return GeometryTypeLineString }
func (l *LineString) sealed()            {}

func (l *LineString) Bounds() Bounds {
	b := NewBounds()
	for _, c := range l.Coords {
		b = b.ExtendCoordinate(c)
	}
	return b
}

// LinearRing is a LineString whose first and last coordinate should
// coincide. Closure is not enforced here; consumers that need closed
// rings must check for themselves.
type LinearRing struct {
	LineString
}

func (r *LinearRing) Type() GeometryType { return GeometryTypeLinearRing }

// Polygon is one exterior ring with zero or more interior rings (holes).
// Ring order in Holes follows document order as read.
type Polygon struct {
	Shell *LinearRing
	Holes []*LinearRing
}

func (p *Polygon) Type() GeometryType { return GeometryTypePolygon }
func (p *Polygon) sealed()            {}

func (p *Polygon) Bounds() Bounds {
	if p.Shell == nil {
		return NewBounds()
	}
	// Holes lie inside the shell, the shell extent is the polygon extent.
	return p.Shell.Bounds()
}

// MultiPoint is an ordered collection of Points.
type MultiPoint struct {
	Points []*Point
}

func (m *MultiPoint) Type() GeometryType { return GeometryTypeMultiPoint }
func (m *MultiPoint) sealed()            {}

func (m *MultiPoint) Bounds() Bounds {
	b := NewBounds()
	for _, p := range m.Points {
		b = b.Extend(p.Bounds())
	}
	return b
}

// MultiLineString is an ordered collection of LineStrings.
type MultiLineString struct {
	Lines []*LineString
}

func (m *MultiLineString) Type() GeometryType { return GeometryTypeMultiLineString }
func (m *MultiLineString) sealed()            {}

func (m *MultiLineString) Bounds() Bounds {
	b := NewBounds()
	for _, l := range m.Lines {
		b = b.Extend(l.Bounds())
	}
	return b
}

// MultiPolygon is an ordered collection of Polygons.
type MultiPolygon struct {
	Polygons []*Polygon
}

func (m *MultiPolygon) Type() GeometryType { return GeometryTypeMultiPolygon }
func (m *MultiPolygon) sealed()            {}

func (m *MultiPolygon) Bounds() Bounds {
	b := NewBounds()
	for _, p := range m.Polygons {
		b = b.Extend(p.Bounds())
	}
	return b
}

// GeometryCollection is an ordered collection of geometries of any
// variant, including nested collections.
type GeometryCollection struct {
	Geometries []Geometry
}

func (g *GeometryCollection) Type() GeometryType { return GeometryTypeGeometryCollection }
func (g *GeometryCollection) sealed()            {}

func (g *GeometryCollection) Bounds() Bounds {
	b := NewBounds()
	for _, member := range g.Geometries {
		b = b.Extend(member.Bounds())
	}
	return b
}
