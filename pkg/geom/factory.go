package geom

// Factory assembles geometry values from decoded primitives.
//
// The factory performs construction only. In particular it does not check
// ring closure or polygon well-formedness; GML 2.1.1 readers are
// traditionally permissive and leave such checks to the consuming layer.
type Factory struct{}

// NewFactory returns a geometry factory.
func NewFactory() *Factory {
	return &Factory{}
}

// CreatePoint builds a Point at c.
func (f *Factory) CreatePoint(c Coordinate) *Point {
	return &Point{Coord: c}
}

// CreateLineString builds a LineString over coords, taking ownership of
// the slice. A nil or empty slice yields an empty LineString.
func (f *Factory) CreateLineString(coords []Coordinate) *LineString {
	return &LineString{Coords: coords}
}

// CreateLinearRing reinterprets coords as a ring. Closure is not checked.
func (f *Factory) CreateLinearRing(coords []Coordinate) *LinearRing {
	return &LinearRing{LineString: LineString{Coords: coords}}
}

// CreatePolygon builds a Polygon from an exterior shell and interior
// holes. A nil shell is passed through as-is; well-formedness is the
// consumer's concern.
func (f *Factory) CreatePolygon(shell *LinearRing, holes []*LinearRing) *Polygon {
	return &Polygon{Shell: shell, Holes: holes}
}

// CreateMultiPoint builds a MultiPoint preserving member order.
func (f *Factory) CreateMultiPoint(points []*Point) *MultiPoint {
	return &MultiPoint{Points: points}
}

// CreateMultiLineString builds a MultiLineString preserving member order.
func (f *Factory) CreateMultiLineString(lines []*LineString) *MultiLineString {
	return &MultiLineString{Lines: lines}
}

// CreateMultiPolygon builds a MultiPolygon preserving member order.
func (f *Factory) CreateMultiPolygon(polygons []*Polygon) *MultiPolygon {
	return &MultiPolygon{Polygons: polygons}
}

// CreateGeometryCollection builds a GeometryCollection preserving member
// order. Members may themselves be collections.
func (f *Factory) CreateGeometryCollection(members []Geometry) *GeometryCollection {
	return &GeometryCollection{Geometries: members}
}
