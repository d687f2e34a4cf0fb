package geom

// Equal reports structural equality of two geometries: same variant, same
// coordinate sequences in the same order, recursively for aggregates.
// Two nil geometries are equal.
func Equal(a, b Geometry) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}
	switch ga := a.(type) {
	case *Point:
		return ga.Coord == b.(*Point).Coord
	case *LineString:
		return coordsEqual(ga.Coords, b.(*LineString).Coords)
	case *LinearRing:
		return coordsEqual(ga.Coords, b.(*LinearRing).Coords)
	case *Polygon:
		gb := b.(*Polygon)
		if !ringEqual(ga.Shell, gb.Shell) {
			return false
		}
		if len(ga.Holes) != len(gb.Holes) {
			return false
		}
		for i := range ga.Holes {
			if !ringEqual(ga.Holes[i], gb.Holes[i]) {
				return false
			}
		}
		return true
	case *MultiPoint:
		gb := b.(*MultiPoint)
		if len(ga.Points) != len(gb.Points) {
			return false
		}
		for i := range ga.Points {
			if ga.Points[i].Coord != gb.Points[i].Coord {
				return false
			}
		}
		return true
	case *MultiLineString:
		gb := b.(*MultiLineString)
		if len(ga.Lines) != len(gb.Lines) {
			return false
		}
		for i := range ga.Lines {
			if !coordsEqual(ga.Lines[i].Coords, gb.Lines[i].Coords) {
				return false
			}
		}
		return true
	case *MultiPolygon:
		gb := b.(*MultiPolygon)
		if len(ga.Polygons) != len(gb.Polygons) {
			return false
		}
		for i := range ga.Polygons {
			if !Equal(ga.Polygons[i], gb.Polygons[i]) {
				return false
			}
		}
		return true
	case *GeometryCollection:
		gb := b.(*GeometryCollection)
		if len(ga.Geometries) != len(gb.Geometries) {
			return false
		}
		for i := range ga.Geometries {
			if !Equal(ga.Geometries[i], gb.Geometries[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func coordsEqual(a, b []Coordinate) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func ringEqual(a, b *LinearRing) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return coordsEqual(a.Coords, b.Coords)
}
