package geom

// ValidateCoordinate validates a single coordinate pair against geographic
// bounds, interpreting X as longitude and Y as latitude.
func ValidateCoordinate(c Coordinate) error {
	if c.Y < -90.0 || c.Y > 90.0 {
		return &ErrInvalidCoordinate{X: c.X, Y: c.Y}
	}
	if c.X < -180.0 || c.X > 180.0 {
		return &ErrInvalidCoordinate{X: c.X, Y: c.Y}
	}
	return nil
}

// ValidateGeometry validates every coordinate of a geometry recursively.
//
// Structural permissiveness is deliberate: empty line strings, unclosed
// rings and polygons without a shell all pass. Only coordinate range and
// nil members are rejected. Consumers needing stricter rules (closure,
// winding, self-intersection) must layer them on top.
func ValidateGeometry(g Geometry) error {
	if g == nil {
		return &ErrInvalidGeometry{Reason: "geometry is nil"}
	}

	switch gg := g.(type) {
	case *Point:
		return ValidateCoordinate(gg.Coord)
	case *LineString:
		return validateCoords(gg.Type(), gg.Coords)
	case *LinearRing:
		return validateCoords(gg.Type(), gg.Coords)
	case *Polygon:
		if gg.Shell != nil {
			if err := validateCoords(gg.Type(), gg.Shell.Coords); err != nil {
				return err
			}
		}
		for _, hole := range gg.Holes {
			if hole == nil {
				return &ErrInvalidGeometry{Type: gg.Type(), Reason: "nil interior ring"}
			}
			if err := validateCoords(gg.Type(), hole.Coords); err != nil {
				return err
			}
		}
		return nil
	case *MultiPoint:
		for _, p := range gg.Points {
			if p == nil {
				return &ErrInvalidGeometry{Type: gg.Type(), Reason: "nil member"}
			}
			if err := ValidateCoordinate(p.Coord); err != nil {
				return err
			}
		}
		return nil
	case *MultiLineString:
		for _, l := range gg.Lines {
			if l == nil {
				return &ErrInvalidGeometry{Type: gg.Type(), Reason: "nil member"}
			}
			if err := validateCoords(gg.Type(), l.Coords); err != nil {
				return err
			}
		}
		return nil
	case *MultiPolygon:
		for _, p := range gg.Polygons {
			if p == nil {
				return &ErrInvalidGeometry{Type: gg.Type(), Reason: "nil member"}
			}
			if err := ValidateGeometry(p); err != nil {
				return err
			}
		}
		return nil
	case *GeometryCollection:
		for _, member := range gg.Geometries {
			if err := ValidateGeometry(member); err != nil {
				return err
			}
		}
		return nil
	}
	return &ErrInvalidGeometry{Reason: "unknown geometry variant"}
}

func validateCoords(t GeometryType, coords []Coordinate) error {
	for _, c := range coords {
		if err := ValidateCoordinate(c); err != nil {
			return &ErrInvalidGeometry{Type: t, Reason: err.Error()}
		}
	}
	return nil
}
