package geom

import "math"

// Bounds is an axis-aligned rectangular extent.
//
// The zero value is not meaningful; use NewBounds to start from an empty
// extent and grow it with Extend / ExtendCoordinate.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewBounds returns an empty extent. Extending an empty extent with a
// coordinate yields the degenerate extent of that single coordinate.
func NewBounds() Bounds {
	return Bounds{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// IsEmpty reports whether the extent contains no points.
func (b Bounds) IsEmpty() bool {
	return b.MinX > b.MaxX || b.MinY > b.MaxY
}

// ExtendCoordinate grows the extent to include c.
func (b Bounds) ExtendCoordinate(c Coordinate) Bounds {
	return Bounds{
		MinX: math.Min(b.MinX, c.X),
		MinY: math.Min(b.MinY, c.Y),
		MaxX: math.Max(b.MaxX, c.X),
		MaxY: math.Max(b.MaxY, c.Y),
	}
}

// Extend grows the extent to include o.
func (b Bounds) Extend(o Bounds) Bounds {
	if o.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return o
	}
	return Bounds{
		MinX: math.Min(b.MinX, o.MinX),
		MinY: math.Min(b.MinY, o.MinY),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MaxY: math.Max(b.MaxY, o.MaxY),
	}
}

// Intersects reports whether the two extents share any point.
// Empty extents intersect nothing.
func (b Bounds) Intersects(o Bounds) bool {
	if b.IsEmpty() || o.IsEmpty() {
		return false
	}
	return b.MinX <= o.MaxX && o.MinX <= b.MaxX &&
		b.MinY <= o.MaxY && o.MinY <= b.MaxY
}
