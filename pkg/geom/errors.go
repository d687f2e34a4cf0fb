package geom

import (
	"fmt"
)

// ErrInvalidCoordinate indicates a coordinate outside valid geographic bounds.
type ErrInvalidCoordinate struct {
	X, Y float64
}

func (e *ErrInvalidCoordinate) Error() string {
	return fmt.Sprintf("invalid coordinate: x=%f y=%f (x must be ±180, y must be ±90)",
		e.X, e.Y)
}

// ErrInvalidGeometry indicates a geometry that violates structural rules.
type ErrInvalidGeometry struct {
	Type   GeometryType
	Reason string
}

func (e *ErrInvalidGeometry) Error() string {
	if e.Type != 0 {
		return fmt.Sprintf("invalid geometry (%v): %s", e.Type, e.Reason)
	}
	return fmt.Sprintf("invalid geometry: %s", e.Reason)
}
