package gml

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/a7medJamal/gml/pkg/geom"
)

// Writer encodes geometry values as GML 2.1.1 markup using the coord
// coordinate encoding, the inverse of what Parser accepts.
type Writer struct {
	// Namespace is the namespace URI declared on the root element.
	Namespace string

	// Prefix is the namespace prefix used on every element. Empty means
	// elements are written unprefixed with a default xmlns declaration.
	Prefix string
}

// NewWriter returns a writer for the standard GML namespace and the
// conventional gml prefix.
func NewWriter() *Writer {
	return &Writer{Namespace: DefaultNamespace, Prefix: "gml"}
}

// Write encodes g as a GML document fragment.
func (w *Writer) Write(g geom.Geometry) (string, error) {
	var sb strings.Builder
	if err := w.writeGeometry(&sb, g, true); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (w *Writer) writeGeometry(sb *strings.Builder, g geom.Geometry, root bool) error {
	switch gg := g.(type) {
	case *geom.Point:
		w.open(sb, "Point", root)
		w.writeCoord(sb, gg.Coord)
		w.close(sb, "Point")
	case *geom.LineString:
		w.open(sb, "LineString", root)
		w.writeCoords(sb, gg.Coords)
		w.close(sb, "LineString")
	case *geom.LinearRing:
		w.open(sb, "LinearRing", root)
		w.writeCoords(sb, gg.Coords)
		w.close(sb, "LinearRing")
	case *geom.Polygon:
		w.open(sb, "Polygon", root)
		if gg.Shell != nil {
			w.open(sb, "outerBoundaryIs", false)
			w.open(sb, "LinearRing", false)
			w.writeCoords(sb, gg.Shell.Coords)
			w.close(sb, "LinearRing")
			w.close(sb, "outerBoundaryIs")
		}
		for _, hole := range gg.Holes {
			w.open(sb, "innerBoundaryIs", false)
			w.open(sb, "LinearRing", false)
			w.writeCoords(sb, hole.Coords)
			w.close(sb, "LinearRing")
			w.close(sb, "innerBoundaryIs")
		}
		w.close(sb, "Polygon")
	case *geom.MultiPoint:
		w.open(sb, "MultiPoint", root)
		for _, p := range gg.Points {
			w.open(sb, "pointMember", false)
			if err := w.writeGeometry(sb, p, false); err != nil {
				return err
			}
			w.close(sb, "pointMember")
		}
		w.close(sb, "MultiPoint")
	case *geom.MultiLineString:
		w.open(sb, "MultiLineString", root)
		for _, l := range gg.Lines {
			w.open(sb, "lineStringMember", false)
			if err := w.writeGeometry(sb, l, false); err != nil {
				return err
			}
			w.close(sb, "lineStringMember")
		}
		w.close(sb, "MultiLineString")
	case *geom.MultiPolygon:
		w.open(sb, "MultiPolygon", root)
		for _, p := range gg.Polygons {
			w.open(sb, "polygonMember", false)
			if err := w.writeGeometry(sb, p, false); err != nil {
				return err
			}
			w.close(sb, "polygonMember")
		}
		w.close(sb, "MultiPolygon")
	case *geom.GeometryCollection:
		w.open(sb, "MultiGeometry", root)
		for _, member := range gg.Geometries {
			w.open(sb, "geometryMember", false)
			if err := w.writeGeometry(sb, member, false); err != nil {
				return err
			}
			w.close(sb, "geometryMember")
		}
		w.close(sb, "MultiGeometry")
	default:
		return fmt.Errorf("cannot encode geometry: %v", g)
	}
	return nil
}

func (w *Writer) qualify(local string) string {
	if w.Prefix == "" {
		return local
	}
	return w.Prefix + ":" + local
}

func (w *Writer) open(sb *strings.Builder, local string, root bool) {
	sb.WriteByte('<')
	sb.WriteString(w.qualify(local))
	if root {
		if w.Prefix == "" {
			fmt.Fprintf(sb, ` xmlns=%q`, w.Namespace)
		} else {
			fmt.Fprintf(sb, ` xmlns:%s=%q`, w.Prefix, w.Namespace)
		}
	}
	sb.WriteByte('>')
}

func (w *Writer) close(sb *strings.Builder, local string) {
	sb.WriteString("</")
	sb.WriteString(w.qualify(local))
	sb.WriteByte('>')
}

func (w *Writer) writeCoord(sb *strings.Builder, c geom.Coordinate) {
	w.open(sb, "coord", false)
	w.open(sb, "X", false)
	sb.WriteString(strconv.FormatFloat(c.X, 'g', -1, 64))
	w.close(sb, "X")
	w.open(sb, "Y", false)
	sb.WriteString(strconv.FormatFloat(c.Y, 'g', -1, 64))
	w.close(sb, "Y")
	w.close(sb, "coord")
}

func (w *Writer) writeCoords(sb *strings.Builder, coords []geom.Coordinate) {
	for _, c := range coords {
		w.writeCoord(sb, c)
	}
}
