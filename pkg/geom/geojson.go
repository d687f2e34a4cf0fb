package geom

import (
	"encoding/json"
)

// GeoJSON encoding (RFC 7946) for every geometry variant. Positions are
// emitted as [x, y]; empty geometries encode with empty coordinate arrays.

type geojsonGeometry struct {
	Type        string      `json:"type"`
	Coordinates interface{} `json:"coordinates"`
}

type geojsonCollection struct {
	Type       string     `json:"type"`
	Geometries []Geometry `json:"geometries"`
}

func position(c Coordinate) [2]float64 {
	return [2]float64{c.X, c.Y}
}

func positions(coords []Coordinate) [][2]float64 {
	out := make([][2]float64, len(coords))
	for i, c := range coords {
		out[i] = position(c)
	}
	return out
}

func polygonRings(p *Polygon) [][][2]float64 {
	rings := make([][][2]float64, 0, 1+len(p.Holes))
	if p.Shell != nil {
		rings = append(rings, positions(p.Shell.Coords))
	}
	for _, hole := range p.Holes {
		rings = append(rings, positions(hole.Coords))
	}
	return rings
}

// MarshalJSON encodes the point as a GeoJSON Point.
func (p *Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(geojsonGeometry{Type: "Point", Coordinates: position(p.Coord)})
}

// MarshalJSON encodes the line string as a GeoJSON LineString.
func (l *LineString) MarshalJSON() ([]byte, error) {
	return json.Marshal(geojsonGeometry{Type: "LineString", Coordinates: positions(l.Coords)})
}

// MarshalJSON encodes the ring as a GeoJSON LineString. GeoJSON has no
// ring type of its own; rings only appear nested inside polygons.
func (r *LinearRing) MarshalJSON() ([]byte, error) {
	return json.Marshal(geojsonGeometry{Type: "LineString", Coordinates: positions(r.Coords)})
}

// MarshalJSON encodes the polygon as a GeoJSON Polygon, shell first.
func (p *Polygon) MarshalJSON() ([]byte, error) {
	return json.Marshal(geojsonGeometry{Type: "Polygon", Coordinates: polygonRings(p)})
}

// MarshalJSON encodes the collection as a GeoJSON MultiPoint.
func (m *MultiPoint) MarshalJSON() ([]byte, error) {
	coords := make([][2]float64, len(m.Points))
	for i, p := range m.Points {
		coords[i] = position(p.Coord)
	}
	return json.Marshal(geojsonGeometry{Type: "MultiPoint", Coordinates: coords})
}

// MarshalJSON encodes the collection as a GeoJSON MultiLineString.
func (m *MultiLineString) MarshalJSON() ([]byte, error) {
	coords := make([][][2]float64, len(m.Lines))
	for i, l := range m.Lines {
		coords[i] = positions(l.Coords)
	}
	return json.Marshal(geojsonGeometry{Type: "MultiLineString", Coordinates: coords})
}

// MarshalJSON encodes the collection as a GeoJSON MultiPolygon.
func (m *MultiPolygon) MarshalJSON() ([]byte, error) {
	coords := make([][][][2]float64, len(m.Polygons))
	for i, p := range m.Polygons {
		coords[i] = polygonRings(p)
	}
	return json.Marshal(geojsonGeometry{Type: "MultiPolygon", Coordinates: coords})
}

// MarshalJSON encodes the collection as a GeoJSON GeometryCollection.
func (g *GeometryCollection) MarshalJSON() ([]byte, error) {
	members := g.Geometries
	if members == nil {
		members = []Geometry{}
	}
	return json.Marshal(geojsonCollection{Type: "GeometryCollection", Geometries: members})
}
