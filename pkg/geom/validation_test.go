package geom

import (
	"errors"
	"testing"
)

// TestValidateCoordinate tests geographic range checks
func TestValidateCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		coord   Coordinate
		wantErr bool
	}{
		{"valid", Coordinate{X: -71.05, Y: 42.35}, false},
		{"x at bound", Coordinate{X: 180, Y: 0}, false},
		{"y at bound", Coordinate{X: 0, Y: -90}, false},
		{"x out of range", Coordinate{X: 181, Y: 0}, true},
		{"y out of range", Coordinate{X: 0, Y: 90.5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCoordinate(tt.coord)
			if (err != nil) != tt.wantErr {
				t.Errorf("Expected error=%v, got %v", tt.wantErr, err)
			}
			if tt.wantErr {
				var invalid *ErrInvalidCoordinate
				if !errors.As(err, &invalid) {
					t.Errorf("Expected ErrInvalidCoordinate, got %T", err)
				}
			}
		})
	}
}

// TestValidateGeometry tests recursive validation and its deliberate
// permissiveness for structurally degenerate geometries.
func TestValidateGeometry(t *testing.T) {
	f := NewFactory()
	tests := []struct {
		name     string
		geometry Geometry
		wantErr  bool
	}{
		{
			name:     "nil geometry",
			geometry: nil,
			wantErr:  true,
		},
		{
			name:     "empty linestring passes",
			geometry: f.CreateLineString(nil),
			wantErr:  false,
		},
		{
			name:     "polygon without shell passes",
			geometry: f.CreatePolygon(nil, nil),
			wantErr:  false,
		},
		{
			name: "unclosed ring passes",
			geometry: f.CreatePolygon(
				f.CreateLinearRing([]Coordinate{{X: 0, Y: 0}, {X: 1, Y: 1}}), nil),
			wantErr: false,
		},
		{
			name: "bad coordinate in hole",
			geometry: f.CreatePolygon(
				f.CreateLinearRing([]Coordinate{{X: 0, Y: 0}}),
				[]*LinearRing{f.CreateLinearRing([]Coordinate{{X: 200, Y: 0}})}),
			wantErr: true,
		},
		{
			name: "bad coordinate deep in a collection",
			geometry: f.CreateGeometryCollection([]Geometry{
				f.CreateGeometryCollection([]Geometry{
					f.CreatePoint(Coordinate{X: 0, Y: 91}),
				}),
			}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGeometry(tt.geometry)
			if (err != nil) != tt.wantErr {
				t.Errorf("Expected error=%v, got %v", tt.wantErr, err)
			}
		})
	}
}
