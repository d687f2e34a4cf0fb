package main

import (
	"fmt"
	"log"

	"github.com/a7medJamal/gml/pkg/geom"
	"github.com/a7medJamal/gml/pkg/gml"
)

const doc = `<?xml version="1.0" encoding="UTF-8"?>
<gml:Polygon xmlns:gml="http://www.opengis.net/gml">
  <gml:outerBoundaryIs>
    <gml:LinearRing>
      <gml:coord><gml:X>-71.1</gml:X><gml:Y>42.3</gml:Y></gml:coord>
      <gml:coord><gml:X>-71.0</gml:X><gml:Y>42.3</gml:Y></gml:coord>
      <gml:coord><gml:X>-71.0</gml:X><gml:Y>42.4</gml:Y></gml:coord>
      <gml:coord><gml:X>-71.1</gml:X><gml:Y>42.3</gml:Y></gml:coord>
    </gml:LinearRing>
  </gml:outerBoundaryIs>
</gml:Polygon>`

func main() {
	// Create parser
	p := gml.NewParser()

	// Decode the document
	g, err := p.ReadString(doc)
	if err != nil {
		log.Fatal(err)
	}

	// Print geometry info
	fmt.Printf("Geometry: %s\n", g.Type())

	bounds := g.Bounds()
	fmt.Printf("Bounds: [%.4f,%.4f] to [%.4f,%.4f]\n",
		bounds.MinX, bounds.MinY,
		bounds.MaxX, bounds.MaxY)

	if poly, ok := g.(*geom.Polygon); ok {
		fmt.Printf("Shell coords: %d\n", len(poly.Shell.Coords))
		fmt.Printf("Holes: %d\n", len(poly.Holes))
	}
}
