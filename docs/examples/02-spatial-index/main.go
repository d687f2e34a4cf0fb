package main

import (
	"fmt"
	"log"

	"github.com/a7medJamal/gml/pkg/geom"
	"github.com/a7medJamal/gml/pkg/gml"
)

const doc = `<?xml version="1.0" encoding="UTF-8"?>
<gml:MultiGeometry xmlns:gml="http://www.opengis.net/gml">
  <gml:geometryMember>
    <gml:Point><gml:coord><gml:X>-71.06</gml:X><gml:Y>42.36</gml:Y></gml:coord></gml:Point>
  </gml:geometryMember>
  <gml:geometryMember>
    <gml:Point><gml:coord><gml:X>-74.01</gml:X><gml:Y>40.71</gml:Y></gml:coord></gml:Point>
  </gml:geometryMember>
  <gml:geometryMember>
    <gml:LineString>
      <gml:coord><gml:X>-71.10</gml:X><gml:Y>42.30</gml:Y></gml:coord>
      <gml:coord><gml:X>-71.00</gml:X><gml:Y>42.40</gml:Y></gml:coord>
    </gml:LineString>
  </gml:geometryMember>
</gml:MultiGeometry>`

func main() {
	g, err := gml.NewParser().ReadString(doc)
	if err != nil {
		log.Fatal(err)
	}
	collection := g.(*geom.GeometryCollection)

	// Index the collection members
	idx := geom.NewIndex()
	for _, member := range collection.Geometries {
		idx.Insert(member)
	}
	fmt.Printf("Indexed %d geometries\n", idx.Len())

	// Query a viewport around Boston
	viewport := geom.NewBounds().
		ExtendCoordinate(geom.Coordinate{X: -72, Y: 41}).
		ExtendCoordinate(geom.Coordinate{X: -70, Y: 43})

	for _, hit := range idx.Search(viewport) {
		fmt.Printf("In viewport: %s %+v\n", hit.Type(), hit.Bounds())
	}
}
