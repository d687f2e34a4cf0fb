package geom

import (
	"github.com/dhconnelly/rtreego"
)

// Index provides fast spatial queries over a collection of geometries.
//
// Geometries are stored in an R-tree keyed by their Bounds, so queries
// over a search extent are O(log N) instead of a linear scan. Typical use
// is indexing the members of a large decoded collection and pulling only
// those intersecting a viewport.
//
// Index is not safe for concurrent mutation.
type Index struct {
	rtree *rtreego.Rtree
	size  int
}

// indexEntry adapts a Geometry to the rtreego.Spatial interface.
type indexEntry struct {
	g Geometry
}

// minExtent gives degenerate extents a minimal thickness so point and
// vertical/horizontal geometries index cleanly.
const minExtent = 1e-9

func (e indexEntry) Bounds() rtreego.Rect {
	b := e.g.Bounds()
	lengths := []float64{b.MaxX - b.MinX, b.MaxY - b.MinY}
	for i := range lengths {
		if lengths[i] < minExtent {
			lengths[i] = minExtent
		}
	}
	rect, _ := rtreego.NewRect(rtreego.Point{b.MinX, b.MinY}, lengths)
	return rect
}

// NewIndex returns an empty spatial index.
func NewIndex() *Index {
	return &Index{rtree: rtreego.NewTree(2, 25, 50)}
}

// Insert adds a geometry to the index. Geometries with an empty extent
// (for example an empty LineString) are not indexed.
func (i *Index) Insert(g Geometry) {
	if g == nil || g.Bounds().IsEmpty() {
		return
	}
	i.rtree.Insert(indexEntry{g: g})
	i.size++
}

// Search returns all indexed geometries whose bounds intersect the given
// extent. Order is unspecified.
func (i *Index) Search(b Bounds) []Geometry {
	if b.IsEmpty() {
		return nil
	}
	lengths := []float64{b.MaxX - b.MinX, b.MaxY - b.MinY}
	for j := range lengths {
		if lengths[j] < minExtent {
			lengths[j] = minExtent
		}
	}
	rect, err := rtreego.NewRect(rtreego.Point{b.MinX, b.MinY}, lengths)
	if err != nil {
		return nil
	}
	hits := i.rtree.SearchIntersect(rect)
	out := make([]Geometry, 0, len(hits))
	for _, hit := range hits {
		out = append(out, hit.(indexEntry).g)
	}
	return out
}

// Len returns the number of indexed geometries.
func (i *Index) Len() int {
	return i.size
}
