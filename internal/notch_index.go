package internal

import "github.com/peterstace/simplefeatures/rtree"

// Spatial index over the notches that threaten a candidate chain. Querying it
// with the chain's bounding rectangle is the cheap rejection step; whatever
// survives still has to pass the exact point-in-polygon test.
//
// Record IDs are the positions of the notches in the remaining polygon ring.
type notchIndex struct {
	tree   *rtree.RTree
	points map[int]Point
}

func newNotchIndex(ring []Point, positions []int) *notchIndex {
	items := make([]rtree.BulkItem, len(positions))
	points := make(map[int]Point, len(positions))
	for i, pos := range positions {
		p := ring[pos]
		points[pos] = p
		items[i] = rtree.BulkItem{Box: pointBox(p), RecordID: pos}
	}
	return &notchIndex{tree: rtree.BulkLoad(items), points: points}
}

func (idx *notchIndex) Len() int {
	return len(idx.points)
}

// Drop every notch that is not inside the chain: first those outside its
// bounding rectangle, then those outside the chain polygon itself. Reports
// whether any notch is left.
func (idx *notchIndex) Reject(chain Polygon) bool {
	rect := MinAreaRect(chain.Points)
	inRect := make(map[int]struct{})
	err := idx.tree.RangeSearch(rectBox(rect), func(pos int) error {
		inRect[pos] = struct{}{}
		return nil
	})
	if err != nil {
		fatalf("notch range search: %v", err)
	}

	for pos, p := range idx.points {
		if _, ok := inRect[pos]; !ok {
			delete(idx.points, pos)
			continue
		}
		if !chain.ContainsPointByEvenOdd(p) {
			delete(idx.points, pos)
		}
	}
	return len(idx.points) > 0
}

func pointBox(p Point) rtree.Box {
	x, y := float64(p.X), float64(p.Y)
	return rtree.Box{MinX: x, MinY: y, MaxX: x, MaxY: y}
}

func rectBox(rect Polygon) rtree.Box {
	r := BoundingRect(rect.Points)
	return r.Box()
}

func (r Rect) Box() rtree.Box {
	return rtree.Box{
		MinX: float64(r.MinX),
		MinY: float64(r.MinY),
		MaxX: float64(r.MaxX),
		MaxY: float64(r.MaxY),
	}
}
