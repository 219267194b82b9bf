package internal

// The boundary seeds the DCEL before decomposition. It consists of three
// groups of half-edges:
//
//	Forward:  p0→p1→…→p(n-1), each linked to its predecessor
//	Return:   p(n-1)→…→p1, each the twin of the matching forward edge
//	Closing:  a twin pair between p0 and p(n-1), hooked onto the ends of the
//	          two chains
//
// The return chain makes the outer loop a degenerate one that retraces the
// forward chain rather than a proper outer face.
type Boundary struct {
	Forward []HalfEdgeID
	Return  []HalfEdgeID
	Closing [2]HalfEdgeID
}

func BuildBoundary(store *DCEL, points []Point) Boundary {
	if len(points) < 2 {
		fatalWrapf(ErrDegeneratePolygon, "boundary needs at least 2 points, got %d", len(points))
	}
	n := len(points)
	var boundary Boundary

	prev := NoHalfEdge
	for _, p := range points[:n-1] {
		prev = store.AddHalfEdge(NoHalfEdge, prev, store.AddVertex(p))
		boundary.Forward = append(boundary.Forward, prev)
	}

	prev = NoHalfEdge
	twin := len(boundary.Forward) - 1
	for i := n - 1; i > 0; i-- {
		prev = store.AddHalfEdge(boundary.Forward[twin], prev, store.AddVertex(points[i]))
		boundary.Return = append(boundary.Return, prev)
		twin--
	}

	first := store.AddVertex(points[0])
	last := store.AddVertex(points[n-1])
	closing := store.AddHalfEdge(NoHalfEdge, boundary.Return[len(boundary.Return)-1], first)
	boundary.Closing = [2]HalfEdgeID{
		closing,
		store.AddHalfEdge(closing, boundary.Forward[len(boundary.Forward)-1], last),
	}
	return boundary
}

// Every half-edge the boundary created, in creation order.
func (b Boundary) HalfEdges() []HalfEdgeID {
	edges := make([]HalfEdgeID, 0, len(b.Forward)+len(b.Return)+2)
	edges = append(edges, b.Forward...)
	edges = append(edges, b.Return...)
	return append(edges, b.Closing[0], b.Closing[1])
}
