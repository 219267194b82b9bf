package internal

import (
	"log/slog"
)

// Decomposition of a simple polygon into near-convex fan pieces.
//
// Each round anchors a chain at the first vertex of the remaining polygon and
// grows it greedily while it stays a convex fan. Reflex vertices (notches)
// outside the chain that fall inside it make the chain shrink from its far
// end. A chain of three or more points is cut off with a diagonal between its
// first and last point, and the remaining polygon continues from the chain's
// last point.
//
// The working polygon only ever grows: when a piece is committed, a copy of
// its first point is appended, and the remaining polygon is tracked as a ring
// of indices into the working polygon. Without anchor rotation the ring is
// always a suffix of the working polygon.

type NotchTest int

const (
	// Notches are the reflex vertices of the remaining polygon.
	NotchReflex NotchTest = iota
	// Notches are found with the angle test, which never fires. Validation is
	// then a no-op and pieces are limited only by chain growth.
	NotchAngle
)

type Options struct {
	NotchTest NotchTest
}

// Diagonal inserted between two vertices, as its twin pair of half-edges.
type Diagonal struct {
	From, To   VertexID
	Edge, Twin HalfEdgeID
	// Index of the piece the diagonal cut off
	Piece int
}

type Result struct {
	Pieces    PolygonList
	DCEL      *DCEL
	Boundary  Boundary
	Diagonals []Diagonal
}

type engine struct {
	opts    Options
	store   *DCEL
	winding Winding
	working []Point
	// Remaining polygon as indices into working. ring[0] is the anchor.
	ring      []int
	pieces    PolygonList
	diagonals []Diagonal
	log       *slog.Logger
}

// Decompose the simple polygon given by points. Panics with a DecomposeError
// on degenerate input or if no progress can be made.
func Decompose(points []Point, opts Options) *Result {
	winding := validatePolygon(points)

	store := NewDCEL()
	boundary := BuildBoundary(store, points)

	e := &engine{
		opts:    opts,
		store:   store,
		winding: winding,
		working: append([]Point(nil), points...),
		ring:    make([]int, len(points)),
		log:     Logger(),
	}
	for i := range e.ring {
		e.ring[i] = i
	}
	e.run()

	e.log.Info("decomposed polygon",
		"vertices", len(points),
		"winding", winding.String(),
		"pieces", len(e.pieces),
		"diagonals", len(e.diagonals))

	return &Result{
		Pieces:    e.pieces,
		DCEL:      store,
		Boundary:  boundary,
		Diagonals: e.diagonals,
	}
}

func (e *engine) run() {
	// Consecutive anchors that produced no piece
	failures := 0
	for len(e.ring) > 3 {
		size := e.growChain()
		if size < len(e.ring) {
			size = e.shrinkChain(size)
		}

		if size <= 2 {
			failures++
			if failures >= len(e.ring) {
				fatalWrapf(ErrStalled, "no anchor of the remaining %d vertices yields a piece", len(e.ring))
			}
			e.rotateAnchor()
			continue
		}
		failures = 0
		e.commit(size)
	}

	if len(e.ring) == 3 {
		e.pieces = append(e.pieces, e.ringPolygon(3))
		e.log.Debug("final triangle", "piece", len(e.pieces)-1)
	}
}

func (e *engine) point(ringPos int) Point {
	return e.working[e.ring[ringPos]]
}

func (e *engine) reflex(p1, p2, p3 Point) bool {
	return IsReflexFor(e.winding, p1, p2, p3)
}

// Grow the chain ring[0:size] while it stays a convex fan around the anchor,
// both at its far end and against its closing edge. Returns the chain length.
func (e *engine) growChain() int {
	n := len(e.ring)
	first, second := e.point(0), e.point(1)
	size := 2
	for size < n {
		next := e.point(size)
		if e.reflex(e.point(size-2), e.point(size-1), next) ||
			e.reflex(e.point(size-1), next, first) ||
			e.reflex(next, first, second) {
			break
		}
		size++
	}
	e.log.Debug("grew chain", "anchor", e.point(0).ID, "size", size, "remaining", n)
	return size
}

// Shrink the chain until no notch outside it lies inside it. Returns the new
// chain length, which may drop to 2.
func (e *engine) shrinkChain(size int) int {
	notches := e.outsideNotches(size)
	if len(notches) == 0 {
		return size
	}

	ring := e.ringPolygon(len(e.ring)).Points
	idx := newNotchIndex(ring, notches)
	for idx.Len() > 0 && size > 2 {
		if idx.Reject(e.ringPolygon(size)) {
			size--
			e.log.Debug("shrank chain", "anchor", e.point(0).ID, "size", size, "threats", idx.Len())
		}
	}
	return size
}

// Ring positions of notches that are not part of the chain ring[0:size].
func (e *engine) outsideNotches(size int) []int {
	switch e.opts.NotchTest {
	case NotchAngle:
		// The historical notch search only looks at the points outside the
		// chain, as a polygon of their own.
		outside := e.ring[size:]
		points := make([]Point, len(outside))
		for i, idx := range outside {
			points[i] = e.working[idx]
		}
		found := FindNotches(points)
		for i := range found {
			found[i] += size
		}
		return found

	default:
		var found []int
		for _, pos := range FindReflexVertices(e.ringPolygon(len(e.ring)).Points, e.winding) {
			if pos >= size {
				found = append(found, pos)
			}
		}
		return found
	}
}

// Cut the chain ring[0:size] off the remaining polygon.
func (e *engine) commit(size int) {
	piece := e.ringPolygon(size)
	e.pieces = append(e.pieces, piece)
	pieceIndex := len(e.pieces) - 1

	if size == len(e.ring) {
		// The chain closes over the rest of the polygon. Its closing edge is
		// already on the boundary, so no diagonal is needed.
		e.ring = nil
		e.log.Debug("committed final piece", "piece", pieceIndex, "size", size)
		return
	}

	first := piece.Points[0]
	last := piece.Points[size-1]
	from := e.store.AddVertex(first)
	to := e.store.AddVertex(last)
	edge := e.store.AddHalfEdge(NoHalfEdge, NoHalfEdge, from)
	twin := e.store.AddHalfEdge(edge, NoHalfEdge, to)
	e.diagonals = append(e.diagonals, Diagonal{
		From:  from,
		To:    to,
		Edge:  edge,
		Twin:  twin,
		Piece: pieceIndex,
	})

	// The remaining polygon runs from the chain's last point around to a
	// fresh copy of its first.
	e.working = append(e.working, first)
	ring := make([]int, 0, len(e.ring)-size+2)
	ring = append(ring, e.ring[size-1])
	ring = append(ring, e.ring[size:]...)
	ring = append(ring, len(e.working)-1)
	e.ring = ring

	e.log.Debug("committed piece",
		"piece", pieceIndex,
		"size", size,
		"diagonal", [2]int{first.ID, last.ID},
		"remaining", len(e.ring))
}

// Move the anchor to the next vertex of the remaining polygon.
func (e *engine) rotateAnchor() {
	e.ring = append(e.ring[1:], e.ring[0])
	e.log.Debug("rotated anchor", "anchor", e.point(0).ID)
}

// Polygon of the first size points of the remaining ring.
func (e *engine) ringPolygon(size int) Polygon {
	points := make([]Point, size)
	for i := range points {
		points[i] = e.point(i)
	}
	return Polygon{points}
}

// Reject input the loop cannot handle, returning the boundary's winding.
func validatePolygon(points []Point) Winding {
	if len(points) < 3 {
		fatalWrapf(ErrDegeneratePolygon, "polygon needs at least 3 points, got %d", len(points))
	}
	seen := make(map[[2]int]int, len(points))
	ids := make(map[int]int, len(points))
	for i, p := range points {
		key := [2]int{p.X, p.Y}
		if j, ok := seen[key]; ok {
			fatalWrapf(ErrDegeneratePolygon, "points %d and %d are both (%d,%d)", j, i, p.X, p.Y)
		}
		seen[key] = i
		if j, ok := ids[p.ID]; ok {
			fatalWrapf(ErrDegeneratePolygon, "points %d and %d share ID %d", j, i, p.ID)
		}
		ids[p.ID] = i
	}
	winding := Polygon{points}.Winding()
	if winding == Degenerate {
		fatalWrapf(ErrDegeneratePolygon, "polygon has zero area")
	}
	return winding
}
