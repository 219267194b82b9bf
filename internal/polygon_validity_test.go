package internal

// This contains no actual tests. It is just a helper for testing
// decomposition validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run a decomposition, recovering a DecomposeError into an error as the public
// API does.
func decompose(points []Point, opts Options) (result *Result, err error) {
	defer func() {
		recoveredErr := HandleDecomposePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return Decompose(points, opts), nil
}

// Helper to check that a decomposition is valid. The rules are:
// 1. The set of point IDs in the pieces equals the set of IDs in the polygon.
// 2. Every piece has at least three points and no reflex vertex.
// 3. There are at most n-2 pieces and exactly one diagonal fewer.
// 4. The areas of the pieces sum to the area of the polygon.
// 5. The pieces tile the polygon: sampled points inside the polygon lie in
//    exactly one piece, points outside in none.
// 6. The pieces are connected across diagonals.
// 7. The DCEL invariants hold.
func AssertValidDecomposition(t *testing.T, polygon *Polygon, result *Result) {
	t.Helper()
	require.NotNil(t, result)
	winding := polygon.Winding()

	require.True(t, polygon.IDs().Equals(result.Pieces.IDs()), "set of IDs in the pieces must equal the set of IDs in the polygon")

	for i, piece := range result.Pieces {
		require.GreaterOrEqual(t, len(piece.Points), 3, "piece %d is degenerate", i)
		for _, v := range FindReflexVertices(piece.Points, winding) {
			assert.Fail(t, "reflex piece vertex", "piece %d has a reflex vertex at %v", i, piece.Points[v])
		}
	}

	n := len(polygon.Points)
	assert.LessOrEqual(t, len(result.Pieces), n-2, "too many pieces")
	assert.Len(t, result.Diagonals, len(result.Pieces)-1, "each piece but the last needs a diagonal")

	var pieceArea2 int64
	for _, piece := range result.Pieces {
		pieceArea2 += abs64(piece.SignedArea2())
	}
	assert.Equal(t, abs64(polygon.SignedArea2()), pieceArea2, "sum of the piece areas must equal the polygon area")

	validatePiecesBySampling(t, result.Pieces, polygon)

	assert.True(t, result.Connected(), "pieces must be connected across diagonals")

	AssertValidDCEL(t, result.DCEL)
	assert.LessOrEqual(t, result.DCEL.NumVertices(), n)
}

func AssertValidDCEL(t *testing.T, d *DCEL) {
	t.Helper()
	faces := make(map[FaceID]HalfEdgeID)
	for i, e := range d.HalfEdges() {
		id := HalfEdgeID(i)
		if e.Twin != NoHalfEdge {
			twin := d.HalfEdge(e.Twin)
			require.Equal(t, id, twin.Twin, "twin of twin of %d", id)
			require.NotEqual(t, e.Face, twin.Face, "edge %d shares a face with its twin", id)
		}
		if e.Prev != NoHalfEdge {
			require.Equal(t, id, d.HalfEdge(e.Prev).Next, "next of prev of %d", id)
		}
		require.Contains(t, d.Vertex(e.Origin).IncidentEdges, id, "edge %d missing from its origin", id)

		_, seen := faces[e.Face]
		require.False(t, seen, "face %d reused", e.Face)
		faces[e.Face] = id
		require.Equal(t, []HalfEdgeID{id}, d.Face(e.Face).Boundary)
	}
	assert.Equal(t, d.NumHalfEdges(), d.NumFaces())
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// Even-odd containment for a sample point that is not on the integer grid.
func containsSample(poly Polygon, x, y float64) bool {
	inside := false
	n := len(poly.Points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		ax, ay := float64(poly.Points[i].X), float64(poly.Points[i].Y)
		bx, by := float64(poly.Points[j].X), float64(poly.Points[j].Y)
		if (ay > y) != (by > y) && x < (bx-ax)*(y-ay)/(by-ay)+ax {
			inside = !inside
		}
	}
	return inside
}

func validatePiecesBySampling(t *testing.T, pieces PolygonList, polygon *Polygon) {
	t.Helper()
	r := BoundingRect(polygon.Points)
	minX, minY := float64(r.MinX), float64(r.MinY)
	maxX, maxY := float64(r.MaxX), float64(r.MaxY)

	// Pad the bounding box by 10%
	xPadding := (maxX - minX) * 0.1
	yPadding := (maxY - minY) * 0.1
	minX -= xPadding
	minY -= yPadding
	maxX += xPadding
	maxY += yPadding

	// Odd offsets keep samples off the integer grid lines most edges run along
	step := math.Max(maxX-minX, maxY-minY) / 53
	for y := minY + step*0.37; y <= maxY; y += step {
		for x := minX + step*0.61; x <= maxX; x += step {
			if nearAnyEdge(pieces, x, y, step*1e-6) {
				// Boundary samples may count for both sides of a diagonal
				continue
			}
			count := 0
			for _, piece := range pieces {
				if containsSample(piece, x, y) {
					count++
				}
			}
			if containsSample(*polygon, x, y) {
				assert.Equal(t, 1, count, "point (%v, %v) should be in exactly one piece", x, y)
			} else {
				assert.Equal(t, 0, count, "point (%v, %v) should not be in any piece", x, y)
			}
		}
	}
}

// Whether (x, y) is within eps of an edge of any piece.
func nearAnyEdge(pieces PolygonList, x, y, eps float64) bool {
	for _, piece := range pieces {
		n := len(piece.Points)
		for i, a := range piece.Points {
			b := piece.Points[CircularIndex(i+1, n)]
			if segmentDistance(a, b, x, y) <= eps {
				return true
			}
		}
	}
	return false
}

func segmentDistance(a, b Point, x, y float64) float64 {
	ax, ay := float64(a.X), float64(a.Y)
	dx, dy := float64(b.X)-ax, float64(b.Y)-ay
	lengthSquared := dx*dx + dy*dy
	t := 0.0
	if lengthSquared > 0 {
		t = math.Max(0, math.Min(1, ((x-ax)*dx+(y-ay)*dy)/lengthSquared))
	}
	return math.Hypot(x-(ax+t*dx), y-(ay+t*dy))
}
