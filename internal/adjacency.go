package internal

import (
	"fmt"

	"github.com/katalvlaran/lvlath/bfs"
	"github.com/katalvlaran/lvlath/core"
)

// Dual graph of a decomposition: one vertex per piece, and an edge between the
// two pieces on either side of each diagonal. For a valid decomposition of a
// simple polygon this graph is a tree.

func PieceVertexID(piece int) string {
	return fmt.Sprintf("piece-%d", piece)
}

func (r *Result) Adjacency() *core.Graph {
	g := core.NewGraph()
	for i := range r.Pieces {
		if err := g.AddVertex(PieceVertexID(i)); err != nil {
			fatalf("adding piece %d to adjacency graph: %v", i, err)
		}
	}

	for _, diagonal := range r.Diagonals {
		from := r.DCEL.Vertex(diagonal.From).ID
		to := r.DCEL.Vertex(diagonal.To).ID
		// The piece the diagonal cut off is on one side. The other side is the
		// first later piece that has the diagonal as one of its edges.
		for j := diagonal.Piece + 1; j < len(r.Pieces); j++ {
			if r.Pieces[j].HasEdge(from, to) {
				if _, err := g.AddEdge(PieceVertexID(diagonal.Piece), PieceVertexID(j), 0); err != nil {
					fatalf("adding diagonal %d-%d to adjacency graph: %v", from, to, err)
				}
				break
			}
		}
	}
	return g
}

// Whether every piece can be reached from the first one across diagonals.
func (r *Result) Connected() bool {
	if len(r.Pieces) == 0 {
		return false
	}
	res, err := bfs.BFS(r.Adjacency(), PieceVertexID(0))
	if err != nil {
		fatalf("walking adjacency graph: %v", err)
	}
	return len(res.Order) == len(r.Pieces)
}

// Whether a and b (point IDs) are consecutive on the polygon's boundary, in
// either direction.
func (poly Polygon) HasEdge(a, b int) bool {
	n := len(poly.Points)
	for i, p := range poly.Points {
		q := poly.Points[CircularIndex(i+1, n)]
		if (p.ID == a && q.ID == b) || (p.ID == b && q.ID == a) {
			return true
		}
	}
	return false
}
