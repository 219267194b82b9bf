package internal

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/decompose/dbg"
)

// Doubly connected edge list holding the boundary and every diagonal inserted
// during a decomposition. All records live in slices owned by the DCEL, and
// every cross reference is an index into one of those slices. Nothing is ever
// removed, so handles stay valid for the lifetime of the store.
//
// Each half-edge gets a face of its own. Faces are bookkeeping only; they are
// never merged into polygonal regions.
//
// A DCEL is not safe for concurrent mutation. Give each decomposition its own.

type VertexID int
type HalfEdgeID int
type FaceID int

const (
	NoVertex   VertexID   = -1
	NoHalfEdge HalfEdgeID = -1
	NoFace     FaceID     = -1
)

type Vertex struct {
	X, Y int
	// Identifier of the point this vertex was created from
	ID int
	// Half-edges originating here. Back references only.
	IncidentEdges []HalfEdgeID
}

type HalfEdge struct {
	Twin   HalfEdgeID
	Next   HalfEdgeID
	Prev   HalfEdgeID
	Origin VertexID
	Face   FaceID
}

type Face struct {
	Boundary []HalfEdgeID
}

type DCEL struct {
	vertices  []Vertex
	halfEdges []HalfEdge
	faces     []Face
	// point ID → vertex index
	byPointID map[int]VertexID
}

func NewDCEL() *DCEL {
	return &DCEL{byPointID: make(map[int]VertexID)}
}

// Return the vertex for the point's ID, creating it on first sight.
func (d *DCEL) AddVertex(p Point) VertexID {
	if id, ok := d.byPointID[p.ID]; ok {
		return id
	}
	id := VertexID(len(d.vertices))
	d.vertices = append(d.vertices, Vertex{X: p.X, Y: p.Y, ID: p.ID})
	d.byPointID[p.ID] = id
	return id
}

// Create a half-edge originating at origin. A twin, if given, gets its twin
// link pointed back at the new edge; a prev, if given, gets its next link
// pointed at the new edge. The new edge always gets a fresh face.
func (d *DCEL) AddHalfEdge(twin, prev HalfEdgeID, origin VertexID) HalfEdgeID {
	d.checkVertex(origin)
	if twin != NoHalfEdge {
		d.checkHalfEdge(twin)
	}
	if prev != NoHalfEdge {
		d.checkHalfEdge(prev)
	}

	id := HalfEdgeID(len(d.halfEdges))
	d.halfEdges = append(d.halfEdges, HalfEdge{
		Twin:   twin,
		Next:   NoHalfEdge,
		Prev:   prev,
		Origin: origin,
		Face:   NoFace,
	})
	if twin != NoHalfEdge {
		d.halfEdges[twin].Twin = id
	}
	if prev != NoHalfEdge {
		d.halfEdges[prev].Next = id
	}
	d.halfEdges[id].Face = d.AddFace(id)
	d.vertices[origin].IncidentEdges = append(d.vertices[origin].IncidentEdges, id)
	return id
}

// Create a face whose boundary is exactly the given edge.
func (d *DCEL) AddFace(boundary HalfEdgeID) FaceID {
	d.checkHalfEdge(boundary)
	id := FaceID(len(d.faces))
	d.faces = append(d.faces, Face{Boundary: []HalfEdgeID{boundary}})
	return id
}

func (d *DCEL) Vertex(id VertexID) Vertex {
	d.checkVertex(id)
	return d.vertices[id]
}

func (d *DCEL) HalfEdge(id HalfEdgeID) HalfEdge {
	d.checkHalfEdge(id)
	return d.halfEdges[id]
}

func (d *DCEL) Face(id FaceID) Face {
	if id < 0 || int(id) >= len(d.faces) {
		fatalf("face %d out of range [0, %d)", id, len(d.faces))
	}
	return d.faces[id]
}

func (d *DCEL) VertexByPointID(pointID int) (VertexID, bool) {
	id, ok := d.byPointID[pointID]
	return id, ok
}

// Vertex a half-edge points to: the origin of its twin, or failing that, of
// its next edge. NoVertex if the edge has neither.
func (d *DCEL) Destination(id HalfEdgeID) VertexID {
	e := d.HalfEdge(id)
	if e.Twin != NoHalfEdge {
		return d.halfEdges[e.Twin].Origin
	}
	if e.Next != NoHalfEdge {
		return d.halfEdges[e.Next].Origin
	}
	return NoVertex
}

func (d *DCEL) NumVertices() int  { return len(d.vertices) }
func (d *DCEL) NumHalfEdges() int { return len(d.halfEdges) }
func (d *DCEL) NumFaces() int     { return len(d.faces) }

// Copies of the arena slices, for dumping and for tests.
func (d *DCEL) Vertices() []Vertex {
	return append([]Vertex(nil), d.vertices...)
}

func (d *DCEL) HalfEdges() []HalfEdge {
	return append([]HalfEdge(nil), d.halfEdges...)
}

func (d *DCEL) checkVertex(id VertexID) {
	if id < 0 || int(id) >= len(d.vertices) {
		fatalf("vertex %d out of range [0, %d)", id, len(d.vertices))
	}
}

func (d *DCEL) checkHalfEdge(id HalfEdgeID) {
	if id < 0 || int(id) >= len(d.halfEdges) {
		fatalf("half-edge %d out of range [0, %d)", id, len(d.halfEdges))
	}
}

func (d *DCEL) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "DCEL <V: %d, E: %d, F: %d>\n", len(d.vertices), len(d.halfEdges), len(d.faces))
	for i := range d.halfEdges {
		b.WriteString(d.edgeString(HalfEdgeID(i)))
		b.WriteByte('\n')
	}
	return b.String()
}

func (d *DCEL) edgeString(id HalfEdgeID) string {
	e := d.halfEdges[id]
	origin := d.vertices[e.Origin]
	name := d.DbgName(id)
	return fmt.Sprintf("%s (%d,%d)#%d <twin: %s, prev: %s, next: %s>",
		name,
		origin.X, origin.Y, origin.ID,
		dbg.Name("edge", int(e.Twin)),
		dbg.Name("edge", int(e.Prev)),
		dbg.Name("edge", int(e.Next)),
	)
}

func (d *DCEL) DbgName(id HalfEdgeID) string {
	e := d.halfEdges[id]
	name := dbg.Name("edge", int(id))
	// Unpaired edges in red, boundary chains in green
	if e.Twin == NoHalfEdge {
		name = aurora.Red(name).String()
	} else if e.Prev == NoHalfEdge && e.Next == NoHalfEdge {
		name = aurora.Cyan(name).String()
	} else {
		name = aurora.Green(name).String()
	}
	return name
}
