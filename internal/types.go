package internal

// Points carry integer coordinates and a stable identifier assigned from their
// position in the input. Identifiers are the deduplication key into the DCEL,
// so a point copied to the end of the working polygon keeps its ID.
type Point struct {
	X  int
	Y  int
	ID int
}

type Polygon struct {
	Points []Point
}

type PolygonList []Polygon

// Set of point identifiers
type IDSet map[int]struct{}

type Winding int

const (
	Degenerate Winding = iota
	Clockwise
	CounterClockwise
)

func (w Winding) String() string {
	switch w {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counterclockwise"
	}
	return "degenerate"
}

// Axis aligned rectangle, inclusive on all sides.
type Rect struct {
	MinX, MinY, MaxX, MaxY int
}
