package internal

import "math"

// Geometric predicates used by the decomposition. All of them take points in
// boundary order; none of them allocate except the notch finders.

// Signed angle at p2 between p2→p1 and p2→p3, in (-π, π].
func TurnAngle(p1, p2, p3 Point) float64 {
	dx1 := float64(p1.X - p2.X)
	dy1 := float64(p1.Y - p2.Y)
	dx2 := float64(p3.X - p2.X)
	dy2 := float64(p3.Y - p2.Y)
	dot := dx1*dx2 + dy1*dy2
	cross := dx1*dy2 - dy1*dx2
	if cross == 0 {
		// Straight angles can produce -0, which Atan2 maps to -π
		cross = 0
	}
	return math.Atan2(cross, dot)
}

// Angle based notch test. Because TurnAngle never exceeds π, this is false for
// every finite input; it is kept so NotchAngle can reproduce the historical
// output exactly.
func IsNotch(p1, p2, p3 Point) bool {
	return TurnAngle(p1, p2, p3) > math.Pi
}

// Reflex test for a clockwise boundary: a strict left turn at p2.
func IsReflex(p1, p2, p3 Point) bool {
	return Cross(p1, p2, p3) > 0
}

// Reflex test for a boundary of the given winding. Reversing the triple flips
// the sign of the cross product, so a counterclockwise boundary is tested as
// the clockwise one traversed backwards.
func IsReflexFor(w Winding, p1, p2, p3 Point) bool {
	if w == CounterClockwise {
		return IsReflex(p3, p2, p1)
	}
	return IsReflex(p1, p2, p3)
}

// Indices i for which IsNotch holds at points[i] with cyclic neighbors.
func FindNotches(points []Point) []int {
	return findVertices(points, IsNotch)
}

// Indices of the reflex vertices of a boundary with the given winding.
func FindReflexVertices(points []Point, w Winding) []int {
	return findVertices(points, func(p1, p2, p3 Point) bool {
		return IsReflexFor(w, p1, p2, p3)
	})
}

func findVertices(points []Point, test func(p1, p2, p3 Point) bool) []int {
	n := len(points)
	var result []int
	for i := 0; i < n; i++ {
		prev := points[CircularIndex(i-1, n)]
		next := points[CircularIndex(i+1, n)]
		if test(prev, points[i], next) {
			result = append(result, i)
		}
	}
	return result
}

// Axis aligned bounding rectangle of the points, as the four corners
// (minX,minY), (minX,maxY), (maxX,maxY), (maxX,minY). This is not an oriented
// minimum-area rectangle; it only serves as a cheap inclusion filter. Corner
// points carry ID -1.
func MinAreaRect(points []Point) Polygon {
	r := BoundingRect(points)
	return Polygon{[]Point{
		{X: r.MinX, Y: r.MinY, ID: -1},
		{X: r.MinX, Y: r.MaxY, ID: -1},
		{X: r.MaxX, Y: r.MaxY, ID: -1},
		{X: r.MaxX, Y: r.MinY, ID: -1},
	}}
}

func BoundingRect(points []Point) Rect {
	if len(points) == 0 {
		fatalf("bounding rectangle of an empty point set")
	}
	r := Rect{
		MinX: math.MaxInt, MinY: math.MaxInt,
		MaxX: math.MinInt, MaxY: math.MinInt,
	}
	for _, p := range points {
		r.MinX = min(r.MinX, p.X)
		r.MinY = min(r.MinY, p.Y)
		r.MaxX = max(r.MaxX, p.X)
		r.MaxY = max(r.MaxY, p.Y)
	}
	return r
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}
