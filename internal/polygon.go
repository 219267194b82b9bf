package internal

// Even-odd point-in-polygon by ray casting to the right. Points exactly on the
// boundary may land on either side.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Crossing count helper for even odd rule. Horizontal edges never count, since
// their endpoints are both above or both below the ray.
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	n := len(poly.Points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a := poly.Points[i]
		b := poly.Points[j]
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		// X coordinate where the edge crosses the ray's horizontal
		x := float64(b.X-a.X)*float64(p.Y-a.Y)/float64(b.Y-a.Y) + float64(a.X)
		if float64(p.X) < x {
			crossingCount++
		}
	}
	return crossingCount
}

// Twice the signed area (shoelace). Positive for counterclockwise boundaries
// in y-up axes.
func (poly Polygon) SignedArea2() int64 {
	var sum int64
	n := len(poly.Points)
	for i, a := range poly.Points {
		b := poly.Points[CircularIndex(i+1, n)]
		sum += int64(a.X)*int64(b.Y) - int64(b.X)*int64(a.Y)
	}
	return sum
}

func (poly Polygon) Area() float64 {
	area := float64(poly.SignedArea2()) / 2
	if area < 0 {
		return -area
	}
	return area
}

func (poly Polygon) Winding() Winding {
	switch area := poly.SignedArea2(); {
	case area < 0:
		return Clockwise
	case area > 0:
		return CounterClockwise
	}
	return Degenerate
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

func (poly Polygon) IDs() IDSet {
	ids := make(IDSet, len(poly.Points))
	for _, p := range poly.Points {
		ids.Add(p.ID)
	}
	return ids
}

// Union of the point identifiers in every polygon of the list.
func (list PolygonList) IDs() IDSet {
	ids := make(IDSet)
	for _, poly := range list {
		for _, p := range poly.Points {
			ids.Add(p.ID)
		}
	}
	return ids
}

func (list PolygonList) Area() float64 {
	var area float64
	for _, poly := range list {
		area += poly.Area()
	}
	return area
}
