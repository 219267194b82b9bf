package internal

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Cross product of the edge vectors (b - a) and (c - b). Computed in int64 so
// that coordinates up to ±2^30 cannot overflow.
func Cross(a, b, c Point) int64 {
	abX := int64(b.X) - int64(a.X)
	abY := int64(b.Y) - int64(a.Y)
	bcX := int64(c.X) - int64(b.X)
	bcY := int64(c.Y) - int64(b.Y)
	return abX*bcY - bcX*abY
}

func (set IDSet) Add(id int) {
	set[id] = struct{}{}
}

func (set IDSet) Has(id int) bool {
	_, ok := set[id]
	return ok
}

func (set IDSet) Equals(other IDSet) bool {
	if len(set) != len(other) {
		return false
	}
	for id := range set {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

// Assign sequential identifiers in input order, returning fresh points.
func NumberPoints(coords [][2]int) []Point {
	points := make([]Point, len(coords))
	for i, c := range coords {
		points[i] = Point{X: c[0], Y: c[1], ID: i}
	}
	return points
}
