package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTurnAngle(t *testing.T) {
	origin := Point{0, 0, 0}
	assert.InDelta(t, math.Pi/2, TurnAngle(Point{1, 0, 1}, origin, Point{0, 1, 2}), 1e-9)
	assert.InDelta(t, -math.Pi/2, TurnAngle(Point{0, 1, 2}, origin, Point{1, 0, 1}), 1e-9)
	assert.InDelta(t, math.Pi, TurnAngle(Point{-1, 0, 1}, origin, Point{1, 0, 2}), 1e-9)
	assert.InDelta(t, math.Pi/4, TurnAngle(Point{1, 0, 1}, origin, Point{1, 1, 2}), 1e-9)
}

func TestTurnAngle_Straight(t *testing.T) {
	origin := Point{0, 0, 0}
	for _, ends := range [][2]Point{
		{{-1, 0, 1}, {1, 0, 2}},
		{{1, 0, 1}, {-1, 0, 2}},
		{{0, 5, 1}, {0, -3, 2}},
		{{0, -3, 1}, {0, 5, 2}},
		{{-2, -2, 1}, {3, 3, 2}},
	} {
		angle := TurnAngle(ends[0], origin, ends[1])
		assert.Equal(t, math.Pi, angle, "straight angle through %v and %v", ends[0], ends[1])
	}
}

func TestIsNotch(t *testing.T) {
	// The angle never exceeds π, so nothing is ever a notch
	for _, poly := range []*Polygon{LShape(), Reversed(LShape()), SimpleStar(), LoadFixture("spiral")} {
		assert.Empty(t, FindNotches(poly.Points))
	}
	assert.False(t, IsNotch(Point{-1, 0, 1}, Point{0, 0, 0}, Point{1, 0, 2}))
}

func TestIsReflex(t *testing.T) {
	// Left turn, which is reflex on a clockwise boundary
	a, b, c := Point{0, 0, 0}, Point{4, 0, 1}, Point{4, 4, 2}
	assert.True(t, IsReflex(a, b, c))
	assert.False(t, IsReflex(c, b, a))
	// Collinear points are never reflex
	assert.False(t, IsReflex(Point{0, 0, 0}, Point{1, 1, 1}, Point{2, 2, 2}))

	assert.False(t, IsReflexFor(CounterClockwise, a, b, c))
	assert.True(t, IsReflexFor(CounterClockwise, c, b, a))
	assert.True(t, IsReflexFor(Clockwise, a, b, c))
}

func TestFindReflexVertices(t *testing.T) {
	lShape := LShape()
	assert.Equal(t, []int{3}, FindReflexVertices(lShape.Points, CounterClockwise))

	reversed := Reversed(lShape)
	reflex := FindReflexVertices(reversed.Points, Clockwise)
	assert.Equal(t, []int{2}, reflex)
	assert.Equal(t, 3, reversed.Points[reflex[0]].ID)

	for _, poly := range []*Polygon{Square(), RegularPolygon(7, 100)} {
		assert.Empty(t, FindReflexVertices(poly.Points, poly.Winding()))
		assert.Empty(t, FindReflexVertices(Reversed(poly).Points, Reversed(poly).Winding()))
	}

	// Every inner point of a star is reflex
	star := SimpleStar()
	assert.Equal(t, []int{1, 3, 5, 7, 9}, FindReflexVertices(star.Points, star.Winding()))
}

func TestMinAreaRect(t *testing.T) {
	rect := MinAreaRect(LShape().Points)
	assert.Equal(t, []Point{
		{0, 0, -1},
		{0, 4, -1},
		{4, 4, -1},
		{4, 0, -1},
	}, rect.Points)

	rect = MinAreaRect([]Point{{3, -2, 0}, {-1, 5, 1}, {2, 2, 2}})
	assert.Equal(t, []Point{
		{-1, -2, -1},
		{-1, 5, -1},
		{3, 5, -1},
		{3, -2, -1},
	}, rect.Points)
}

func TestBoundingRect(t *testing.T) {
	r := BoundingRect(LoadFixture("comb").Points)
	assert.Equal(t, Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 6}, r)

	assert.True(t, r.Contains(Point{X: 0, Y: 0}))
	assert.True(t, r.Contains(Point{X: 10, Y: 6}))
	assert.True(t, r.Contains(Point{X: 5, Y: 3}))
	assert.False(t, r.Contains(Point{X: 11, Y: 3}))
	assert.False(t, r.Contains(Point{X: 5, Y: -1}))

	assert.Panics(t, func() { BoundingRect(nil) })
}
