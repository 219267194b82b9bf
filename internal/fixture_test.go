package internal

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs polygons. This is not a full
// (or even correct) svg parser. It parses the SVG and then finds whatever the
// first polygon is, then converts that into a *Polygon with points numbered in
// document order. If anything goes wrong, it panics.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.
// They are all wound counterclockwise in y-up axes.

//go:embed fixtures
var fixtures embed.FS

var fixtureNames = []string{
	"arrow",
	"comb",
	"l_shape",
	"spiral",
	"zigzag",
}

func LoadFixture(name string) *Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	// Find the first polygon
	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}
	if len(polygons) > 1 {
		log.Fatalf("More than one polygon found in fixture %q", name)
	}
	polygonEl := polygons[0]

	pointStrings := strings.Fields(polygonEl.Attributes["points"])
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.Atoi(pointStrings[0])
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
		}
		y, err := strconv.Atoi(pointStrings[1])
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
		}
		points = append(points, Point{X: x, Y: y, ID: len(points)})
	}
	return &Polygon{Points: points}
}

// Some ad hoc fixtures

func Square() *Polygon {
	return &Polygon{NumberPoints([][2]int{{0, 0}, {4, 0}, {4, 4}, {0, 4}})}
}

func LShape() *Polygon {
	return &Polygon{NumberPoints([][2]int{{0, 0}, {4, 0}, {4, 2}, {2, 2}, {2, 4}, {0, 4}})}
}

// Regular polygon with k vertices, rounded to the integer grid.
func RegularPolygon(k int, radius float64) *Polygon {
	coords := make([][2]int, k)
	for i := range coords {
		angle := 2 * math.Pi * float64(i) / float64(k)
		coords[i] = [2]int{
			int(math.Round(radius * math.Cos(angle))),
			int(math.Round(radius * math.Sin(angle))),
		}
	}
	return &Polygon{NumberPoints(coords)}
}

func SimpleStar() *Polygon {
	const outerRadius = 100
	const innerRadius = 40
	coords := make([][2]int, 10)
	for i := range coords {
		radius := float64(outerRadius)
		if i%2 == 1 {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		coords[i] = [2]int{
			int(math.Round(radius * math.Cos(angle))),
			int(math.Round(radius * math.Sin(angle))),
		}
	}
	return &Polygon{NumberPoints(coords)}
}

// Same points with the same IDs, in the opposite winding.
func Reversed(poly *Polygon) *Polygon {
	reversed := poly.Reverse()
	return &reversed
}
