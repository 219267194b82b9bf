// Readers for polygon boundaries. Every reader numbers the points it returns
// from zero, in document order.
package input

import (
	"bufio"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/decompose/internal"
	"github.com/peterstace/simplefeatures/geom"
	"github.com/pkg/errors"
)

type Format string

const (
	FormatAuto Format = "auto"
	FormatText Format = "txt"
	FormatSVG  Format = "svg"
	FormatWKT  Format = "wkt"
)

var Formats = []string{string(FormatAuto), string(FormatText), string(FormatSVG), string(FormatWKT)}

// Pick a format from a file name's extension. Anything unknown is text.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return FormatSVG
	case ".wkt":
		return FormatWKT
	}
	return FormatText
}

// Open and read a polygon file. Failing to open the file is an error; there is
// no fallback to an empty polygon.
func ReadFile(path string, format Format) ([]internal.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening polygon file")
	}
	defer f.Close()

	if format == FormatAuto || format == "" {
		format = DetectFormat(path)
	}
	return Read(f, format)
}

func Read(r io.Reader, format Format) ([]internal.Point, error) {
	switch format {
	case FormatText, FormatAuto, "":
		return ReadText(r)
	case FormatSVG:
		return ReadSVG(r)
	case FormatWKT:
		return ReadWKT(r)
	}
	return nil, errors.Errorf("unknown input format %q", format)
}

// Read one "x,y" point per line. Whitespace around either number is ignored,
// as are blank lines and lines starting with '#'.
func ReadText(r io.Reader) ([]internal.Point, error) {
	var points []internal.Point
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		x, y, err := parsePair(line, ",")
		if err != nil {
			return nil, errors.Wrapf(internal.ErrInputFormat, "line %d: %v", lineNumber, err)
		}
		points = append(points, internal.Point{X: x, Y: y, ID: len(points)})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading polygon")
	}
	return points, nil
}

// Read the points of the document's only <polygon> element. Coordinates must
// be integral.
func ReadSVG(r io.Reader) ([]internal.Point, error) {
	rootEl, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrapf(internal.ErrInputFormat, "parsing svg: %v", err)
	}
	if rootEl == nil {
		return nil, errors.Wrap(internal.ErrInputFormat, "empty svg document")
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		return nil, errors.Wrap(internal.ErrInputFormat, "no polygon found in svg")
	}
	if len(polygons) > 1 {
		return nil, errors.Wrapf(internal.ErrInputFormat, "expected one polygon in svg, found %d", len(polygons))
	}

	var points []internal.Point
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		x, y, err := parsePair(pointString, ",")
		if err != nil {
			return nil, errors.Wrapf(internal.ErrInputFormat, "svg point %d: %v", len(points), err)
		}
		points = append(points, internal.Point{X: x, Y: y, ID: len(points)})
	}
	return points, nil
}

// Read the exterior ring of a WKT POLYGON. The closing point that repeats the
// first is dropped.
func ReadWKT(r io.Reader) ([]internal.Point, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading polygon")
	}
	g, err := geom.UnmarshalWKT(string(text))
	if err != nil {
		return nil, errors.Wrapf(internal.ErrInputFormat, "parsing wkt: %v", err)
	}
	if g.Type() != geom.TypePolygon {
		return nil, errors.Wrapf(internal.ErrInputFormat, "expected POLYGON, got %v", g.Type())
	}

	seq := g.AsPolygon().ExteriorRing().Coordinates()
	n := seq.Length()
	if n > 1 && seq.GetXY(0) == seq.GetXY(n-1) {
		n--
	}
	points := make([]internal.Point, 0, n)
	for i := 0; i < n; i++ {
		xy := seq.GetXY(i)
		x, err := integral(xy.X)
		if err != nil {
			return nil, errors.Wrapf(internal.ErrInputFormat, "wkt point %d: %v", i, err)
		}
		y, err := integral(xy.Y)
		if err != nil {
			return nil, errors.Wrapf(internal.ErrInputFormat, "wkt point %d: %v", i, err)
		}
		points = append(points, internal.Point{X: x, Y: y, ID: i})
	}
	return points, nil
}

func parsePair(s, sep string) (x, y int, err error) {
	parts := strings.Split(s, sep)
	if len(parts) != 2 {
		return 0, 0, errors.Errorf("expected \"x%sy\", got %q", sep, s)
	}
	x, err = parseCoordinate(parts[0])
	if err != nil {
		return 0, 0, err
	}
	y, err = parseCoordinate(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// Integers are taken as is; anything else must parse as a float with no
// fractional part, which is how SVG editors tend to write whole numbers.
func parseCoordinate(s string) (int, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Errorf("invalid coordinate %q", s)
	}
	return integral(f)
}

func integral(f float64) (int, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, errors.Errorf("coordinate %v is not a 32-bit integer", f)
	}
	return int(f), nil
}
