// Decomposition of simple polygons into near-convex pieces.
//
// This package splits a simple polygon with integer vertices into a list of
// fan-shaped pieces by repeatedly cutting off the longest convex chain that
// no reflex vertex intrudes on. Every cut is recorded as a diagonal in a
// doubly connected edge list, which is returned alongside the pieces.
package decompose

import (
	"log/slog"

	"github.com/osuushi/decompose/internal"
)

type Point = internal.Point
type Polygon = internal.Polygon
type PolygonList = internal.PolygonList
type Result = internal.Result
type DCEL = internal.DCEL
type NotchTest = internal.NotchTest

const (
	NotchReflex = internal.NotchReflex
	NotchAngle  = internal.NotchAngle
)

var (
	ErrInputFormat       = internal.ErrInputFormat
	ErrDegeneratePolygon = internal.ErrDegeneratePolygon
	ErrStalled           = internal.ErrStalled
)

type Option func(*internal.Options)

// Choose how notches are detected while validating chains. The default,
// NotchReflex, uses the reflex vertices of the remaining polygon. NotchAngle
// reproduces the historical angle test, under which no notch is ever found.
func WithNotchTest(test NotchTest) Option {
	return func(o *internal.Options) {
		o.NotchTest = test
	}
}

// Route the engine's debug and summary logging to l. Logging is off by
// default; nil turns it back off.
func SetLogger(l *slog.Logger) {
	internal.SetLogger(l)
}

// Decompose the polygon whose boundary is given by points, in order. Either
// winding is accepted. Point IDs must be unique; they identify vertices in the
// resulting DCEL and in the pieces.
//
// The polygon must be simple. Fewer than three points, repeated points, or a
// zero area boundary give ErrDegeneratePolygon.
func Decompose(points []Point, opts ...Option) (result *Result, err error) {
	defer func() {
		recoveredErr := internal.HandleDecomposePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	var options internal.Options
	for _, opt := range opts {
		opt(&options)
	}
	return internal.Decompose(points, options), nil
}

// Decompose a polygon given as bare coordinates. Points are numbered from zero
// in the order given.
func DecomposeCoords(coords [][2]int, opts ...Option) (*Result, error) {
	return Decompose(internal.NumberPoints(coords), opts...)
}
