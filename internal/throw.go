package internal

import "github.com/pkg/errors"

// Threading errors through every predicate and every DCEL mutation would bury
// the algorithm in plumbing. Instead, we panic with a DecomposeError, and the
// public API recovers to convert it to an error.

var (
	// A malformed coordinate line or document.
	ErrInputFormat = errors.New("input format error")
	// Fewer than three distinct points, or a polygon with zero area.
	ErrDegeneratePolygon = errors.New("degenerate polygon")
	// The engine could not commit a piece from any anchor.
	ErrStalled = errors.New("decomposition stalled")
)

type DecomposeError struct {
	error
}

func (e DecomposeError) Unwrap() error {
	return e.error
}

// Panic with a DecomposeError.
func fatalf(format string, args ...interface{}) {
	panic(DecomposeError{errors.Errorf(format, args...)})
}

// Panic with a DecomposeError wrapping one of the sentinel errors, so callers
// can match it with errors.Is.
func fatalWrapf(cause error, format string, args ...interface{}) {
	panic(DecomposeError{errors.Wrapf(cause, format, args...)})
}

func HandleDecomposePanicRecover(r interface{}) error {
	if r != nil {
		if decomposeError, ok := r.(DecomposeError); ok {
			return decomposeError.error
		}
		panic(r)
	}
	return nil
}
