package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arena handles into random readable names. It flagrantly leaks
// memory but generates the names lazily, so it's not a problem unless you're
// actually using it. Integer handles all look alike in a dump of a few hundred
// half-edges; names are much easier to follow by eye.

var memo map[string]string

func init() {
	memo = make(map[string]string)
	// Since the ids are generated in order of demand, we make them
	// nondetemrinistic to remind the user that the same name doesn't refer to the
	// same thing between runs.
	petname.NonDeterministicMode()
}

// Name for the handle index of the given kind ("edge", "vertex", ...).
// Negative indices are the "none" sentinel.
func Name(kind string, index int) string {
	if index < 0 {
		return "Ø"
	}

	key := fmt.Sprintf("%s/%d", kind, index)
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}
