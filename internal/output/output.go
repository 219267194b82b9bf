// Writers for decomposition results.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/osuushi/decompose/internal"
	"github.com/pkg/errors"
)

// Write pieces in bracketed form, one piece per line:
//
//	[
//	[(0,0),(4,0),(4,2),(2,2)],
//	[(2,2),(2,4),(0,4),(0,0)]
//	]
func WriteText(w io.Writer, pieces internal.PolygonList) error {
	var b strings.Builder
	b.WriteString("[\n")
	for i, piece := range pieces {
		b.WriteString(FormatPiece(piece))
		if i < len(pieces)-1 {
			b.WriteString(",\n")
		}
	}
	b.WriteString("\n]")
	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "writing pieces")
}

// Single line rendering of all pieces, e.g. [[(0,0),(4,0),(4,4)],[(0,0),(4,4),(0,4)]]
func FormatPieces(pieces internal.PolygonList) string {
	parts := make([]string, len(pieces))
	for i, piece := range pieces {
		parts[i] = FormatPiece(piece)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func FormatPiece(piece internal.Polygon) string {
	parts := make([]string, len(piece.Points))
	for i, p := range piece.Points {
		parts[i] = fmt.Sprintf("(%d,%d)", p.X, p.Y)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// Write pieces as a JSON array of pieces, each an array of [x, y] pairs.
func WriteJSON(w io.Writer, pieces internal.PolygonList) error {
	doc := make([][][2]int, len(pieces))
	for i, piece := range pieces {
		doc[i] = make([][2]int, len(piece.Points))
		for j, p := range piece.Points {
			doc[i][j] = [2]int{p.X, p.Y}
		}
	}
	enc := json.NewEncoder(w)
	return errors.Wrap(enc.Encode(doc), "writing pieces")
}
