// PNG rendering of decomposition pieces.
package render

import (
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/decompose/internal"
	"github.com/pkg/errors"
)

// Margin around the drawing, in pixels
const padding = 20

// Blue, green, red, cyan, magenta, yellow, black, cycled per piece
var palette = [][3]float64{
	{0, 0, 1},
	{0, 0.5, 0},
	{1, 0, 0},
	{0, 0.75, 0.75},
	{0.75, 0, 0.75},
	{0.75, 0.75, 0},
	{0, 0, 0},
}

// Draw every piece, filled translucently and outlined in its own colour, with
// y pointing up. scale is pixels per unit.
func Draw(pieces internal.PolygonList, scale float64) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, piece := range pieces {
		for _, p := range piece.Points {
			minX = math.Min(minX, float64(p.X))
			minY = math.Min(minY, float64(p.Y))
			maxX = math.Max(maxX, float64(p.X))
			maxY = math.Max(maxY, float64(p.Y))
		}
	}
	if len(pieces) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	width := int(scale*(maxX-minX)) + padding*2
	height := int(scale*(maxY-minY)) + padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(padding, padding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for i, piece := range pieces {
		if len(piece.Points) == 0 {
			continue
		}
		color := palette[i%len(palette)]
		c.MoveTo(float64(piece.Points[0].X), float64(piece.Points[0].Y))
		for _, p := range piece.Points[1:] {
			c.LineTo(float64(p.X), float64(p.Y))
		}
		c.ClosePath()
		c.SetRGBA(color[0], color[1], color[2], 0.25)
		c.FillPreserve()
		c.SetRGB(color[0], color[1], color[2])
		c.Stroke()
	}
	return c
}

func SavePNG(path string, pieces internal.PolygonList, scale float64) error {
	return errors.Wrapf(Draw(pieces, scale).SavePNG(path), "saving %s", path)
}

func WritePNG(w io.Writer, pieces internal.PolygonList, scale float64) error {
	return errors.Wrap(Draw(pieces, scale).EncodePNG(w), "encoding png")
}

// Render to a temporary file and print it inline (iTerm only).
func Imgcat(w io.Writer, pieces internal.PolygonList, scale float64) error {
	f, err := os.CreateTemp("", "decompose-*.png")
	if err != nil {
		return errors.Wrap(err, "creating temporary png")
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	if err := SavePNG(path, pieces, scale); err != nil {
		return err
	}
	imgcat.CatFile(path, w)
	return nil
}
