package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/decompose"
	"github.com/osuushi/decompose/internal/input"
	"github.com/osuushi/decompose/internal/output"
	"github.com/osuushi/decompose/internal/render"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Decompose a polygon file into near-convex pieces. The input is a polygon
// boundary in one of three formats:
//
//	txt  one "x,y" point per line
//	svg  the points of a single <polygon> element
//	wkt  a POLYGON, of which only the exterior ring is used
//
// The pieces are written in bracketed text form (or JSON), optionally with a
// PNG rendering.

var (
	app = kingpin.New("decompose", "Decompose a simple polygon into near-convex pieces.")

	inputPath    = app.Arg("input", "Polygon file.").Required().String()
	format       = app.Flag("format", "Input format; auto picks by extension.").Default(string(input.FormatAuto)).Enum(input.Formats...)
	outputPath   = app.Flag("output", "Write pieces here instead of stdout.").Short('o').String()
	asJSON       = app.Flag("json", "Write pieces as JSON.").Bool()
	pngPath      = app.Flag("png", "Render the pieces to this PNG file.").String()
	scale        = app.Flag("scale", "Pixels per unit when rendering.").Default("20").Float64()
	showImage    = app.Flag("imgcat", "Print the rendering inline (iTerm only).").Bool()
	literalNotch = app.Flag("literal-notch", "Use the historical angle notch test, which finds no notches.").Bool()
	dumpDCEL     = app.Flag("dump-dcel", "Dump the edge list to stderr.").Bool()
	profileDir   = app.Flag("profile", "Write a CPU profile into this directory.").String()
	verbose      = app.Flag("verbose", "Log decomposition steps to stderr.").Short('v').Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if *verbose {
		decompose.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(); err != nil {
		app.Fatalf("%v", err)
	}
}

func run() error {
	if *profileDir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*profileDir), profile.Quiet).Stop()
	}

	points, err := input.ReadFile(*inputPath, input.Format(*format))
	if err != nil {
		return err
	}

	var opts []decompose.Option
	if *literalNotch {
		opts = append(opts, decompose.WithNotchTest(decompose.NotchAngle))
	}

	start := time.Now()
	result, err := decompose.Decompose(points, opts...)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	if err := writePieces(result.Pieces); err != nil {
		return err
	}

	if *pngPath != "" {
		if err := render.SavePNG(*pngPath, result.Pieces, *scale); err != nil {
			return err
		}
	}
	if *showImage {
		if err := render.Imgcat(os.Stdout, result.Pieces, *scale); err != nil {
			return err
		}
	}

	if *dumpDCEL {
		fmt.Fprint(os.Stderr, result.DCEL.String())
		pretty.Fprintf(os.Stderr, "%# v\n", result.Diagonals)
	}

	fmt.Fprintf(os.Stderr, "%s %d vertices → %s pieces, %s diagonals in %s\n",
		aurora.Green("✓"),
		len(points),
		aurora.Bold(len(result.Pieces)),
		aurora.Bold(len(result.Diagonals)),
		aurora.Cyan(elapsed),
	)
	return nil
}

func writePieces(pieces decompose.PolygonList) error {
	if *outputPath == "" {
		return encodePieces(os.Stdout, pieces, *asJSON)
	}
	f, err := os.Create(*outputPath)
	if err != nil {
		return errors.Wrap(err, "creating output file")
	}
	return writeAndClose(f, pieces, *asJSON)
}

// Write the pieces and close wc. A failed close is reported unless the write
// already failed.
func writeAndClose(wc io.WriteCloser, pieces decompose.PolygonList, asJSON bool) (err error) {
	defer func() {
		if closeErr := wc.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "closing output file")
		}
	}()
	return encodePieces(wc, pieces, asJSON)
}

func encodePieces(w io.Writer, pieces decompose.PolygonList, asJSON bool) error {
	if asJSON {
		return output.WriteJSON(w, pieces)
	}
	if err := output.WriteText(w, pieces); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return errors.Wrap(err, "writing pieces")
}
