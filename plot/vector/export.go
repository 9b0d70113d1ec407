// Package vector exports a curve set as a vector figure through gonum/plot,
// with the axes limited to the view window.
package vector

import (
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"strings"

	"github.com/sgostarter/libplotter/curve"
	gonum "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	DefaultWidth  = 20 * vg.Centimeter
	DefaultHeight = 15 * vg.Centimeter
)

var formats = map[string]bool{
	"svg": true,
	"pdf": true,
	"eps": true,
}

// FormatOf returns the export format for fileName's extension.
func FormatOf(fileName string) (string, error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
	if !formats[format] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, fileName)
	}

	return format, nil
}

func Export(w io.Writer, format string, domain curve.Domain, curves []*curve.Curve) error {
	if !formats[format] {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	p, err := newPlot(domain, curves)
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(DefaultWidth, DefaultHeight, format)
	if err != nil {
		return err
	}

	_, err = wt.WriteTo(w)

	return err
}

func newPlot(domain curve.Domain, curves []*curve.Curve) (*gonum.Plot, error) {
	p := gonum.New()
	p.Title.Text = "Graph Plotter"
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	p.Add(plotter.NewGrid())

	for _, c := range curves {
		for _, run := range FiniteRuns(c.Points()) {
			line, err := plotter.NewLine(toXYs(run))
			if err != nil {
				return nil, err
			}

			line.Color = color.Black

			p.Add(line)
		}
	}

	// Add widens the axes to the data, so the window is applied last.
	p.X.Min, p.X.Max = domain.X.Min, domain.X.Max
	p.Y.Min, p.Y.Max = domain.Y.Min, domain.Y.Max

	return p, nil
}

// FiniteRuns splits points at every NaN or infinite point and keeps the
// runs that form at least one segment.
func FiniteRuns(points []curve.Point) (runs [][]curve.Point) {
	start := 0

	for i := 0; i <= len(points); i++ {
		if i < len(points) && points[i].IsFinite() {
			continue
		}

		if i-start >= 2 {
			runs = append(runs, points[start:i])
		}

		start = i + 1
	}

	return
}

func toXYs(points []curve.Point) plotter.XYs {
	xys := make(plotter.XYs, len(points))

	for i, pt := range points {
		xys[i].X, xys[i].Y = pt.X, pt.Y
	}

	return xys
}
