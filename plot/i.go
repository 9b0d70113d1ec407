// Package plot draws a curve collection on a fixed pixel grid: light grid
// lines with integer labels, the two axes, then every curve as a polyline.
package plot

import "image/color"

// Canvas is the drawing surface. Coordinates are pixels with the origin in
// the top left corner; Text places the top left corner of the string at x, y.
type Canvas interface {
	Size() (width, height int)
	Line(x0, y0, x1, y1 float64, c color.Color)
	Text(x, y float64, s string, size int, c color.Color)
}

var (
	GridColor  = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	AxisColor  = color.Black
	CurveColor = color.Black
)

const (
	DefaultWidth    = 800
	DefaultHeight   = 600
	DefaultGridStep = 40

	gridLabelSize = 15
	axisLabelSize = 20
)
