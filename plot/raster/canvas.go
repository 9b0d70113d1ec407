// Package raster renders plots into an in-memory RGBA image and encodes it
// as PNG.
package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/sgostarter/libplotter/curve"
	"github.com/sgostarter/libplotter/plot"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

type Canvas struct {
	img  *image.RGBA
	face font.Face
}

func NewCanvas(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	return &Canvas{
		img:  img,
		face: basicfont.Face7x13,
	}
}

func (c *Canvas) Size() (width, height int) {
	b := c.img.Bounds()

	return b.Dx(), b.Dy()
}

func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Line draws a one pixel wide segment. The segment is clipped to the image
// first, so far away endpoints cost nothing.
func (c *Canvas) Line(x0, y0, x1, y1 float64, clr color.Color) {
	b := c.img.Bounds()

	x0, y0, x1, y1, ok := clip(x0, y0, x1, y1,
		float64(b.Min.X), float64(b.Min.Y), float64(b.Max.X-1), float64(b.Max.Y-1))
	if !ok {
		return
	}

	ix0, iy0 := int(math.Round(x0)), int(math.Round(y0))
	ix1, iy1 := int(math.Round(x1)), int(math.Round(y1))

	dx, dy := abs(ix1-ix0), -abs(iy1-iy0)
	sx, sy := sign(ix1-ix0), sign(iy1-iy0)
	e := dx + dy

	for {
		c.img.Set(ix0, iy0, clr)

		if ix0 == ix1 && iy0 == iy1 {
			return
		}

		e2 := 2 * e
		if e2 >= dy {
			e += dy
			ix0 += sx
		}

		if e2 <= dx {
			e += dx
			iy0 += sy
		}
	}
}

// Text draws s with its top left corner at x, y. The bitmap face has a single
// size, so size is ignored.
func (c *Canvas) Text(x, y float64, s string, _ int, clr color.Color) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(clr),
		Face: c.face,
		Dot:  fixed.P(int(x), int(y)+c.face.Metrics().Ascent.Ceil()),
	}

	d.DrawString(s)
}

func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// clip is Liang-Barsky against the closed box [minX,maxX]x[minY,maxY].
func clip(x0, y0, x1, y1, minX, minY, maxX, maxY float64) (float64, float64, float64, float64, bool) {
	for _, v := range []float64{x0, y0, x1, y1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, 0, 0, false
		}
	}

	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0

	edges := [4][2]float64{
		{-dx, x0 - minX},
		{dx, maxX - x0},
		{-dy, y0 - minY},
		{dy, maxY - y0},
	}

	for _, edge := range edges {
		p, q := edge[0], edge[1]

		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}

			continue
		}

		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}

			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}

			if r < t1 {
				t1 = r
			}
		}
	}

	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}

	return 0
}

// Render draws curves with p on a fresh canvas of the default size and
// returns the PNG bytes.
func Render(p *plot.Plotter, curves []*curve.Curve) ([]byte, error) {
	c := NewCanvas(plot.DefaultWidth, plot.DefaultHeight)
	p.Plot(c, curves)

	var buf bytes.Buffer

	if err := c.EncodePNG(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
