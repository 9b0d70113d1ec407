package vector

import (
	"bytes"
	"math"
	"testing"

	"github.com/sgostarter/libplotter/curve"
	"github.com/sgostarter/libplotter/fn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiniteRuns(t *testing.T) {
	nan := math.NaN()

	points := []curve.Point{
		curve.Pt(0, 0), curve.Pt(1, 1), curve.Pt(2, 2),
		curve.Pt(3, nan),
		curve.Pt(4, 4),
		curve.Pt(5, math.Inf(-1)),
		curve.Pt(6, 6), curve.Pt(7, 7),
	}

	runs := FiniteRuns(points)
	require.Len(t, runs, 2)
	assert.Equal(t, points[0:3], runs[0])
	assert.Equal(t, points[6:8], runs[1])

	assert.Empty(t, FiniteRuns(nil))
	assert.Empty(t, FiniteRuns([]curve.Point{curve.Pt(nan, 0), curve.Pt(1, 1)}))
}

func TestFormatOf(t *testing.T) {
	format, err := FormatOf("out/plot.SVG")
	require.Nil(t, err)
	assert.Equal(t, "svg", format)

	format, err = FormatOf("plot.pdf")
	require.Nil(t, err)
	assert.Equal(t, "pdf", format)

	_, err = FormatOf("plot.png")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = FormatOf("plot")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExport(t *testing.T) {
	domain := curve.NewDomain(0, 4, -1, 1)

	lg, err := fn.NewLogarithmic(1, 10, 0)
	require.Nil(t, err)

	sin := curve.NewCurve(fn.NewTrigonometric(fn.Sine, 1, 1, 0))
	sin.Sample(domain, 40)

	log := curve.NewCurve(lg)
	log.Sample(domain, 40)

	var buf bytes.Buffer

	require.Nil(t, Export(&buf, "svg", domain, []*curve.Curve{sin, log}))
	assert.Contains(t, buf.String(), "<svg")

	buf.Reset()
	require.Nil(t, Export(&buf, "pdf", domain, nil))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))

	assert.ErrorIs(t, Export(&buf, "png", domain, nil), ErrUnsupportedFormat)
}

func TestPlotAxesLimitedToDomain(t *testing.T) {
	domain := curve.NewDomain(-10, 10, -10, 10)

	parabola := curve.NewCurve(fn.NewPolynomial(-1, 0, 1))
	parabola.Sample(domain, 100)

	p, err := newPlot(domain, []*curve.Curve{parabola})
	require.Nil(t, err)

	assert.EqualValues(t, -10, p.X.Min)
	assert.EqualValues(t, 10, p.X.Max)
	assert.EqualValues(t, -10, p.Y.Min)
	assert.EqualValues(t, 10, p.Y.Max)

	var buf bytes.Buffer

	require.Nil(t, Export(&buf, "svg", domain, []*curve.Curve{parabola}))
	assert.NotContains(t, buf.String(), ">80<")
	assert.NotContains(t, buf.String(), ">40<")
}
