package curve

import (
	"math"
	"testing"
	"time"

	"github.com/sgostarter/libplotter/fn"
	"github.com/stretchr/testify/assert"
)

func TestSampleCountAndEnds(t *testing.T) {
	f := fn.NewPolynomial(1, 0, -1)

	for _, tc := range []struct {
		min, max float64
		n        int
	}{
		{-10, 10, 100},
		{0, 1, 1},
		{-3.3, 7.7, 13},
		{0.1, 0.3, 7},
		{-1e6, 1e6, 1000},
	} {
		c := NewCurve(f)
		c.Sample(NewDomain(tc.min, tc.max, -10, 10), tc.n)

		ps := c.Points()
		assert.Len(t, ps, tc.n+1)
		assert.Equal(t, tc.min, ps[0].X)
		assert.InDelta(t, tc.max, ps[len(ps)-1].X, 1e-9*math.Max(1, math.Abs(tc.max)))

		step := (tc.max - tc.min) / float64(tc.n)
		for i, pt := range ps {
			assert.InDelta(t, tc.min+float64(i)*step, pt.X, 1e-9*math.Max(1, math.Abs(pt.X)))
			assert.Equal(t, f.Evaluate(pt.X), pt.Y)
		}
	}
}

func TestSampleIdempotent(t *testing.T) {
	c := NewCurve(fn.NewTrigonometric(fn.Sine, 2, 0.5, 1))
	d := NewDomain(-10, 10, -10, 10)

	c.Sample(d, 100)
	first := c.Points()

	c.Sample(d, 100)
	diff(t, first, c.Points())
}

func TestSampleReplacesPoints(t *testing.T) {
	c := NewCurve(fn.NewExponential(2, 3))

	c.Sample(NewDomain(-1, 1, -10, 10), 10)
	assert.Equal(t, 11, c.Len())

	c.Sample(NewDomain(0, 5, -10, 10), 4)
	assert.Equal(t, 5, c.Len())
	assert.EqualValues(t, 0, c.Points()[0].X)
	assert.EqualValues(t, 2, c.Points()[0].Y)
}

func TestSampleKeepsNonFinite(t *testing.T) {
	lg, err := fn.NewLogarithmic(1, math.E, 0)
	assert.Nil(t, err)

	c := NewCurve(lg)
	c.Sample(NewDomain(-2, 2, -10, 10), 4)

	ps := c.Points()
	assert.Len(t, ps, 5)
	assert.True(t, math.IsNaN(ps[0].Y))
	assert.True(t, math.IsNaN(ps[1].Y))
	assert.False(t, ps[2].IsFinite())
	assert.True(t, ps[3].IsFinite())
}

func TestSampleClampsPointCount(t *testing.T) {
	c := NewCurve(fn.NewPolynomial(1))
	c.Sample(NewDomain(0, 4, -1, 1), 0)

	diff(t, []Point{Pt(0, 1), Pt(4, 1)}, c.Points())
}

func TestSampleWithoutFunction(t *testing.T) {
	c := NewPointsCurve([]Point{Pt(1, 2), Pt(3, 4)})
	assert.False(t, c.Resamplable())

	c.Sample(NewDomain(-10, 10, -10, 10), 100)
	diff(t, []Point{Pt(1, 2), Pt(3, 4)}, c.Points())
}

func TestSetFunction(t *testing.T) {
	c := NewCurve(fn.NewPolynomial(1))
	d := NewDomain(0, 1, -1, 1)
	c.Sample(d, 1)

	c.SetFunction(fn.NewPolynomial(2))
	diff(t, []Point{Pt(0, 1), Pt(1, 1)}, c.Points())

	c.Sample(d, 1)
	diff(t, []Point{Pt(0, 2), Pt(1, 2)}, c.Points())
}

func TestPointsIsACopy(t *testing.T) {
	c := NewCurve(fn.NewPolynomial(0, 1))
	c.Sample(NewDomain(0, 2, -1, 1), 2)

	ps := c.Points()
	ps[0] = Pt(100, 100)

	assert.Equal(t, Pt(0, 0), c.Points()[0])
}

func TestCachedSampler(t *testing.T) {
	s := NewCachedSampler(time.Minute)
	d := NewDomain(-5, 5, -5, 5)

	c1 := NewCurve(fn.NewTrigonometric(fn.Cosine, 1, 2, 0))
	c1.SampleWith(s, d, 50)
	assert.Equal(t, 1, s.Len())

	c2 := NewCurve(fn.NewTrigonometric(fn.Cosine, 1, 2, 0))
	c2.SampleWith(s, d, 50)
	assert.Equal(t, 1, s.Len())
	diff(t, c1.Points(), c2.Points())

	direct := NewCurve(fn.NewTrigonometric(fn.Cosine, 1, 2, 0))
	direct.Sample(d, 50)
	diff(t, direct.Points(), c2.Points())

	c2.SampleWith(s, NewDomain(0, 1, -5, 5), 50)
	assert.Equal(t, 2, s.Len())

	s.Flush()
	assert.Equal(t, 0, s.Len())
}

func TestCachedSamplerReturnsCopies(t *testing.T) {
	s := NewCachedSampler(0)
	f := fn.NewPolynomial(0, 1)

	ps := s.Sample(f, Range{Min: 0, Max: 1}, 2)
	ps[0] = Pt(9, 9)

	diff(t, SamplePoints(f, Range{Min: 0, Max: 1}, 2), s.Sample(f, Range{Min: 0, Max: 1}, 2))
}

func TestDomainValidate(t *testing.T) {
	assert.Nil(t, NewDomain(-1, 1, -2, 2).Validate())
	assert.True(t, NewDomain(-1, 1, -2, 2).Valid())

	assert.NotNil(t, NewDomain(1, 1, -2, 2).Validate())
	assert.NotNil(t, NewDomain(-1, 1, 3, 2).Validate())
	assert.False(t, NewDomain(2, 1, -2, 2).Valid())
}
