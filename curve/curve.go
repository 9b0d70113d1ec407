package curve

import (
	"github.com/sgostarter/libplotter/fn"
)

// Curve is a function together with the points last sampled from it. Curves
// restored from storage carry points only and cannot be re-sampled.
type Curve struct {
	f      fn.Function
	points []Point
}

func NewCurve(f fn.Function) *Curve {
	return &Curve{
		f: f,
	}
}

// NewPointsCurve wraps already sampled points. The slice is copied.
func NewPointsCurve(points []Point) *Curve {
	return &Curve{
		points: append([]Point(nil), points...),
	}
}

func (c *Curve) Function() fn.Function {
	return c.f
}

// SetFunction swaps the function. The held points are kept until the next
// Sample.
func (c *Curve) SetFunction(f fn.Function) {
	c.f = f
}

func (c *Curve) Resamplable() bool {
	return c.f != nil
}

// Points returns a copy of the sampled points in x order.
func (c *Curve) Points() []Point {
	return append([]Point(nil), c.points...)
}

func (c *Curve) Len() int {
	return len(c.points)
}

// Sample replaces the points with numPoints+1 samples spread evenly over
// domain.X, both ends included. A curve without a function is left as is.
func (c *Curve) Sample(domain Domain, numPoints int) {
	c.SampleWith(DirectSampler{}, domain, numPoints)
}

func (c *Curve) SampleWith(sampler Sampler, domain Domain, numPoints int) {
	if c.f == nil {
		return
	}

	if sampler == nil {
		sampler = DirectSampler{}
	}

	c.points = sampler.Sample(c.f, domain.X, numPoints)
}
