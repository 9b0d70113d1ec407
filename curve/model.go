package curve

import (
	"context"
	"fmt"
	"math"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libplotter/fn"
)

type Point struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// IsFinite reports whether neither coordinate is NaN or infinite.
func (pt Point) IsFinite() bool {
	return !math.IsNaN(pt.X) && !math.IsInf(pt.X, 0) && !math.IsNaN(pt.Y) && !math.IsInf(pt.Y, 0)
}

type Range struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

func (r Range) Valid() bool {
	return r.Min < r.Max
}

func (r Range) Span() float64 {
	return r.Max - r.Min
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Domain is the view window: curves are sampled over X and drawn against Y.
// Both ranges are expected to satisfy Min < Max; Sample does not check it,
// callers that take ranges from users should call Validate first.
type Domain struct {
	X Range `yaml:"x" json:"x"`
	Y Range `yaml:"y" json:"y"`
}

func NewDomain(xMin, xMax, yMin, yMax float64) Domain {
	return Domain{
		X: Range{Min: xMin, Max: xMax},
		Y: Range{Min: yMin, Max: yMax},
	}
}

func (d Domain) Valid() bool {
	return d.X.Valid() && d.Y.Valid()
}

func (d Domain) Validate() error {
	if !d.X.Valid() {
		return fmt.Errorf("%w: x range [%g, %g]", commerr.ErrInvalidArgument, d.X.Min, d.X.Max)
	}

	if !d.Y.Valid() {
		return fmt.Errorf("%w: y range [%g, %g]", commerr.ErrInvalidArgument, d.Y.Min, d.Y.Max)
	}

	return nil
}

// Storage persists the point sequences of a collection under a key.
// Loading a key that was never saved returns no curves and no error.
type Storage interface {
	Load(ctx context.Context, key string) (curves [][]Point, err error)
	Save(ctx context.Context, key string, curves [][]Point) error
}

// Sampler turns a function and an x range into numPoints+1 evenly spaced points.
type Sampler interface {
	Sample(f fn.Function, x Range, numPoints int) []Point
}
