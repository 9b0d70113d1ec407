package fn

import (
	"fmt"
	"math"
)

type Logarithmic struct {
	a    float64
	base float64
	c    float64
}

// NewLogarithmic builds a*log_base(x) + c. The base must be greater than 1.
func NewLogarithmic(a, base, c float64) (Logarithmic, error) {
	if !(base > 1) || math.IsInf(base, 1) {
		return Logarithmic{}, fmt.Errorf("%w: %g", ErrInvalidBase, base)
	}

	return Logarithmic{
		a:    a,
		base: base,
		c:    c,
	}, nil
}

// Evaluate returns NaN for x <= 0.
func (lg Logarithmic) Evaluate(x float64) float64 {
	if x <= 0 {
		return math.NaN()
	}

	return lg.a*math.Log(x)/math.Log(lg.base) + lg.c
}

func (lg Logarithmic) Params() (a, base, c float64) {
	return lg.a, lg.base, lg.c
}

func (Logarithmic) Label() string {
	return "Logarithmic Function"
}

func (Logarithmic) Kind() Kind {
	return KindLogarithmic
}

func (Logarithmic) sealed() {}
