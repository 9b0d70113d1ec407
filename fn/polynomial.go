package fn

import "math"

type Polynomial struct {
	coefficients []float64
}

// NewPolynomial builds c0 + c1*x + ... + cn*x^n. The slice is copied.
func NewPolynomial(coefficients ...float64) Polynomial {
	return Polynomial{
		coefficients: append([]float64(nil), coefficients...),
	}
}

func (p Polynomial) Evaluate(x float64) float64 {
	var y float64

	for i, c := range p.coefficients {
		y += c * math.Pow(x, float64(i))
	}

	return y
}

// Degree is len(coefficients)-1, so -1 for the empty polynomial.
func (p Polynomial) Degree() int {
	return len(p.coefficients) - 1
}

func (p Polynomial) Coefficients() []float64 {
	return append([]float64(nil), p.coefficients...)
}

func (Polynomial) Label() string {
	return "Polynomial Function"
}

func (Polynomial) Kind() Kind {
	return KindPolynomial
}

func (Polynomial) sealed() {}
