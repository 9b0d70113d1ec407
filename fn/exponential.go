package fn

import "math"

type Exponential struct {
	coefficient float64
	base        float64
}

// NewExponential builds coefficient*base^x. The base is not validated:
// zero and negative bases follow math.Pow.
func NewExponential(coefficient, base float64) Exponential {
	return Exponential{
		coefficient: coefficient,
		base:        base,
	}
}

func (e Exponential) Evaluate(x float64) float64 {
	return e.coefficient * math.Pow(e.base, x)
}

func (e Exponential) Params() (coefficient, base float64) {
	return e.coefficient, e.base
}

func (Exponential) Label() string {
	return "Exponential Function"
}

func (Exponential) Kind() Kind {
	return KindExponential
}

func (Exponential) sealed() {}
