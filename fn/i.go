// Package fn holds the closed family of real functions that can be sampled
// and plotted: polynomial, trigonometric, exponential and logarithmic.
package fn

type Kind string

const (
	KindPolynomial    Kind = "polynomial"
	KindTrigonometric Kind = "trigonometric"
	KindExponential   Kind = "exponential"
	KindLogarithmic   Kind = "logarithmic"
)

// Function evaluates y for a given x. Evaluation is pure; results outside the
// real line come back as NaN or Inf instead of an error.
//
// The set of implementations is closed: only the variants of this package
// satisfy it.
type Function interface {
	Evaluate(x float64) float64
	Label() string
	Kind() Kind

	sealed()
}
