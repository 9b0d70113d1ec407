package fn

import "math"

type TrigKind string

const (
	Sine   TrigKind = "sin"
	Cosine TrigKind = "cos"
)

type Trigonometric struct {
	trig      TrigKind
	amplitude float64
	frequency float64
	phase     float64
}

// NewTrigonometric builds amplitude*trig(frequency*x + phase). Any trig
// other than Sine or Cosine is accepted and evaluates to 0 everywhere.
func NewTrigonometric(trig TrigKind, amplitude, frequency, phase float64) Trigonometric {
	return Trigonometric{
		trig:      trig,
		amplitude: amplitude,
		frequency: frequency,
		phase:     phase,
	}
}

func (t Trigonometric) Evaluate(x float64) float64 {
	switch t.trig {
	case Sine:
		return t.amplitude * math.Sin(t.frequency*x+t.phase)
	case Cosine:
		return t.amplitude * math.Cos(t.frequency*x+t.phase)
	}

	return 0
}

func (t Trigonometric) Params() (trig TrigKind, amplitude, frequency, phase float64) {
	return t.trig, t.amplitude, t.frequency, t.phase
}

func (Trigonometric) Label() string {
	return "Trigonometric Function"
}

func (Trigonometric) Kind() Kind {
	return KindTrigonometric
}

func (Trigonometric) sealed() {}
