package fn

import (
	"fmt"
	"strconv"
	"strings"
)

// Spec is the serializable description of a Function, used by configs and
// by the session store. Only the fields of the selected Kind are read.
type Spec struct {
	Kind Kind `yaml:"kind" json:"kind"`

	Coefficients []float64 `yaml:"coefficients,omitempty" json:"coefficients,omitempty"`

	Trig      TrigKind `yaml:"trig,omitempty" json:"trig,omitempty"`
	Amplitude float64  `yaml:"amplitude,omitempty" json:"amplitude,omitempty"`
	Frequency float64  `yaml:"frequency,omitempty" json:"frequency,omitempty"`
	Phase     float64  `yaml:"phase,omitempty" json:"phase,omitempty"`

	Coefficient float64 `yaml:"coefficient,omitempty" json:"coefficient,omitempty"`
	Base        float64 `yaml:"base,omitempty" json:"base,omitempty"`

	A float64 `yaml:"a,omitempty" json:"a,omitempty"`
	C float64 `yaml:"c,omitempty" json:"c,omitempty"`
}

func Build(spec Spec) (Function, error) {
	switch spec.Kind {
	case KindPolynomial:
		return NewPolynomial(spec.Coefficients...), nil
	case KindTrigonometric:
		trig := spec.Trig
		if trig == "" {
			trig = Sine
		}

		return NewTrigonometric(trig, spec.Amplitude, spec.Frequency, spec.Phase), nil
	case KindExponential:
		return NewExponential(spec.Coefficient, spec.Base), nil
	case KindLogarithmic:
		lg, err := NewLogarithmic(spec.A, spec.Base, spec.C)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadSpec, err)
		}

		return lg, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, spec.Kind)
}

func SpecOf(f Function) (spec Spec, ok bool) {
	switch v := f.(type) {
	case Polynomial:
		spec = Spec{Kind: KindPolynomial, Coefficients: v.Coefficients()}
	case Trigonometric:
		spec = Spec{Kind: KindTrigonometric}
		spec.Trig, spec.Amplitude, spec.Frequency, spec.Phase = v.Params()
	case Exponential:
		spec = Spec{Kind: KindExponential}
		spec.Coefficient, spec.Base = v.Params()
	case Logarithmic:
		spec = Spec{Kind: KindLogarithmic}
		spec.A, spec.Base, spec.C = v.Params()
	default:
		return
	}

	ok = true

	return
}

// Key is a canonical text form of the spec: two specs with the same key
// build functions that evaluate identically.
func (spec Spec) Key() string {
	var sb strings.Builder

	sb.WriteString(string(spec.Kind))
	sb.WriteByte(':')

	fnFloats := func(vs ...float64) {
		for idx, v := range vs {
			if idx > 0 {
				sb.WriteByte(',')
			}

			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
	}

	switch spec.Kind {
	case KindPolynomial:
		fnFloats(spec.Coefficients...)
	case KindTrigonometric:
		sb.WriteString(string(spec.Trig))
		sb.WriteByte(',')
		fnFloats(spec.Amplitude, spec.Frequency, spec.Phase)
	case KindExponential:
		fnFloats(spec.Coefficient, spec.Base)
	case KindLogarithmic:
		fnFloats(spec.A, spec.Base, spec.C)
	}

	return sb.String()
}

func (spec Spec) String() string {
	return spec.Key()
}
