package curve

type Options struct {
	precision     int
	skipMalformed bool

	onMalformed func(err *ParseError)
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{
		precision: -1,
	}

	for _, o := range option {
		o(opts)
	}

	return opts
}

// PrecisionOption fixes the number of significant digits written per
// coordinate. The default, -1, writes the shortest text that reads back to
// the same float64.
func PrecisionOption(precision int) Option {
	return func(o *Options) {
		if precision < -1 {
			precision = -1
		}

		o.precision = precision
	}
}

// SkipMalformedOption makes loading drop point tokens that cannot be parsed
// instead of failing the whole load.
func SkipMalformedOption() Option {
	return func(o *Options) {
		o.skipMalformed = true
	}
}

// MalformedHandlerOption is called for every token dropped under
// SkipMalformedOption.
func MalformedHandlerOption(handler func(err *ParseError)) Option {
	return func(o *Options) {
		o.onMalformed = handler
	}
}
