package console

import (
	"context"

	"github.com/sgostarter/libplotter/curve"
	"golang.org/x/text/language"
)

type ChangeHandler func(ctx context.Context, c *curve.Collection) error

type Options struct {
	lang        language.Tag
	sampler     curve.Sampler
	numPoints   int
	showMenu    bool
	defaultFile string
	onChange    ChangeHandler
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{
		lang:      language.Russian,
		sampler:   curve.DirectSampler{},
		numPoints: 100,
		showMenu:  true,
	}

	for _, o := range option {
		o(opts)
	}

	return opts
}

func LanguageOption(lang language.Tag) Option {
	return func(o *Options) {
		o.lang = lang
	}
}

func SamplerOption(sampler curve.Sampler) Option {
	return func(o *Options) {
		if sampler != nil {
			o.sampler = sampler
		}
	}
}

func NumPointsOption(numPoints int) Option {
	return func(o *Options) {
		if numPoints > 0 {
			o.numPoints = numPoints
		}
	}
}

// HideMenuOption stops the menu from being printed before every choice,
// for scripted input.
func HideMenuOption() Option {
	return func(o *Options) {
		o.showMenu = false
	}
}

// DefaultFileOption is the key used when "-" is given as a file name.
func DefaultFileOption(key string) Option {
	return func(o *Options) {
		o.defaultFile = key
	}
}

// OnChangeOption is called after every command that changed the collection
// or its domain.
func OnChangeOption(handler ChangeHandler) Option {
	return func(o *Options) {
		o.onChange = handler
	}
}
