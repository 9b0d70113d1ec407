// Package console is the interactive front end of the grapher: it reads menu
// choices and parameters as whitespace separated tokens and drives a curve
// collection. Prompts are printed in Russian or English.
package console

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libplotter/curve"
	"github.com/sgostarter/libplotter/fn"
	"github.com/spf13/cast"
	"golang.org/x/text/message"
)

const (
	choiceExit = iota
	choicePolynomial
	choiceTrigonometric
	choiceExponential
	choiceLogarithmic
	choiceRange
	choiceClear
	choiceSave
	choiceLoad
	choiceList
)

type UI struct {
	logger     l.Wrapper
	opts       *Options
	in         *bufio.Scanner
	out        io.Writer
	printer    *message.Printer
	collection *curve.Collection
}

func NewUI(in io.Reader, out io.Writer, collection *curve.Collection, logger l.Wrapper, opts ...Option) *UI {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "consoleUI"))

	if collection == nil {
		logger.Fatal("no curve collection")
	}

	ui := &UI{
		logger:     logger,
		opts:       optionNew(opts...),
		in:         bufio.NewScanner(in),
		out:        out,
		collection: collection,
	}

	ui.in.Split(bufio.ScanWords)
	ui.printer = message.NewPrinter(ui.opts.lang, message.Catalog(newCatalog()))

	return ui
}

// Run serves menu choices until the exit choice, the end of input or the
// cancellation of ctx. Only read errors of the input and ctx errors are
// returned; failed commands are reported on the output and the loop goes on.
func (ui *UI) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if ui.opts.showMenu {
			ui.printf(msgMenu)
		}

		token, ok := ui.next()
		if !ok {
			return ui.in.Err()
		}

		choice, err := parseChoice(token)
		if err != nil {
			ui.printf(msgInvalidChoice)

			continue
		}

		if choice == choiceExit {
			return nil
		}

		if err = ui.do(ctx, choice); errors.Is(err, errNoInput) {
			return ui.in.Err()
		}
	}
}

func (ui *UI) do(ctx context.Context, choice int) error {
	switch choice {
	case choicePolynomial:
		return ui.buildPolynomial(ctx)
	case choiceTrigonometric:
		return ui.buildTrigonometric(ctx)
	case choiceExponential:
		return ui.buildExponential(ctx)
	case choiceLogarithmic:
		return ui.buildLogarithmic(ctx)
	case choiceRange:
		return ui.changeRange(ctx)
	case choiceClear:
		ui.collection.Clear()
		ui.printf(msgCleared)
		ui.changed(ctx)

		return nil
	case choiceSave:
		return ui.save(ctx)
	case choiceLoad:
		return ui.load(ctx)
	case choiceList:
		ui.list()

		return nil
	}

	ui.printf(msgInvalidChoice)

	return errInvalidInput
}

func (ui *UI) buildPolynomial(ctx context.Context) error {
	ui.printf(msgPolynomialPrompt)

	vs, err := ui.floats(3)
	if err != nil {
		return err
	}

	ui.replace(ctx, fn.NewPolynomial(vs...))

	return nil
}

func (ui *UI) buildTrigonometric(ctx context.Context) error {
	ui.printf(msgTrigPrompt)

	token, ok := ui.next()
	if !ok {
		return errNoInput
	}

	trig := fn.TrigKind(token)
	if trig != fn.Sine && trig != fn.Cosine {
		ui.printf(msgUnknownTrig, token)

		return errInvalidInput
	}

	vs, err := ui.floats(3)
	if err != nil {
		return err
	}

	ui.replace(ctx, fn.NewTrigonometric(trig, vs[0], vs[1], vs[2]))

	return nil
}

func (ui *UI) buildExponential(ctx context.Context) error {
	ui.printf(msgExponentialPrompt)

	vs, err := ui.floats(2)
	if err != nil {
		return err
	}

	ui.replace(ctx, fn.NewExponential(vs[0], vs[1]))

	return nil
}

func (ui *UI) buildLogarithmic(ctx context.Context) error {
	ui.printf(msgLogPrompt)

	vs, err := ui.floats(3)
	if err != nil {
		return err
	}

	lg, err := fn.NewLogarithmic(vs[0], vs[1], vs[2])
	if err != nil {
		ui.printf(msgInvalidBase)

		return err
	}

	ui.replace(ctx, lg)

	return nil
}

// replace makes f the only plotted curve.
func (ui *UI) replace(ctx context.Context, f fn.Function) {
	c := curve.NewCurve(f)
	c.SampleWith(ui.opts.sampler, *ui.collection.Domain(), ui.opts.numPoints)

	ui.collection.Clear()
	ui.collection.AddCurve(c)

	ui.changed(ctx)
}

// changeRange sets a new domain and re-samples every function backed curve
// over it. Loaded point curves keep their points.
func (ui *UI) changeRange(ctx context.Context) error {
	ui.printf(msgRangeXPrompt)

	xs, err := ui.floats(2)
	if err != nil {
		return err
	}

	ui.printf(msgRangeYPrompt)

	ys, err := ui.floats(2)
	if err != nil {
		return err
	}

	domain := curve.NewDomain(xs[0], xs[1], ys[0], ys[1])
	if err = domain.Validate(); err != nil {
		ui.printf(msgInvalidRange)

		return err
	}

	ui.collection.SetDomain(domain)

	curves := ui.collection.Curves()
	ui.collection.Clear()

	for _, c := range curves {
		if c.Resamplable() {
			c.SampleWith(ui.opts.sampler, domain, ui.opts.numPoints)
		}

		ui.collection.AddCurve(c)
	}

	ui.changed(ctx)

	return nil
}

func (ui *UI) save(ctx context.Context) error {
	key, err := ui.fileKey()
	if err != nil {
		return err
	}

	if err = ui.collection.Save(ctx, key); err != nil {
		ui.failed(err)

		return err
	}

	ui.printf(msgSaved, key)

	return nil
}

func (ui *UI) load(ctx context.Context) error {
	key, err := ui.fileKey()
	if err != nil {
		return err
	}

	if err = ui.collection.Load(ctx, key); err != nil {
		ui.failed(err)

		return err
	}

	ui.printf(msgLoaded, ui.collection.Len())
	ui.changed(ctx)

	return nil
}

func (ui *UI) list() {
	curves := ui.collection.Curves()
	if len(curves) == 0 {
		ui.printf(msgNoCurves)

		return
	}

	for idx, c := range curves {
		if f := c.Function(); f != nil {
			ui.printf(msgFunctionCurve, idx+1, f.Label(), c.Len())
		} else {
			ui.printf(msgPointsCurve, idx+1, c.Len())
		}
	}
}

func (ui *UI) changed(ctx context.Context) {
	if ui.opts.onChange == nil {
		return
	}

	if err := ui.opts.onChange(ctx, ui.collection); err != nil {
		ui.failed(err)
	}
}

func (ui *UI) fileKey() (string, error) {
	ui.printf(msgFilePrompt)

	token, ok := ui.next()
	if !ok {
		return "", errNoInput
	}

	if token == "-" {
		if ui.opts.defaultFile == "" {
			ui.printf(msgFailed, ErrNoDefaultFile)

			return "", ErrNoDefaultFile
		}

		token = ui.opts.defaultFile
	}

	return token, nil
}

func (ui *UI) floats(n int) ([]float64, error) {
	vs := make([]float64, 0, n)

	for len(vs) < n {
		token, ok := ui.next()
		if !ok {
			return nil, errNoInput
		}

		v, err := cast.ToFloat64E(token)
		if err != nil {
			ui.printf(msgInvalidNumber, token)

			return nil, errInvalidInput
		}

		vs = append(vs, v)
	}

	return vs, nil
}

// parseChoice reads a menu choice as a decimal number, so leading zeros
// never switch the base.
func parseChoice(token string) (int, error) {
	digits := strings.TrimLeft(token, "0")
	if digits == "" && token != "" {
		digits = "0"
	}

	return cast.ToIntE(digits)
}

func (ui *UI) next() (string, bool) {
	if !ui.in.Scan() {
		return "", false
	}

	return ui.in.Text(), true
}

func (ui *UI) failed(err error) {
	ui.logger.WithFields(l.ErrorField(err)).Error("command failed")
	ui.printf(msgFailed, err)
}

func (ui *UI) printf(key string, a ...interface{}) {
	_, _ = ui.printer.Fprintf(ui.out, key, a...)
}
