package plot

import (
	"strconv"

	"github.com/sgostarter/libplotter/curve"
)

type Options struct {
	mapper   Mapper
	gridStep int
}

type Option func(o *Options)

func MapperOption(m Mapper) Option {
	return func(o *Options) {
		if m.Scale != 0 {
			o.mapper = m
		}
	}
}

func GridStepOption(step int) Option {
	return func(o *Options) {
		if step > 0 {
			o.gridStep = step
		}
	}
}

type Plotter struct {
	opts Options
}

func NewPlotter(opts ...Option) *Plotter {
	p := &Plotter{
		opts: Options{
			mapper:   DefaultMapper,
			gridStep: DefaultGridStep,
		},
	}

	for _, o := range opts {
		o(&p.opts)
	}

	return p
}

func (p *Plotter) Mapper() Mapper {
	return p.opts.mapper
}

// Plot draws the grid first, then the axes, then the curves in order.
func (p *Plotter) Plot(canvas Canvas, curves []*curve.Curve) {
	p.drawGrid(canvas)
	p.drawAxes(canvas)

	for _, c := range curves {
		for _, s := range p.opts.mapper.Segments(c.Points()) {
			canvas.Line(s.X0, s.Y0, s.X1, s.Y1, CurveColor)
		}
	}
}

func (p *Plotter) drawGrid(canvas Canvas) {
	width, height := canvas.Size()
	m := p.opts.mapper
	originX, originY := int(m.OriginX), int(m.OriginY)

	for i := 0; i <= width; i += p.opts.gridStep {
		canvas.Line(float64(i), 0, float64(i), float64(height), GridColor)

		if i != originX {
			canvas.Text(float64(i), m.OriginY+10, strconv.Itoa(int(m.Unmap(float64(i), 0).X)), gridLabelSize, AxisColor)
		}
	}

	for i := 0; i <= height; i += p.opts.gridStep {
		canvas.Line(0, float64(i), float64(width), float64(i), GridColor)

		if i != originY {
			canvas.Text(m.OriginX+10, float64(i), strconv.Itoa(int(m.Unmap(0, float64(i)).Y)), gridLabelSize, AxisColor)
		}
	}
}

func (p *Plotter) drawAxes(canvas Canvas) {
	width, height := canvas.Size()
	m := p.opts.mapper

	canvas.Line(0, m.OriginY, float64(width), m.OriginY, AxisColor)
	canvas.Line(m.OriginX, 0, m.OriginX, float64(height), AxisColor)

	canvas.Text(float64(width)-20, m.OriginY+10, "X", axisLabelSize, AxisColor)
	canvas.Text(m.OriginX+20, 10, "Y", axisLabelSize, AxisColor)
}
