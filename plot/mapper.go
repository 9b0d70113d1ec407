package plot

import (
	"github.com/sgostarter/libplotter/curve"
)

// Mapper projects math space onto pixel space. Pixel rows grow downwards, so
// y is flipped.
type Mapper struct {
	Scale   float64
	OriginX float64
	OriginY float64
}

var DefaultMapper = Mapper{
	Scale:   20,
	OriginX: 400,
	OriginY: 300,
}

func (m Mapper) Map(pt curve.Point) (px, py float64) {
	return pt.X*m.Scale + m.OriginX, -pt.Y*m.Scale + m.OriginY
}

func (m Mapper) Unmap(px, py float64) curve.Point {
	return curve.Point{
		X: (px - m.OriginX) / m.Scale,
		Y: (m.OriginY - py) / m.Scale,
	}
}

type Segment struct {
	X0, Y0 float64
	X1, Y1 float64
}

// Segments maps consecutive point pairs to pixel segments. A pair with a NaN
// or infinite coordinate produces no segment.
func (m Mapper) Segments(points []curve.Point) []Segment {
	if len(points) < 2 {
		return nil
	}

	segments := make([]Segment, 0, len(points)-1)

	for i := 1; i < len(points); i++ {
		if !points[i-1].IsFinite() || !points[i].IsFinite() {
			continue
		}

		var s Segment

		s.X0, s.Y0 = m.Map(points[i-1])
		s.X1, s.Y1 = m.Map(points[i])

		segments = append(segments, s)
	}

	return segments
}
