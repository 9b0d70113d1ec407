package curve

import (
	"bytes"
	"strconv"
	"strings"
)

// Marshal writes one line per curve. Each point is written as "x,y" followed
// by a single space.
func Marshal(curves [][]Point, opts ...Option) []byte {
	return marshal(curves, optionNew(opts...))
}

// Unmarshal reads the format written by Marshal. Tokens are separated by any
// whitespace and split on their first comma. Every line, including an empty
// one, is a curve; an empty payload holds no curves.
func Unmarshal(d []byte, opts ...Option) ([][]Point, error) {
	return unmarshal(d, optionNew(opts...))
}

func marshal(curves [][]Point, opts *Options) []byte {
	var buf bytes.Buffer

	for _, points := range curves {
		for _, pt := range points {
			buf.WriteString(formatFloat(pt.X, opts.precision))
			buf.WriteByte(',')
			buf.WriteString(formatFloat(pt.Y, opts.precision))
			buf.WriteByte(' ')
		}

		buf.WriteByte('\n')
	}

	return buf.Bytes()
}

func unmarshal(d []byte, opts *Options) (curves [][]Point, err error) {
	if len(d) == 0 {
		return
	}

	lines := strings.Split(string(d), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	curves = make([][]Point, 0, len(lines))

	for idx, line := range lines {
		tokens := strings.Fields(line)
		points := make([]Point, 0, len(tokens))

		for _, token := range tokens {
			pt, e := parsePoint(idx+1, token)
			if e != nil {
				if !opts.skipMalformed {
					return nil, e
				}

				if opts.onMalformed != nil {
					opts.onMalformed(e)
				}

				continue
			}

			points = append(points, pt)
		}

		curves = append(curves, points)
	}

	return
}

func parsePoint(line int, token string) (pt Point, err *ParseError) {
	ps := strings.SplitN(token, ",", 2)
	if len(ps) != 2 {
		err = &ParseError{Line: line, Token: token}

		return
	}

	x, e := strconv.ParseFloat(ps[0], 64)
	if e != nil {
		err = &ParseError{Line: line, Token: token, Err: e}

		return
	}

	y, e := strconv.ParseFloat(ps[1], 64)
	if e != nil {
		err = &ParseError{Line: line, Token: token, Err: e}

		return
	}

	pt = Point{X: x, Y: y}

	return
}

func formatFloat(v float64, precision int) string {
	return strconv.FormatFloat(v, 'g', precision, 64)
}
