package curve

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalFormat(t *testing.T) {
	d := Marshal([][]Point{
		{Pt(-1, 0.5), Pt(0, 1), Pt(2.25, -3)},
		{},
		{Pt(1e21, 1e-7)},
	})

	assert.Equal(t, "-1,0.5 0,1 2.25,-3 \n\n1e+21,1e-07 \n", string(d))
}

func TestMarshalNonFinite(t *testing.T) {
	d := Marshal([][]Point{{Pt(math.NaN(), math.Inf(1)), Pt(0, math.Inf(-1))}})
	assert.Equal(t, "NaN,+Inf 0,-Inf \n", string(d))

	curves, err := Unmarshal(d)
	require.Nil(t, err)
	require.Len(t, curves, 1)
	diff(t, [][]Point{{Pt(math.NaN(), math.Inf(1)), Pt(0, math.Inf(-1))}}, curves, equateNaNs)
}

func TestMarshalPrecision(t *testing.T) {
	d := Marshal([][]Point{{Pt(math.Pi, 1.0/3)}}, PrecisionOption(6))
	assert.Equal(t, "3.14159,0.333333 \n", string(d))
}

func TestCodecRoundTrip(t *testing.T) {
	var curves [][]Point

	for c := 0; c < 4; c++ {
		var points []Point

		for i := 0; i <= 37; i++ {
			x := -10 + float64(i)*(20.0/37)
			points = append(points, Pt(x, math.Sin(x*float64(c+1))/3))
		}

		curves = append(curves, points)
	}

	got, err := Unmarshal(Marshal(curves))
	require.Nil(t, err)
	diff(t, curves, got)
}

func TestUnmarshalWhitespace(t *testing.T) {
	curves, err := Unmarshal([]byte("1,2   3,4\t5,6\r\n  7,8\n"))
	require.Nil(t, err)
	diff(t, [][]Point{{Pt(1, 2), Pt(3, 4), Pt(5, 6)}, {Pt(7, 8)}}, curves)

	curves, err = Unmarshal([]byte("1,2 3,4"))
	require.Nil(t, err)
	diff(t, [][]Point{{Pt(1, 2), Pt(3, 4)}}, curves)
}

func TestUnmarshalEmpty(t *testing.T) {
	curves, err := Unmarshal(nil)
	assert.Nil(t, err)
	assert.Empty(t, curves)

	curves, err = Unmarshal([]byte("\n"))
	assert.Nil(t, err)
	assert.Len(t, curves, 1)
	assert.Empty(t, curves[0])
}

func TestUnmarshalMalformedFails(t *testing.T) {
	for _, payload := range []string{
		"1,2 34\n",
		"1,2\n3,4 x,1\n",
		"1,2,3\n",
		",\n",
	} {
		_, err := Unmarshal([]byte(payload))
		assert.ErrorIs(t, err, ErrBadData, payload)

		var pe *ParseError
		require.True(t, errors.As(err, &pe), payload)
		assert.NotEmpty(t, pe.Token)
	}

	_, err := Unmarshal([]byte("1,2\n3,4 x,1\n"))

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, "x,1", pe.Token)

	var ne *strconv.NumError
	assert.True(t, errors.As(err, &ne))
}

func TestUnmarshalMalformedSkipped(t *testing.T) {
	var skipped []string

	curves, err := Unmarshal([]byte("1,2 34 3,4\nbad\n5,6\n"), SkipMalformedOption(),
		MalformedHandlerOption(func(err *ParseError) {
			skipped = append(skipped, err.Token)
		}))
	require.Nil(t, err)
	diff(t, [][]Point{{Pt(1, 2), Pt(3, 4)}, {}, {Pt(5, 6)}}, curves)
	assert.Equal(t, []string{"34", "bad"}, skipped)
}
