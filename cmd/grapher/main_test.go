package main

import (
	"testing"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libplotter/curve"
	"github.com/sgostarter/libplotter/fn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddConfigFunctions(t *testing.T) {
	collection := curve.NewCollection(curve.NewDomain(-1, 1, -1, 1), nil, nil)

	addConfigFunctions(collection, []fn.Spec{
		{Kind: fn.KindPolynomial, Coefficients: []float64{0, 1}},
		{Kind: "tangent"},
		{Kind: fn.KindLogarithmic, A: 1, Base: 1},
		{Kind: fn.KindExponential, Coefficient: 1, Base: 2},
	}, curve.DirectSampler{}, 4, l.NewNopLoggerWrapper())

	curves := collection.Curves()
	require.Len(t, curves, 2)
	assert.Equal(t, fn.KindPolynomial, curves[0].Function().Kind())
	assert.Equal(t, fn.KindExponential, curves[1].Function().Kind())
	assert.Equal(t, 5, curves[0].Len())
}
