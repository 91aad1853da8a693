package BSpline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestCollocation(t *testing.T) {
	var (
		k, n   = 3, 5
		params = samples(0, 3, 30)
	)
	cl, err := NewCollocation(Open, k, n, clampedQuadratic, params, false, 4)
	require.NoError(t, err)
	nr, nc := cl.B.Dims()
	assert.Equal(t, len(params), nr)
	assert.Equal(t, n, nc)
	assert.True(t, cl.B.IsReadOnly())
	assert.True(t, cl.D1.IsEmpty())
	for j, tt := range params {
		N, err := OpenBasis(k, tt, n, clampedQuadratic)
		require.NoError(t, err)
		row := mat.Row(nil, j, cl.B)
		diff(t, N, row, approx)
		// At most k consecutive non-zero columns per row
		cols, _ := cl.B.RowNonZeros(j)
		assert.LessOrEqual(t, len(cols), k)
		if len(cols) > 1 {
			assert.Equal(t, len(cols)-1, cols[len(cols)-1]-cols[0])
		}
	}
	assert.LessOrEqual(t, cl.B.NNZ(), k*len(params))

	{ // Partition of unity and linear precision through the Greville abscissae
		ones, err := cl.Evaluate([]float64{1, 1, 1, 1, 1})
		require.NoError(t, err)
		greville, err := cl.Evaluate([]float64{0, 0.5, 1.5, 2.5, 3})
		require.NoError(t, err)
		for j, tt := range params {
			assert.InDelta(t, 1., ones.AtVec(j), 1.e-12)
			assert.InDelta(t, tt, greville.AtVec(j), 1.e-12)
		}
		_, err = cl.Evaluate([]float64{1, 1})
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
	B, D1, D2 := cl.Dense()
	assert.True(t, mat.Equal(B, cl.B))
	assert.Nil(t, D1)
	assert.Nil(t, D2)
}

func TestCollocationDerivatives(t *testing.T) {
	var (
		c, npts = 4, 8
		x       = uniformKnots(npts + c)
		params  = samples(3, 8, 40)
	)
	serial, err := NewCollocation(Periodic, c, npts, x, params, true, 1)
	require.NoError(t, err)
	parallel, err := NewCollocation(Periodic, c, npts, x, params, true, 16)
	require.NoError(t, err)
	Bs, D1s, D2s := serial.Dense()
	Bp, D1p, D2p := parallel.Dense()
	assert.True(t, mat.Equal(Bs, Bp))
	assert.True(t, mat.Equal(D1s, D1p))
	assert.True(t, mat.Equal(D2s, D2p))
	for j, tt := range params {
		N, D1, D2, err := DerivativeBasisPeriodic(c, tt, npts, x)
		require.NoError(t, err)
		diff(t, N, mat.Row(nil, j, Bs), approx)
		diff(t, D1, mat.Row(nil, j, D1s), approx)
		diff(t, D2, mat.Row(nil, j, D2s), approx)
	}
}

func TestCollocationErrors(t *testing.T) {
	_, err := NewCollocation(Open, 3, 5, clampedQuadratic, nil, false, 2)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = NewCollocation(Open, 3, 4, clampedQuadratic, []float64{1}, false, 2)
	assert.ErrorIs(t, err, ErrInvalidInput)
	// The failing row is reported, evaluation errors pass through unchanged
	cl, err := NewCollocation(Open, 2, 2, []float64{0, 1, 1, 1}, []float64{0, 0.5, 1}, true, 3)
	assert.Nil(t, cl)
	assert.ErrorIs(t, err, ErrDegenerateKnots)
	assert.Contains(t, err.Error(), "parameter 2")
	_, err = NewCollocation(Open, 4, MaxSlots, uniformKnots(MaxSlots+4), []float64{10}, true, 1)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}
