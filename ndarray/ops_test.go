// SPDX-License-Identifier: MIT

package ndarray_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/montransform/ndarray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllClose(t *testing.T) {
	a := mustFrom(t, 1, 3, 1, []float64{1, 2, 3})
	b := mustFrom(t, 1, 3, 1, []float64{1, 2, 3.0000001})

	ok, err := ndarray.AllClose(a, b, 1e-6, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ndarray.AllClose(a, b, 0, 0)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAllClose_Errors(t *testing.T) {
	a := mustFrom(t, 1, 3, 1, []float64{1, 2, 3})
	c := mustFrom(t, 3, 1, 1, []float64{1, 2, 3})

	_, err := ndarray.AllClose(a, c, 0, 0)
	assert.ErrorIs(t, err, ndarray.ErrDimensionMismatch)

	_, err = ndarray.AllClose(a, nil, 0, 0)
	assert.ErrorIs(t, err, ndarray.ErrNilArray)

	_, err = ndarray.AllClose(a, a, math.NaN(), 0)
	assert.ErrorIs(t, err, ndarray.ErrNaNInf)
}

func TestEqual_NaNAware(t *testing.T) {
	a := mustFrom(t, 1, 2, 1, []float64{math.NaN(), 1})
	b := mustFrom(t, 1, 2, 1, []float64{math.NaN(), 1})
	assert.True(t, ndarray.Equal(a, b))
	assert.True(t, ndarray.Equal(nil, nil))
	assert.False(t, ndarray.Equal(a, nil))
}

func TestValidateFinite(t *testing.T) {
	require.NoError(t, ndarray.ValidateFinite(mustFrom(t, 1, 1, 1, []float64{2})))
	require.ErrorIs(t, ndarray.ValidateFinite(mustFrom(t, 1, 1, 1, []float64{math.Inf(-1)})), ndarray.ErrNaNInf)
	require.ErrorIs(t, ndarray.ValidateFinite(nil), ndarray.ErrNilArray)
}
