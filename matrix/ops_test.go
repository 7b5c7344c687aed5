// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatVec_FastPathMatchesFallback(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{2, -1, 0}, {1, 3, 2}})
	x := []float64{1, 2, 3}

	fast, err := matrix.MatVec(m, x)
	require.NoError(t, err)
	slow, err := matrix.MatVec(hide{m}, x)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 13}, fast)
	assert.Equal(t, fast, slow)

	_, err = matrix.MatVec(m, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(nil, x)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestResidual(t *testing.T) {
	a := MustRows(t, [][]float64{{4, 1}, {1, 3}})

	r, err := matrix.Residual(a, []float64{1, 1}, []float64{9, 10})
	require.NoError(t, err)
	assert.Equal(t, []float64{-4, -6}, r)
	assert.Equal(t, 6.0, matrix.MaxAbs(r))

	r, err = matrix.Residual(a, []float64{17.0 / 11, 31.0 / 11}, []float64{9, 10})
	require.NoError(t, err)
	assert.Less(t, matrix.MaxAbs(r), 1e-14)

	_, err = matrix.Residual(a, []float64{1, 1}, []float64{9})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMaxAbs_Empty(t *testing.T) {
	assert.Zero(t, matrix.MaxAbs(nil))
	assert.Equal(t, 3.0, matrix.MaxAbs([]float64{1, -3, 2}))
}

func TestReplaceColumn(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})

	out, err := matrix.ReplaceColumn(m, 1, []float64{9, 8})
	require.NoError(t, err)
	assert.Equal(t, 9.0, MustAt(t, out, 0, 1))
	assert.Equal(t, 8.0, MustAt(t, out, 1, 1))
	assert.Equal(t, 2.0, MustAt(t, m, 0, 1), "input must not be mutated")

	_, err = matrix.ReplaceColumn(m, 2, []float64{9, 8})
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.ReplaceColumn(m, 0, []float64{9})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestIsDiagonallyDominant(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want bool
	}{
		{"dominant", [][]float64{{4, 1}, {1, 3}}, true},
		{"equal is not strict", [][]float64{{2, 2}, {1, 3}}, false},
		{"singular", [][]float64{{1, 2}, {1, 2}}, false},
		{"4x4 tridiagonal", [][]float64{{4, -1, 0, 1}, {-1, 4, -1, 0}, {0, -1, 4, -1}, {1, 0, -1, 4}}, true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.IsDiagonallyDominant(MustRows(t, tc.rows))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := matrix.IsDiagonallyDominant(MustDense(t, 2, 3))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}
