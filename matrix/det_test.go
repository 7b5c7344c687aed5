// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetCofactor_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"1x1", [][]float64{{-3}}, -3},
		{"2x2", [][]float64{{4, 1}, {1, 3}}, 11},
		{"3x3", [][]float64{{4, 3, 4}, {6, 3, 2}, {1, 5, 7}}, 32},
		{"singular rows", [][]float64{{1, 2}, {1, 2}}, 0},
		{"identity 4", [][]float64{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}, 1},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m := MustRows(t, tc.rows)

			got, err := matrix.DetCofactor(m)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			lu, err := matrix.DetLU(m)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, lu, 1e-9)
		})
	}
}

// TestDet_BranchesAgree checks that the cofactor and LU branches expose the
// same value on both sides of CofactorLimit.
func TestDet_BranchesAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 1; n <= matrix.CofactorLimit+2; n++ {
		rows := make([][]float64, n)
		for i := range rows {
			rows[i] = make([]float64, n)
			for j := range rows[i] {
				rows[i][j] = float64(rng.Intn(11) - 5)
			}
		}
		m := MustRows(t, rows)

		cof, err := matrix.DetCofactor(m)
		require.NoError(t, err)
		lu, err := matrix.DetLU(m)
		require.NoError(t, err)
		det, err := matrix.Det(m)
		require.NoError(t, err)

		tol := 1e-9 * math.Max(1, math.Abs(cof))
		assert.InDelta(t, cof, lu, tol, "n=%d", n)
		assert.InDelta(t, cof, det, tol, "n=%d", n)
	}
}

func TestDet_Errors(t *testing.T) {
	_, err := matrix.Det(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.DetCofactor(MustDense(t, 2, 3))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.DetLU(MustDense(t, 3, 2))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}
