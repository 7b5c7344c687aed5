// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInverse_2x2(t *testing.T) {
	m := MustRows(t, [][]float64{{4, 7}, {2, 6}})

	inv, err := matrix.Inverse(m, matrix.DefaultPivotEpsilon)
	require.NoError(t, err)

	want := [][]float64{{0.6, -0.7}, {-0.2, 0.4}}
	for i := range want {
		for j := range want[i] {
			assert.InDelta(t, want[i][j], MustAt(t, inv, i, j), 1e-12, "inv[%d][%d]", i, j)
		}
	}
	assert.Equal(t, 4.0, MustAt(t, m, 0, 0), "input must not be mutated")
}

// TestInverse_TimesOriginalIsIdentity verifies A·A⁻¹ ≈ I column by column.
func TestInverse_TimesOriginalIsIdentity(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2, 3}, {0, 1, 4}, {5, 6, 0}})

	inv, err := matrix.Inverse(m, matrix.DefaultPivotEpsilon)
	require.NoError(t, err)

	for col := 0; col < 3; col++ {
		x := []float64{MustAt(t, inv, 0, col), MustAt(t, inv, 1, col), MustAt(t, inv, 2, col)}
		y, err := matrix.MatVec(m, x)
		require.NoError(t, err)
		for i := range y {
			want := 0.0
			if i == col {
				want = 1
			}
			assert.InDelta(t, want, y[i], 1e-12)
		}
	}
}

func TestInverse_Singular(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2, 3}, {2, 4, 6}, {1, 2, 3}})

	_, err := matrix.Inverse(m, matrix.DefaultPivotEpsilon)
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

func TestIsSingular(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want bool
	}{
		{"duplicate rows", [][]float64{{1, 2}, {1, 2}}, true},
		{"zero matrix", [][]float64{{0, 0}, {0, 0}}, true},
		{"regular", [][]float64{{4, 1}, {1, 3}}, false},
		{"needs pivoting", [][]float64{{0, 1}, {1, 0}}, false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.IsSingular(MustRows(t, tc.rows), matrix.DefaultPivotEpsilon)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
