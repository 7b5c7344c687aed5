// SPDX-License-Identifier: MIT
package direct_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linsys/direct"
	"github.com/katalvlaran/linsys/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

type solveFunc func(matrix.Matrix, []float64) ([]float64, error)

var solvers = []struct {
	name  string
	solve solveFunc
}{
	{"Cramer", direct.Cramer},
	{"Gaussian", direct.Gaussian},
	{"GaussJordan", direct.GaussJordan},
}

// hide masks the concrete *Dense type to exercise interface fallbacks.
type hide struct{ matrix.Matrix }

func mustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// randomSystem returns a reproducible well-conditioned n×n system.
func randomSystem(t testing.TB, n int, seed int64) ([][]float64, []float64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	b := make([]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*2 - 1
		}
		rows[i][i] += float64(n) // keeps the condition number modest
		b[i] = rng.Float64()*10 - 5
	}

	return rows, b
}

// reference solves with gonum as an independent oracle.
func reference(t testing.TB, rows [][]float64, b []float64) []float64 {
	t.Helper()
	n := len(rows)
	flat := make([]float64, 0, n*n)
	for _, r := range rows {
		flat = append(flat, r...)
	}
	var x mat.VecDense
	require.NoError(t, x.SolveVec(mat.NewDense(n, n, flat), mat.NewVecDense(n, append([]float64(nil), b...))))

	return x.RawVector().Data
}

func TestScenarioB(t *testing.T) {
	a := mustRows(t, [][]float64{{4, 1}, {1, 3}})
	b := []float64{9, 10}
	want := []float64{17.0 / 11.0, 31.0 / 11.0}
	for _, s := range solvers {
		t.Run(s.name, func(t *testing.T) {
			x, err := s.solve(a, b)
			require.NoError(t, err)
			assert.InDeltaSlice(t, want, x, 1e-12)
			assert.InDelta(t, 1.5455, x[0], 1e-4)
			assert.InDelta(t, 2.8182, x[1], 1e-4)
		})
	}
}

func TestAgreementWithReference(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 7} {
		rows, b := randomSystem(t, n, int64(n))
		want := reference(t, rows, b)
		a := mustRows(t, rows)
		for _, s := range solvers {
			t.Run(fmt.Sprintf("%s/n=%d", s.name, n), func(t *testing.T) {
				x, err := s.solve(a, b)
				require.NoError(t, err)
				assert.InDeltaSlice(t, want, x, 1e-9)

				r, err := matrix.Residual(a, x, b)
				require.NoError(t, err)
				assert.Less(t, matrix.MaxAbs(r), 1e-12*float64(n)*(1+matrix.MaxAbs(x)))
			})
		}
	}
}

func TestNeedsPivoting(t *testing.T) {
	// a[0][0] == 0 forces a row swap before the first elimination step
	a := mustRows(t, [][]float64{{0, 2, 1}, {1, 1, 1}, {2, 1, 0}})
	b := []float64{7, 6, 4}
	for _, s := range solvers {
		x, err := s.solve(a, b)
		require.NoError(t, err, s.name)
		assert.InDeltaSlice(t, []float64{1, 2, 3}, x, 1e-12, s.name)
	}
}

func TestInterfaceFallback(t *testing.T) {
	rows, b := randomSystem(t, 4, 11)
	want := reference(t, rows, b)
	a := hide{mustRows(t, rows)}
	for _, s := range solvers {
		x, err := s.solve(a, b)
		require.NoError(t, err, s.name)
		assert.InDeltaSlice(t, want, x, 1e-9, s.name)
	}
}

func TestSingular(t *testing.T) {
	cases := map[string][][]float64{
		"identical rows": {{1, 2}, {1, 2}},
		"zero column":    {{0, 1, 2}, {0, 3, 4}, {0, 5, 6}},
		"near singular":  {{1, 1}, {1, 1 + 1e-12}},
		"dependent 3x3":  {{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
	}
	for name, rows := range cases {
		a := mustRows(t, rows)
		b := make([]float64, len(rows))
		for i := range b {
			b[i] = 3
		}
		for _, s := range solvers {
			t.Run(name+"/"+s.name, func(t *testing.T) {
				x, err := s.solve(a, b)
				require.ErrorIs(t, err, direct.ErrSingular)
				assert.Nil(t, x)
			})
		}
	}
}

func TestCramer_DeterminantOverflow(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		b    []float64
		want []float64
	}{
		{"mixed signs", [][]float64{{1e200, 1e200}, {1e200, -1e200}}, []float64{1e200, 1e200}, []float64{1, 0}},
		{"diagonal", [][]float64{{1e200, 0}, {0, 1e200}}, []float64{1, 1}, []float64{1e-200, 1e-200}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := mustRows(t, tc.rows)
			x, err := direct.Cramer(a, tc.b)
			require.ErrorIs(t, err, direct.ErrNotFinite)
			assert.Nil(t, x)

			x, err = direct.Gaussian(a, tc.b)
			require.NoError(t, err)
			assert.InDeltaSlice(t, tc.want, x, 1e-12)
		})
	}
}

func TestInvalidInput(t *testing.T) {
	square := mustRows(t, [][]float64{{1, 0}, {0, 1}})
	rect := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	for _, s := range solvers {
		t.Run(s.name, func(t *testing.T) {
			_, err := s.solve(nil, []float64{1})
			assert.ErrorIs(t, err, matrix.ErrNilMatrix)

			_, err = s.solve((*matrix.Dense)(nil), []float64{1})
			assert.ErrorIs(t, err, matrix.ErrNilMatrix)

			_, err = s.solve(rect, []float64{1, 2})
			assert.ErrorIs(t, err, matrix.ErrNonSquare)

			_, err = s.solve(square, []float64{1})
			assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

			_, err = s.solve(square, []float64{1, math.Inf(1)})
			assert.ErrorIs(t, err, matrix.ErrNaNInf)
		})
	}
}

func TestInputsNotMutated(t *testing.T) {
	rows := [][]float64{{0, 2, 1}, {1, 1, 1}, {2, 1, 0}}
	a := mustRows(t, rows)
	before := a.Clone()
	b := []float64{7, 6, 4}
	for _, s := range solvers {
		_, err := s.solve(a, b)
		require.NoError(t, err)
		assert.Equal(t, before, matrix.Matrix(a), s.name)
		assert.Equal(t, []float64{7, 6, 4}, b, s.name)
	}
}

func BenchmarkSolvers(b *testing.B) {
	for _, n := range []int{4, 16, 64} {
		rows, rhs := randomSystem(b, n, 1)
		a := mustRows(b, rows)
		for _, s := range solvers {
			if s.name == "Cramer" && n > 16 {
				continue
			}
			b.Run(fmt.Sprintf("%s/n=%d", s.name, n), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					_, _ = s.solve(a, rhs)
				}
			})
		}
	}
}
