// SPDX-License-Identifier: MIT

package direct

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linsys/matrix"
)

// Gaussian solves A·x = b by Gaussian elimination with partial pivoting.
//
// Implementation:
//   - Stage 1: matrix.ValidateSystem(a, b); build the private augmented copy [A | b].
//   - Stage 2: for k = 0..n-1 swap the row with the largest |aug[r][k]| (r ≥ k)
//     into row k; |pivot| < Epsilon ⇒ ErrSingular; zero column k below the pivot.
//   - Stage 3: back-substitute from the last row upward.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch,
// matrix.ErrNaNInf, ErrSingular.
//
// Complexity: Time O(n³), Space O(n²).
func Gaussian(a matrix.Matrix, b []float64) ([]float64, error) {
	aug, err := augment(a, b)
	if err != nil {
		return nil, directErrorf(opGaussian, err)
	}
	n := len(aug)

	var (
		i, j, k int
		f, sum  float64
	)
	for k = 0; k < n; k++ {
		if err = pivot(aug, k); err != nil {
			return nil, directErrorf(opGaussian, err)
		}
		for i = k + 1; i < n; i++ {
			f = aug[i][k] / aug[k][k]
			if f == 0 {
				continue
			}
			for j = k; j <= n; j++ {
				aug[i][j] -= f * aug[k][j]
			}
		}
	}

	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		sum = aug[i][n]
		for j = i + 1; j < n; j++ {
			sum -= aug[i][j] * x[j]
		}
		x[i] = sum / aug[i][i]
	}

	return x, nil
}

// GaussJordan solves A·x = b by Gauss-Jordan elimination with partial pivoting.
//
// Pivot choice and the singularity test match Gaussian. Each pivot row is
// scaled so its diagonal entry is 1, and column k is cleared in every other
// row, leaving [I | x].
//
// Errors: as Gaussian.
// Complexity: Time O(n³), Space O(n²).
func GaussJordan(a matrix.Matrix, b []float64) ([]float64, error) {
	aug, err := augment(a, b)
	if err != nil {
		return nil, directErrorf(opGaussJordan, err)
	}
	n := len(aug)

	var (
		i, j, k int
		p, f    float64
	)
	for k = 0; k < n; k++ {
		if err = pivot(aug, k); err != nil {
			return nil, directErrorf(opGaussJordan, err)
		}
		p = aug[k][k]
		for j = k; j <= n; j++ {
			aug[k][j] /= p
		}
		for i = 0; i < n; i++ {
			if i == k {
				continue
			}
			f = aug[i][k]
			if f == 0 {
				continue
			}
			for j = k; j <= n; j++ {
				aug[i][j] -= f * aug[k][j]
			}
		}
	}

	x := make([]float64, n)
	for i = 0; i < n; i++ {
		x[i] = aug[i][n]
	}

	return x, nil
}

// augment validates (a, b) and returns the n×(n+1) working copy [A | b].
func augment(a matrix.Matrix, b []float64) ([][]float64, error) {
	if err := matrix.ValidateSystem(a, b); err != nil {
		return nil, err
	}
	rows, err := matrix.ToRows(a)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i] = append(rows[i], b[i])
	}

	return rows, nil
}

// pivot swaps argmax_{r≥k} |aug[r][k]| into row k (first index on ties)
// and rejects a pivot below Epsilon.
func pivot(aug [][]float64, k int) error {
	best, bestAbs := k, math.Abs(aug[k][k])
	for r := k + 1; r < len(aug); r++ {
		if v := math.Abs(aug[r][k]); v > bestAbs {
			best, bestAbs = r, v
		}
	}
	if bestAbs < Epsilon {
		return fmt.Errorf("column %d: pivot %g: %w", k, bestAbs, ErrSingular)
	}
	aug[k], aug[best] = aug[best], aug[k]

	return nil
}
