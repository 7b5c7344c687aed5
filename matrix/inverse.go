// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// DefaultPivotEpsilon is the pivot magnitude below which pivoted elimination
// declares a matrix singular.
const DefaultPivotEpsilon = 1e-10

// Inverse computes A⁻¹ by Gauss-Jordan elimination on [A | I] with partial pivoting.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); build the n×2n augmented working copy.
//   - Stage 2: for each column k pick argmax_{r≥k} |aug[r][k]|, swap it into row k,
//     fail with ErrSingular if |pivot| < eps, normalize row k, eliminate column k
//     in every other row.
//   - Stage 3: the right half of the augmented matrix is A⁻¹.
//
// Behavior highlights:
//   - Input m is read-only; all row operations happen on the private copy.
//   - Deterministic pivot choice (first maximal row wins ties).
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
// Complexity: Time O(n³), Space O(n²).
func Inverse(m Matrix, eps float64) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	rows, err := ToRows(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := len(rows)

	// [A | I]
	aug := make([][]float64, n)
	for i := 0; i < n; i++ {
		aug[i] = make([]float64, 2*n)
		copy(aug[i], rows[i])
		aug[i][n+i] = 1
	}

	var (
		i, j, k, p int
		pivot, f   float64
	)
	for k = 0; k < n; k++ {
		p = pivotRow(aug, k)
		aug[k], aug[p] = aug[p], aug[k]
		pivot = aug[k][k]
		if math.Abs(pivot) < eps {
			return nil, matrixErrorf(opInverse, fmt.Errorf("column %d: %w", k, ErrSingular))
		}
		for j = 0; j < 2*n; j++ {
			aug[k][j] /= pivot
		}
		for i = 0; i < n; i++ {
			if i == k {
				continue
			}
			f = aug[i][k]
			if f == 0 {
				continue
			}
			for j = k; j < 2*n; j++ {
				aug[i][j] -= f * aug[k][j]
			}
		}
	}

	inv := &Dense{r: n, c: n, data: make([]float64, n*n)}
	for i = 0; i < n; i++ {
		copy(inv.data[i*n:(i+1)*n], aug[i][n:])
	}

	return inv, nil
}

// IsSingular reports whether partial-pivot forward elimination meets a pivot
// with magnitude below eps. It is the structural test iterative solvers run
// before sweeping: a singular system has no unique fixed point to converge to.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: Time O(n³), Space O(n²).
func IsSingular(m Matrix, eps float64) (bool, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return false, matrixErrorf(opSingular, err)
	}
	rows, err := ToRows(m)
	if err != nil {
		return false, matrixErrorf(opSingular, err)
	}
	n := len(rows)

	var (
		i, j, k, p int
		f          float64
	)
	for k = 0; k < n; k++ {
		p = pivotRow(rows, k)
		rows[k], rows[p] = rows[p], rows[k]
		if math.Abs(rows[k][k]) < eps {
			return true, nil
		}
		for i = k + 1; i < n; i++ {
			f = rows[i][k] / rows[k][k]
			for j = k; j < n; j++ {
				rows[i][j] -= f * rows[k][j]
			}
		}
	}

	return false, nil
}

// pivotRow returns argmax_{r≥k} |rows[r][k]| (first index on ties).
func pivotRow(rows [][]float64, k int) int {
	best, bestAbs := k, math.Abs(rows[k][k])
	for r := k + 1; r < len(rows); r++ {
		if v := math.Abs(rows[r][k]); v > bestAbs {
			best, bestAbs = r, v
		}
	}

	return best
}
