// SPDX-License-Identifier: MIT
// Package matrix: determinants.
//
// Two interchangeable algorithms expose the same contract (same value up to
// rounding, same error surface):
//   - DetCofactor: recursive Laplace expansion along the first row, O(n!).
//   - DetLU:       partial-pivot LU factorization (gonum mat.LU), O(n³).
//
// Det picks cofactor expansion for n ≤ CofactorLimit and LU above it.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// CofactorLimit is the largest order for which Det uses cofactor expansion.
// Beyond it the factorial cost of Laplace expansion dominates.
const CofactorLimit = 4

// DetCofactor computes det(m) by recursive cofactor expansion along row 0.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); materialize rows via ToRows.
//   - Stage 2: base cases n=1, n=2 in closed form; otherwise expand
//     Σ_c (−1)^c · m[0][c] · det(minor(0,c)).
//
// Behavior highlights:
//   - Exact formula; no pivoting, no division.
//   - Zero entries in row 0 skip their (expensive) minor.
//
// Errors: ErrNilMatrix, ErrNonSquare.
//
// Complexity: Time O(n!), Space O(n²) per recursion level.
func DetCofactor(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	rows, err := ToRows(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return cofactorDet(rows), nil
}

// cofactorDet expands along the first row. rows must be square and non-empty.
func cofactorDet(rows [][]float64) float64 {
	n := len(rows)
	switch n {
	case 1:
		return rows[0][0]
	case 2:
		return rows[0][0]*rows[1][1] - rows[0][1]*rows[1][0]
	}

	var (
		det  = ZeroSum
		sign = 1.0
	)
	for c := 0; c < n; c++ {
		if rows[0][c] != 0 {
			det += sign * rows[0][c] * cofactorDet(minor(rows, 0, c))
		}
		sign = -sign
	}

	return det
}

// minor returns rows without row r and column c.
func minor(rows [][]float64, r, c int) [][]float64 {
	n := len(rows)
	out := make([][]float64, 0, n-1)
	for i := 0; i < n; i++ {
		if i == r {
			continue
		}
		row := make([]float64, 0, n-1)
		row = append(row, rows[i][:c]...)
		row = append(row, rows[i][c+1:]...)
		out = append(out, row)
	}

	return out
}

// DetLU computes det(m) from a partial-pivot LU factorization.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); copy into a gonum *mat.Dense.
//   - Stage 2: mat.LU.Factorize, then Det() = sign(P) · Π U[i][i].
//
// A singular input yields 0 (or a value of rounding magnitude) rather than an
// error, matching DetCofactor so callers apply one threshold to both.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: Time O(n³), Space O(n²).
func DetLU(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	rows, err := ToRows(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	n := len(rows)
	flat := make([]float64, 0, n*n)
	for _, row := range rows {
		flat = append(flat, row...)
	}

	var lu mat.LU
	lu.Factorize(mat.NewDense(n, n, flat))

	return lu.Det(), nil
}

// Det computes det(m), choosing DetCofactor for n ≤ CofactorLimit and DetLU
// otherwise. The observable contract is identical for both branches.
// Complexity: O(n!) for small n, O(n³) above CofactorLimit.
func Det(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	if m.Rows() <= CofactorLimit {
		return DetCofactor(m)
	}

	return DetLU(m)
}
