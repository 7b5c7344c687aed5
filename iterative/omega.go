// SPDX-License-Identifier: MIT

package iterative

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/linsys/matrix"
	"gonum.org/v1/gonum/mat"
)

// OptimalOmega estimates the SOR relaxation factor
//
//	ω = 2 / (1 + √(1 − ρ²))
//
// where ρ is the spectral radius of the Jacobi iteration matrix
// T = −D⁻¹(L + U). The formula is exact for consistently ordered matrices
// (tridiagonal ones among them) and a good heuristic otherwise. When ρ ≥ 1
// (Jacobi itself diverges) or the eigen decomposition fails, 1 is returned.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrZeroDiagonal.
// Complexity: O(n³).
func OptimalOmega(a matrix.Matrix) (float64, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return 0, iterativeErrorf(opOptimalOmega, err)
	}
	rows, err := matrix.ToRows(a)
	if err != nil {
		return 0, iterativeErrorf(opOptimalOmega, err)
	}
	n := len(rows)

	t := mat.NewDense(n, n, nil)
	for i, row := range rows {
		d := row[i]
		if math.Abs(d) < DiagonalEpsilon {
			return 0, iterativeErrorf(opOptimalOmega, fmt.Errorf("row %d: %w", i, ErrZeroDiagonal))
		}
		for j, v := range row {
			if j != i {
				t.Set(i, j, -v/d)
			}
		}
	}

	var eig mat.Eigen
	if !eig.Factorize(t, mat.EigenNone) {
		return 1, nil
	}
	var rho float64
	for _, ev := range eig.Values(nil) {
		rho = math.Max(rho, cmplx.Abs(ev))
	}
	if rho >= 1 {
		return 1, nil
	}

	return 2 / (1 + math.Sqrt(1-rho*rho)), nil
}
