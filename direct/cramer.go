// SPDX-License-Identifier: MIT

package direct

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linsys/matrix"
)

// Epsilon is the magnitude below which a determinant or pivot counts as zero.
const Epsilon = 1e-10

// Cramer solves A·x = b by Cramer's rule.
//
// Implementation:
//   - Stage 1: matrix.ValidateSystem(a, b).
//   - Stage 2: d = det(A); non-finite d ⇒ ErrNotFinite; |d| < Epsilon ⇒ ErrSingular.
//   - Stage 3: for each column i, x[i] = det(A_i) / d; a non-finite det(A_i)
//     or x[i] ⇒ ErrNotFinite.
//
// Entries near the float64 range overflow the determinants even when the
// system is well conditioned; Gaussian elimination handles those.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch,
// matrix.ErrNaNInf, ErrSingular, ErrNotFinite.
//
// Complexity: n+1 determinants, each O(n!) for n ≤ matrix.CofactorLimit and O(n³) above.
func Cramer(a matrix.Matrix, b []float64) ([]float64, error) {
	if err := matrix.ValidateSystem(a, b); err != nil {
		return nil, directErrorf(opCramer, err)
	}

	det, err := matrix.Det(a)
	if err != nil {
		return nil, directErrorf(opCramer, err)
	}
	if !isFinite(det) {
		return nil, directErrorf(opCramer, fmt.Errorf("det=%g: %w", det, ErrNotFinite))
	}
	if math.Abs(det) < Epsilon {
		return nil, directErrorf(opCramer, fmt.Errorf("det=%g: %w", det, ErrSingular))
	}

	n := a.Rows()
	x := make([]float64, n)
	var (
		ai   matrix.Matrix
		detI float64
	)
	for i := 0; i < n; i++ {
		if ai, err = matrix.ReplaceColumn(a, i, b); err != nil {
			return nil, directErrorf(opCramer, err)
		}
		if detI, err = matrix.Det(ai); err != nil {
			return nil, directErrorf(opCramer, err)
		}
		x[i] = detI / det
		if !isFinite(detI) || !isFinite(x[i]) {
			return nil, directErrorf(opCramer, fmt.Errorf("x[%d]: det=%g: %w", i, detI, ErrNotFinite))
		}
	}

	return x, nil
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
