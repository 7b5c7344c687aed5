// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation
// used around the solvers: matrix–vector products, residuals, column
// replacement and structural predicates.
//
// Purpose:
//   - Declare canonical kernels shared by direct and iterative solvers.
//   - Define operation tags for uniform error reporting.
//
// Notes:
//   - All kernels use central validators and return sentinels wrapped via matrixErrorf.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ZeroSum is the initial sum value for dot products and substitutions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMatVec        = "MatVec"
	opResidual      = "Residual"
	opReplaceColumn = "ReplaceColumn"
	opDominance     = "IsDiagonallyDominant"
	opDet           = "Det"
	opInverse       = "Inverse"
	opSingular      = "IsSingular"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Residual computes r = A·x − b.
//
// Residuals are the accuracy signal reported for every solver, exact ones
// included: floating-point accumulation keeps r away from bit-exact zero.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != Cols or len(b) != Rows).
// Complexity: Time O(r*c), Space O(r).
func Residual(a Matrix, x, b []float64) ([]float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	ax, err := MatVec(a, x)
	if err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	floats.Sub(ax, b) // ax ← ax − b, in place on the fresh slice

	return ax, nil
}

// MaxAbs returns max_i |x[i]| (the ∞-norm); 0 for an empty vector.
// Complexity: O(n).
func MaxAbs(x []float64) float64 {
	return floats.Norm(x, math.Inf(1))
}

// ReplaceColumn returns a copy of m with column j replaced by v.
// m is not mutated. Used by Cramer's rule to build A_j.
//
// Errors: ErrNilMatrix, ErrOutOfRange (j), ErrDimensionMismatch (len(v) != Rows).
// Complexity: Time O(r*c) for the clone, Space O(r*c).
func ReplaceColumn(m Matrix, j int, v []float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opReplaceColumn, err)
	}
	if j < 0 || j >= m.Cols() {
		return nil, matrixErrorf(opReplaceColumn, ErrOutOfRange)
	}
	if err := ValidateVecLen(v, m.Rows()); err != nil {
		return nil, matrixErrorf(opReplaceColumn, err)
	}

	out := m.Clone()
	for i := 0; i < m.Rows(); i++ {
		if err := out.Set(i, j, v[i]); err != nil {
			return nil, matrixErrorf(opReplaceColumn, err)
		}
	}

	return out, nil
}

// IsDiagonallyDominant reports whether |a[i][i]| > Σ_{j≠i} |a[i][j]| holds for
// every row i (strict row diagonal dominance). It is a sufficient condition for
// Jacobi, Gauss-Seidel and SOR (0<ω≤1) to converge.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: Time O(n²), Space O(1).
func IsDiagonallyDominant(m Matrix) (bool, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return false, matrixErrorf(opDominance, err)
	}
	n := m.Rows()

	var (
		i, j    int
		v, diag float64
		offDiag float64
		err     error
	)
	for i = 0; i < n; i++ {
		offDiag = ZeroSum
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return false, matrixErrorf(opDominance, err)
			}
			if i == j {
				diag = math.Abs(v)
				continue
			}
			offDiag += math.Abs(v)
		}
		if diag <= offDiag {
			return false, nil
		}
	}

	return true, nil
}
