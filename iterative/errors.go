// SPDX-License-Identifier: MIT

package iterative

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroDiagonal indicates |A[i][i]| below DiagonalEpsilon for some row.
	ErrZeroDiagonal = errors.New("iterative: zero diagonal entry")

	// ErrSingular indicates a singular matrix: no unique fixed point exists.
	ErrSingular = errors.New("iterative: matrix is singular")

	// ErrRelaxation indicates an SOR relaxation factor outside (0, 2).
	ErrRelaxation = errors.New("iterative: relaxation factor must lie in (0, 2)")

	// ErrDiverged indicates the iteration did not converge. It is always
	// joined with convergence.ErrMaxIterations or convergence.ErrNonFinite.
	ErrDiverged = errors.New("iterative: iteration diverged")
)

// Operation tags for error wrapping.
const (
	opJacobi       = "Jacobi"
	opGaussSeidel  = "GaussSeidel"
	opSOR          = "SOR"
	opOptimalOmega = "OptimalOmega"
)

// iterativeErrorf wraps err with an operation tag, preserving it for errors.Is.
func iterativeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
