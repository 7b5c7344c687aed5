// SPDX-License-Identifier: MIT

// Package iterative implements the stationary iterative solvers for A·x = b:
//
//   - Jacobi:      every component of the new iterate is computed from the
//     previous iterate only.
//   - GaussSeidel: components are updated in place, so row i already sees the
//     new values of rows j < i within the same sweep.
//   - SOR:         the Gauss-Seidel candidate blended with the previous value,
//     x[i] ← (1−ω)·x[i] + ω·x_GS[i]. ω = 1 is exactly Gauss-Seidel.
//
// Stopping is delegated to convergence.Monitor: a sweep whose ∞-norm update
// falls below Options.Tolerance converges; reaching Options.MaxIterations or
// producing NaN/±Inf is a divergence. Diverged runs still return the last
// iterate and the sweep count for diagnostics.
//
// Before sweeping, every solver rejects zero diagonal entries (ErrZeroDiagonal)
// and structurally singular matrices (ErrSingular); SOR also rejects ω outside
// (0, 2) (ErrRelaxation). A, b and Options.InitialGuess are never written.
//
// Strict diagonal dominance (matrix.IsDiagonallyDominant) guarantees
// convergence for Jacobi and Gauss-Seidel; OptimalOmega estimates the best
// SOR relaxation factor from the Jacobi spectral radius.
package iterative
