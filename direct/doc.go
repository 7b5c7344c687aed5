// SPDX-License-Identifier: MIT

// Package direct implements the exact (to floating precision) solvers for a
// square system A·x = b:
//
//   - Cramer:      x[i] = det(A_i) / det(A), A_i being A with column i replaced by b.
//   - Gaussian:    forward elimination with partial pivoting, then back substitution.
//   - GaussJordan: elimination above and below every normalized pivot; the
//     solution is read off the augmented column.
//
// All three validate their input with the matrix validators, never mutate A
// or b, and report a (near-)singular system with ErrSingular: a determinant
// (Cramer) or a chosen pivot (elimination) whose magnitude is below Epsilon.
//
// Cramer is intended for small systems. Its determinant uses cofactor
// expansion up to matrix.CofactorLimit and an LU factorization beyond it, so
// larger inputs are slow but never rejected.
package direct
