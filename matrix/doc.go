// SPDX-License-Identifier: MIT

// Package matrix provides the dense data model shared by every linear-system
// solver in linsys.
//
// The matrix package provides:
//
//   - Matrix, a minimal bounds-checked interface over two-dimensional float64 grids.
//   - Dense, a row-major implementation backed by one flat slice.
//   - Validators (ValidateSystem, ValidateSquare, ...) returning plain sentinels.
//   - Kernels used around the solvers: MatVec, Residual, MaxAbs, ReplaceColumn,
//     determinants (DetCofactor, DetLU, Det), Inverse and IsSingular.
//
// All kernels are deterministic, never mutate their inputs, and report misuse
// through the sentinels in errors.go (match them with errors.Is).
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{4, 1}, {1, 3}})
//	r, _ := matrix.Residual(a, []float64{17.0 / 11, 31.0 / 11}, []float64{9, 10})
//	fmt.Println(matrix.MaxAbs(r)) // ~1e-16
package matrix
