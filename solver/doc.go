// SPDX-License-Identifier: MIT

// Package solver is the single entry point over the six linear-system
// methods and the comparator that runs them side by side.
//
// The method set is closed: Method enumerates Cramer, Gaussian, GaussJordan,
// Jacobi, GaussSeidel and SOR, and Solve dispatches on it. Every call takes an
// immutable Config value; nothing is read from ambient state.
//
// Failures are data, not Go errors. Solve and Compare always return a Result
// per method whose Status is one of:
//
//   - Success:  a solution was found (converged, for iterative methods).
//   - Failed:   the input was rejected before solving: invalid shape, singular
//     matrix, zero diagonal, relaxation factor out of range, unknown method.
//   - Diverged: an iterative method hit its sweep cap or produced NaN/±Inf.
//
// Result.Err keeps the underlying sentinel for errors.Is. Whenever a finite
// solution vector exists, diverged iterates included, the residual A·x − b
// and its ∞-norm are attached.
//
// CompareText parses equation text first; a parse error is the only error
// it returns.
//
// Example:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{4, 1}, {1, 3}})
//	for _, r := range solver.Compare(a, []float64{9, 10}, solver.DefaultConfig()) {
//		fmt.Println(r.Name, r.Status, r.Solution)
//	}
package solver
