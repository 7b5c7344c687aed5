// Package linsys solves dense linear systems A·x = b six ways and compares
// the answers.
//
// What is inside?
//
//	matrix/       Matrix interface, row-major Dense, validators, residuals,
//	              determinants (cofactor and LU), inverse, dominance test
//	parser/       free-form equation text → (A, b, variable order), and back
//	direct/       Cramer's rule, Gaussian and Gauss-Jordan elimination
//	iterative/    Jacobi, Gauss-Seidel, SOR, optimal relaxation estimate
//	convergence/  the stopping rule shared by the iterative solvers
//	solver/       one Solve(method, A, b, cfg) entry point and the comparator
//	cmd/linsys    command-line front end (table, YAML, convergence plot)
//
// Quick example:
//
//	_, results, err := solver.CompareText("4x + y = 9\nx + 3y = 10", solver.DefaultConfig())
//	if err != nil {
//		// malformed text is the only error a comparison can return
//	}
//	for _, r := range results {
//		fmt.Println(r.Name, r.Status, r.Solution, r.ResidualMax)
//	}
//
// Failures are reported as data: a singular matrix marks direct methods
// Failed, a non-convergent iteration marks iterative methods Diverged, and
// every other method still runs.
package linsys
