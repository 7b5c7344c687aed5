// SPDX-License-Identifier: MIT

// Package convergence decides, after each sweep of an iterative solver,
// whether to stop.
//
// A Monitor holds a tolerance and an iteration cap. Check compares two
// consecutive iterates with the ∞-norm of their difference and returns one of
// four verdicts, evaluated in this fixed order:
//
//  1. NonFinite: the new iterate holds NaN or ±Inf.
//  2. Converged: ‖next − prev‖∞ < Tolerance.
//  3. Exhausted: the sweep count reached MaxIterations without converging.
//  4. Continue:  otherwise.
//
// An iterate that converges on exactly the last permitted sweep therefore
// reports Converged, not Exhausted. The Monitor itself is stateless and safe
// for concurrent use.
package convergence
