// SPDX-License-Identifier: MIT

package convergence

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Verdict is the outcome of a single Check.
type Verdict int

const (
	// Continue means another sweep is allowed.
	Continue Verdict = iota
	// Converged means the iterate moved less than the tolerance.
	Converged
	// Exhausted means the iteration cap was reached without convergence.
	Exhausted
	// NonFinite means the iterate holds NaN or ±Inf.
	NonFinite
)

// String returns a lower-case name for logs.
func (v Verdict) String() string {
	switch v {
	case Continue:
		return "continue"
	case Converged:
		return "converged"
	case Exhausted:
		return "exhausted"
	case NonFinite:
		return "non-finite"
	default:
		return fmt.Sprintf("verdict(%d)", int(v))
	}
}

// Done reports whether the solver must stop sweeping.
func (v Verdict) Done() bool { return v != Continue }

// Err maps a terminal failure verdict to its sentinel; nil for Continue and Converged.
func (v Verdict) Err() error {
	switch v {
	case Exhausted:
		return ErrMaxIterations
	case NonFinite:
		return ErrNonFinite
	default:
		return nil
	}
}

// Monitor carries the stopping rule of an iterative solve.
type Monitor struct {
	Tolerance     float64
	MaxIterations int
}

// New validates tol and maxIter and returns a Monitor.
//
// Errors: ErrBadTolerance (tol ≤ 0, NaN, ±Inf), ErrBadMaxIterations (maxIter < 1).
func New(tol float64, maxIter int) (*Monitor, error) {
	if !(tol > 0) || math.IsInf(tol, 0) {
		return nil, fmt.Errorf("New(%g): %w", tol, ErrBadTolerance)
	}
	if maxIter < 1 {
		return nil, fmt.Errorf("New(%d): %w", maxIter, ErrBadMaxIterations)
	}

	return &Monitor{Tolerance: tol, MaxIterations: maxIter}, nil
}

// Check evaluates sweep k (1-based) that moved the solution from prev to next.
// It returns the verdict and ‖next − prev‖∞ (NaN when next is non-finite).
// prev and next must have equal length; neither is modified.
//
// Complexity: O(n).
func (m *Monitor) Check(k int, prev, next []float64) (Verdict, float64) {
	if !AllFinite(next) {
		return NonFinite, math.NaN()
	}
	delta := floats.Distance(next, prev, math.Inf(1))
	if delta < m.Tolerance {
		return Converged, delta
	}
	if k >= m.MaxIterations {
		return Exhausted, delta
	}

	return Continue, delta
}

// AllFinite reports whether every component of x is finite.
func AllFinite(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
