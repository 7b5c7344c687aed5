// SPDX-License-Identifier: MIT

package convergence

import "errors"

var (
	// ErrBadTolerance indicates a tolerance that is not a positive finite number.
	ErrBadTolerance = errors.New("convergence: tolerance must be positive and finite")

	// ErrBadMaxIterations indicates an iteration cap below 1.
	ErrBadMaxIterations = errors.New("convergence: max iterations must be at least 1")

	// ErrMaxIterations is reported when the cap is hit without convergence.
	ErrMaxIterations = errors.New("convergence: iteration limit reached")

	// ErrNonFinite is reported when an iterate overflows to NaN or ±Inf.
	ErrNonFinite = errors.New("convergence: non-finite iterate")
)
