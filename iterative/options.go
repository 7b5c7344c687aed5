// SPDX-License-Identifier: MIT

package iterative

// Defaults applied by DefaultOptions.
const (
	DefaultTolerance     = 1e-10
	DefaultMaxIterations = 1000
	DefaultRelaxation    = 1.25

	// DiagonalEpsilon is the magnitude below which a diagonal entry is zero.
	DiagonalEpsilon = 1e-10
)

// Options configures one iterative solve. A zero Options is not usable;
// start from DefaultOptions.
//
// Fields:
//   - Tolerance     stop once ‖x_k − x_{k−1}‖∞ < Tolerance (must be > 0).
//   - MaxIterations sweep cap (≥ 1); reaching it is a divergence.
//   - Relaxation    SOR factor ω ∈ (0, 2); ignored by Jacobi and Gauss-Seidel.
//   - InitialGuess  starting iterate; nil means the zero vector. Copied, never written.
//   - OnIteration   optional hook called after every sweep with the 1-based
//     sweep number, the new iterate and its update norm. x is only valid for
//     the duration of the call.
type Options struct {
	Tolerance     float64
	MaxIterations int
	Relaxation    float64
	InitialGuess  []float64
	OnIteration   func(k int, x []float64, delta float64)
}

// DefaultOptions returns tolerance 1e-10, 1000 sweeps and ω = 1.25.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		Relaxation:    DefaultRelaxation,
	}
}

// Result is the outcome of an iterative solve. It is populated on success and
// on divergence; X is nil only when the solve failed before the first sweep.
type Result struct {
	X          []float64 // last iterate
	Iterations int       // sweeps performed
	Delta      float64   // ‖x_k − x_{k−1}‖∞ of the last sweep (NaN if non-finite)
}
