// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"github.com/katalvlaran/linsys/iterative"
)

// Config is the per-call solver configuration. It is a value: solvers copy
// what they need and never write back, InitialGuess included.
//
// Fields:
//   - Tolerance     iterative stop threshold on ‖x_k − x_{k−1}‖∞ (default 1e-10).
//   - MaxIterations iterative sweep cap (default 1000).
//   - Relaxation    SOR factor ω, must lie in (0, 2) (default 1.25).
//   - InitialGuess  iterative starting vector; nil means zero.
//
// Direct methods ignore every field.
type Config struct {
	Tolerance     float64
	MaxIterations int
	Relaxation    float64
	InitialGuess  []float64
}

// DefaultConfig returns tolerance 1e-10, 1000 sweeps, ω = 1.25, zero initial guess.
func DefaultConfig() Config {
	return Config{
		Tolerance:     iterative.DefaultTolerance,
		MaxIterations: iterative.DefaultMaxIterations,
		Relaxation:    iterative.DefaultRelaxation,
	}
}

// options converts cfg for the iterative package.
func (cfg Config) options() iterative.Options {
	return iterative.Options{
		Tolerance:     cfg.Tolerance,
		MaxIterations: cfg.MaxIterations,
		Relaxation:    cfg.Relaxation,
		InitialGuess:  cfg.InitialGuess,
	}
}

// Status classifies a Result.
type Status int

const (
	// Success means Solution holds the answer.
	Success Status = iota
	// Failed means the method rejected the input before or while solving.
	Failed
	// Diverged means an iterative method did not converge.
	Diverged
)

// String returns the display word.
func (s Status) String() string {
	switch s {
	case Success:
		return "Success"
	case Failed:
		return "Failed"
	case Diverged:
		return "Diverged"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the uniform per-method record handed to display layers.
//
// Absent values are explicit: Solution and Residual are nil when absent,
// HasIterations is false for direct methods and for iterative runs rejected
// before the first sweep, HasResidual is false whenever Residual is nil.
type Result struct {
	Method        Method
	Name          string // Method.Label(cfg)
	Solution      []float64
	Iterations    int
	HasIterations bool
	Status        Status
	Residual      []float64 // A·Solution − b
	ResidualMax   float64   // ‖Residual‖∞
	HasResidual   bool
	Err           error // nil on Success
}

// OK reports Status == Success.
func (r Result) OK() bool { return r.Status == Success }
