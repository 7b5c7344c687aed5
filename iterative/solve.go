// SPDX-License-Identifier: MIT

package iterative

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linsys/convergence"
	"github.com/katalvlaran/linsys/matrix"
)

// sweepFunc computes one iteration from prev into next. Both have length n.
type sweepFunc func(rows [][]float64, b, prev, next []float64)

// Jacobi solves A·x = b by Jacobi iteration:
//
//	x_k[i] = (b[i] − Σ_{j≠i} A[i][j]·x_{k−1}[j]) / A[i][i]
//
// Errors: matrix validation sentinels, convergence.ErrBadTolerance,
// convergence.ErrBadMaxIterations, ErrZeroDiagonal, ErrSingular, ErrDiverged.
//
// Complexity: O(n³) precheck, then O(n²) per sweep.
func Jacobi(a matrix.Matrix, b []float64, opts Options) (Result, error) {
	return run(opJacobi, a, b, opts, jacobiSweep)
}

// GaussSeidel solves A·x = b by Gauss-Seidel iteration: as Jacobi, but each
// component is overwritten as soon as it is computed.
//
// Errors and complexity: as Jacobi.
func GaussSeidel(a matrix.Matrix, b []float64, opts Options) (Result, error) {
	return run(opGaussSeidel, a, b, opts, gaussSeidelSweep)
}

// SOR solves A·x = b by successive over-relaxation with ω = opts.Relaxation.
// ω = 1 runs the Gauss-Seidel sweep itself, so both produce identical iterates.
//
// Errors: as Jacobi, plus ErrRelaxation for ω ∉ (0, 2).
func SOR(a matrix.Matrix, b []float64, opts Options) (Result, error) {
	omega := opts.Relaxation
	if !(omega > 0 && omega < 2) {
		return Result{}, iterativeErrorf(opSOR, fmt.Errorf("ω=%g: %w", omega, ErrRelaxation))
	}
	if omega == 1 {
		return run(opSOR, a, b, opts, gaussSeidelSweep)
	}

	return run(opSOR, a, b, opts, func(rows [][]float64, b, prev, next []float64) {
		copy(next, prev)
		for i, row := range rows {
			next[i] = (1-omega)*prev[i] + omega*relaxRow(row, b[i], next, i)
		}
	})
}

// run validates the input, then sweeps until the monitor stops it.
//
// Implementation:
//   - Stage 1: validate (a, b) and the initial guess; build the monitor;
//     reject zero diagonals and singular matrices.
//   - Stage 2: sweep prev → next, check, notify the hook, swap buffers.
func run(tag string, a matrix.Matrix, b []float64, opts Options, sweep sweepFunc) (Result, error) {
	rows, err := prepare(a, b)
	if err != nil {
		return Result{}, iterativeErrorf(tag, err)
	}
	n := len(rows)

	mon, err := convergence.New(opts.Tolerance, opts.MaxIterations)
	if err != nil {
		return Result{}, iterativeErrorf(tag, err)
	}

	prev := make([]float64, n)
	if opts.InitialGuess != nil {
		if err = matrix.ValidateVecLen(opts.InitialGuess, n); err != nil {
			return Result{}, iterativeErrorf(tag, err)
		}
		if err = matrix.ValidateFinite(opts.InitialGuess); err != nil {
			return Result{}, iterativeErrorf(tag, err)
		}
		copy(prev, opts.InitialGuess)
	}
	next := make([]float64, n)

	var (
		verdict convergence.Verdict
		delta   float64
	)
	for k := 1; ; k++ {
		sweep(rows, b, prev, next)
		verdict, delta = mon.Check(k, prev, next)
		if opts.OnIteration != nil {
			opts.OnIteration(k, next, delta)
		}
		if verdict.Done() {
			res := Result{X: next, Iterations: k, Delta: delta}
			if verdict == convergence.Converged {
				return res, nil
			}

			return res, iterativeErrorf(tag, fmt.Errorf("after %d sweeps: %w: %w", k, ErrDiverged, verdict.Err()))
		}
		prev, next = next, prev
	}
}

// prepare validates the system and returns a private row copy of a.
func prepare(a matrix.Matrix, b []float64) ([][]float64, error) {
	if err := matrix.ValidateSystem(a, b); err != nil {
		return nil, err
	}
	rows, err := matrix.ToRows(a)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if math.Abs(rows[i][i]) < DiagonalEpsilon {
			return nil, fmt.Errorf("row %d: %w", i, ErrZeroDiagonal)
		}
	}
	singular, err := matrix.IsSingular(a, matrix.DefaultPivotEpsilon)
	if err != nil {
		return nil, err
	}
	if singular {
		return nil, ErrSingular
	}

	return rows, nil
}

// jacobiSweep reads only prev.
func jacobiSweep(rows [][]float64, b, prev, next []float64) {
	for i, row := range rows {
		next[i] = relaxRow(row, b[i], prev, i)
	}
}

// gaussSeidelSweep updates next in place, starting from a copy of prev.
func gaussSeidelSweep(rows [][]float64, b, prev, next []float64) {
	copy(next, prev)
	for i, row := range rows {
		next[i] = relaxRow(row, b[i], next, i)
	}
}

// relaxRow returns (bi − Σ_{j≠i} row[j]·x[j]) / row[i].
func relaxRow(row []float64, bi float64, x []float64, i int) float64 {
	sum := bi
	for j, v := range row {
		if j != i {
			sum -= v * x[j]
		}
	}

	return sum / row[i]
}
