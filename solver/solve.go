// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linsys/convergence"
	"github.com/katalvlaran/linsys/direct"
	"github.com/katalvlaran/linsys/iterative"
	"github.com/katalvlaran/linsys/matrix"
	"go.uber.org/zap"
)

// Solve runs one method on A·x = b and reports the outcome as a Result.
// It never returns a Go error: every failure, invalid input included, is
// carried in Result.Status and Result.Err.
//
// Complexity: that of the chosen method, plus O(n²) for the residual.
func Solve(m Method, a matrix.Matrix, b []float64, cfg Config, opts ...Option) Result {
	ro := newRunOptions(opts)
	res := solve(m, a, b, cfg, ro)
	logResult(ro.log, res)

	return res
}

func solve(m Method, a matrix.Matrix, b []float64, cfg Config, ro runOptions) Result {
	res := Result{Method: m, Name: m.Label(cfg)}

	switch m {
	case Cramer, Gaussian, GaussJordan:
		x, err := solveDirect(m, a, b)
		if err == nil && !convergence.AllFinite(x) {
			err = fmt.Errorf("%s: solution: %w", m, matrix.ErrNaNInf)
		}
		if err != nil {
			res.Status, res.Err = Failed, err
			return res
		}
		res.Solution = x
	case Jacobi, GaussSeidel, SOR:
		opts := cfg.options()
		if ro.hook != nil {
			hook := ro.hook
			opts.OnIteration = func(k int, x []float64, delta float64) { hook(m, k, x, delta) }
		}
		out, err := solveIterative(m, a, b, opts)
		if out.Iterations > 0 {
			res.Iterations, res.HasIterations = out.Iterations, true
		}
		if err != nil {
			res.Status, res.Err = Failed, err
			if errors.Is(err, iterative.ErrDiverged) {
				res.Status = Diverged
			}
		}
		if convergence.AllFinite(out.X) {
			res.Solution = out.X
		}
		if res.Status == Failed {
			return res
		}
	default:
		res.Status, res.Err = Failed, fmt.Errorf("%s: %w", m, ErrUnknownMethod)
		return res
	}

	attachResidual(&res, a, b)

	return res
}

func solveDirect(m Method, a matrix.Matrix, b []float64) ([]float64, error) {
	switch m {
	case Cramer:
		return direct.Cramer(a, b)
	case Gaussian:
		return direct.Gaussian(a, b)
	default:
		return direct.GaussJordan(a, b)
	}
}

func solveIterative(m Method, a matrix.Matrix, b []float64, opts iterative.Options) (iterative.Result, error) {
	switch m {
	case Jacobi:
		return iterative.Jacobi(a, b, opts)
	case GaussSeidel:
		return iterative.GaussSeidel(a, b, opts)
	default:
		return iterative.SOR(a, b, opts)
	}
}

// attachResidual fills Residual and ResidualMax when a solution exists.
func attachResidual(res *Result, a matrix.Matrix, b []float64) {
	if res.Solution == nil {
		return
	}
	r, err := matrix.Residual(a, res.Solution, b)
	if err != nil || !convergence.AllFinite(r) {
		return
	}
	res.Residual, res.ResidualMax, res.HasResidual = r, matrix.MaxAbs(r), true
}

func logResult(log *zap.Logger, res Result) {
	fields := []zap.Field{
		zap.String("method", res.Name),
		zap.Stringer("status", res.Status),
	}
	if res.HasIterations {
		fields = append(fields, zap.Int("iterations", res.Iterations))
	}
	if res.HasResidual {
		fields = append(fields, zap.Float64("residual_max", res.ResidualMax))
	}
	log.Debug("solve finished", fields...)
	if res.Status != Success {
		log.Warn("method did not succeed", append(fields, zap.Error(res.Err))...)
	}
}
