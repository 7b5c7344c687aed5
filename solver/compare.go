// SPDX-License-Identifier: MIT

package solver

import (
	"math"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/parser"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

// Compare runs every method of Methods() on the same system, in order, and
// returns one Result per method. A failing method never stops the others.
func Compare(a matrix.Matrix, b []float64, cfg Config, opts ...Option) []Result {
	ro := newRunOptions(opts)
	results := make([]Result, 0, len(Methods()))
	for _, m := range Methods() {
		res := solve(m, a, b, cfg, ro)
		logResult(ro.log, res)
		results = append(results, res)
	}
	ro.log.Info("comparison finished",
		zap.Int("methods", len(results)),
		zap.Int("succeeded", countSuccess(results)),
	)

	return results
}

// CompareText parses text with parser.Parse, then runs Compare on the system.
// A parse error aborts the run and is the only error returned.
func CompareText(text string, cfg Config, opts ...Option) (parser.System, []Result, error) {
	sys, err := parser.Parse(text)
	if err != nil {
		return parser.System{}, nil, err
	}

	return sys, Compare(sys.A, sys.B, cfg, opts...), nil
}

// Agree reports whether every successful result's solution lies within tol
// (∞-norm) of the first successful one. Fewer than two successes agree trivially.
func Agree(results []Result, tol float64) bool {
	var first []float64
	for _, r := range results {
		if !r.OK() || r.Solution == nil {
			continue
		}
		if first == nil {
			first = r.Solution
			continue
		}
		if len(r.Solution) != len(first) || !(floats.Distance(r.Solution, first, math.Inf(1)) <= tol) {
			return false
		}
	}

	return true
}

func countSuccess(results []Result) int {
	var n int
	for _, r := range results {
		if r.OK() {
			n++
		}
	}

	return n
}
