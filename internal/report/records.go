// SPDX-License-Identifier: MIT

package report

import (
	"fmt"

	"github.com/katalvlaran/linsys/solver"
)

// Component is one named solution value.
type Component struct {
	Variable string  `yaml:"variable"`
	Value    float64 `yaml:"value"`
}

// Record is the display form of a solver.Result; absent values are nil
// (null in YAML).
type Record struct {
	Method      string      `yaml:"method"`
	Status      string      `yaml:"status"`
	Iterations  *int        `yaml:"iterations"`
	ResidualMax *float64    `yaml:"residual_max"`
	Solution    []Component `yaml:"solution,omitempty"`
	Error       string      `yaml:"error,omitempty"`
}

// Report is the YAML document root.
type Report struct {
	Variables []string `yaml:"variables"`
	Results   []Record `yaml:"results"`
}

// NewReport converts results. When vars is shorter than a solution, missing
// names default to x1, x2, ...
func NewReport(vars []string, results []solver.Result) Report {
	n := len(vars)
	for _, r := range results {
		n = max(n, len(r.Solution))
	}
	names := variableNames(vars, n)

	rep := Report{Variables: names, Results: make([]Record, 0, len(results))}
	for _, r := range results {
		rec := Record{Method: r.Name, Status: r.Status.String()}
		if rec.Method == "" {
			rec.Method = r.Method.String()
		}
		if r.HasIterations {
			it := r.Iterations
			rec.Iterations = &it
		}
		if r.HasResidual {
			rm := r.ResidualMax
			rec.ResidualMax = &rm
		}
		for i, v := range r.Solution {
			rec.Solution = append(rec.Solution, Component{Variable: names[i], Value: v})
		}
		if r.Err != nil {
			rec.Error = r.Err.Error()
		}
		rep.Results = append(rep.Results, rec)
	}

	return rep
}

// variableNames pads vars to n entries with generated names.
func variableNames(vars []string, n int) []string {
	names := make([]string, n)
	for i := range names {
		if i < len(vars) {
			names[i] = vars[i]
			continue
		}
		names[i] = fmt.Sprintf("x%d", i+1)
	}

	return names
}
