// SPDX-License-Identifier: MIT
package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/linsys/internal/report"
	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compare(t *testing.T, rows [][]float64, b []float64, opts ...solver.Option) []solver.Result {
	t.Helper()
	a, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return solver.Compare(a, b, solver.DefaultConfig(), opts...)
}

func TestNewReport(t *testing.T) {
	results := compare(t, [][]float64{{4, 1}, {1, 3}}, []float64{9, 10})
	rep := report.NewReport([]string{"x"}, results)

	assert.Equal(t, []string{"x", "x2"}, rep.Variables)
	require.Len(t, rep.Results, 6)

	cramer := rep.Results[0]
	assert.Equal(t, "Cramer's Method", cramer.Method)
	assert.Equal(t, "Success", cramer.Status)
	assert.Nil(t, cramer.Iterations)
	require.NotNil(t, cramer.ResidualMax)
	require.Len(t, cramer.Solution, 2)
	assert.Equal(t, "x2", cramer.Solution[1].Variable)
	assert.InDelta(t, 31.0/11.0, cramer.Solution[1].Value, 1e-12)

	jacobi := rep.Results[3]
	require.NotNil(t, jacobi.Iterations)
	assert.Greater(t, *jacobi.Iterations, 0)
	assert.Empty(t, jacobi.Error)
}

func TestWriteTable(t *testing.T) {
	results := compare(t, [][]float64{{1, 2}, {1, 2}}, []float64{3, 3})
	var buf bytes.Buffer
	require.NoError(t, report.WriteTable(&buf, []string{"x", "y"}, results))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, []string{"Method", "Status", "Iterations", "Residual", "max", "x", "y"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"Cramer's", "Method", "Failed", "-", "-", "-", "-"}, strings.Fields(lines[1]))
	assert.True(t, strings.HasPrefix(lines[6], "SOR (ω=1.25)"))
}

func TestWriteTable_Values(t *testing.T) {
	results := compare(t, [][]float64{{3, 1}, {1, 2}}, []float64{9, 8})
	var buf bytes.Buffer
	require.NoError(t, report.WriteTable(&buf, []string{"x", "y"}, results[1:2]))

	fields := strings.Fields(strings.Split(buf.String(), "\n")[1])
	require.Len(t, fields, 7)
	assert.Equal(t, []string{"Gaussian", "Elimination", "Success", "-"}, fields[:4])
	assert.Equal(t, "2.000000", fields[5])
	assert.Equal(t, "3.000000", fields[6])
}

func TestYAMLRoundTrip(t *testing.T) {
	results := compare(t, [][]float64{{1, 3}, {2, 1}}, []float64{1, 1})
	var buf bytes.Buffer
	require.NoError(t, report.WriteYAML(&buf, []string{"a", "b"}, results))

	assert.Contains(t, buf.String(), "method: Gauss-Seidel")
	assert.Contains(t, buf.String(), "status: Diverged")

	back, err := report.ReadYAML(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, report.NewReport([]string{"a", "b"}, results), back)
}

func TestReadYAML_Invalid(t *testing.T) {
	_, err := report.ReadYAML([]byte("results: [unterminated"))
	assert.Error(t, err)
}

func TestHistoryAndPlot(t *testing.T) {
	h := report.NewHistory()
	results := compare(t, [][]float64{{4, 1}, {1, 3}}, []float64{9, 10}, solver.WithIterationHook(h.Hook()))

	assert.Equal(t, []solver.Method{solver.Jacobi, solver.GaussSeidel, solver.SOR}, h.Methods())
	for _, r := range results[3:] {
		assert.Len(t, h.Deltas(r.Method), r.Iterations, r.Name)
	}

	path := filepath.Join(t.TempDir(), "convergence.png")
	require.NoError(t, report.PlotConvergence(path, h, solver.DefaultConfig()))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestPlotConvergence_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")
	assert.ErrorIs(t, report.PlotConvergence(path, nil, solver.DefaultConfig()), report.ErrNoHistory)
	assert.ErrorIs(t, report.PlotConvergence(path, report.NewHistory(), solver.DefaultConfig()), report.ErrNoHistory)
}
