// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/linsys/solver"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ErrNoHistory is returned when there is nothing to plot.
var ErrNoHistory = errors.New("report: no iteration history recorded")

// deltaFloor replaces exact zero updates, which a log axis cannot show.
const deltaFloor = 1e-18

// History records the update norm of every sweep, per iterative method.
// It is not safe for concurrent use.
type History struct {
	order  []solver.Method
	deltas map[solver.Method][]float64
}

// NewHistory returns an empty History.
func NewHistory() *History {
	return &History{deltas: make(map[solver.Method][]float64)}
}

// Hook returns an IterationHook that appends to h; pass it with
// solver.WithIterationHook.
func (h *History) Hook() solver.IterationHook {
	return func(m solver.Method, _ int, _ []float64, delta float64) {
		if _, ok := h.deltas[m]; !ok {
			h.order = append(h.order, m)
		}
		h.deltas[m] = append(h.deltas[m], delta)
	}
}

// Methods returns the recorded methods in first-seen order.
func (h *History) Methods() []solver.Method {
	return append([]solver.Method(nil), h.order...)
}

// Deltas returns the recorded update norms of m, sweep 1 first.
func (h *History) Deltas(m solver.Method) []float64 {
	return append([]float64(nil), h.deltas[m]...)
}

// PlotConvergence saves a 6×4 inch plot of ‖x_k − x_{k−1}‖∞ against k, one
// line per method on a logarithmic y axis. The image format follows the
// extension of path (.png, .svg, .pdf, ...). Non-finite updates are skipped;
// ErrNoHistory is returned when no finite update remains.
func PlotConvergence(path string, h *History, cfg solver.Config) error {
	if h == nil || len(h.order) == 0 {
		return ErrNoHistory
	}

	p := plot.New()
	p.Title.Text = "Convergence of iterative methods"
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "max |x_k - x_k-1|"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	var lines int
	for i, m := range h.order {
		pts := make(plotter.XYs, 0, len(h.deltas[m]))
		for k, d := range h.deltas[m] {
			if math.IsNaN(d) || math.IsInf(d, 0) {
				continue
			}
			pts = append(pts, plotter.XY{X: float64(k + 1), Y: math.Max(d, deltaFloor)})
		}
		if len(pts) == 0 {
			continue
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("report: %s: %w", m, err)
		}
		line.Color = plotutil.Color(i)
		line.Dashes = plotutil.Dashes(i)
		p.Add(line)
		p.Legend.Add(m.Label(cfg), line)
		lines++
	}
	if lines == 0 {
		return ErrNoHistory
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("report: save plot: %w", err)
	}

	return nil
}
