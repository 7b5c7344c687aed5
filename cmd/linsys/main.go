// SPDX-License-Identifier: MIT

// Command linsys solves a linear system with all six methods and prints the
// comparison.
//
// Usage:
//
//	linsys [flags] < equations.txt
//	linsys -file equations.txt -format yaml
//	linsys -examples -plot convergence.png
//
// Equations are read one per line until EOF or the first blank line. Flags
// override LINSYS_* environment settings.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/linsys/internal/config"
	"github.com/katalvlaran/linsys/internal/logging"
	"github.com/katalvlaran/linsys/internal/report"
	"github.com/katalvlaran/linsys/iterative"
	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/parser"
	"github.com/katalvlaran/linsys/solver"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// system is one titled problem to compare.
type system struct {
	title string
	sys   parser.System
}

// run is main without the process exit, returning the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("linsys", flag.ContinueOnError)
	fs.SetOutput(stderr)
	file := fs.String("file", "", "read equations from `path` instead of stdin")
	examples := fs.Bool("examples", false, "run the built-in example systems")
	format := fs.String("format", "table", "output format: table or yaml")
	plotPath := fs.String("plot", "", "save the iterative convergence plot to `path` (.png, .svg, .pdf)")
	tol := fs.Float64("tol", 0, "iterative tolerance (overrides LINSYS_TOLERANCE)")
	maxIter := fs.Int("max-iter", 0, "iteration cap (overrides LINSYS_MAX_ITERATIONS)")
	omega := fs.Float64("omega", 0, "SOR relaxation factor (overrides LINSYS_RELAXATION)")
	optimal := fs.Bool("optimal-omega", false, "estimate the SOR factor from the Jacobi spectral radius")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *format != "table" && *format != "yaml" {
		fmt.Fprintf(stderr, "linsys: unknown format %q\n", *format)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "linsys: %v\n", err)
		return 2
	}
	log, err := logging.New(cfg.Logging.ToLogging())
	if err != nil {
		log = logging.NewNop()
	}
	defer func() { _ = log.Sync() }()

	base := cfg.Solver.ToSolver()
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tol":
			base.Tolerance = *tol
		case "max-iter":
			base.MaxIterations = *maxIter
		case "omega":
			base.Relaxation = *omega
		}
	})

	systems, err := loadSystems(*examples, *file, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "linsys: %v\n", err)
		return 1
	}

	for i, s := range systems {
		scfg := base
		if *optimal {
			w, oerr := iterative.OptimalOmega(s.sys.A)
			if oerr != nil {
				log.Warn("optimal omega unavailable", zap.Error(oerr))
			} else {
				scfg.Relaxation = w
				log.Info("optimal omega", zap.Float64("omega", w))
			}
		}

		opts := []solver.Option{solver.WithLogger(log.Logger)}
		var hist *report.History
		if *plotPath != "" {
			hist = report.NewHistory()
			opts = append(opts, solver.WithIterationHook(hist.Hook()))
		}

		results := solver.Compare(s.sys.A, s.sys.B, scfg, opts...)

		if s.title != "" && *format == "table" {
			if i > 0 {
				fmt.Fprintln(stdout)
			}
			fmt.Fprintf(stdout, "== %s ==\n", s.title)
		}
		if *format == "yaml" {
			if i > 0 {
				fmt.Fprintln(stdout, "---")
			}
			err = report.WriteYAML(stdout, s.sys.Variables, results)
		} else {
			err = report.WriteTable(stdout, s.sys.Variables, results)
		}
		if err != nil {
			fmt.Fprintf(stderr, "linsys: %v\n", err)
			return 1
		}

		if hist != nil {
			path := plotFile(*plotPath, i, len(systems))
			if perr := report.PlotConvergence(path, hist, scfg); perr != nil {
				log.Warn("convergence plot not written", zap.String("path", path), zap.Error(perr))
			} else {
				log.Info("convergence plot written", zap.String("path", path))
			}
		}
	}

	return 0
}

// loadSystems returns the built-in examples or the system read from file/stdin.
func loadSystems(examples bool, file string, stdin io.Reader) ([]system, error) {
	if examples {
		return builtinSystems()
	}

	in := stdin
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}
	sys, err := parser.ParseReader(in)
	if err != nil {
		return nil, err
	}

	return []system{{sys: sys}}, nil
}

// builtinSystems is the example set: a 4×4 matrix system, a 3×3 system given
// as text, and a 2×2 matrix system.
func builtinSystems() ([]system, error) {
	four, err := fromRows([][]float64{
		{4, -1, 0, 1},
		{-1, 4, -1, 0},
		{0, -1, 4, -1},
		{1, 0, -1, 4},
	}, []float64{2, 1, 3, 2})
	if err != nil {
		return nil, err
	}
	three, err := parser.Parse("4x + y + z = 7\nx + 5y + 2z = 10\nx + 2y + 6z = 14")
	if err != nil {
		return nil, err
	}
	two, err := fromRows([][]float64{{3, 1}, {1, 2}}, []float64{9, 8})
	if err != nil {
		return nil, err
	}

	return []system{
		{title: "4x4 matrix system", sys: four},
		{title: "3x3 equation text", sys: three},
		{title: "2x2 matrix system", sys: two},
	}, nil
}

func fromRows(rows [][]float64, b []float64) (parser.System, error) {
	a, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return parser.System{}, err
	}

	return parser.System{A: a, B: b}, nil
}

// plotFile numbers the plot per system when more than one is solved:
// conv.png → conv-1.png, conv-2.png, ...
func plotFile(path string, i, total int) string {
	if total == 1 {
		return path
	}
	ext := filepath.Ext(path)

	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), i+1, ext)
}
