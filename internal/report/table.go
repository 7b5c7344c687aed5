// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/linsys/solver"
)

// absent marks a missing value in the table.
const absent = "-"

// WriteTable writes one aligned row per result:
//
//	Method  Status  Iterations  Residual max  x  y
//
// Solution values use 6 decimals, residuals 3 significant digits.
func WriteTable(w io.Writer, vars []string, results []solver.Result) error {
	rep := NewReport(vars, results)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := append([]string{"Method", "Status", "Iterations", "Residual max"}, rep.Variables...)
	if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")); err != nil {
		return err
	}
	for _, rec := range rep.Results {
		cells := make([]string, 0, len(header))
		cells = append(cells, rec.Method, rec.Status)
		if rec.Iterations != nil {
			cells = append(cells, strconv.Itoa(*rec.Iterations))
		} else {
			cells = append(cells, absent)
		}
		if rec.ResidualMax != nil {
			cells = append(cells, fmt.Sprintf("%.3e", *rec.ResidualMax))
		} else {
			cells = append(cells, absent)
		}
		for i := range rep.Variables {
			if i < len(rec.Solution) {
				cells = append(cells, fmt.Sprintf("%.6f", rec.Solution[i].Value))
				continue
			}
			cells = append(cells, absent)
		}
		if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}

	return tw.Flush()
}
