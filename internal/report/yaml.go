// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/katalvlaran/linsys/solver"
)

// WriteYAML encodes NewReport(vars, results) as YAML.
func WriteYAML(w io.Writer, vars []string, results []solver.Result) error {
	data, err := yaml.Marshal(NewReport(vars, results))
	if err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}
	_, err = w.Write(data)

	return err
}

// ReadYAML decodes a document written by WriteYAML.
func ReadYAML(data []byte) (Report, error) {
	var rep Report
	if err := yaml.Unmarshal(data, &rep); err != nil {
		return Report{}, fmt.Errorf("report: decode yaml: %w", err)
	}

	return rep, nil
}
