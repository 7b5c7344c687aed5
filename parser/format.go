// SPDX-License-Identifier: MIT

package parser

import (
	"math"
	"strconv"
	"strings"
)

// Format renders s in canonical form, one equation per line:
//
//	+2*x -1*y = 5
//	+1*x +1*y = 1
//
// Every coefficient is written, zeros included, with the shortest decimal
// that round-trips (strconv 'g', -1), so Parse(Format(s)) yields identical
// A, B and Variables. Variables must be valid identifiers for that to hold;
// the explicit '*' keeps names such as e2 apart from an exponent.
// A System without a matrix formats as the empty string.
func Format(s System) string {
	if s.A == nil {
		return ""
	}
	n := s.A.Rows()

	var sb strings.Builder
	for i := 0; i < n; i++ {
		for j := 0; j < s.A.Cols() && j < len(s.Variables); j++ {
			v, _ := s.A.At(i, j)
			if j > 0 {
				sb.WriteByte(' ')
			}
			if math.Signbit(v) {
				sb.WriteByte('-')
			} else {
				sb.WriteByte('+')
			}
			sb.WriteString(strconv.FormatFloat(math.Abs(v), 'g', -1, 64))
			sb.WriteByte('*')
			sb.WriteString(s.Variables[j])
		}
		sb.WriteString(" = ")
		if i < len(s.B) {
			sb.WriteString(strconv.FormatFloat(s.B[i], 'g', -1, 64))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
