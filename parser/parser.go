// SPDX-License-Identifier: MIT

package parser

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/linsys/matrix"
)

// System is a parsed square linear system A·x = B. Column j of A holds the
// coefficients of Variables[j].
type System struct {
	A         *matrix.Dense
	B         []float64
	Variables []string
}

// Size returns the order n of the system.
func (s System) Size() int { return len(s.B) }

// varIndex is an insertion-ordered name → column table.
type varIndex struct {
	names []string
	pos   map[string]int
}

func newVarIndex() *varIndex {
	return &varIndex{pos: make(map[string]int)}
}

// column returns the column of name, registering it on first sight.
func (v *varIndex) column(name string) int {
	if c, ok := v.pos[name]; ok {
		return c
	}
	c := len(v.names)
	v.pos[name] = c
	v.names = append(v.names, name)

	return c
}

// equation is one parsed line: column → coefficient, plus its constant.
type equation struct {
	line     int
	coef     map[int]float64
	constant float64
}

// term is one signed summand of a left side. name is empty for a pure number.
type term struct {
	name  string
	value float64
	text  string
}

// Parse parses a block of newline-separated equations. Blank lines are skipped.
func Parse(text string) (System, error) {
	return ParseLines(strings.Split(text, "\n"))
}

// ParseReader reads equations from r until EOF or the first blank line that
// follows at least one equation; leading blank lines are skipped.
func ParseReader(r io.Reader) (System, error) {
	var (
		lines []string
		seen  bool
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			if seen {
				break
			}
			lines = append(lines, line) // keep numbering aligned with the input
			continue
		}
		seen = true
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return System{}, fmt.Errorf("parser: read input: %w", err)
	}

	return ParseLines(lines)
}

// ParseLines parses one equation per element of lines. Blank elements are
// skipped; reported line numbers are 1-based indices into lines.
//
// Implementation:
//   - Stage 1: parse every non-blank line into a column → coefficient map,
//     registering unseen variables in first-appearance order.
//   - Stage 2: check equations == variables, then build the dense matrix,
//     filling 0 for variables absent from a row.
//
// Errors: *Error wrapping ErrEmptyInput, ErrNoEquals, ErrBadTerm,
// ErrBadConstant or ErrNotSquare.
//
// Complexity: O(total input length + n²).
func ParseLines(lines []string) (System, error) {
	vars := newVarIndex()
	eqs := make([]equation, 0, len(lines))

	for i, raw := range lines {
		line := strings.TrimRight(raw, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		eq, err := parseEquation(i+1, line, vars)
		if err != nil {
			return System{}, err
		}
		eqs = append(eqs, eq)
	}

	if len(eqs) == 0 {
		return System{}, &Error{Err: ErrEmptyInput}
	}
	n := len(vars.names)
	if len(eqs) != n {
		return System{}, &Error{
			Text: fmt.Sprintf("%d equations, %d variables", len(eqs), n),
			Err:  ErrNotSquare,
		}
	}

	a, err := matrix.NewDense(n, n)
	if err != nil {
		return System{}, fmt.Errorf("parser: %w", err)
	}
	b := make([]float64, n)
	for i, eq := range eqs {
		for col, v := range eq.coef {
			if err = a.Set(i, col, v); err != nil {
				return System{}, fmt.Errorf("parser: line %d: %w", eq.line, err)
			}
		}
		b[i] = eq.constant
	}

	return System{A: a, B: b, Variables: vars.names}, nil
}

// parseEquation parses one line "lhs = rhs".
func parseEquation(lineNo int, line string, vars *varIndex) (equation, error) {
	eqPos := strings.IndexByte(line, '=')
	if eqPos < 0 {
		return equation{}, &Error{Line: lineNo, Text: line, Err: ErrNoEquals}
	}
	lhs := stripSpace(line[:eqPos])
	rhs := stripSpace(line[eqPos+1:])

	constant, err := strconv.ParseFloat(rhs, 64)
	if err != nil || !isFinite(constant) {
		return equation{}, &Error{Line: lineNo, Text: line, Err: ErrBadConstant}
	}

	terms, terr := scanTerms(lhs)
	if terr != nil {
		terr.Line = lineNo
		return equation{}, terr
	}

	eq := equation{line: lineNo, coef: make(map[int]float64), constant: constant}
	hasVariable := false
	for _, t := range terms {
		if t.name == "" {
			eq.constant -= t.value // move numeric terms to the right side
			if !isFinite(eq.constant) {
				return equation{}, &Error{Line: lineNo, Text: line, Err: ErrBadConstant}
			}
			continue
		}
		hasVariable = true
		col := vars.column(t.name)
		if prev, ok := eq.coef[col]; ok {
			eq.coef[col] = prev + t.value
		} else {
			eq.coef[col] = t.value
		}
		if !isFinite(eq.coef[col]) {
			return equation{}, &Error{Line: lineNo, Text: t.text, Err: ErrBadTerm}
		}
	}
	if !hasVariable {
		return equation{}, &Error{Line: lineNo, Text: line, Err: ErrBadTerm}
	}

	return eq, nil
}

// scanTerms splits a whitespace-free left side into signed terms.
// Grammar per term: [+|-] [number] ['*'] [identifier], where at least one
// of number or identifier is present and '*' requires both.
func scanTerms(lhs string) ([]term, *Error) {
	r := []rune(lhs)
	if len(r) == 0 {
		return nil, &Error{Text: lhs, Err: ErrBadTerm}
	}

	var (
		terms []term
		pos   int
	)
	for pos < len(r) {
		start := pos
		sign := 1.0
		switch r[pos] {
		case '+':
			pos++
		case '-':
			sign = -1
			pos++
		default:
			if start != 0 {
				// a term must be introduced by an operator unless it is the first
				return nil, &Error{Text: string(r[start:]), Err: ErrBadTerm}
			}
		}

		var value float64
		hasNum, next := scanNumber(r, pos)
		if hasNum {
			v, err := strconv.ParseFloat(string(r[pos:next]), 64)
			if err != nil || !isFinite(v) {
				return nil, &Error{Text: string(r[start:next]), Err: ErrBadTerm}
			}
			value = v
			pos = next
		}

		star := false
		if pos < len(r) && r[pos] == '*' {
			if !hasNum {
				return nil, &Error{Text: string(r[start : pos+1]), Err: ErrBadTerm}
			}
			star = true
			pos++
		}

		identEnd := scanIdent(r, pos)
		name := string(r[pos:identEnd])
		pos = identEnd

		if name == "" && (!hasNum || star) {
			return nil, &Error{Text: string(r[start:pos]), Err: ErrBadTerm}
		}
		if !hasNum {
			value = 1
		}
		terms = append(terms, term{name: name, value: sign * value, text: string(r[start:pos])})
	}

	return terms, nil
}

// scanNumber returns the end of a decimal literal starting at pos:
// digits [ '.' digits ] [ (e|E) [+|-] digits ]. The exponent is consumed only
// when at least one digit follows it, so "2ex" reads as 2·ex.
func scanNumber(r []rune, pos int) (bool, int) {
	i := pos
	digits := 0
	for i < len(r) && isDigit(r[i]) {
		i++
		digits++
	}
	if i < len(r) && r[i] == '.' {
		i++
		for i < len(r) && isDigit(r[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return false, pos
	}
	if i < len(r) && (r[i] == 'e' || r[i] == 'E') {
		j := i + 1
		if j < len(r) && (r[j] == '+' || r[j] == '-') {
			j++
		}
		if j < len(r) && isDigit(r[j]) {
			for j < len(r) && isDigit(r[j]) {
				j++
			}
			i = j
		}
	}

	return true, i
}

// scanIdent returns the end of an identifier starting at pos (pos itself
// when no identifier starts there).
func scanIdent(r []rune, pos int) int {
	if pos >= len(r) || !(unicode.IsLetter(r[pos]) || r[pos] == '_') {
		return pos
	}
	i := pos + 1
	for i < len(r) && (unicode.IsLetter(r[i]) || unicode.IsDigit(r[i]) || r[i] == '_') {
		i++
	}

	return i
}

func isDigit(c rune) bool { return c >= '0' && c <= '9' }

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// stripSpace removes every Unicode white-space rune.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
