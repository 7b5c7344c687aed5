// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Method identifies one of the six solvers.
type Method int

const (
	// Cramer solves by determinants (direct.Cramer).
	Cramer Method = iota
	// Gaussian is elimination with partial pivoting (direct.Gaussian).
	Gaussian
	// GaussJordan is full elimination with partial pivoting (direct.GaussJordan).
	GaussJordan
	// Jacobi is simultaneous-update iteration (iterative.Jacobi).
	Jacobi
	// GaussSeidel is in-place iteration (iterative.GaussSeidel).
	GaussSeidel
	// SOR is successive over-relaxation (iterative.SOR).
	SOR
)

var methodNames = [...]string{
	Cramer:      "Cramer's Method",
	Gaussian:    "Gaussian Elimination",
	GaussJordan: "Gauss-Jordan",
	Jacobi:      "Jacobi",
	GaussSeidel: "Gauss-Seidel",
	SOR:         "SOR",
}

// Methods returns every method in comparison order.
func Methods() []Method {
	return []Method{Cramer, Gaussian, GaussJordan, Jacobi, GaussSeidel, SOR}
}

// Valid reports whether m is one of the six known methods.
func (m Method) Valid() bool { return m >= Cramer && m <= SOR }

// String returns the display name.
func (m Method) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return methodNames[m]
}

// Iterative reports whether m is Jacobi, GaussSeidel or SOR.
func (m Method) Iterative() bool { return m >= Jacobi && m <= SOR }

// Label returns the display name qualified by the parameters that shape the
// result: SOR carries its relaxation factor, e.g. "SOR (ω=1.25)".
func (m Method) Label(cfg Config) string {
	if m == SOR {
		return fmt.Sprintf("SOR (ω=%s)", strconv.FormatFloat(cfg.Relaxation, 'g', -1, 64))
	}

	return m.String()
}

// methodAliases maps normalized spellings to methods.
var methodAliases = map[string]Method{
	"cramer":              Cramer,
	"cramers":             Cramer,
	"cramersmethod":       Cramer,
	"gauss":               Gaussian,
	"gaussian":            Gaussian,
	"gaussianelimination": Gaussian,
	"gaussjordan":         GaussJordan,
	"jordan":              GaussJordan,
	"jacobi":              Jacobi,
	"gaussseidel":         GaussSeidel,
	"seidel":              GaussSeidel,
	"sor":                 SOR,
}

// ParseMethod resolves a method name. Matching ignores case, spaces,
// punctuation and digits, so "gauss-seidel", "Gauss Seidel" and "GaussSeidel"
// are equivalent, as are the display names.
func ParseMethod(s string) (Method, error) {
	key := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, strings.SplitN(s, "(", 2)[0])
	if m, ok := methodAliases[key]; ok {
		return m, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
}
