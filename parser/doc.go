// SPDX-License-Identifier: MIT

// Package parser converts free-form linear equation text into a square
// system (A, b, variable order).
//
// Input is one equation per non-empty line:
//
//	2x - y = 5
//	x + y  = 1
//
// Each line is split on its first '='. The left side is a sum of signed
// terms; every term is an optional sign, an optional coefficient (integer,
// decimal or scientific; none means 1) and an identifier, so "-y" is −1·y and
// "2.5*z" is 2.5·z. Pure numeric terms on the left are moved to the right.
// The right side is a single constant. Whitespace is insignificant.
//
// A coefficient greedily takes an exponent when e or E is followed by
// digits: "3e2 + y = 5" is 300 + y, and "2ex" is 2·ex. A variable named
// e<digits> takes a numeric coefficient only through '*', as in "3*e2".
//
// Variables get their columns in order of first appearance, scanning lines
// top to bottom and terms left to right. A variable absent from an equation
// contributes a 0 coefficient to that row.
//
// Parse errors are *Error values that unwrap to the sentinels in errors.go.
// Format is the canonical inverse: Parse(Format(s)) reproduces s exactly.
package parser
