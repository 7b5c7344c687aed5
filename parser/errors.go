// SPDX-License-Identifier: MIT

package parser

import (
	"errors"
	"fmt"
)

// Sentinel errors. Messages are prefixed with "parser:" for log grepping;
// match them with errors.Is.
var (
	// ErrEmptyInput is returned when the input holds no non-blank line.
	ErrEmptyInput = errors.New("parser: no equations provided")

	// ErrNoEquals indicates a line without an '=' sign.
	ErrNoEquals = errors.New("parser: equation has no '='")

	// ErrBadTerm indicates a left-side term that is neither a number nor
	// a coefficient followed by an identifier, or a left side with no variable.
	ErrBadTerm = errors.New("parser: malformed term")

	// ErrBadConstant indicates a right side that is not a single finite number.
	ErrBadConstant = errors.New("parser: invalid constant")

	// ErrNotSquare indicates the equation count differs from the number of
	// distinct variables.
	ErrNotSquare = errors.New("parser: system is not square")
)

// Error describes a parse failure. Line is the 1-based input line number, or
// 0 for failures that concern the whole block (ErrEmptyInput, ErrNotSquare).
type Error struct {
	Line int    // 1-based line number, 0 when not line-specific
	Text string // offending line or term
	Err  error  // underlying sentinel
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Line == 0 {
		if e.Text == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%v: %s", e.Err, e.Text)
	}

	return fmt.Sprintf("%v: line %d: %q", e.Err, e.Line, e.Text)
}

// Unwrap exposes the sentinel to errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.Err }
