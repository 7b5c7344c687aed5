// SPDX-License-Identifier: MIT

package direct

import (
	"errors"
	"fmt"
)

// ErrSingular indicates |det(A)| or a pivot magnitude below Epsilon.
var ErrSingular = errors.New("direct: matrix is singular or nearly singular")

// ErrNotFinite indicates a determinant or solution component that overflowed to ±Inf or NaN.
var ErrNotFinite = errors.New("direct: non-finite determinant or solution")

// Operation tags for error wrapping.
const (
	opCramer      = "Cramer"
	opGaussian    = "Gaussian"
	opGaussJordan = "GaussJordan"
)

// directErrorf wraps err with an operation tag, preserving it for errors.Is.
func directErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
