// SPDX-License-Identifier: MIT

package solver

import "errors"

// ErrUnknownMethod is carried by a Failed Result for a Method outside the closed set.
var ErrUnknownMethod = errors.New("solver: unknown method")
