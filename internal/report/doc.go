// SPDX-License-Identifier: MIT

// Package report renders solver results for people and tools: an aligned
// text table, a YAML document, and a PNG plot of the per-sweep update norm
// of the iterative methods.
package report
