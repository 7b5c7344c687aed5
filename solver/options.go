// SPDX-License-Identifier: MIT

package solver

import "go.uber.org/zap"

// IterationHook observes every sweep of an iterative method. x is only valid
// for the duration of the call.
type IterationHook func(m Method, k int, x []float64, delta float64)

// Option customizes Solve, Compare and CompareText.
type Option func(*runOptions)

type runOptions struct {
	log  *zap.Logger
	hook IterationHook
}

func newRunOptions(opts []Option) runOptions {
	ro := runOptions{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&ro)
	}

	return ro
}

// WithLogger logs one debug entry per method and a warning for every
// non-successful one. A nil logger keeps the no-op default.
func WithLogger(log *zap.Logger) Option {
	return func(ro *runOptions) {
		if log != nil {
			ro.log = log
		}
	}
}

// WithIterationHook installs hook on every iterative method run.
func WithIterationHook(hook IterationHook) Option {
	return func(ro *runOptions) { ro.hook = hook }
}
