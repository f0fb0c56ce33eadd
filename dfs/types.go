// SPDX-License-Identifier: MIT
// Package dfs defines types and options for depth-first path enumeration
// and articulation-point search.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmesh/core"
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrNegativeCutoff indicates a hop cutoff below zero.
	ErrNegativeCutoff = fmt.Errorf("dfs: cutoff must be ≥ 0: %w", core.ErrInvalidConfiguration)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures AllSimplePaths.
type Option func(*PathOptions)

// PathOptions holds the enumeration bounds. The hop cutoff is a mandatory
// argument, never an option.
type PathOptions struct {
	// Ctx allows cancellation; checked once per extension step.
	Ctx context.Context

	// MaxPaths, if > 0, stops the enumeration after that many paths.
	MaxPaths int

	err error
}

// DefaultOptions returns background context and no path-count bound.
func DefaultOptions() PathOptions {
	return PathOptions{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *PathOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxPaths stops the enumeration once n paths have been found.
// n ≤ 0 is recorded as ErrOptionViolation.
func WithMaxPaths(n int) Option {
	return func(o *PathOptions) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxPaths must be > 0 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPaths = n
	}
}
