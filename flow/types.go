// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Errors and options shared by the connectivity routines.

package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmesh/core"
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("flow: graph is nil")

	// ErrSourceNotFound is returned when the source node is missing.
	ErrSourceNotFound = fmt.Errorf("flow: source node not found: %w", core.ErrNotFound)

	// ErrSinkNotFound is returned when the sink node is missing.
	ErrSinkNotFound = fmt.Errorf("flow: sink node not found: %w", core.ErrNotFound)

	// ErrSameEndpoints is returned when source and sink are the same node.
	ErrSameEndpoints = fmt.Errorf("flow: source equals sink: %w", core.ErrInvalidConfiguration)
)

// FlowOptions configures the connectivity routines.
//   - Ctx: checked before every augmentation; cancellation returns ctx.Err().
type FlowOptions struct {
	Ctx context.Context
}

// Option mutates FlowOptions.
type Option func(*FlowOptions)

// DefaultOptions returns a background context.
func DefaultOptions() FlowOptions {
	return FlowOptions{Ctx: context.Background()}
}

// WithContext sets the cancellation context. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *FlowOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

func resolve(opts []Option) FlowOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
