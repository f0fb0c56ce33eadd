// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, MSTOptions and the Compute dispatcher.

package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmesh/core"
)

// ErrGraphNil indicates a nil graph was passed.
var ErrGraphNil = errors.New("prim_kruskal: graph is nil")

// ErrEmptyRoot indicates that no start router was given to Prim.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root node")

// ErrUnknownMethod indicates an MSTOptions.Method other than MethodPrim or
// MethodKruskal. It wraps core.ErrInvalidConfiguration.
var ErrUnknownMethod = fmt.Errorf("prim_kruskal: unknown method: %w", core.ErrInvalidConfiguration)

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all links and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which algorithm runs and, for Prim, where it starts.
//
// Fields:
//
//	Method string - one of MethodPrim or MethodKruskal.
//	Root   string - start router for Prim; ignored by Kruskal.
type MSTOptions struct {
	Method string
	Root   string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets the start router for Prim. Kruskal ignores it.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions selects Kruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Compute runs the algorithm named by opts.Method. For Prim with an empty
// Root the first router in enumeration order is used.
//
// Returns the backbone links, their total latency, and ErrGraphNil,
// ErrUnknownMethod or a wrapped core error.
func Compute(g core.Reader, opts ...Option) ([]core.Edge, float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		if g == nil {
			return nil, 0, ErrGraphNil
		}
		root := o.Root
		if root == "" && g.NodeCount() > 0 {
			root = g.NodeIDs()[0]
		}
		return Prim(g, root)
	default:
		return nil, 0, fmt.Errorf("Compute(%q): %w", o.Method, ErrUnknownMethod)
	}
}

func disconnected(method string, spanned, total int) error {
	return fmt.Errorf("%s: tree spans %d of %d routers: %w", method, spanned, total, core.ErrDisconnected)
}
