// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Walk options, sentinel errors and the layered Result.

package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmesh/core"
)

var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNotFound is returned when the start router is absent.
	ErrStartNotFound = fmt.Errorf("bfs: start node: %w", core.ErrNotFound)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures Walk.
// Invalid values are recorded and surfaced as ErrOptionViolation by Walk.
type Option func(*options)

type options struct {
	ctx     context.Context
	maxHops int
	err     error
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext makes Walk check ctx between hop layers. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithMaxHops stops the walk after h hop layers. 0 means no limit; a
// negative h is an ErrOptionViolation.
func WithMaxHops(h int) Option {
	return func(o *options) {
		if h < 0 {
			o.err = fmt.Errorf("%w: max hops cannot be negative (%d)", ErrOptionViolation, h)
			return
		}
		o.maxHops = h
	}
}

// Result is a breadth-first walk split into hop layers.
// Layers[0] is the start router alone; Layers[h] holds the routers first
// reached in h hops, in discovery order.
type Result struct {
	Start  string
	Layers [][]string
	// Parent maps each reached router except Start to the router it was
	// discovered from.
	Parent map[string]string

	hops map[string]int
}

// Order flattens Layers into visit order.
func (r *Result) Order() []string {
	out := make([]string, 0, len(r.hops))
	for _, layer := range r.Layers {
		out = append(out, layer...)
	}
	return out
}

// Count is the number of routers reached, Start included.
func (r *Result) Count() int { return len(r.hops) }

// Hops returns the hop distance of id and whether it was reached.
func (r *Result) Hops(id string) (int, bool) {
	h, ok := r.hops[id]
	return h, ok
}

// PathTo reconstructs the fewest-hop path from Start to dest, or an error
// wrapping core.ErrNoPath when dest was not reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	h, ok := r.hops[dest]
	if !ok {
		return nil, fmt.Errorf("bfs: PathTo(%q): %w", dest, core.ErrNoPath)
	}
	path := make([]string, h+1)
	for cur := dest; h >= 0; h-- {
		path[h] = cur
		cur = r.Parent[cur]
	}
	return path, nil
}
