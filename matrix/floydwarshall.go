// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense all-pairs shortest paths (Floyd–Warshall) with deterministic loop order.
//
// Contract:
//   - Square matrix; +Inf means "no path"; diagonal must be 0 before calling.

package matrix

import (
	"fmt"
	"math"
)

// FloydWarshall computes all-pairs shortest paths in place on d.
//
// Loop order is fixed (k → i → j) and only strict improvements are written,
// so accumulation order is stable across runs.
//
// Complexity: Time O(n³), extra space O(1).
func FloydWarshall(d *Dense) error {
	if d == nil {
		return fmt.Errorf("FloydWarshall: %w", ErrBadShape)
	}
	if d.r != d.c {
		return fmt.Errorf("FloydWarshall: %dx%d: %w", d.r, d.c, ErrNonSquare)
	}
	n, data := d.r, d.data
	for k := 0; k < n; k++ {
		baseK := k * n
		for i := 0; i < n; i++ {
			ik := data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI := i * n
			for j := 0; j < n; j++ {
				kj := data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				if cand := ik + kj; cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
	return nil
}
