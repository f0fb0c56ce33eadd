// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables (package-level) are exposed.
//   - Validation sentinels wrap core.ErrInvalidConfiguration, so callers can
//     branch on either the precise cause or the shared error kind.
//   - Implementations attach context using `%w`:
//     fmt.Errorf("%s: n=%d: %w", methodRandomMesh, n, ErrNegativeParameter).

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmesh/core"
)

// ErrNegativeParameter indicates a negative node count or degree.
var ErrNegativeParameter = fmt.Errorf("builder: parameter must be ≥ 0: %w", core.ErrInvalidConfiguration)

// ErrTooFewNodes indicates the node list cannot support the requested shape:
// a minimum degree k needs n ≥ k+1, a ring 3 and a star 2.
var ErrTooFewNodes = fmt.Errorf("builder: too few nodes for topology: %w", core.ErrInvalidConfiguration)

// ErrConstructFailed indicates a programmer error at the orchestration layer
// (nil graph, nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
