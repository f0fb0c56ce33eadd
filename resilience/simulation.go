// SPDX-License-Identifier: MIT

package resilience

import "github.com/katalvlaran/lvmesh/failure"

// SimulationHealth is Health over a simulator's current view, baseline and
// failure history, all read under one lock.
func SimulationHealth(sim *failure.Simulator) NetworkHealth {
	view, rec := sim.State()
	return Health(view, sim.Baseline(), len(rec.Nodes), len(rec.Edges))
}
