// Package naive implements the baseline O(N^2) acceleration kernel used
// to validate the Barnes-Hut approximation and to serve small body
// counts where building a tree isn't worth it.
//
// Grounded in solarsim's src/sync_simulator.cpp,
// naive_sync_simulator_impl::tick, which zeroes acceleration then walks
// i<j pairs once, applying the symmetric kernel to both bodies.
package naive

import (
	"github.com/nbodysim/barnes-hut/core/vector"
	"github.com/nbodysim/barnes-hut/physics/kernel"
)

// Accelerate fills accelerations with the pairwise gravitational
// acceleration on every body, given index-aligned positions and masses.
// accelerations must have the same length as positions/masses; every
// entry is zeroed before accumulation, so a freshly allocated slice is
// fine. Iteration order is the fixed i<j ordering so results are
// deterministic across runs.
func Accelerate(positions []vector.Vector3, masses []float64, softening float64, accelerations []vector.Vector3) {
	for i := range accelerations {
		accelerations[i] = vector.Zero3()
	}
	n := len(positions)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			accelerations[i], accelerations[j] = kernel.AccumulateAccelerationSymmetric(
				positions[i], positions[j], masses[i], masses[j], softening,
				accelerations[i], accelerations[j],
			)
		}
	}
}
