// Package state holds the structure-of-arrays body data the pipeline
// operates on: an Owned form that allocates and owns the five arrays, and
// a non-owning View the pipeline actually consumes.
//
// Grounded in solarsim's include/solarsim/async_simulator.hpp
// (simulation_state / simulation_state_view, and the implicit conversion
// from owned to view).
package state

import (
	"fmt"

	"github.com/nbodysim/barnes-hut/core/vector"
	"github.com/nbodysim/barnes-hut/simerr"
)

// Owned holds the simulation's body arrays and the global softening
// factor. Element counts are fixed for the simulation's lifetime; the
// pipeline never resizes these slices.
type Owned struct {
	Positions     []vector.Vector3
	Velocities    []vector.Vector3
	Masses        []float64
	Accelerations []vector.Vector3 // scratch, valid only within one tick
	Softening     float64
}

// NewOwned allocates an Owned state for n bodies with the given
// softening. Positions, velocities and masses must be filled in by the
// caller before the state is used.
func NewOwned(n int, softening float64) *Owned {
	return &Owned{
		Positions:     make([]vector.Vector3, n),
		Velocities:    make([]vector.Vector3, n),
		Masses:        make([]float64, n),
		Accelerations: make([]vector.Vector3, n),
		Softening:     softening,
	}
}

// Len returns the number of bodies.
func (o *Owned) Len() int {
	return len(o.Positions)
}

// Validate checks the structural invariant (all arrays the same length)
// and that the dataset is non-empty.
func (o *Owned) Validate() error {
	n := o.Len()
	if n == 0 {
		return simerr.ErrEmptyDataset
	}
	if len(o.Velocities) != n || len(o.Masses) != n || len(o.Accelerations) != n {
		return fmt.Errorf("state: mismatched array lengths (positions=%d velocities=%d masses=%d accelerations=%d): %w",
			n, len(o.Velocities), len(o.Masses), len(o.Accelerations), simerr.ErrMalformedInput)
	}
	return nil
}

// View returns a non-owning view over this state's arrays, the object
// the pipeline consumes. Owned converts to View trivially, as the spec
// requires.
func (o *Owned) View() View {
	return View{
		Positions:     o.Positions,
		Velocities:    o.Velocities,
		Masses:        o.Masses,
		Accelerations: o.Accelerations,
		Softening:     o.Softening,
	}
}

// View is a non-owning reference to an Owned state's arrays. It shares
// the same backing storage, so writes through a View mutate the Owned
// state that produced it.
type View struct {
	Positions     []vector.Vector3
	Velocities    []vector.Vector3
	Masses        []float64
	Accelerations []vector.Vector3
	Softening     float64
}

// Len returns the number of bodies.
func (v View) Len() int {
	return len(v.Positions)
}
