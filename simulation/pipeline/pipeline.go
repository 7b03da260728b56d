// Package pipeline chains one tick's phase1 -> build -> apply-forces ->
// phase2 stages into a single schedulable unit of work, per the state
// machine Idle -> Phase1 -> Build -> ApplyForces -> Phase2 -> Idle.
//
// Grounded in solarsim's include/solarsim/async_simulator.hpp
// (async_tick_naive / async_tick_barnes_hut composing async_tick_simulation_phase1,
// a sequential build, and async_tick_simulation_phase2 via a pipeable
// sender chain) and src/sync_simulator.cpp's basic_sync_simulator::tick
// for the simpler synchronous shape this package actually follows (this
// repository has no equivalent of the origin's senders/receivers
// execution model, so the chain is expressed as ordinary sequential Go
// calls to the scheduler.Executor instead).
package pipeline

import (
	"context"

	"github.com/nbodysim/barnes-hut/core/vector"
	"github.com/nbodysim/barnes-hut/physics/kernel"
	"github.com/nbodysim/barnes-hut/physics/naive"
	"github.com/nbodysim/barnes-hut/physics/octree"
	"github.com/nbodysim/barnes-hut/simerr"
	"github.com/nbodysim/barnes-hut/simulation/scheduler"
	"github.com/nbodysim/barnes-hut/simulation/state"
)

// Algorithm selects which acceleration stage a Pipeline runs.
type Algorithm int

const (
	// BarnesHut rebuilds an octree every tick and walks it per body.
	BarnesHut Algorithm = iota
	// Naive computes the fused symmetric-pair O(N^2) acceleration.
	Naive
)

// Stage names the pipeline's state machine positions, mainly useful for
// diagnostics and tests asserting on tick progress.
type Stage int

const (
	Idle Stage = iota
	Phase1
	Build
	ApplyForces
	Phase2
)

// Pipeline runs one tick's four-stage chain against a state.View, using
// an Executor for the bulk stages.
type Pipeline struct {
	Executor  scheduler.Executor
	Algorithm Algorithm
}

// New creates a Pipeline bound to the given executor and algorithm.
func New(exec scheduler.Executor, algorithm Algorithm) *Pipeline {
	return &Pipeline{Executor: exec, Algorithm: algorithm}
}

// Tick advances s by one time step dt, running:
//
//  1. Phase1 bulk: half-drift every position.
//  2. Build: zero accelerations, then (Barnes-Hut) build+finalize an
//     octree over the updated positions, or (Naive) fill accelerations
//     directly with the fused symmetric pairwise pass.
//  3. ApplyForces bulk: (Barnes-Hut only) walk the tree per body; a
//     no-op for Naive, whose Build stage already filled accelerations.
//  4. Phase2 bulk: kick velocities and complete the second half-drift.
//
// Any stage's failure aborts the tick; a cancelled ctx is reported as
// simerr.ErrPipelineCancelled.
func (p *Pipeline) Tick(ctx context.Context, s state.View, dt float64) error {
	n := s.Len()

	if err := ctx.Err(); err != nil {
		return simerr.ErrPipelineCancelled
	}

	// Phase1: half-drift positions.
	if err := p.Executor.Bulk(ctx, n, func(i int) error {
		s.Positions[i] = kernel.IntegrateLeapfrogPhase1(s.Positions[i], s.Velocities[i], dt)
		if !kernel.IsFinite(s.Positions[i]) {
			return simerr.ErrNonFiniteState
		}
		return nil
	}); err != nil {
		return err
	}

	var tree *octree.Tree
	if err := p.Executor.Then(ctx, func() error {
		for i := range s.Accelerations {
			s.Accelerations[i] = vector.Zero3()
		}
		switch p.Algorithm {
		case BarnesHut:
			tree = octree.BuildFromBodies(s.Positions, s.Masses)
		case Naive:
			naive.Accelerate(s.Positions, s.Masses, s.Softening, s.Accelerations)
		}
		return nil
	}); err != nil {
		return err
	}

	// ApplyForces: Barnes-Hut walks the freshly built (read-only) tree
	// per body; Naive already filled accelerations during Build.
	if p.Algorithm == BarnesHut {
		if err := p.Executor.Bulk(ctx, n, func(i int) error {
			s.Accelerations[i] = tree.ApplyForcesTo(s.Positions[i], s.Softening, s.Accelerations[i])
			if !kernel.IsFinite(s.Accelerations[i]) {
				return simerr.ErrNonFiniteState
			}
			return nil
		}); err != nil {
			return err
		}
	}

	// Phase2: kick velocities, complete the second half-drift.
	if err := p.Executor.Bulk(ctx, n, func(i int) error {
		newPos, newVel := kernel.IntegrateLeapfrogPhase2(s.Positions[i], s.Velocities[i], s.Accelerations[i], dt)
		if !kernel.IsFinite(newPos) || !kernel.IsFinite(newVel) {
			return simerr.ErrNonFiniteState
		}
		s.Positions[i] = newPos
		s.Velocities[i] = newVel
		return nil
	}); err != nil {
		return err
	}

	return nil
}
