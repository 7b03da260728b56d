// Package driver implements the fixed time-step loop that repeatedly
// invokes a pipeline tick until the requested duration has elapsed.
//
// Grounded in solarsim's include/solarsim/sync_simulator.hpp,
// run_simulation: `for (elapsed = time_step; elapsed < duration;) {
// simulator.tick(time_step); elapsed += time_step; }` — note the loop
// starts at time_step, not zero, a fixed behavioral contract carried
// over unchanged.
package driver

import (
	"context"
	"fmt"

	"github.com/nbodysim/barnes-hut/simulation/pipeline"
	"github.com/nbodysim/barnes-hut/simulation/state"
)

// Run advances s by repeated pipeline ticks of length timeStep until
// elapsed reaches or exceeds duration. timeStep must be positive and
// duration must be at least timeStep.
//
// The loop condition is exactly `for elapsed := timeStep; elapsed <
// duration; elapsed += timeStep`, so exactly ceil(duration/timeStep) - 1
// ticks execute after the initial offset.
func Run(ctx context.Context, p *pipeline.Pipeline, s state.View, timeStep, duration float64) error {
	if timeStep <= 0 {
		return fmt.Errorf("driver: time_step must be positive, got %g", timeStep)
	}
	if duration < timeStep {
		return fmt.Errorf("driver: duration (%g) must be >= time_step (%g)", duration, timeStep)
	}

	for elapsed := timeStep; elapsed < duration; elapsed += timeStep {
		if err := p.Tick(ctx, s, timeStep); err != nil {
			return err
		}
	}
	return nil
}
