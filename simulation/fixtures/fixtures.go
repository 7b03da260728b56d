// Package fixtures builds the deterministic datasets used by the
// end-to-end scenario tests and benchmarks (two-body orbit, Kepler
// infall, figure-eight, random cloud).
//
// Adapted from the teacher's simulation/celestial generators
// (CreateDiskFormation's square-root-area distribution and
// reference/tangent construction for orbital velocity direction), with
// the world.World/body.Body/material plumbing those generators depended
// on stripped away in favor of producing state.Owned values directly.
package fixtures

import (
	"math"
	"math/rand"

	"github.com/nbodysim/barnes-hut/core/vector"
	"github.com/nbodysim/barnes-hut/physics/kernel"
	"github.com/nbodysim/barnes-hut/simulation/state"
)

// defaultSoftening matches the fixed numeric constant from spec §6.5.
const defaultSoftening = 0.05

// TwoBodyOrbit returns S1: two equal-mass bodies at (-1,0,0) and (1,0,0)
// with velocities set for a circular mutual orbit.
//
// The centripetal balance must be taken against the kernel's actual force
// law (physics/kernel.AccumulateAcceleration), which softens the
// separation distance before cubing it: r_eff = separation + softening,
// not the bare separation. Each body orbits the common barycenter at
// radius separation/2 under the other body's pull, so:
//
//	v^2 / (separation/2) = G*mass*separation / r_eff^3
//	v = sqrt(G*mass*separation^2 / (2*r_eff^3))
//
// Using the unsoftened separation in this balance (as a naive
// sqrt(G*M/(4*d)) two-body reduction would) undershoots the correct speed
// by a factor that grows with softening/separation, producing an
// eccentric orbit instead of a circular one. The teacher's
// CalculateOrbitalVelocity (physics/force/utils.go) applies an extra /2
// factor on top of sqrt(G*M/r) that does not correspond to any standard
// formula either; it is not used here.
func TwoBodyOrbit(mass float64) *state.Owned {
	s := state.NewOwned(2, defaultSoftening)
	s.Positions[0] = vector.NewVector3(-1, 0, 0)
	s.Positions[1] = vector.NewVector3(1, 0, 0)
	s.Masses[0] = mass
	s.Masses[1] = mass

	separation := 2.0
	rEff := separation + defaultSoftening
	speed := math.Sqrt(kernel.G * mass * separation * separation / (2 * rEff * rEff * rEff))
	s.Velocities[0] = vector.NewVector3(0, speed, 0)
	s.Velocities[1] = vector.NewVector3(0, -speed, 0)
	return s
}

// TestParticleInfall returns S2: one massive body at the origin and one
// massless test body at (1,0,0), both initially at rest.
func TestParticleInfall(centralMass float64) *state.Owned {
	s := state.NewOwned(2, defaultSoftening)
	s.Positions[0] = vector.Zero3()
	s.Positions[1] = vector.NewVector3(1, 0, 0)
	s.Masses[0] = centralMass
	s.Masses[1] = 0
	s.Velocities[0] = vector.Zero3()
	s.Velocities[1] = vector.Zero3()
	return s
}

// FigureEight returns S3: the Chenciner-Montgomery three-body
// figure-eight initial conditions (unit masses, G = 1 in the reference
// solution). Since this simulation's G is fixed by spec §6.5, masses are
// scaled so that G*mass reproduces the reference problem's unit
// gravitational parameter.
func FigureEight() *state.Owned {
	s := state.NewOwned(3, defaultSoftening)

	mass := 1.0 / kernel.G
	s.Masses[0], s.Masses[1], s.Masses[2] = mass, mass, mass

	s.Positions[0] = vector.NewVector3(0.97000436, -0.24308753, 0)
	s.Positions[1] = vector.NewVector3(-0.97000436, 0.24308753, 0)
	s.Positions[2] = vector.Zero3()

	v3 := vector.NewVector3(-0.93240737, -0.86473146, 0)
	s.Velocities[2] = v3
	s.Velocities[0] = vector.NewVector3(-v3.X()/2, -v3.Y()/2, 0)
	s.Velocities[1] = s.Velocities[0]

	return s
}

// RandomCloud returns a random cloud of n bodies with positive masses,
// spread across the annulus [minRadius, maxRadius] by a square-root radius
// distribution (uniform by area when minRadius is 0, as in the teacher's
// CreateDiskFormation) then displaced
// into three dimensions by a small random height. seed makes the
// distribution reproducible, the property S5 exercises across worker
// counts.
func RandomCloud(n int, minRadius, maxRadius, minMass, maxMass float64, seed int64) *state.Owned {
	rng := rand.New(rand.NewSource(seed))

	s := state.NewOwned(n, defaultSoftening)
	for i := 0; i < n; i++ {
		radius := minRadius + math.Sqrt(rng.Float64())*(maxRadius-minRadius)
		angle := rng.Float64() * 2 * math.Pi
		height := (rng.Float64()*2 - 1) * maxRadius * 0.05

		s.Positions[i] = vector.NewVector3(radius*math.Cos(angle), height, radius*math.Sin(angle))
		s.Masses[i] = minMass + rng.Float64()*(maxMass-minMass)
		s.Velocities[i] = vector.Zero3()
	}
	return s
}
