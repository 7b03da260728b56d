// Package kernel implements the pairwise gravitational kernel, the
// leapfrog integrator phases, and energy diagnostics shared by both the
// naive and Barnes-Hut accelerators.
//
// Grounded in solarsim's src/math.cpp (calculate_acceleration,
// integrate_leapfrog_phase1/2, calculate_kinetic_energy,
// calculate_potential_energy) and src/math.hpp's debug_validate_finite.
package kernel

import (
	"math"

	"github.com/nbodysim/barnes-hut/core/constants"
	"github.com/nbodysim/barnes-hut/core/vector"
)

// G is the gravitational constant in this simulation's internal units:
// km * (km/s)^2 * M_solar^-1.
const G = constants.GravitationalConstant

// AccumulateAcceleration adds body j's contribution to body i's
// acceleration:
//
//	d = x_j - x_i
//	r = |d| + softening
//	inv = G*m_j / r^3
//	acc_i += inv * d
func AccumulateAcceleration(xi, xj vector.Vector3, mj, softening float64, accI vector.Vector3) vector.Vector3 {
	d := xj.Sub(xi)
	r := d.Length() + softening
	divisor := r * r * r
	inv := G * mj / divisor
	return accI.Add(d.Scale(inv))
}

// AccumulateAccelerationSymmetric shares the distance and inverse-cube
// term between a pair, adding +G*m_j*d/r^3 to acc_i and -G*m_i*d/r^3 to
// acc_j. It halves the work of the naive O(N^2) pass relative to calling
// AccumulateAcceleration for both (i, j) and (j, i).
func AccumulateAccelerationSymmetric(xi, xj vector.Vector3, mi, mj, softening float64, accI, accJ vector.Vector3) (vector.Vector3, vector.Vector3) {
	d := xj.Sub(xi)
	r := d.Length() + softening
	divisor := r * r * r

	accI = accI.Add(d.Scale(G * mj / divisor))
	accJ = accJ.Sub(d.Scale(G * mi / divisor))
	return accI, accJ
}

// IntegrateLeapfrogPhase1 performs the half-drift position update:
// x <- x + 0.5*v*dt.
func IntegrateLeapfrogPhase1(position, velocity vector.Vector3, dt float64) vector.Vector3 {
	return position.Add(velocity.Scale(0.5 * dt))
}

// IntegrateLeapfrogPhase2 performs the kick (v <- v + a*dt) followed by
// the second half-drift (x <- x + 0.5*v*dt), using the half-step
// acceleration computed between phase 1 and phase 2.
func IntegrateLeapfrogPhase2(position, velocity, acceleration vector.Vector3, dt float64) (newPosition, newVelocity vector.Vector3) {
	newVelocity = velocity.Add(acceleration.Scale(dt))
	newPosition = position.Add(newVelocity.Scale(0.5 * dt))
	return
}

// KineticEnergy returns 0.5*m*|v|^2 for a single body.
func KineticEnergy(mass float64, velocity vector.Vector3) float64 {
	return 0.5 * mass * velocity.LengthSquared()
}

// PotentialEnergy returns the gravitational potential energy of a pair:
// -G*m_i*m_j/|x_j-x_i|. The sign is negative, following the usual
// convention for bound two-body potential energy; solarsim's own
// calculate_potential_energy omits the sign, which callers there corrected
// by subtracting, so it is folded in here instead.
func PotentialEnergy(mi, mj float64, xi, xj vector.Vector3) float64 {
	r := xj.Sub(xi).Length()
	if r == 0 {
		return math.Inf(-1)
	}
	return -G * mi * mj / r
}

// TotalEnergy sums kinetic energy over every body and potential energy
// over every unordered pair.
func TotalEnergy(masses []float64, positions, velocities []vector.Vector3) float64 {
	var total float64
	for i := range masses {
		total += KineticEnergy(masses[i], velocities[i])
	}
	for i := 0; i < len(masses); i++ {
		for j := i + 1; j < len(masses); j++ {
			total += PotentialEnergy(masses[i], masses[j], positions[i], positions[j])
		}
	}
	return total
}

// IsFinite reports whether every component of v is finite (not NaN, not
// +-Inf). Generalizes solarsim's debug_validate_finite, which was an
// assert gated on a debug build; here it is an ordinary check callers
// turn into simerr.ErrNonFiniteState.
func IsFinite(v vector.Vector3) bool {
	return isFiniteScalar(v.X()) && isFiniteScalar(v.Y()) && isFiniteScalar(v.Z())
}

func isFiniteScalar(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
