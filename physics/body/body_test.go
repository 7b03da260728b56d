package body

import (
	"math"
	"testing"

	"github.com/nbodysim/barnes-hut/core/vector"
)

func vectorsAlmostEqual(a, b vector.Vector3, eps float64) bool {
	return math.Abs(a.X()-b.X()) < eps && math.Abs(a.Y()-b.Y()) < eps && math.Abs(a.Z()-b.Z()) < eps
}

func TestNewRecordAssignsRandomID(t *testing.T) {
	a := NewRecord("Sole", "star", 1, vector.Zero3(), vector.Zero3())
	b := NewRecord("Sole", "star", 1, vector.Zero3(), vector.Zero3())
	if a.ID == b.ID {
		t.Error("NewRecord should assign a distinct id per call")
	}
}

func TestCancelSystemMomentumZeroesNetMomentum(t *testing.T) {
	records := []Record{
		{Mass: 10, Velocity: vector.NewVector3(1, 0, 0)},
		{Mass: 5, Velocity: vector.NewVector3(-2, 1, 0)},
		{Mass: 2, Velocity: vector.NewVector3(0, -3, 4)},
	}

	CancelSystemMomentum(records)

	total := vector.Zero3()
	for _, r := range records {
		total = total.Add(r.Velocity.Scale(r.Mass))
	}
	if !vectorsAlmostEqual(total, vector.Zero3(), 1e-9) {
		t.Errorf("net momentum after cancellation: got (%g, %g, %g), want ~0", total.X(), total.Y(), total.Z())
	}
}

func TestCancelSystemMomentumOnAllAxes(t *testing.T) {
	// Regression guard: the replaced algorithm only ever corrected the
	// x-component. Use a velocity distribution whose imbalance is entirely
	// on y and z to make sure those axes get corrected too.
	records := []Record{
		{Mass: 1, Velocity: vector.NewVector3(0, 4, 0)},
		{Mass: 1, Velocity: vector.NewVector3(0, 0, -6)},
	}
	CancelSystemMomentum(records)

	total := vector.Zero3()
	for _, r := range records {
		total = total.Add(r.Velocity.Scale(r.Mass))
	}
	if !vectorsAlmostEqual(total, vector.Zero3(), 1e-9) {
		t.Errorf("net momentum: got (%g, %g, %g), want ~0", total.X(), total.Y(), total.Z())
	}
}

func TestCancelSystemMomentumEmptyAndZeroMass(t *testing.T) {
	// Should not panic.
	CancelSystemMomentum(nil)

	records := []Record{
		{Mass: 0, Velocity: vector.NewVector3(1, 2, 3)},
	}
	CancelSystemMomentum(records)
	if !vectorsAlmostEqual(records[0].Velocity, vector.NewVector3(1, 2, 3), 1e-12) {
		t.Error("zero total mass should leave velocities untouched")
	}
}

func TestTotalMass(t *testing.T) {
	records := []Record{{Mass: 1.5}, {Mass: 2.5}, {Mass: 3}}
	if got := TotalMass(records); got != 7 {
		t.Errorf("TotalMass: got %g, want 7", got)
	}
}
