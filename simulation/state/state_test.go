package state

import (
	"errors"
	"testing"

	"github.com/nbodysim/barnes-hut/core/vector"
	"github.com/nbodysim/barnes-hut/simerr"
)

func TestNewOwnedAllocatesMatchingLengths(t *testing.T) {
	o := NewOwned(5, 0.1)
	if o.Len() != 5 {
		t.Fatalf("Len: got %d, want 5", o.Len())
	}
	if len(o.Positions) != 5 || len(o.Velocities) != 5 || len(o.Masses) != 5 || len(o.Accelerations) != 5 {
		t.Error("NewOwned should allocate every array with the requested length")
	}
	if o.Softening != 0.1 {
		t.Errorf("Softening: got %g, want 0.1", o.Softening)
	}
}

func TestValidateEmptyDataset(t *testing.T) {
	o := NewOwned(0, 0.05)
	if err := o.Validate(); !errors.Is(err, simerr.ErrEmptyDataset) {
		t.Errorf("Validate on empty state: got %v, want ErrEmptyDataset", err)
	}
}

func TestValidateMismatchedLengths(t *testing.T) {
	o := NewOwned(3, 0.05)
	o.Velocities = o.Velocities[:2]
	if err := o.Validate(); !errors.Is(err, simerr.ErrMalformedInput) {
		t.Errorf("Validate on mismatched arrays: got %v, want ErrMalformedInput", err)
	}
}

func TestValidateHealthyState(t *testing.T) {
	o := NewOwned(3, 0.05)
	if err := o.Validate(); err != nil {
		t.Errorf("Validate on a freshly allocated state should succeed, got %v", err)
	}
}

func TestViewSharesBackingArrays(t *testing.T) {
	o := NewOwned(2, 0.05)
	v := o.View()

	v.Positions[0] = vector.NewVector3(9, 9, 9)
	if o.Positions[0].X() != 9 {
		t.Error("writes through View.Positions should be visible on the Owned state")
	}

	v.Masses[1] = 42
	if o.Masses[1] != 42 {
		t.Error("writes through View.Masses should be visible on the Owned state")
	}

	if v.Len() != o.Len() {
		t.Errorf("View.Len(): got %d, want %d", v.Len(), o.Len())
	}
}
