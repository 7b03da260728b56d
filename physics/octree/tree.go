package octree

import (
	"github.com/nbodysim/barnes-hut/core/vector"
	"github.com/nbodysim/barnes-hut/physics/kernel"
)

// Tree is the octree facade: the entry point used by one tick's
// acceleration stage. A Tree is built fresh every tick (see package doc)
// and discarded once the bulk force-application stage has read it.
type Tree struct {
	root *Node
}

// Root exposes the underlying root node, mainly for tests that inspect
// mass/center-of-mass invariants directly.
func (t *Tree) Root() *Node {
	return t.root
}

// rootBounds computes a cubic root cell (position, length) that contains
// every position, derived from the bounding AABB's center and largest
// extent.
func rootBounds(positions []vector.Vector3) (vector.Vector3, float64) {
	box := vector.InfiniteAABB()
	for _, p := range positions {
		box = box.ExpandToInclude(p)
	}

	extent := box.LargestExtent()
	if extent == 0 {
		extent = 1
	}
	// Pad slightly so bodies exactly on the outer boundary still satisfy
	// the insertion containment precondition after floating-point
	// reassociation.
	extent *= 1.001

	center := box.Center()
	half := extent / 2
	corner := vector.NewVector3(center.X()-half, center.Y()-half, center.Z()-half)
	return corner, extent
}

// BuildFromBodies constructs a finalized tree from the given positions
// and masses (index-aligned, identical length).
func BuildFromBodies(positions []vector.Vector3, masses []float64) *Tree {
	corner, length := rootBounds(positions)
	root := NewNode(corner, length)
	for i, p := range positions {
		root.InsertBody(p, masses[i])
	}
	root.Finalize()
	return &Tree{root: root}
}

// BuildFromPartials merges a set of partial trees, each built over the
// same root bounds (position, length), into one equivalent finalized
// tree. Used when a caller builds partial trees over disjoint body
// partitions in parallel and needs one merged tree for the walk stage.
func BuildFromPartials(position vector.Vector3, length float64, partials []*Node) *Tree {
	root := NewNode(position, length)
	for _, partial := range partials {
		root.MergeFrom(partial)
	}
	root.Finalize()
	return &Tree{root: root}
}

// ApplyForcesTo runs the Barnes-Hut walk against bodyPos and accumulates
// the resulting acceleration, starting from accIn.
func (t *Tree) ApplyForcesTo(bodyPos vector.Vector3, softening float64, accIn vector.Vector3) vector.Vector3 {
	acc := accIn
	t.root.WalkAndApply(bodyPos, softening, func(massPosition vector.Vector3, mass float64) {
		acc = kernel.AccumulateAcceleration(bodyPos, massPosition, mass, softening, acc)
	})
	return acc
}
