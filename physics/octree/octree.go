// Package octree implements the Barnes-Hut spatial tree: node
// subdivision, body insertion, partial-tree merging, bottom-up
// center-of-mass finalization, and the theta-approximated force walk.
//
// Grounded in the teacher's physics/space.Octree (mutex-guarded
// incremental insert/split/getIndices/CalculateGravity) for the general
// shape of a Go octree, but the node lifecycle itself — insert, subdivide,
// merge, a distinct finalize step, then a read-only walk — follows
// solarsim's include/solarsim/barnes_hut_octree.hpp, which this package
// generalizes with an explicit finalize() separated from insertion (the
// origin computes center of mass incrementally during insert; this
// package does not, since partial trees must be merge-able before any
// center of mass is known).
package octree

import (
	"math"

	"github.com/nbodysim/barnes-hut/core/vector"
)

// Theta is the Barnes-Hut acceptance ratio: a subtree is approximated by
// its center of mass once cellWidth/distance < Theta.
const Theta = 0.5

// Node is one cell of the octree. A node is either a branch (all eight
// children present) or a leaf (all children nil, optionally holding one
// body).
type Node struct {
	position vector.Vector3 // corner of the cubic cell
	length   float64        // edge length of the cubic cell

	children [8]*Node

	totalMass    float64
	centerOfMass vector.Vector3 // valid only after Finalize

	hasBody      bool
	bodyPosition vector.Vector3
	bodyMass     float64
}

// NewNode creates an empty leaf covering [position, position+length]^3.
func NewNode(position vector.Vector3, length float64) *Node {
	return &Node{position: position, length: length}
}

// IsBranch reports whether the node has been subdivided.
func (n *Node) IsBranch() bool {
	return n.children[0] != nil
}

// IsEmpty reports whether the node is a leaf with no body. A branch is
// never empty, since branches are only created when a body needs to be
// re-homed into a child.
func (n *Node) IsEmpty() bool {
	return !n.IsBranch() && !n.hasBody
}

// TotalMass returns the mass contained anywhere in this node's subtree.
func (n *Node) TotalMass() float64 {
	return n.totalMass
}

// CenterOfMass returns the mass-weighted mean position of this node's
// subtree. Only meaningful after Finalize.
func (n *Node) CenterOfMass() vector.Vector3 {
	return n.centerOfMass
}

// ChildIndex returns which of the eight children would contain p, using
// the fixed encoding index = 4*[x>=mid.x] + 2*[y>=mid.y] + 1*[z>=mid.z].
// Merges and position lookups assume this exact encoding.
func (n *Node) ChildIndex(p vector.Vector3) int {
	mid := n.position.Add(vector.NewVector3(n.length/2, n.length/2, n.length/2))
	index := 0
	if p.X() >= mid.X() {
		index += 4
	}
	if p.Y() >= mid.Y() {
		index += 2
	}
	if p.Z() >= mid.Z() {
		index += 1
	}
	return index
}

// childOrigin returns the corner position of child i, consistent with
// ChildIndex's encoding.
func (n *Node) childOrigin(i int) vector.Vector3 {
	half := n.length / 2
	x, y, z := n.position.X(), n.position.Y(), n.position.Z()
	if i&4 != 0 {
		x += half
	}
	if i&2 != 0 {
		y += half
	}
	if i&1 != 0 {
		z += half
	}
	return vector.NewVector3(x, y, z)
}

func (n *Node) subdivide() {
	half := n.length / 2
	for i := 0; i < 8; i++ {
		n.children[i] = NewNode(n.childOrigin(i), half)
	}
}

// InsertBody adds a body of the given mass at pos into the subtree rooted
// at n, following the spec's leaf-subdivide-reinsert contract. Callers
// must ensure pos lies within [position, position+length]^3.
func (n *Node) InsertBody(pos vector.Vector3, mass float64) {
	switch {
	case n.IsBranch():
		n.children[n.ChildIndex(pos)].InsertBody(pos, mass)

	case !n.hasBody:
		// empty leaf
		n.hasBody = true
		n.bodyPosition = pos
		n.bodyMass = mass

	default:
		// occupied leaf: subdivide and re-home both bodies
		oldPos, oldMass := n.bodyPosition, n.bodyMass
		n.hasBody = false
		n.subdivide()
		n.children[n.ChildIndex(oldPos)].InsertBody(oldPos, oldMass)
		n.children[n.ChildIndex(pos)].InsertBody(pos, mass)
	}

	n.totalMass += mass
}

// MergeFrom destructively folds other into n. other must cover the same
// (position, length) cell as n.
func (n *Node) MergeFrom(other *Node) {
	switch {
	case other.IsEmpty():
		return

	case n.IsBranch() && other.IsBranch():
		for i := 0; i < 8; i++ {
			n.children[i].MergeFrom(other.children[i])
		}
		n.totalMass = 0
		for i := 0; i < 8; i++ {
			n.totalMass += n.children[i].totalMass
		}

	case n.IsBranch() && other.hasBody:
		n.InsertBody(other.bodyPosition, other.bodyMass)

	case n.IsEmpty() && other.hasBody:
		n.hasBody = true
		n.bodyPosition = other.bodyPosition
		n.bodyMass = other.bodyMass
		n.totalMass += other.totalMass

	case n.hasBody && other.hasBody:
		selfPos, selfMass := n.bodyPosition, n.bodyMass
		n.hasBody = false
		n.subdivide()
		n.children[n.ChildIndex(selfPos)].InsertBody(selfPos, selfMass)
		n.children[n.ChildIndex(other.bodyPosition)].InsertBody(other.bodyPosition, other.bodyMass)
		n.totalMass += other.bodyMass

	case !n.IsBranch() && other.IsBranch():
		hadBody, bodyPos, bodyMass := n.hasBody, n.bodyPosition, n.bodyMass
		n.hasBody = false
		n.children = other.children
		n.totalMass += other.totalMass
		if hadBody {
			n.children[n.ChildIndex(bodyPos)].InsertBody(bodyPos, bodyMass)
		}
	}
}

// Finalize computes center_of_mass bottom-up. After Finalize, the subtree
// is read-only.
func (n *Node) Finalize() {
	switch {
	case !n.IsBranch() && n.hasBody:
		n.centerOfMass = n.bodyPosition

	case n.IsBranch():
		weighted := vector.Zero3()
		for i := 0; i < 8; i++ {
			child := n.children[i]
			if child.IsEmpty() {
				continue
			}
			child.Finalize()
			weighted = weighted.Add(child.centerOfMass.Scale(child.totalMass))
		}
		if n.totalMass > 0 {
			n.centerOfMass = weighted.Scale(1.0 / n.totalMass)
		}
	}
}

// Visitor receives the position and mass of a node (or single body) the
// walk has decided to treat as a point mass.
type Visitor func(massPosition vector.Vector3, mass float64)

// WalkAndApply implements the Barnes-Hut acceptance test against bodyPos:
// if length/distance < Theta, the whole subtree is treated as one point
// mass at its center of mass; otherwise it recurses (or, at a leaf,
// visits the contained body unless it is bodyPos itself).
func (n *Node) WalkAndApply(bodyPos vector.Vector3, softening float64, visit Visitor) {
	if n.IsEmpty() {
		return
	}

	d := n.centerOfMass.Sub(bodyPos).Length() + softening
	if d == 0 {
		return
	}

	if n.length/d < Theta {
		visit(n.centerOfMass, n.totalMass)
		return
	}

	if !n.IsBranch() {
		// Occupied leaf that failed the acceptance test: visit its body
		// directly, unless it is the body itself (or coincident with it).
		if samePoint(n.bodyPosition, bodyPos) {
			return
		}
		visit(n.bodyPosition, n.bodyMass)
		return
	}

	for i := 0; i < 8; i++ {
		n.children[i].WalkAndApply(bodyPos, softening, visit)
	}
}

func samePoint(a, b vector.Vector3) bool {
	const eps = 1e-12
	return math.Abs(a.X()-b.X()) < eps && math.Abs(a.Y()-b.Y()) < eps && math.Abs(a.Z()-b.Z()) < eps
}
