// Package bvh builds and traverses a bounding volume hierarchy over a set of
// primitive.Shape values.
package bvh

import (
	"sort"

	"github.com/df07/go-pathtracer/internal/bounds"
	"github.com/df07/go-pathtracer/internal/material"
	"github.com/df07/go-pathtracer/internal/primitive"
	"github.com/df07/go-pathtracer/internal/vector"
)

// leafMax is the maximum number of shapes stored in a leaf node (spec §4.4).
const leafMax = 2

// Node is one node of the tree: an interior node owns two children, a leaf
// owns shapes directly. BoundingBox always encloses everything reachable
// from the node.
type Node struct {
	BoundingBox bounds.AABB
	Left, Right *Node
	Shapes      []primitive.Shape
}

// BVH wraps the tree root and implements primitive.Shape itself, so it can
// be nested or used directly as the scene's top-level shape.
type BVH struct {
	Root *Node
}

// Strategy selects the construction heuristic.
type Strategy int

const (
	// MedianSplit sorts by centroid along the longest axis and splits at
	// the midpoint index every time.
	MedianSplit Strategy = iota
	// BinnedSAH evaluates a 16-bin surface-area-heuristic cost per split
	// and falls back to a median split when it doesn't improve on the
	// leaf cost (spec §4.4).
	BinnedSAH
)

// Build constructs a BVH over shapes using the given strategy. The input
// slice is copied so construction never mutates the caller's slice.
func Build(shapes []primitive.Shape, strategy Strategy) *BVH {
	if len(shapes) == 0 {
		return &BVH{Root: nil}
	}
	cp := make([]primitive.Shape, len(shapes))
	copy(cp, shapes)

	var root *Node
	switch strategy {
	case BinnedSAH:
		root = buildSAH(cp)
	default:
		root = buildMedian(cp)
	}
	return &BVH{Root: root}
}

func unionOf(shapes []primitive.Shape) bounds.AABB {
	box := shapes[0].BoundingBox()
	for _, s := range shapes[1:] {
		box = box.Union(s.BoundingBox())
	}
	return box
}

// buildMedian implements the simple median-split strategy: compute the
// bounding box of the range, pick its longest axis, sort by that axis's
// centroid, split at the midpoint (spec §4.4).
func buildMedian(shapes []primitive.Shape) *Node {
	box := unionOf(shapes)

	if len(shapes) <= leafMax {
		return &Node{BoundingBox: box, Shapes: shapes}
	}

	axis := box.LongestAxis()
	sort.Slice(shapes, func(i, j int) bool {
		return shapes[i].BoundingBox().Centroid().Axis(axis) < shapes[j].BoundingBox().Centroid().Axis(axis)
	})

	mid := len(shapes) / 2
	return &Node{
		BoundingBox: box,
		Left:        buildMedian(shapes[:mid]),
		Right:       buildMedian(shapes[mid:]),
	}
}

// Hit intersects the BVH, returning the closest hit within window.
func (b *BVH) Hit(ray vector.Ray, window vector.Interval[float64]) (material.HitRecord, bool) {
	if b.Root == nil {
		return material.HitRecord{}, false
	}
	return hitNode(b.Root, ray, window)
}

// hitNode implements the traversal contract of spec §4.4: reject on the
// node's own box test, then recurse left, then recurse right with the
// window tightened by the left hit's t, so the closer of the two subtrees
// always wins without an extra comparison at the end.
func hitNode(node *Node, ray vector.Ray, window vector.Interval[float64]) (material.HitRecord, bool) {
	if !node.BoundingBox.Hit(ray, window) {
		return material.HitRecord{}, false
	}

	if node.Shapes != nil {
		var closest material.HitRecord
		hitAny := false
		w := window
		for _, shape := range node.Shapes {
			if hit, ok := shape.Hit(ray, w); ok {
				hitAny = true
				closest = hit
				w.Max = hit.T
			}
		}
		return closest, hitAny
	}

	leftHit, hitLeft := hitNode(node.Left, ray, window)
	rightWindow := window
	if hitLeft {
		rightWindow.Max = leftHit.T
	}
	rightHit, hitRight := hitNode(node.Right, ray, rightWindow)

	if hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the box of the whole tree, satisfying primitive.Shape
// so a BVH can be nested inside another.
func (b *BVH) BoundingBox() bounds.AABB {
	if b.Root == nil {
		return bounds.AABB{}
	}
	return b.Root.BoundingBox
}
