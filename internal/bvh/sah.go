package bvh

import (
	"github.com/df07/go-pathtracer/internal/bounds"
	"github.com/df07/go-pathtracer/internal/primitive"
)

const (
	numBins  = 16
	cIsect   = 1.0
	cTrav    = 1.0
)

// buildSAH implements the binned surface-area-heuristic alternative (spec
// §4.4): bucket primitives into 16 bins along the widest centroid axis,
// evaluate the SAH cost at each bin boundary, and either partition on the
// best split or fall back to a median split.
func buildSAH(shapes []primitive.Shape) *Node {
	box := unionOf(shapes)

	if len(shapes) <= leafMax {
		return &Node{BoundingBox: box, Shapes: shapes}
	}

	centroidBox := centroidBounds(shapes)
	axis := centroidBox.LongestAxis()
	extent := centroidBox.Axis(axis)

	if extent.Size() < 1e-9 {
		return buildMedian(shapes)
	}

	type bin struct {
		count int
		box   bounds.AABB
		set   bool
	}
	bins := make([]bin, numBins)
	binIndex := func(s primitive.Shape) int {
		c := s.BoundingBox().Centroid().Axis(axis)
		idx := int(float64(numBins) * (c - extent.Min) / extent.Size())
		if idx < 0 {
			idx = 0
		}
		if idx >= numBins {
			idx = numBins - 1
		}
		return idx
	}

	for _, s := range shapes {
		i := binIndex(s)
		if !bins[i].set {
			bins[i].box = s.BoundingBox()
			bins[i].set = true
		} else {
			bins[i].box = bins[i].box.Union(s.BoundingBox())
		}
		bins[i].count++
	}

	// Prefix sums (bins [0,k]) and suffix sums (bins [k+1,numBins)) of count
	// and bounding box, so each split boundary's two-sided SAH cost is O(1).
	prefixCount := make([]int, numBins)
	prefixBox := make([]bounds.AABB, numBins)
	running := 0
	var runningBox bounds.AABB
	haveBox := false
	for i := 0; i < numBins; i++ {
		if bins[i].set {
			if !haveBox {
				runningBox = bins[i].box
				haveBox = true
			} else {
				runningBox = runningBox.Union(bins[i].box)
			}
		}
		running += bins[i].count
		prefixCount[i] = running
		prefixBox[i] = runningBox
	}

	suffixCount := make([]int, numBins)
	suffixBox := make([]bounds.AABB, numBins)
	running = 0
	haveBox = false
	for i := numBins - 1; i >= 0; i-- {
		if bins[i].set {
			if !haveBox {
				runningBox = bins[i].box
				haveBox = true
			} else {
				runningBox = runningBox.Union(bins[i].box)
			}
		}
		running += bins[i].count
		suffixCount[i] = running
		suffixBox[i] = runningBox
	}

	total := len(shapes)
	parentArea := box.SurfaceArea()
	bestCost := cIsect * float64(total)
	bestSplit := -1

	for k := 0; k < numBins-1; k++ {
		nL, nR := prefixCount[k], suffixCount[k+1]
		if nL == 0 || nR == 0 {
			continue
		}
		cost := cTrav + (prefixBox[k].SurfaceArea()*float64(nL)+suffixBox[k+1].SurfaceArea()*float64(nR))/parentArea*cIsect
		if cost < bestCost {
			bestCost = cost
			bestSplit = k
		}
	}

	if bestSplit < 0 {
		return buildMedian(shapes)
	}

	var left, right []primitive.Shape
	for _, s := range shapes {
		if binIndex(s) <= bestSplit {
			left = append(left, s)
		} else {
			right = append(right, s)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return buildMedian(shapes)
	}

	return &Node{
		BoundingBox: box,
		Left:        buildSAH(left),
		Right:       buildSAH(right),
	}
}

func centroidBounds(shapes []primitive.Shape) bounds.AABB {
	b := bounds.FromPoints(shapes[0].BoundingBox().Centroid())
	for _, s := range shapes[1:] {
		b = b.Union(bounds.FromPoints(s.BoundingBox().Centroid()))
	}
	return b
}
