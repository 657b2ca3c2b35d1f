package geometry

import (
	"errors"
	"sort"

	"github.com/lumen-render/lumen/pkg/core"
)

// ErrNoPrimitives is returned when building a BVH over an empty collection
var ErrNoPrimitives = errors.New("bvh: empty primitive collection")

// Leaf bucket size: spans of this many or fewer objects become leaves and
// are searched linearly
const leafThreshold = 4

// BVHNode is a node in the bounding volume hierarchy: either a leaf holding
// a small bucket of objects, or an internal node with exactly two children
type BVHNode struct {
	BoundingBox core.AABB
	Left        *BVHNode
	Right       *BVHNode
	Objects     []core.Hittable // Non-nil only for leaf nodes
}

// BVH is an immutable spatial index over a primitive collection. It is built
// once and safe for concurrent reads during rendering.
type BVH struct {
	Root *BVHNode
}

// NewBVH builds a BVH from the given objects. The input slice is not modified.
func NewBVH(objects []core.Hittable) (*BVH, error) {
	if len(objects) == 0 {
		return nil, ErrNoPrimitives
	}

	// Work on a copy; building sorts spans in place
	span := make([]core.Hittable, len(objects))
	copy(span, objects)

	return &BVH{Root: buildBVH(span)}, nil
}

// buildBVH recursively partitions the span with a median split along the
// longest axis of the span's bounding box
func buildBVH(span []core.Hittable) *BVHNode {
	bbox := span[0].BoundingBox()
	for _, object := range span[1:] {
		bbox = bbox.Union(object.BoundingBox())
	}

	if len(span) <= leafThreshold {
		return &BVHNode{BoundingBox: bbox, Objects: span}
	}

	axis := bbox.LongestAxis()
	sortByAxis(span, axis)

	mid := len(span) / 2
	return &BVHNode{
		BoundingBox: bbox,
		Left:        buildBVH(span[:mid]),
		Right:       buildBVH(span[mid:]),
	}
}

// sortByAxis orders objects by bounding box center along the given axis.
// The sort is stable so ties resolve deterministically.
func sortByAxis(span []core.Hittable, axis int) {
	sort.SliceStable(span, func(i, j int) bool {
		return span[i].BoundingBox().Center().Axis(axis) <
			span[j].BoundingBox().Center().Axis(axis)
	})
}

// Hit returns the closest intersection in the hierarchy within the interval
func (bvh *BVH) Hit(ray core.Ray, t core.Interval) (*core.HitRecord, bool) {
	return hitNode(bvh.Root, ray, t)
}

// BoundingBox returns the box enclosing the whole hierarchy
func (bvh *BVH) BoundingBox() core.AABB {
	return bvh.Root.BoundingBox
}

func hitNode(node *BVHNode, ray core.Ray, t core.Interval) (*core.HitRecord, bool) {
	if !node.BoundingBox.Hit(ray, t) {
		return nil, false
	}

	// Leaf: linear search through the bucket
	if node.Objects != nil {
		var closestHit *core.HitRecord
		closestSoFar := t.Max

		for _, object := range node.Objects {
			if hit, isHit := object.Hit(ray, core.NewInterval(t.Min, closestSoFar)); isHit {
				closestSoFar = hit.T
				closestHit = hit
			}
		}

		return closestHit, closestHit != nil
	}

	// Internal node: the closest hit so far shrinks the interval passed to
	// the second child, so it only needs to beat the first child's hit
	closestHit, _ := hitNode(node.Left, ray, t)
	upperBound := t.Max
	if closestHit != nil {
		upperBound = closestHit.T
	}
	if rightHit, isHit := hitNode(node.Right, ray, core.NewInterval(t.Min, upperBound)); isHit {
		closestHit = rightHit
	}

	return closestHit, closestHit != nil
}

// Stats describes the shape of a built hierarchy
type Stats struct {
	TotalNodes int
	LeafNodes  int
	MaxDepth   int
	Objects    int
}

// Stats walks the hierarchy and collects structural statistics
func (bvh *BVH) Stats() Stats {
	var stats Stats
	collectStats(bvh.Root, 0, &stats)
	return stats
}

func collectStats(node *BVHNode, depth int, stats *Stats) {
	stats.TotalNodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	if node.Objects != nil {
		stats.LeafNodes++
		stats.Objects += len(node.Objects)
		return
	}
	collectStats(node.Left, depth+1, stats)
	collectStats(node.Right, depth+1, stats)
}
