package geometry

import (
	"github.com/lumen-render/lumen/pkg/core"
)

// HittableList is a flat collection of hittables searched linearly
type HittableList struct {
	Objects []core.Hittable
	bbox    core.AABB
}

// NewHittableList creates a list from the given objects
func NewHittableList(objects ...core.Hittable) *HittableList {
	list := &HittableList{}
	for _, object := range objects {
		list.Add(object)
	}
	return list
}

// Add appends an object to the list and grows the cached bounding box
func (l *HittableList) Add(object core.Hittable) {
	if len(l.Objects) == 0 {
		l.bbox = object.BoundingBox()
	} else {
		l.bbox = l.bbox.Union(object.BoundingBox())
	}
	l.Objects = append(l.Objects, object)
}

// Hit returns the closest intersection among all objects in the list
func (l *HittableList) Hit(ray core.Ray, t core.Interval) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := t.Max

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, core.NewInterval(t.Min, closestSoFar)); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the union of all object bounding boxes
func (l *HittableList) BoundingBox() core.AABB {
	return l.bbox
}
