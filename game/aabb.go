package game

import (
	"math"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
)

// AABB is an axis aligned bounding box in world space. AABBs are values: every operation returns a
// new box and never modifies the receiver.
type AABB struct {
	min, max mgl64.Vec3
}

// Box creates a new AABB from the two corners passed. Inverted corners are normalized, so the
// returned box always has its minimum corner smaller than or equal to its maximum on every axis.
func Box(x0, y0, z0, x1, y1, z1 float64) AABB {
	return AABB{
		min: mgl64.Vec3{math.Min(x0, x1), math.Min(y0, y1), math.Min(z0, z1)},
		max: mgl64.Vec3{math.Max(x0, x1), math.Max(y0, y1), math.Max(z0, z1)},
	}
}

// BoxFromVec creates a new AABB spanning the two corners a and b. See Box for the normalization policy.
func BoxFromVec(a, b mgl64.Vec3) AABB {
	return Box(a[0], a[1], a[2], b[0], b[1], b[2])
}

// BoxFromDimensions returns a box centered on the origin horizontally, with its base at y=0.
func BoxFromDimensions(width, height float64) AABB {
	h := width / 2
	return Box(-h, 0, -h, h, height, h)
}

// FromCube converts a dragonfly bounding box to an AABB.
func FromCube(bb cube.BBox) AABB {
	return BoxFromVec(bb.Min(), bb.Max())
}

// Cube converts the AABB to a dragonfly bounding box.
func (a AABB) Cube() cube.BBox {
	return cube.Box(a.min[0], a.min[1], a.min[2], a.max[0], a.max[1], a.max[2])
}

// Min returns the minimum corner of the box.
func (a AABB) Min() mgl64.Vec3 {
	return a.min
}

// Max returns the maximum corner of the box.
func (a AABB) Max() mgl64.Vec3 {
	return a.max
}

// Center returns the point in the middle of the box.
func (a AABB) Center() mgl64.Vec3 {
	return a.min.Add(a.max).Mul(0.5)
}

// Width returns the size of the box along the axis passed (0 = X, 1 = Y, 2 = Z).
func (a AABB) Width(axis int) float64 {
	return a.max[axis] - a.min[axis]
}

// Extent returns the size of the box on all three axes.
func (a AABB) Extent() mgl64.Vec3 {
	return a.max.Sub(a.min)
}

// HalfExtent returns half the size of the box on all three axes.
func (a AABB) HalfExtent() mgl64.Vec3 {
	return a.Extent().Mul(0.5)
}

// Translate returns the box moved by the vector passed.
func (a AABB) Translate(v mgl64.Vec3) AABB {
	return AABB{min: a.min.Add(v), max: a.max.Add(v)}
}

// TranslateTo returns a box of the same size whose minimum corner is at pos.
func (a AABB) TranslateTo(pos mgl64.Vec3) AABB {
	return AABB{min: pos, max: pos.Add(a.Extent())}
}

// Grow returns the box grown by x on every side. Negative values shrink the box, but never past
// its center.
func (a AABB) Grow(x float64) AABB {
	grown := AABB{min: a.min.Sub(mgl64.Vec3{x, x, x}), max: a.max.Add(mgl64.Vec3{x, x, x})}
	for i := range 3 {
		if grown.min[i] > grown.max[i] {
			c := (a.min[i] + a.max[i]) / 2
			grown.min[i], grown.max[i] = c, c
		}
	}
	return grown
}

// Extend returns the hull of the box and the box translated by delta, i.e. the volume it sweeps
// through while moving by delta.
func (a AABB) Extend(delta mgl64.Vec3) AABB {
	ext := a
	for i := range 3 {
		if delta[i] < 0 {
			ext.min[i] += delta[i]
		} else {
			ext.max[i] += delta[i]
		}
	}
	return ext
}

// Overlaps1D reports whether the two boxes overlap on a single axis. Boxes that only touch do not
// overlap.
func (a AABB) Overlaps1D(o AABB, axis int) bool {
	return a.max[axis] > o.min[axis] && a.min[axis] < o.max[axis]
}

// Intersects reports whether the two boxes share any volume. Touching faces, edges or corners are
// not an intersection.
func (a AABB) Intersects(o AABB) bool {
	return a.Overlaps1D(o, 0) && a.Overlaps1D(o, 1) && a.Overlaps1D(o, 2)
}
