package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/strider/vecmath"
)

// Layer is a collision layer index in [0, 32).
type Layer uint8

// LayerMask is a set of layers.
type LayerMask uint32

const AllLayers LayerMask = ^LayerMask(0)

const (
	LayerDefault   Layer = 0
	LayerGround    Layer = 3
	LayerClimbable Layer = 6
	LayerHittable  Layer = 7
	LayerPlayer    Layer = 8
)

// Mask returns the single-layer mask for l.
func (l Layer) Mask() LayerMask {
	return 1 << l
}

// Contains reports whether l is part of the mask.
func (m LayerMask) Contains(l Layer) bool {
	return m&l.Mask() != 0
}

// MaskOf combines layers into a mask.
func MaskOf(layers ...Layer) LayerMask {
	var m LayerMask
	for _, l := range layers {
		m |= l.Mask()
	}
	return m
}

// AABB is an axis-aligned box.
type AABB struct {
	Min, Max vecmath.Vec3
}

// Center returns the midpoint of the box.
func (b AABB) Center() vecmath.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the box extents.
func (b AABB) Size() vecmath.Vec3 {
	return b.Max.Sub(b.Min)
}

// Overlaps reports whether two boxes intersect with positive volume.
func (b AABB) Overlaps(o AABB) bool {
	return b.Min.X < o.Max.X && b.Max.X > o.Min.X &&
		b.Min.Y < o.Max.Y && b.Max.Y > o.Min.Y &&
		b.Min.Z < o.Max.Z && b.Max.Z > o.Min.Z
}

// Contains reports whether p is strictly inside the box.
func (b AABB) Contains(p vecmath.Vec3) bool {
	return p.X > b.Min.X && p.X < b.Max.X &&
		p.Y > b.Min.Y && p.Y < b.Max.Y &&
		p.Z > b.Min.Z && p.Z < b.Max.Z
}

// ClosestPoint clamps p onto the box.
func (b AABB) ClosestPoint(p vecmath.Vec3) vecmath.Vec3 {
	return vecmath.Vec3{
		X: mgl64.Clamp(p.X, b.Min.X, b.Max.X),
		Y: mgl64.Clamp(p.Y, b.Min.Y, b.Max.Y),
		Z: mgl64.Clamp(p.Z, b.Min.Z, b.Max.Z),
	}
}

// Shape is the geometry of a static collider.
type Shape interface {
	Bounds() AABB
	// raycast returns the entry distance and surface normal of a ray that
	// starts outside the shape.
	raycast(origin, dir vecmath.Vec3, maxDistance float64) (float64, vecmath.Vec3, bool)
	overlapsSphere(center vecmath.Vec3, radius float64) bool
}

// Box is an axis-aligned box shape.
type Box struct {
	AABB
}

func (b Box) Bounds() AABB {
	return b.AABB
}

func (b Box) overlapsSphere(center vecmath.Vec3, radius float64) bool {
	return b.ClosestPoint(center).Sub(center).LenSq() <= radius*radius
}

// slab test; rays starting inside the box report no hit
func (b Box) raycast(origin, dir vecmath.Vec3, maxDistance float64) (float64, vecmath.Vec3, bool) {
	if b.Contains(origin) {
		return 0, vecmath.Vec3{}, false
	}

	tMin, tMax := 0.0, maxDistance
	var normal vecmath.Vec3

	axes := [3]struct {
		o, d, min, max float64
		n              vecmath.Vec3
	}{
		{origin.X, dir.X, b.Min.X, b.Max.X, vecmath.Vec3{X: 1}},
		{origin.Y, dir.Y, b.Min.Y, b.Max.Y, vecmath.Vec3{Y: 1}},
		{origin.Z, dir.Z, b.Min.Z, b.Max.Z, vecmath.Vec3{Z: 1}},
	}
	for _, a := range axes {
		if math.Abs(a.d) < 1e-12 {
			if a.o < a.min || a.o > a.max {
				return 0, vecmath.Vec3{}, false
			}
			continue
		}
		inv := 1 / a.d
		t1 := (a.min - a.o) * inv
		t2 := (a.max - a.o) * inv
		n := a.n.Scale(-1)
		if t1 > t2 {
			t1, t2 = t2, t1
			n = a.n
		}
		if t1 > tMin {
			tMin = t1
			normal = n
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, vecmath.Vec3{}, false
		}
	}
	return tMin, normal, true
}

// Sphere is a ball shape.
type Sphere struct {
	Center vecmath.Vec3
	Radius float64
}

func (s Sphere) Bounds() AABB {
	r := vecmath.Vec3{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return AABB{Min: s.Center.Sub(r), Max: s.Center.Add(r)}
}

func (s Sphere) overlapsSphere(center vecmath.Vec3, radius float64) bool {
	sum := s.Radius + radius
	return s.Center.Sub(center).LenSq() <= sum*sum
}

func (s Sphere) raycast(origin, dir vecmath.Vec3, maxDistance float64) (float64, vecmath.Vec3, bool) {
	m := origin.Sub(s.Center)
	c := m.LenSq() - s.Radius*s.Radius
	if c < 0 {
		return 0, vecmath.Vec3{}, false
	}
	b := m.Dot(dir)
	if b > 0 {
		return 0, vecmath.Vec3{}, false
	}
	disc := b*b - c
	if disc < 0 {
		return 0, vecmath.Vec3{}, false
	}
	t := -b - math.Sqrt(disc)
	if t > maxDistance {
		return 0, vecmath.Vec3{}, false
	}
	point := origin.Add(dir.Scale(t))
	return t, point.Sub(s.Center).Normalize(), true
}
