// Package physics is a small rigid-body world: static box and sphere
// colliders queried by layer, and capsule bodies integrated once per frame.
package physics

import (
	"math"
	"slices"

	"github.com/kamstrup/intmap"
	"github.com/plus3/strider/loop"
	"github.com/plus3/strider/vecmath"
)

// ColliderID identifies a static collider within a World.
type ColliderID uint32

// Collider is a static shape placed in the world.
type Collider struct {
	ID    ColliderID
	Name  string
	Layer Layer
	Shape Shape
}

// Hit is the result of a successful raycast.
type Hit struct {
	Point    vecmath.Vec3
	Normal   vecmath.Vec3
	Distance float64
	Collider ColliderID
}

// World owns static colliders and the bodies simulated against them.
type World struct {
	Gravity vecmath.Vec3

	colliders *intmap.Map[ColliderID, *Collider]
	nextID    ColliderID
	bodies    []*Rigidbody
}

// NewWorld creates an empty world with earth gravity.
func NewWorld() *World {
	return &World{
		Gravity:   vecmath.Vec3{Y: -9.81},
		colliders: intmap.New[ColliderID, *Collider](64),
	}
}

// AddBox places an axis-aligned box spanning min to max.
func (w *World) AddBox(name string, min, max vecmath.Vec3, layer Layer) ColliderID {
	return w.add(name, Box{AABB{Min: min, Max: max}}, layer)
}

// AddSphere places a sphere.
func (w *World) AddSphere(name string, center vecmath.Vec3, radius float64, layer Layer) ColliderID {
	return w.add(name, Sphere{Center: center, Radius: radius}, layer)
}

func (w *World) add(name string, shape Shape, layer Layer) ColliderID {
	w.nextID++
	w.colliders.Put(w.nextID, &Collider{ID: w.nextID, Name: name, Layer: layer, Shape: shape})
	return w.nextID
}

// Collider looks up a collider by id.
func (w *World) Collider(id ColliderID) (*Collider, bool) {
	return w.colliders.Get(id)
}

// Len returns the number of live colliders.
func (w *World) Len() int {
	return w.colliders.Len()
}

// Colliders returns every live collider ordered by id.
func (w *World) Colliders() []*Collider {
	out := make([]*Collider, 0, w.colliders.Len())
	w.colliders.ForEach(func(_ ColliderID, c *Collider) bool {
		out = append(out, c)
		return true
	})
	slices.SortFunc(out, func(a, b *Collider) int {
		return int(a.ID) - int(b.ID)
	})
	return out
}

// Destroy removes a collider. It reports whether the id was live.
func (w *World) Destroy(id ColliderID) bool {
	return w.colliders.Del(id)
}

// AddBody registers a body for integration by Step.
func (w *World) AddBody(b *Rigidbody) {
	w.bodies = append(w.bodies, b)
}

// Bodies returns the registered bodies.
func (w *World) Bodies() []*Rigidbody {
	return w.bodies
}

// CheckSphere reports whether any collider in mask touches the sphere.
func (w *World) CheckSphere(center vecmath.Vec3, radius float64, mask LayerMask) bool {
	for _, c := range w.Colliders() {
		if mask.Contains(c.Layer) && c.Shape.overlapsSphere(center, radius) {
			return true
		}
	}
	return false
}

// OverlapSphere returns the ids of all colliders in mask touching the
// sphere, in ascending order.
func (w *World) OverlapSphere(center vecmath.Vec3, radius float64, mask LayerMask) []ColliderID {
	var ids []ColliderID
	for _, c := range w.Colliders() {
		if mask.Contains(c.Layer) && c.Shape.overlapsSphere(center, radius) {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// Raycast returns the nearest collider in mask hit by the ray within
// maxDistance. Colliders containing the origin are not reported.
func (w *World) Raycast(origin, dir vecmath.Vec3, maxDistance float64, mask LayerMask) (Hit, bool) {
	dir = dir.Normalize()
	if dir == vecmath.Zero || maxDistance <= 0 {
		return Hit{}, false
	}

	best := Hit{Distance: math.Inf(1)}
	found := false
	for _, c := range w.Colliders() {
		if !mask.Contains(c.Layer) {
			continue
		}
		dist, normal, ok := c.Shape.raycast(origin, dir, maxDistance)
		if !ok || dist >= best.Distance {
			continue
		}
		best = Hit{
			Point:    origin.Add(dir.Scale(dist)),
			Normal:   normal,
			Distance: dist,
			Collider: c.ID,
		}
		found = true
	}
	return best, found
}

// Step integrates every body by dt seconds and resolves it against the
// static colliders its CollisionMask selects.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	statics := w.Colliders()
	for _, b := range w.bodies {
		b.integrate(w.Gravity, dt)
		w.resolve(b, statics)
	}
}

// Execute steps the world by the frame's delta time.
func (w *World) Execute(frame *loop.Frame) {
	w.Step(frame.DeltaTime)
}

const resolveIterations = 4

// push the body's bounds out of each overlapping box along the axis of least
// penetration and cancel the velocity component driving it inward
func (w *World) resolve(b *Rigidbody, statics []*Collider) {
	for range resolveIterations {
		moved := false
		for _, c := range statics {
			if !b.CollisionMask.Contains(c.Layer) {
				continue
			}
			box := c.Shape.Bounds()
			bounds := b.Bounds()
			if !bounds.Overlaps(box) {
				continue
			}

			push := penetration(bounds, box)
			b.position = b.position.Add(push)
			switch {
			case push.X != 0 && b.velocity.X*push.X < 0:
				b.velocity.X = 0
			case push.Y != 0 && b.velocity.Y*push.Y < 0:
				b.velocity.Y = 0
			case push.Z != 0 && b.velocity.Z*push.Z < 0:
				b.velocity.Z = 0
			}
			moved = true
		}
		if !moved {
			return
		}
	}
}

// penetration returns the smallest translation moving a out of b.
func penetration(a, b AABB) vecmath.Vec3 {
	left := b.Min.X - a.Max.X
	right := b.Max.X - a.Min.X
	down := b.Min.Y - a.Max.Y
	up := b.Max.Y - a.Min.Y
	back := b.Min.Z - a.Max.Z
	front := b.Max.Z - a.Min.Z

	x := pickSmaller(left, right)
	y := pickSmaller(down, up)
	z := pickSmaller(back, front)

	switch {
	case math.Abs(y) <= math.Abs(x) && math.Abs(y) <= math.Abs(z):
		return vecmath.Vec3{Y: y}
	case math.Abs(x) <= math.Abs(z):
		return vecmath.Vec3{X: x}
	default:
		return vecmath.Vec3{Z: z}
	}
}

func pickSmaller(neg, pos float64) float64 {
	if math.Abs(neg) < math.Abs(pos) {
		return neg
	}
	return pos
}
