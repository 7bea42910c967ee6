// Package vecmath adapts mgl64 to the conventions of the locomotion
// controller and the reference physics world.
//
// Angles are in degrees and orientations follow the left-handed, Y-up
// convention of common game engines: +Z is forward, +X is right and an Euler
// rotation is applied roll (Z), then pitch (X), then yaw (Y). Vectors keep
// named fields so they can be written as keyed literals and loaded from YAML;
// the arithmetic is delegated to mgl64.
package vecmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is a 2D axis pair, typically raw input.
type Vec2 struct {
	X, Y float64
}

// Vec2From converts an mgl64 vector.
func Vec2From(m mgl64.Vec2) Vec2 {
	return Vec2{m[0], m[1]}
}

// Mgl returns v as an mgl64 vector.
func (v Vec2) Mgl() mgl64.Vec2 {
	return mgl64.Vec2{v.X, v.Y}
}

func (v Vec2) Len() float64 {
	return v.Mgl().Len()
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2From(v.Mgl().Mul(s))
}

// Vec3 is a 3D vector in world or local space.
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

var (
	Zero    = Vec3{}
	Up      = Vec3{0, 1, 0}
	Forward = Vec3{0, 0, 1}
	Right   = Vec3{1, 0, 0}
)

// Vec3From converts an mgl64 vector.
func Vec3From(m mgl64.Vec3) Vec3 {
	return Vec3{m[0], m[1], m[2]}
}

// Mgl returns v as an mgl64 vector.
func (v Vec3) Mgl() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3From(v.Mgl().Add(o.Mgl()))
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3From(v.Mgl().Sub(o.Mgl()))
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3From(v.Mgl().Mul(s))
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.Mgl().Dot(o.Mgl())
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3From(v.Mgl().Cross(o.Mgl()))
}

func (v Vec3) LenSq() float64 {
	m := v.Mgl()
	return m.Dot(m)
}

func (v Vec3) Len() float64 {
	return v.Mgl().Len()
}

// Normalize returns the unit vector, or the zero vector for zero input.
func (v Vec3) Normalize() Vec3 {
	if v == Zero {
		return Vec3{}
	}
	return Vec3From(v.Mgl().Normalize())
}

// Planar drops the vertical component.
func (v Vec3) Planar() Vec3 {
	return Vec3{v.X, 0, v.Z}
}

// ApproxEqual reports whether every component differs by at most eps.
// mgl64's ApproxEqualThreshold is relative away from zero, which is too loose
// for positions far from the origin.
func (v Vec3) ApproxEqual(o Vec3, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps && math.Abs(v.Z-o.Z) <= eps
}

// MoveTowards moves current toward target by at most maxDelta without overshooting.
func MoveTowards(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}
