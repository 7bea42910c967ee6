package vecmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Euler is an orientation in degrees: Pitch about X, Yaw about Y, Roll about Z.
type Euler struct {
	Pitch float64 `yaml:"pitch"`
	Yaw   float64 `yaml:"yaw"`
	Roll  float64 `yaml:"roll"`
}

// YawOnly returns an orientation facing yaw degrees with no pitch or roll.
func YawOnly(yaw float64) Euler {
	return Euler{Yaw: yaw}
}

// Quat is the orientation as an mgl64 quaternion: yaw about Y, then pitch
// about the yawed X, then roll about the resulting Z.
func (e Euler) Quat() mgl64.Quat {
	yaw := mgl64.QuatRotate(mgl64.DegToRad(e.Yaw), mgl64.Vec3{0, 1, 0})
	pitch := mgl64.QuatRotate(mgl64.DegToRad(e.Pitch), mgl64.Vec3{1, 0, 0})
	roll := mgl64.QuatRotate(mgl64.DegToRad(e.Roll), mgl64.Vec3{0, 0, 1})
	return yaw.Mul(pitch).Mul(roll)
}

// Forward is the local +Z axis in world space.
func (e Euler) Forward() Vec3 {
	return e.Rotate(Forward)
}

// Right is the local +X axis in world space.
func (e Euler) Right() Vec3 {
	return e.Rotate(Right)
}

// Up is the local +Y axis in world space.
func (e Euler) Up() Vec3 {
	return e.Rotate(Up)
}

// Rotate maps a local-space vector into world space.
func (e Euler) Rotate(local Vec3) Vec3 {
	return Vec3From(e.Quat().Rotate(local.Mgl()))
}

// Repeat wraps t into [0, length).
func Repeat(t, length float64) float64 {
	return mgl64.Clamp(t-math.Floor(t/length)*length, 0, length)
}

// NormalizeAngle wraps an angle into [0, 360).
func NormalizeAngle(a float64) float64 {
	a = Repeat(a, 360)
	if a == 360 {
		return 0
	}
	return a
}

// SignedAngle wraps an angle into (-180, 180].
func SignedAngle(a float64) float64 {
	a = NormalizeAngle(a)
	if a > 180 {
		a -= 360
	}
	return a
}

// DeltaAngle is the shortest signed difference from current to target.
func DeltaAngle(current, target float64) float64 {
	delta := Repeat(target-current, 360)
	if delta > 180 {
		delta -= 360
	}
	return delta
}

// The angle wrapping and damping helpers below have no mgl64 counterpart.

// SmoothDamp moves current toward target with a critically damped spring.
// velocity carries the spring state between calls.
func SmoothDamp(current, target float64, velocity *float64, smoothTime, dt float64) float64 {
	if dt <= 0 {
		return current
	}
	smoothTime = math.Max(0.0001, smoothTime)
	omega := 2 / smoothTime

	x := omega * dt
	exp := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)
	change := current - target
	originalTo := target
	target = current - change

	temp := (*velocity + omega*change) * dt
	*velocity = (*velocity - omega*temp) * exp
	output := target + (change+temp)*exp

	// no overshoot
	if (originalTo-current > 0) == (output > originalTo) {
		output = originalTo
		*velocity = (output - originalTo) / dt
	}
	return output
}

// SmoothDampAngle is SmoothDamp along the shortest arc between two angles.
func SmoothDampAngle(current, target float64, velocity *float64, smoothTime, dt float64) float64 {
	target = current + DeltaAngle(current, target)
	return SmoothDamp(current, target, velocity, smoothTime, dt)
}
