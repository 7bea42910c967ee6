package physics

import "github.com/plus3/strider/vecmath"

// ForceMode selects how AddForce changes a body's velocity.
type ForceMode int

const (
	// ForceContinuous accumulates a force applied over the next step as F/m·dt.
	ForceContinuous ForceMode = iota
	// ForceVelocityChange adds the vector to the velocity immediately, ignoring mass.
	ForceVelocityChange
)

func (m ForceMode) String() string {
	if m == ForceVelocityChange {
		return "velocity_change"
	}
	return "continuous"
}

// CapsuleCollider is the upright capsule attached to a body. Center is
// relative to the body position.
type CapsuleCollider struct {
	Radius float64
	height float64
	center vecmath.Vec3
}

func (c *CapsuleCollider) Height() float64          { return c.height }
func (c *CapsuleCollider) SetHeight(h float64)      { c.height = h }
func (c *CapsuleCollider) Center() vecmath.Vec3     { return c.center }
func (c *CapsuleCollider) SetCenter(v vecmath.Vec3) { c.center = v }

// Rigidbody is a dynamic capsule.
type Rigidbody struct {
	Mass       float64
	Drag       float64
	UseGravity bool
	// CollisionMask selects the static layers the body is pushed out of.
	CollisionMask LayerMask
	Capsule       *CapsuleCollider

	position vecmath.Vec3
	rotation vecmath.Euler
	velocity vecmath.Vec3
	force    vecmath.Vec3
}

// NewRigidbody creates a unit-mass body at position with a capsule of the
// given radius, height and center offset.
func NewRigidbody(position vecmath.Vec3, radius, height float64, center vecmath.Vec3) *Rigidbody {
	return &Rigidbody{
		Mass:          1,
		UseGravity:    true,
		CollisionMask: AllLayers,
		Capsule:       &CapsuleCollider{Radius: radius, height: height, center: center},
		position:      position,
	}
}

func (b *Rigidbody) Position() vecmath.Vec3      { return b.position }
func (b *Rigidbody) SetPosition(p vecmath.Vec3)  { b.position = p }
func (b *Rigidbody) Rotation() vecmath.Euler     { return b.rotation }
func (b *Rigidbody) SetRotation(r vecmath.Euler) { b.rotation = r }
func (b *Rigidbody) Velocity() vecmath.Vec3      { return b.velocity }
func (b *Rigidbody) SetVelocity(v vecmath.Vec3)  { b.velocity = v }
func (b *Rigidbody) PendingForce() vecmath.Vec3  { return b.force }

// AddForce applies f according to mode.
func (b *Rigidbody) AddForce(f vecmath.Vec3, mode ForceMode) {
	if mode == ForceVelocityChange {
		b.velocity = b.velocity.Add(f)
		return
	}
	b.force = b.force.Add(f)
}

// Bounds is the world-space box enclosing the capsule.
func (b *Rigidbody) Bounds() AABB {
	c := b.position.Add(b.Capsule.center)
	half := vecmath.Vec3{X: b.Capsule.Radius, Y: b.Capsule.height / 2, Z: b.Capsule.Radius}
	return AABB{Min: c.Sub(half), Max: c.Add(half)}
}

func (b *Rigidbody) integrate(gravity vecmath.Vec3, dt float64) {
	accel := vecmath.Zero
	if b.UseGravity {
		accel = gravity
	}
	if b.Mass > 0 {
		accel = accel.Add(b.force.Scale(1 / b.Mass))
	}
	b.force = vecmath.Zero

	b.velocity = b.velocity.Add(accel.Scale(dt))
	if b.Drag > 0 {
		b.velocity = b.velocity.Scale(max(0, 1-b.Drag*dt))
	}
	b.position = b.position.Add(b.velocity.Scale(dt))
}
