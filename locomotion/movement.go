package locomotion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/strider/anim"
	"github.com/plus3/strider/camera"
	"github.com/plus3/strider/physics"
	"github.com/plus3/strider/vecmath"
)

// moveDeadZone is the smallest third-person input that turns the body.
const moveDeadZone = 0.1

// Move applies planar move input according to the stance.
func (c *Controller) Move(axis vecmath.Vec2) {
	dt := c.clock.DeltaTime()
	switch c.stance {
	case Stand, Crouch:
		if c.punching {
			return
		}
		c.walk(axis, dt)
	case Climb:
		if !c.inFrontOfClimbable {
			c.CancelClimb()
			return
		}
		if c.cfg.Climb.Model == ClimbStep {
			c.climbStep(axis)
		} else {
			c.climbContinuous(axis)
		}
	case Glide:
		c.steerGlide(axis, dt)
	}
}

func (c *Controller) walk(axis vecmath.Vec2, dt float64) {
	switch c.camera.State() {
	case camera.ThirdPerson:
		if axis.Len() >= moveDeadZone {
			target := mgl64.RadToDeg(math.Atan2(axis.X, axis.Y)) + c.camera.Yaw()
			yaw := vecmath.SmoothDampAngle(c.body.Rotation().Yaw, target, &c.rotationVelocity, c.cfg.RotationSmoothTime, dt)
			facing := vecmath.YawOnly(vecmath.NormalizeAngle(yaw))
			c.body.SetRotation(facing)
			c.body.AddForce(facing.Forward().Scale(dt*c.speed), physics.ForceContinuous)
		}
	case camera.FirstPerson:
		rot := c.body.Rotation()
		dir := rot.Forward().Scale(axis.Y).Add(rot.Right().Scale(axis.X))
		c.body.AddForce(dir.Scale(dt*c.speed), physics.ForceContinuous)
	}

	planar := c.body.Velocity().Planar().Len()
	c.animator.SetFloat(anim.Velocity, planar*axis.Len())
	c.animator.SetFloat(anim.VelocityZ, planar*axis.Y)
	c.animator.SetFloat(anim.VelocityX, planar*axis.X)
}

// climbContinuous pushes along the body's right and up axes as long as the
// resulting speed stays under the climb velocity limit.
func (c *Controller) climbContinuous(axis vecmath.Vec2) {
	rot := c.body.Rotation()
	add := rot.Right().Scale(axis.X).Add(rot.Up().Scale(axis.Y)).Scale(c.cfg.Climb.Speed)
	if c.body.Velocity().Len()+add.Len() < c.cfg.Climb.VelocityMax {
		c.body.AddForce(add, physics.ForceVelocityChange)
	}
	c.writeClimbVelocity(axis)
}

// climbStep applies one impulse and latches until the step delay has passed.
// Downward steps are scaled by the down multiplier, sideways steps by the
// lateral multiplier.
func (c *Controller) climbStep(axis vecmath.Vec2) {
	defer c.writeClimbVelocity(axis)
	if c.climbStepLatched || axis.IsZero() {
		return
	}

	vertical := axis.Y * c.cfg.Climb.StepImpulse
	if axis.Y < 0 {
		vertical *= c.cfg.Climb.DownMultiplier
	}
	lateral := axis.X * c.cfg.Climb.StepImpulse * c.cfg.Climb.LateralMultiplier

	rot := c.body.Rotation()
	c.body.AddForce(rot.Up().Scale(vertical).Add(rot.Right().Scale(lateral)), physics.ForceVelocityChange)
	c.climbStepLatched = true
	c.climbStepTimer = 0
}

func (c *Controller) writeClimbVelocity(axis vecmath.Vec2) {
	v := c.body.Velocity()
	wall := math.Hypot(v.X, v.Y)
	c.animator.SetFloat(anim.ClimbVelocityX, wall*axis.X)
	c.animator.SetFloat(anim.ClimbVelocityY, wall*axis.Y)
}

// steerGlide pitches with vertical input and banks and turns with lateral
// input. Pitch is kept within the configured range.
func (c *Controller) steerGlide(axis vecmath.Vec2, dt float64) {
	rot := c.body.Rotation()
	speed := c.cfg.Glide.RotationSpeed
	rot.Pitch = mgl64.Clamp(
		vecmath.SignedAngle(rot.Pitch)+speed.Pitch*axis.Y*dt,
		c.cfg.Glide.MinPitch,
		c.cfg.Glide.MaxPitch,
	)
	rot.Roll = vecmath.SignedAngle(rot.Roll + speed.Roll*axis.X*dt)
	rot.Yaw = vecmath.NormalizeAngle(rot.Yaw + speed.Yaw*axis.X*dt)
	c.body.SetRotation(rot)
}

// Look turns the body with horizontal look input while on foot in first
// person. The rotation accumulates without damping.
func (c *Controller) Look(axis vecmath.Vec2) {
	if !c.cfg.Features.FirstPersonLook || c.camera.State() != camera.FirstPerson || !c.stance.onFoot() {
		return
	}
	rot := c.body.Rotation()
	rot.Yaw = vecmath.NormalizeAngle(rot.Yaw + axis.X*c.cfg.LookSensitivity*c.clock.DeltaTime())
	c.body.SetRotation(rot)
}

// Sprint moves speed toward the sprint speed while held and back toward
// the walk speed when released, never past either. It only acts standing.
func (c *Controller) Sprint(held bool) {
	if c.stance != Stand {
		return
	}
	step := c.cfg.WalkSprintTransition * c.clock.DeltaTime()
	if held {
		if c.speed < c.cfg.SprintSpeed {
			c.speed = math.Min(c.cfg.SprintSpeed, c.speed+step)
		}
		return
	}
	if c.speed > c.cfg.WalkSpeed {
		c.speed = math.Max(c.cfg.WalkSpeed, c.speed-step)
	}
}
