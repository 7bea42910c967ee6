package locomotion

import (
	"github.com/plus3/strider/anim"
	"github.com/plus3/strider/camera"
	"github.com/plus3/strider/physics"
	"github.com/plus3/strider/vecmath"
)

// Jump pushes the body up once when standing on the ground.
func (c *Controller) Jump() {
	if c.stance != Stand || !c.grounded {
		return
	}
	c.body.AddForce(vecmath.Up.Scale(c.cfg.JumpForce), physics.ForceContinuous)
	c.animator.SetTrigger(anim.TriggerJump)
}

// StartClimb grabs the wall in front of a grounded body.
func (c *Controller) StartClimb() {
	if !c.cfg.Features.Climb || !c.inFrontOfClimbable || !c.grounded || !c.stance.onFoot() {
		return
	}
	c.leaveCrouch()
	c.animator.SetBool(anim.IsClimbing, true)
	c.setStance(Climb)
	c.body.AddForce(vecmath.Up.Scale(c.cfg.Climb.InitForce), physics.ForceContinuous)
	c.collider.SetCenter(vecmath.Vec3{Y: c.cfg.Collider.ClimbCenter})
	c.camera.SetFieldOfView(c.cfg.Climb.FieldOfView)
	c.camera.SetLookAxisControllerEnabled(true)
}

// CancelClimb lets go of the wall.
func (c *Controller) CancelClimb() {
	if c.stance != Climb {
		return
	}
	c.collider.SetCenter(vecmath.Vec3{Y: c.cfg.Collider.StandCenter})
	c.camera.SetFieldOfView(c.cfg.Climb.DefaultFieldOfView)
	c.setStance(Stand)
	c.animator.SetBool(anim.IsClimbing, false)
	c.camera.SetLookAxisControllerEnabled(false)
	c.climbStepLatched = false
	c.climbStepTimer = 0
}

// Crouch toggles between standing and crouching.
func (c *Controller) Crouch() {
	if !c.cfg.Features.Crouch {
		return
	}
	switch c.stance {
	case Stand:
		c.setStance(Crouch)
		c.animator.SetBool(anim.IsCrouch, true)
		c.speed = c.cfg.CrouchSpeed
		c.collider.SetHeight(c.cfg.Collider.CrouchHeight)
		c.collider.SetCenter(vecmath.Vec3{Y: c.cfg.Collider.CrouchCenter})
	case Crouch:
		c.leaveCrouch()
		c.setStance(Stand)
	}
}

// leaveCrouch restores the standing shape and speed.
func (c *Controller) leaveCrouch() {
	if c.stance != Crouch {
		return
	}
	c.animator.SetBool(anim.IsCrouch, false)
	c.speed = c.cfg.WalkSpeed
	c.applyStandShape()
}

// StartGlide opens the glider while airborne.
func (c *Controller) StartGlide() {
	if !c.cfg.Features.Glide || c.stance == Glide || c.grounded {
		return
	}
	switch c.stance {
	case Crouch:
		c.leaveCrouch()
	case Climb:
		c.collider.SetCenter(vecmath.Vec3{Y: c.cfg.Collider.StandCenter})
		c.camera.SetFieldOfView(c.cfg.Climb.DefaultFieldOfView)
		c.animator.SetBool(anim.IsClimbing, false)
		c.climbStepLatched = false
		c.climbStepTimer = 0
	}
	c.setStance(Glide)
	c.animator.SetBool(anim.IsGliding, true)
	c.camera.SetLookAxisControllerEnabled(true)
}

// CancelGlide folds the glider and levels the body to its heading.
func (c *Controller) CancelGlide() {
	if c.stance != Glide {
		return
	}
	c.setStance(Stand)
	c.animator.SetBool(anim.IsGliding, false)
	c.camera.SetLookAxisControllerEnabled(false)
	c.body.SetRotation(vecmath.YawOnly(c.body.Rotation().Yaw))
}

// Punch starts the next punch of the combo. The combo counts 1, 2, 3 and
// then starts over at 1. A pending combo reset is cancelled.
func (c *Controller) Punch() {
	if !c.cfg.Features.Punch || c.punching || c.stance != Stand {
		return
	}
	c.punching = true
	c.comboReset.Stop()
	if c.combo < 3 {
		c.combo++
	} else {
		c.combo = 1
	}
	c.animator.SetInteger(anim.Combo, c.combo)
	c.animator.SetTrigger(anim.TriggerPunch)
}

// EndPunch is the punch animation's end callback. It frees the controller
// for the next punch and restarts the combo reset countdown.
func (c *Controller) EndPunch() {
	c.punching = false
	c.comboReset.Stop()
	c.comboReset = c.timers.After(c.cfg.Punch.ComboResetInterval, func() {
		c.combo = 0
	})
}

// Hit is the punch animation's impact callback. Every object on the hit
// layers within the hit detector sphere is removed from the world.
func (c *Controller) Hit() {
	ids := c.physics.OverlapSphere(c.detector(c.cfg.Punch.HitDetector), c.cfg.Punch.HitRadius, c.cfg.Punch.HitLayers)
	for _, id := range ids {
		c.physics.Destroy(id)
	}
	if len(ids) > 0 {
		c.logger.Debug("punch hit", "objects", len(ids), "combo", c.combo)
	}
}

// HandleAnimationEvent routes named animation events to their callbacks.
func (c *Controller) HandleAnimationEvent(name string) {
	switch name {
	case anim.EventPunchEnd:
		c.EndPunch()
	case anim.EventPunchImpact:
		c.Hit()
	}
}

// ChangePerspective plays the perspective change animation.
func (c *Controller) ChangePerspective(camera.State) {
	c.animator.SetTrigger(anim.TriggerChangePOV)
}
