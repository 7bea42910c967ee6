// Package locomotion is the player's stance state machine. It turns input
// intents into forces on a physics body, senses the ground and climbable
// walls once per tick, and keeps the camera and animation parameters in
// step with the current stance.
//
// Every guard reads the sensor snapshot of the previous tick: the input
// dispatcher runs before the controller in the frame, so intents are handled
// before Execute refreshes the sensors.
package locomotion

import (
	"fmt"
	"log/slog"

	"github.com/plus3/strider/anim"
	"github.com/plus3/strider/event"
	"github.com/plus3/strider/loop"
	"github.com/plus3/strider/physics"
	"github.com/plus3/strider/vecmath"
)

// State is a read-only snapshot of the controller's movement context.
type State struct {
	Stance             Stance
	Speed              float64
	Grounded           bool
	InFrontOfClimbable bool
	// ClimbableHit is the last climb detector hit, nil when the detector missed.
	ClimbableHit      *physics.Hit
	Punching          bool
	Combo             int
	ComboResetPending bool
	ComboResetAt      float64
	RotationVelocity  float64
	ClimbStepTimer    float64
	ClimbStepLatched  bool
}

// Controller owns the movement context. All fields are written only by its
// own handlers and by Execute.
type Controller struct {
	cfg      Config
	camera   Camera
	body     Body
	collider Collider
	physics  Physics
	animator Animator
	timers   *loop.Timers
	clock    Clock
	logger   *slog.Logger
	subs     event.Group

	stance             Stance
	speed              float64
	grounded           bool
	inFrontOfClimbable bool
	climbHit           physics.Hit
	punching           bool
	combo              int
	comboReset         *loop.Timer
	rotationVelocity   float64
	climbStepTimer     float64
	climbStepLatched   bool
}

// New builds a standing controller and subscribes it to every intent, the
// perspective notification and, when given, the animation events.
func New(cfg Config, deps Deps) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("locomotion config: %w", err)
	}
	if err := deps.validate(); err != nil {
		return nil, fmt.Errorf("locomotion deps: %w", err)
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	c := &Controller{
		cfg:      cfg,
		camera:   deps.Camera,
		body:     deps.Body,
		collider: deps.Collider,
		physics:  deps.Physics,
		animator: deps.Animator,
		timers:   deps.Timers,
		clock:    deps.Clock,
		logger:   logger.With("component", "locomotion"),
		stance:   Stand,
		speed:    cfg.WalkSpeed,
	}
	c.applyStandShape()

	in := deps.Input
	c.subs.Add(in.Move.Subscribe(c.Move))
	c.subs.Add(in.Look.Subscribe(c.Look))
	c.subs.Add(in.Sprint.Subscribe(c.Sprint))
	c.subs.Add(in.Jump.Subscribe(event.Bare(c.Jump)))
	c.subs.Add(in.Climb.Subscribe(event.Bare(c.StartClimb)))
	c.subs.Add(in.CancelClimb.Subscribe(event.Bare(c.CancelClimb)))
	c.subs.Add(in.Crouch.Subscribe(event.Bare(c.Crouch)))
	c.subs.Add(in.Glide.Subscribe(event.Bare(c.StartGlide)))
	c.subs.Add(in.CancelGlide.Subscribe(event.Bare(c.CancelGlide)))
	c.subs.Add(in.Punch.Subscribe(event.Bare(c.Punch)))
	c.subs.Add(c.camera.OnPerspectiveChanged(c.ChangePerspective))
	if deps.AnimationEvents != nil {
		c.subs.Add(deps.AnimationEvents.OnEvent(c.HandleAnimationEvent))
	}
	return c, nil
}

// Close releases every subscription and the pending combo reset.
func (c *Controller) Close() {
	c.subs.Close()
	c.comboReset.Stop()
}

// State returns a copy of the movement context.
func (c *Controller) State() State {
	s := State{
		Stance:             c.stance,
		Speed:              c.speed,
		Grounded:           c.grounded,
		InFrontOfClimbable: c.inFrontOfClimbable,
		Punching:           c.punching,
		Combo:              c.combo,
		ComboResetPending:  c.comboReset.Active(),
		RotationVelocity:   c.rotationVelocity,
		ClimbStepTimer:     c.climbStepTimer,
		ClimbStepLatched:   c.climbStepLatched,
	}
	if c.inFrontOfClimbable {
		hit := c.climbHit
		s.ClimbableHit = &hit
	}
	if s.ComboResetPending {
		s.ComboResetAt = c.comboReset.Deadline()
	}
	return s
}

// Stance returns the active stance.
func (c *Controller) Stance() Stance {
	return c.stance
}

// Config returns the controller's tuning.
func (c *Controller) Config() Config {
	return c.cfg
}

// Execute refreshes the sensors and applies the per-tick glide propulsion.
func (c *Controller) Execute(frame *loop.Frame) {
	c.checkGrounded()
	c.checkStep()
	c.checkClimbable()
	c.checkStayClimbing()
	c.advanceClimbStep(frame.DeltaTime)
	c.glide(frame.DeltaTime)
}

func (c *Controller) setStance(to Stance) {
	if c.stance == to {
		return
	}
	c.logger.Debug("stance changed", "from", c.stance, "to", to)
	c.stance = to
}

// detector maps a local detector offset to world space using the body yaw.
func (c *Controller) detector(local vecmath.Vec3) vecmath.Vec3 {
	return c.body.Position().Add(vecmath.YawOnly(c.body.Rotation().Yaw).Rotate(local))
}

func (c *Controller) checkGrounded() {
	c.grounded = c.physics.CheckSphere(c.detector(c.cfg.Ground.Detector), c.cfg.Ground.Radius, c.cfg.Ground.Layers)
	c.animator.SetBool(anim.IsGrounded, c.grounded)
	if c.grounded {
		c.CancelGlide()
	}
}

// checkStep nudges the body up when a forward ray from the feet hits an
// obstacle that a ray from the upper offset clears.
func (c *Controller) checkStep() {
	if c.stance == Climb {
		return
	}
	forward := c.body.Rotation().Forward()
	lower := c.detector(c.cfg.Ground.Detector)
	upper := c.detector(c.cfg.Ground.Detector.Add(c.cfg.Step.UpperOffset))

	_, hitLower := c.physics.Raycast(lower, forward, c.cfg.Step.CheckerDistance, physics.AllLayers)
	if !hitLower {
		return
	}
	if _, hitUpper := c.physics.Raycast(upper, forward, c.cfg.Step.CheckerDistance, physics.AllLayers); hitUpper {
		return
	}
	c.body.AddForce(vecmath.Vec3{Y: c.cfg.Step.Force}, physics.ForceContinuous)
}

func (c *Controller) checkClimbable() {
	hit, ok := c.physics.Raycast(
		c.detector(c.cfg.Climb.Detector),
		c.body.Rotation().Forward(),
		c.cfg.Climb.DetectorDistance,
		c.cfg.Climb.Layers,
	)
	c.inFrontOfClimbable = ok
	c.climbHit = hit
}

func (c *Controller) checkStayClimbing() {
	if c.inFrontOfClimbable && c.stance == Climb {
		c.body.AddForce(c.body.Rotation().Forward().Scale(c.cfg.Climb.StickForce), physics.ForceContinuous)
	}
}

func (c *Controller) advanceClimbStep(dt float64) {
	if !c.climbStepLatched {
		return
	}
	c.climbStepTimer += dt
	if c.climbStepTimer >= c.cfg.Climb.StepDelay {
		c.climbStepLatched = false
		c.climbStepTimer = 0
	}
}

// glide lifts the body along its up axis by its pitch plus the air drag
// term and pushes it along its forward axis.
func (c *Controller) glide(dt float64) {
	if c.stance != Glide {
		return
	}
	rot := c.body.Rotation()
	lift := rot.Up().Scale(rot.Pitch + c.cfg.Glide.AirDrag)
	thrust := rot.Forward().Scale(c.cfg.Glide.Speed)
	c.body.AddForce(lift.Add(thrust).Scale(dt), physics.ForceContinuous)
}

func (c *Controller) applyStandShape() {
	c.collider.SetHeight(c.cfg.Collider.StandHeight)
	c.collider.SetCenter(vecmath.Vec3{Y: c.cfg.Collider.StandCenter})
}
