package locomotion

import (
	"errors"
	"fmt"

	"github.com/plus3/strider/physics"
	"github.com/plus3/strider/vecmath"
)

// ClimbModel selects how climb input becomes motion.
type ClimbModel string

const (
	// ClimbContinuous pushes the body along its up and right axes every move
	// tick, capped by the climb velocity limit.
	ClimbContinuous ClimbModel = "continuous"
	// ClimbStep applies one impulse per step and waits out a cooldown before
	// the next.
	ClimbStep ClimbModel = "step"
)

// Config holds the controller's tuning. Forces are in newtons, speeds in the
// units the force formulas expect, angles in degrees and times in seconds.
type Config struct {
	WalkSpeed            float64 `yaml:"walk_speed"`
	SprintSpeed          float64 `yaml:"sprint_speed"`
	CrouchSpeed          float64 `yaml:"crouch_speed"`
	WalkSprintTransition float64 `yaml:"walk_sprint_transition"`
	RotationSmoothTime   float64 `yaml:"rotation_smooth_time"`
	// LookSensitivity turns first-person look input into body yaw.
	LookSensitivity float64 `yaml:"look_sensitivity"`
	JumpForce       float64 `yaml:"jump_force"`

	Ground   GroundConfig   `yaml:"ground"`
	Step     StepConfig     `yaml:"step"`
	Climb    ClimbConfig    `yaml:"climb"`
	Glide    GlideConfig    `yaml:"glide"`
	Punch    PunchConfig    `yaml:"punch"`
	Collider ColliderConfig `yaml:"collider"`
	Features Features       `yaml:"features"`
}

type GroundConfig struct {
	Detector vecmath.Vec3      `yaml:"detector"`
	Radius   float64           `yaml:"radius"`
	Layers   physics.LayerMask `yaml:"layers"`
}

// StepConfig drives the automatic step-up over low obstacles.
type StepConfig struct {
	UpperOffset     vecmath.Vec3 `yaml:"upper_offset"`
	CheckerDistance float64      `yaml:"checker_distance"`
	Force           float64      `yaml:"force"`
}

type ClimbConfig struct {
	Model            ClimbModel        `yaml:"model"`
	Detector         vecmath.Vec3      `yaml:"detector"`
	DetectorDistance float64           `yaml:"detector_distance"`
	Layers           physics.LayerMask `yaml:"layers"`
	InitForce        float64           `yaml:"init_force"`
	StickForce       float64           `yaml:"stick_force"`
	FieldOfView      float64           `yaml:"field_of_view"`
	// DefaultFieldOfView is restored on leaving the wall.
	DefaultFieldOfView float64 `yaml:"default_field_of_view"`

	Speed       float64 `yaml:"speed"`
	VelocityMax float64 `yaml:"velocity_max"`

	StepImpulse       float64 `yaml:"step_impulse"`
	StepDelay         float64 `yaml:"step_delay"`
	DownMultiplier    float64 `yaml:"down_multiplier"`
	LateralMultiplier float64 `yaml:"lateral_multiplier"`
}

type GlideConfig struct {
	Speed   float64 `yaml:"speed"`
	AirDrag float64 `yaml:"air_drag"`
	// RotationSpeed is degrees per second per input unit on each axis.
	RotationSpeed vecmath.Euler `yaml:"rotation_speed"`
	MinPitch      float64       `yaml:"min_pitch"`
	MaxPitch      float64       `yaml:"max_pitch"`
}

type PunchConfig struct {
	ComboResetInterval float64           `yaml:"combo_reset_interval"`
	HitDetector        vecmath.Vec3      `yaml:"hit_detector"`
	HitRadius          float64           `yaml:"hit_radius"`
	HitLayers          physics.LayerMask `yaml:"hit_layers"`
}

// ColliderConfig is the capsule shape per stance.
type ColliderConfig struct {
	StandHeight  float64 `yaml:"stand_height"`
	StandCenter  float64 `yaml:"stand_center"`
	CrouchHeight float64 `yaml:"crouch_height"`
	CrouchCenter float64 `yaml:"crouch_center"`
	ClimbCenter  float64 `yaml:"climb_center"`
}

// Features switches the advanced transitions on and off independently.
type Features struct {
	Crouch          bool `yaml:"crouch"`
	Climb           bool `yaml:"climb"`
	Glide           bool `yaml:"glide"`
	Punch           bool `yaml:"punch"`
	FirstPersonLook bool `yaml:"first_person_look"`
}

// AllFeatures enables every transition.
func AllFeatures() Features {
	return Features{Crouch: true, Climb: true, Glide: true, Punch: true, FirstPersonLook: true}
}

// DefaultConfig returns tuning for a unit-mass body with linear drag 2
// simulated at 60 ticks per second.
func DefaultConfig() Config {
	return Config{
		WalkSpeed:            240,
		SprintSpeed:          480,
		CrouchSpeed:          120,
		WalkSprintTransition: 480,
		RotationSmoothTime:   0.1,
		LookSensitivity:      90,
		JumpForce:            300,
		Ground: GroundConfig{
			Detector: vecmath.Vec3{Y: 0.1},
			Radius:   0.15,
			Layers:   physics.LayerGround.Mask(),
		},
		Step: StepConfig{
			UpperOffset:     vecmath.Vec3{Y: 0.4},
			CheckerDistance: 0.5,
			Force:           40,
		},
		Climb: ClimbConfig{
			Model:              ClimbContinuous,
			Detector:           vecmath.Vec3{Y: 1},
			DetectorDistance:   0.6,
			Layers:             physics.LayerClimbable.Mask(),
			InitForce:          300,
			StickForce:         20,
			FieldOfView:        80,
			DefaultFieldOfView: 60,
			Speed:              0.5,
			VelocityMax:        3,
			StepImpulse:        1.5,
			StepDelay:          0.35,
			DownMultiplier:     0.6,
			LateralMultiplier:  0.8,
		},
		Glide: GlideConfig{
			Speed:         600,
			AirDrag:       500,
			RotationSpeed: vecmath.Euler{Pitch: 45, Yaw: 60, Roll: 30},
			MinPitch:      -30,
			MaxPitch:      30,
		},
		Punch: PunchConfig{
			ComboResetInterval: 1,
			HitDetector:        vecmath.Vec3{Y: 1.2, Z: 0.6},
			HitRadius:          0.4,
			HitLayers:          physics.LayerHittable.Mask(),
		},
		Collider: ColliderConfig{
			StandHeight:  1.8,
			StandCenter:  0.9,
			CrouchHeight: 1.3,
			CrouchCenter: 0.66,
			ClimbCenter:  1.3,
		},
		Features: AllFeatures(),
	}
}

// Validate reports every out-of-range setting.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %v", name, v))
		}
	}

	positive("walk_speed", c.WalkSpeed)
	positive("sprint_speed", c.SprintSpeed)
	positive("crouch_speed", c.CrouchSpeed)
	if c.SprintSpeed < c.WalkSpeed {
		errs = append(errs, fmt.Errorf("sprint_speed %v is below walk_speed %v", c.SprintSpeed, c.WalkSpeed))
	}
	nonNegative("walk_sprint_transition", c.WalkSprintTransition)
	positive("rotation_smooth_time", c.RotationSmoothTime)
	nonNegative("look_sensitivity", c.LookSensitivity)
	nonNegative("jump_force", c.JumpForce)

	positive("ground.radius", c.Ground.Radius)
	nonNegative("step.checker_distance", c.Step.CheckerDistance)
	nonNegative("step.force", c.Step.Force)

	switch c.Climb.Model {
	case ClimbContinuous, ClimbStep:
	default:
		errs = append(errs, fmt.Errorf("climb.model %q is not one of %q, %q", c.Climb.Model, ClimbContinuous, ClimbStep))
	}
	positive("climb.detector_distance", c.Climb.DetectorDistance)
	nonNegative("climb.speed", c.Climb.Speed)
	nonNegative("climb.velocity_max", c.Climb.VelocityMax)
	nonNegative("climb.step_delay", c.Climb.StepDelay)
	nonNegative("climb.down_multiplier", c.Climb.DownMultiplier)
	nonNegative("climb.lateral_multiplier", c.Climb.LateralMultiplier)

	if c.Glide.MinPitch > c.Glide.MaxPitch {
		errs = append(errs, fmt.Errorf("glide.min_pitch %v exceeds glide.max_pitch %v", c.Glide.MinPitch, c.Glide.MaxPitch))
	}
	if c.Glide.MinPitch <= -90 || c.Glide.MaxPitch >= 90 {
		errs = append(errs, errors.New("glide pitch limits must stay within (-90, 90)"))
	}

	nonNegative("punch.combo_reset_interval", c.Punch.ComboResetInterval)
	positive("punch.hit_radius", c.Punch.HitRadius)

	positive("collider.stand_height", c.Collider.StandHeight)
	positive("collider.crouch_height", c.Collider.CrouchHeight)

	return errors.Join(errs...)
}
