// Package sim assembles a playable scene: the course, the player body, both
// camera rigs and every system of the tick in order.
package sim

import (
	"fmt"
	"log/slog"

	"github.com/plus3/strider/anim"
	"github.com/plus3/strider/camera"
	"github.com/plus3/strider/config"
	"github.com/plus3/strider/input"
	"github.com/plus3/strider/locomotion"
	"github.com/plus3/strider/loop"
	"github.com/plus3/strider/physics"
	"github.com/plus3/strider/vecmath"
)

// Sim owns one player in one world.
type Sim struct {
	Config config.Config
	Course Course

	World       *physics.World
	Body        *physics.Rigidbody
	Params      *anim.Parameters
	Timeline    *anim.Timeline
	Dispatcher  *input.Dispatcher
	ThirdPerson *camera.VirtualCamera
	FirstPerson *camera.VirtualCamera
	Camera      *camera.Coordinator
	Rigs        *RigFollower
	Timers      *loop.Timers
	Scheduler   *loop.Scheduler
	Controller  *locomotion.Controller
}

// New builds the scene described by cfg. The backend may be nil and bound
// later through Dispatcher.SetBackend.
func New(cfg config.Config, backend input.Backend, logger *slog.Logger) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sim config: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	initial, _ := cfg.InitialCamera()

	s := &Sim{
		Config:     cfg,
		World:      physics.NewWorld(),
		Params:     anim.NewParameters(),
		Dispatcher: input.NewDispatcher(backend),
		Timers:     loop.NewTimers(),
		Scheduler:  loop.NewScheduler(),
	}
	s.World.Gravity = cfg.Physics.Gravity
	s.Course = BuildCourse(s.World)

	shape := cfg.Player.Collider
	s.Body = physics.NewRigidbody(SpawnPoint, cfg.Physics.Radius, shape.StandHeight, vecmath.Vec3{Y: shape.StandCenter})
	s.Body.Mass = cfg.Physics.Mass
	s.Body.Drag = cfg.Physics.Drag
	s.World.AddBody(s.Body)

	s.ThirdPerson = camera.NewVirtualCamera("third person", cfg.Camera.ThirdPersonFOV, cfg.Camera.LookSensitivity)
	s.FirstPerson = camera.NewVirtualCamera("first person", cfg.Camera.FirstPersonFOV, cfg.Camera.LookSensitivity)
	for _, rig := range []*camera.VirtualCamera{s.ThirdPerson, s.FirstPerson} {
		rig.SetPitchLimits(cfg.Camera.MinPitch, cfg.Camera.MaxPitch)
	}
	// first-person panning belongs to the body until a climb or glide hands
	// it to the rig
	s.FirstPerson.Controller(camera.LookAxisName).Enabled = false

	s.Camera = camera.NewCoordinator(s.Dispatcher, s.ThirdPerson, s.FirstPerson, initial)
	s.Camera.SetLogger(logger)
	s.Timeline = anim.NewTimeline(s.Params, anim.PunchClip(cfg.Animation.PunchImpact, cfg.Animation.PunchEnd))

	ctrl, err := locomotion.New(cfg.Player, locomotion.Deps{
		Input:           s.Dispatcher,
		Camera:          s.Camera,
		Body:            s.Body,
		Collider:        s.Body.Capsule,
		Physics:         s.World,
		Animator:        s.Timeline,
		AnimationEvents: s.Timeline,
		Timers:          s.Timers,
		Clock:           s.Scheduler,
		Logger:          logger,
	})
	if err != nil {
		s.Camera.Close()
		return nil, err
	}
	s.Controller = ctrl
	s.Rigs = NewRigFollower(s.Dispatcher, s.Scheduler, s.Body, s.ThirdPerson, s.FirstPerson)

	s.Scheduler.RegisterNamed("input", s.Dispatcher)
	s.Scheduler.RegisterNamed("locomotion", s.Controller)
	s.Scheduler.RegisterNamed("animation", s.Timeline)
	s.Scheduler.RegisterNamed("timers", s.Timers)
	s.Scheduler.RegisterNamed("physics", s.World)
	s.Scheduler.RegisterNamed("camera", s.Rigs)
	return s, nil
}

// Step runs one tick at the configured rate.
func (s *Sim) Step() {
	s.Scheduler.Once(s.Config.TickInterval())
}

// Steps runs n ticks.
func (s *Sim) Steps(n int) {
	for range n {
		s.Step()
	}
}

// Elapsed is the simulated time since the scene was built, in seconds.
func (s *Sim) Elapsed() float64 {
	return s.Timers.Now()
}

// Close releases every subscription held by the scene.
func (s *Sim) Close() {
	s.Rigs.Close()
	s.Controller.Close()
	s.Camera.Close()
}
