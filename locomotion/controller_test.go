package locomotion_test

import (
	"math/rand/v2"
	"testing"

	"github.com/plus3/strider/anim"
	"github.com/plus3/strider/camera"
	"github.com/plus3/strider/input"
	"github.com/plus3/strider/locomotion"
	"github.com/plus3/strider/loop"
	"github.com/plus3/strider/physics"
	"github.com/plus3/strider/vecmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartsStanding(t *testing.T) {
	h := newHarness(t)
	h.tick()

	state := h.ctrl.State()
	assert.Equal(t, locomotion.Stand, state.Stance)
	assert.Equal(t, 240.0, state.Speed)
	assert.True(t, state.Grounded)
	assert.False(t, state.InFrontOfClimbable)
	assert.Nil(t, state.ClimbableHit)
	assert.Equal(t, 0, state.Combo)
	assert.Equal(t, 1.8, h.collider.Height())
	assert.Equal(t, vecmath.Vec3{Y: 0.9}, h.collider.Center())
	assert.True(t, h.params.Bool(anim.IsGrounded))
}

func TestNewValidates(t *testing.T) {
	_, err := locomotion.New(locomotion.DefaultConfig(), locomotion.Deps{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input dispatcher is required")
	assert.Contains(t, err.Error(), "clock is required")

	cfg := locomotion.DefaultConfig()
	cfg.WalkSpeed = 0
	cfg.Climb.Model = "ladder"
	_, err = locomotion.New(cfg, locomotion.Deps{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "walk_speed")
	assert.Contains(t, err.Error(), "climb.model")
}

func TestCloseReleasesSubscriptions(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, 1, h.dispatcher.Move.Len())
	assert.Equal(t, 1, h.dispatcher.Punch.Len())

	h.ctrl.Close()
	assert.Equal(t, 0, h.dispatcher.Move.Len())
	assert.Equal(t, 0, h.dispatcher.Sprint.Len())
	assert.Equal(t, 0, h.dispatcher.CancelGlide.Len())
	assert.Equal(t, 1, h.dispatcher.ChangePOV.Len(), "the coordinator keeps its own subscription")

	h.coord.TogglePerspective()
	assert.Equal(t, 0, h.params.Triggered(anim.TriggerChangePOV))
}

func TestStanceFlagsStayExclusive(t *testing.T) {
	h := newHarness(t)
	h.addWall()
	h.tick()

	rng := rand.New(rand.NewPCG(7, 11))
	actions := []input.Action{
		input.ActionCrouch, input.ActionClimb, input.ActionGlide,
		input.ActionCancel, input.ActionJump, input.ActionPunch,
	}
	for i := range 500 {
		if rng.IntN(8) == 0 {
			if h.body.position.Y == 0 {
				h.airborne()
			} else {
				h.landed()
			}
		}
		frame := input.ScriptFrame{Held: []input.Action{actions[rng.IntN(len(actions))]}}
		if rng.IntN(2) == 0 {
			frame.Move = vecmath.Vec2{X: rng.Float64()*2 - 1, Y: rng.Float64()*2 - 1}
		}
		h.play(frame, input.ScriptFrame{})

		s := h.stance()
		require.Equal(t, s == locomotion.Crouch, h.params.Bool(anim.IsCrouch), "step %d stance %v", i, s)
		require.Equal(t, s == locomotion.Climb, h.params.Bool(anim.IsClimbing), "step %d stance %v", i, s)
		require.Equal(t, s == locomotion.Glide, h.params.Bool(anim.IsGliding), "step %d stance %v", i, s)
	}
}

func TestClimbRequiresGround(t *testing.T) {
	for _, crouched := range []bool{false, true} {
		h := newHarness(t)
		h.addWall()
		h.airborne()
		h.tick()
		if crouched {
			h.ctrl.Crouch()
		}
		before := h.stance()
		require.True(t, h.ctrl.State().InFrontOfClimbable)
		require.False(t, h.ctrl.State().Grounded)

		h.ctrl.StartClimb()
		assert.Equal(t, before, h.stance())
		assert.False(t, h.params.Bool(anim.IsClimbing))
		assert.Equal(t, 60.0, h.tps.FieldOfView())
	}
}

func TestClimbRequiresWall(t *testing.T) {
	h := newHarness(t)
	h.tick()

	h.ctrl.StartClimb()
	assert.Equal(t, locomotion.Stand, h.stance())
}

func TestStartClimb(t *testing.T) {
	h := newHarness(t)
	h.addWall()
	h.tick()

	h.ctrl.StartClimb()
	state := h.ctrl.State()
	assert.Equal(t, locomotion.Climb, state.Stance)
	require.NotNil(t, state.ClimbableHit)
	assert.InDelta(t, 0.3, state.ClimbableHit.Distance, 1e-9)
	assert.Equal(t, appliedForce{Force: vecmath.Vec3{Y: 300}, Mode: physics.ForceContinuous}, h.body.lastForce(t))
	assert.Equal(t, vecmath.Vec3{Y: 1.3}, h.collider.Center())
	assert.Equal(t, 80.0, h.tps.FieldOfView())
	assert.True(t, h.fps.Controller(camera.LookAxisName).Enabled)
	assert.True(t, h.params.Bool(anim.IsClimbing))
}

func TestStartClimbFromCrouchRestoresStandingShape(t *testing.T) {
	h := newHarness(t)
	h.addWall()
	h.tick()
	h.ctrl.Crouch()

	h.ctrl.StartClimb()
	assert.Equal(t, locomotion.Climb, h.stance())
	assert.False(t, h.params.Bool(anim.IsCrouch))
	assert.Equal(t, 1.8, h.collider.Height())
	assert.Equal(t, 240.0, h.ctrl.State().Speed)
}

func TestClimbExitsWhenWallIsLost(t *testing.T) {
	h := newHarness(t)
	wall := h.climbing()

	h.world.Destroy(wall)
	h.tick()
	require.Equal(t, locomotion.Climb, h.stance(), "losing the wall alone does not exit")

	h.ctrl.Move(vecmath.Vec2{Y: 1})
	assert.Equal(t, locomotion.Stand, h.stance())
	assert.Empty(t, h.body.forces, "the falling-off move applies nothing")
	assert.Equal(t, vecmath.Vec3{Y: 0.9}, h.collider.Center())
	assert.Equal(t, 60.0, h.tps.FieldOfView())
	assert.False(t, h.fps.Controller(camera.LookAxisName).Enabled)
	assert.False(t, h.params.Bool(anim.IsClimbing))
}

func TestCancelClimbIntent(t *testing.T) {
	h := newHarness(t)
	h.climbing()

	h.play(input.Tap(input.ActionCancel)...)
	assert.Equal(t, locomotion.Stand, h.stance())
}

func TestStayClimbingSticksToWall(t *testing.T) {
	h := newHarness(t)
	h.climbing()

	h.tick()
	require.Len(t, h.body.forces, 1)
	f := h.body.forces[0]
	assert.True(t, f.Force.ApproxEqual(vecmath.Vec3{Z: 20}, 1e-9), "got %+v", f.Force)
	assert.Equal(t, physics.ForceContinuous, f.Mode)
}

func TestClimbContinuousIsVelocityCapped(t *testing.T) {
	h := newHarness(t)
	h.climbing()

	h.body.velocity = vecmath.Vec3{X: 1, Y: 2}
	h.ctrl.Move(vecmath.Vec2{X: 1})
	f := h.body.lastForce(t)
	assert.Equal(t, physics.ForceVelocityChange, f.Mode)
	assert.True(t, f.Force.ApproxEqual(vecmath.Vec3{X: 0.5}, 1e-9))
	assert.InDelta(t, 2.2360679775, h.params.Float(anim.ClimbVelocityX), 1e-9)
	assert.InDelta(t, 0, h.params.Float(anim.ClimbVelocityY), 1e-9)

	h.body.forces = nil
	h.body.velocity = vecmath.Vec3{Y: 2.8}
	h.ctrl.Move(vecmath.Vec2{Y: 1})
	assert.Empty(t, h.body.forces, "2.8 + 0.5 is over the 3 limit")
}

func TestClimbStepLatches(t *testing.T) {
	h := newHarness(t, func(c *locomotion.Config) { c.Climb.Model = locomotion.ClimbStep })
	h.climbing()

	h.ctrl.Move(vecmath.Vec2{Y: 1})
	f := h.body.lastForce(t)
	assert.Equal(t, physics.ForceVelocityChange, f.Mode)
	assert.True(t, f.Force.ApproxEqual(vecmath.Vec3{Y: 1.5}, 1e-9))
	assert.True(t, h.ctrl.State().ClimbStepLatched)

	h.body.forces = nil
	h.ctrl.Move(vecmath.Vec2{Y: 1})
	assert.Empty(t, h.body.forces, "mid-step input is ignored")

	h.ticks(23)
	assert.False(t, h.ctrl.State().ClimbStepLatched)

	h.body.forces = nil
	h.ctrl.Move(vecmath.Vec2{X: 1, Y: -1})
	f = h.body.lastForce(t)
	assert.True(t, f.Force.ApproxEqual(vecmath.Vec3{X: 1.2, Y: -0.9}, 1e-9), "got %+v", f.Force)
}

func TestGlideExitsOnLanding(t *testing.T) {
	h := newHarness(t)
	h.gliding()
	assert.True(t, h.params.Bool(anim.IsGliding))
	assert.True(t, h.fps.Controller(camera.LookAxisName).Enabled)

	h.body.rotation = vecmath.Euler{Pitch: 20, Yaw: 45, Roll: -10}
	h.landed()
	h.tick()

	assert.Equal(t, locomotion.Stand, h.stance())
	assert.False(t, h.params.Bool(anim.IsGliding))
	assert.False(t, h.fps.Controller(camera.LookAxisName).Enabled)
	assert.Equal(t, vecmath.YawOnly(45), h.body.rotation)

	h.body.forces = nil
	h.ctrl.Move(vecmath.Vec2{Y: 1})
	require.NotEmpty(t, h.body.forces, "next move walks")
}

func TestGlideRequiresAir(t *testing.T) {
	h := newHarness(t)
	h.tick()

	h.ctrl.StartGlide()
	assert.Equal(t, locomotion.Stand, h.stance())
}

func TestGlideFromClimbLeavesWall(t *testing.T) {
	h := newHarness(t)
	h.climbing()
	h.airborne()
	h.tick()

	h.ctrl.StartGlide()
	assert.Equal(t, locomotion.Glide, h.stance())
	assert.False(t, h.params.Bool(anim.IsClimbing))
	assert.Equal(t, 60.0, h.tps.FieldOfView())
	assert.Equal(t, vecmath.Vec3{Y: 0.9}, h.collider.Center())
}

func TestGlideFromClimbClearsStep(t *testing.T) {
	h := newHarness(t, func(c *locomotion.Config) { c.Climb.Model = locomotion.ClimbStep })
	h.climbing()
	h.ctrl.Move(vecmath.Vec2{Y: 1})
	h.airborne()
	h.tick()
	require.True(t, h.ctrl.State().ClimbStepLatched)
	require.Greater(t, h.ctrl.State().ClimbStepTimer, 0.0)

	h.ctrl.StartGlide()
	state := h.ctrl.State()
	assert.Equal(t, locomotion.Glide, state.Stance)
	assert.False(t, state.ClimbStepLatched)
	assert.Zero(t, state.ClimbStepTimer)
}

func TestGlideSteering(t *testing.T) {
	h := newHarness(t)
	h.gliding()

	h.ctrl.Move(vecmath.Vec2{X: 1, Y: 1})
	assert.InDelta(t, 45*dt, h.body.rotation.Pitch, 1e-9)
	assert.InDelta(t, 60*dt, h.body.rotation.Yaw, 1e-9)
	assert.InDelta(t, 30*dt, h.body.rotation.Roll, 1e-9)
	assert.Empty(t, h.body.forces, "steering applies no force")

	for range 200 {
		h.ctrl.Move(vecmath.Vec2{Y: 1})
	}
	assert.InDelta(t, 30, h.body.rotation.Pitch, 1e-9)

	for range 200 {
		h.ctrl.Move(vecmath.Vec2{Y: -1})
	}
	assert.InDelta(t, -30, h.body.rotation.Pitch, 1e-9)
}

func TestGlidePropulsionOncePerTick(t *testing.T) {
	h := newHarness(t)
	h.gliding()

	h.ctrl.Move(vecmath.Vec2{X: 0.5})
	h.ctrl.Move(vecmath.Vec2{X: 0.5})
	h.body.rotation = vecmath.Euler{}
	h.tick()

	require.Len(t, h.body.forces, 1)
	f := h.body.forces[0]
	assert.Equal(t, physics.ForceContinuous, f.Mode)
	assert.True(t, f.Force.ApproxEqual(vecmath.Vec3{Y: 500 * dt, Z: 600 * dt}, 1e-9), "got %+v", f.Force)
}

func TestSprintIsBounded(t *testing.T) {
	h := newHarness(t)
	h.tick()
	cfg := h.ctrl.Config()

	h.dispatcher.SetBackend(input.NewScript(input.Hold(100, vecmath.Vec2{}, input.ActionSprint)...))
	last := h.ctrl.State().Speed
	for range 100 {
		h.tick()
		speed := h.ctrl.State().Speed
		require.GreaterOrEqual(t, speed, last)
		require.LessOrEqual(t, speed, cfg.SprintSpeed)
		last = speed
	}
	assert.Equal(t, cfg.SprintSpeed, last)

	h.dispatcher.SetBackend(input.NewScript(input.Idle(100)...))
	for range 100 {
		h.tick()
		speed := h.ctrl.State().Speed
		require.LessOrEqual(t, speed, last)
		require.GreaterOrEqual(t, speed, cfg.WalkSpeed)
		last = speed
	}
	assert.Equal(t, cfg.WalkSpeed, last)
}

func TestSprintOnlyWhileStanding(t *testing.T) {
	h := newHarness(t)
	h.tick()
	h.ctrl.Crouch()

	h.ctrl.Sprint(true)
	assert.Equal(t, 120.0, h.ctrl.State().Speed)
	h.ctrl.Sprint(false)
	assert.Equal(t, 120.0, h.ctrl.State().Speed, "release does not pull crouch speed up to walk")
}

func TestJumpAppliesImpulseOnce(t *testing.T) {
	h := newHarness(t)
	h.tick()
	h.body.forces = nil

	h.play(input.Tap(input.ActionJump)...)
	require.Len(t, h.body.forces, 1)
	assert.Equal(t, appliedForce{Force: vecmath.Vec3{Y: 300}, Mode: physics.ForceContinuous}, h.body.forces[0])
	assert.Equal(t, locomotion.Stand, h.stance())
	assert.Equal(t, 1, h.params.Triggered(anim.TriggerJump))
}

func TestJumpGuards(t *testing.T) {
	h := newHarness(t)
	h.airborne()
	h.tick()
	h.ctrl.Jump()
	assert.Empty(t, h.body.forces, "airborne")

	h.landed()
	h.tick()
	h.ctrl.Crouch()
	h.ctrl.Jump()
	assert.Empty(t, h.body.forces, "crouching")
	assert.Equal(t, 0, h.params.Triggered(anim.TriggerJump))
}

func TestThirdPersonMoveDampsTowardCamera(t *testing.T) {
	h := newHarness(t)
	h.tick()
	h.tps.SetYaw(30)

	h.ctrl.Move(vecmath.Vec2{Y: 1})

	var velocity float64
	want := vecmath.SmoothDampAngle(0, 30, &velocity, 0.1, dt)
	require.Greater(t, want, 0.0)
	require.Less(t, want, 30.0)
	assert.InDelta(t, want, h.body.rotation.Yaw, 1e-9)
	assert.InDelta(t, velocity, h.ctrl.State().RotationVelocity, 1e-9)

	f := h.body.lastForce(t)
	assert.Equal(t, physics.ForceContinuous, f.Mode)
	assert.True(t, f.Force.ApproxEqual(vecmath.YawOnly(want).Forward().Scale(dt*240), 1e-9))
	assert.InDelta(t, dt*240, f.Force.Len(), 1e-9)
}

func TestThirdPersonMoveDeadZone(t *testing.T) {
	h := newHarness(t)
	h.tick()

	h.ctrl.Move(vecmath.Vec2{X: 0.05, Y: 0.05})
	assert.Empty(t, h.body.forces)
	assert.Equal(t, 0.0, h.body.rotation.Yaw)
}

func TestMoveWritesVelocityParameters(t *testing.T) {
	h := newHarness(t)
	h.tick()
	h.body.velocity = vecmath.Vec3{X: 3, Y: -7, Z: 4}

	h.ctrl.Move(vecmath.Vec2{X: 0.6, Y: 0.8})
	assert.InDelta(t, 5, h.params.Float(anim.Velocity), 1e-9)
	assert.InDelta(t, 4, h.params.Float(anim.VelocityZ), 1e-9)
	assert.InDelta(t, 3, h.params.Float(anim.VelocityX), 1e-9)
}

func TestFirstPersonMoveUsesBodyAxes(t *testing.T) {
	h := newHarness(t)
	h.tick()
	h.coord.TogglePerspective()
	assert.Equal(t, 1, h.params.Triggered(anim.TriggerChangePOV))
	h.body.rotation = vecmath.YawOnly(90)

	h.ctrl.Move(vecmath.Vec2{Y: 1})
	assert.True(t, h.body.lastForce(t).Force.ApproxEqual(vecmath.Vec3{X: dt * 240}, 1e-9))

	h.ctrl.Move(vecmath.Vec2{X: 1})
	assert.True(t, h.body.lastForce(t).Force.ApproxEqual(vecmath.Vec3{Z: -dt * 240}, 1e-9))
	assert.Equal(t, 90.0, h.body.rotation.Yaw, "first person move never turns the body")
}

func TestLookTurnsBodyInFirstPerson(t *testing.T) {
	h := newHarness(t)
	h.tick()

	h.ctrl.Look(vecmath.Vec2{X: 2})
	assert.Equal(t, 0.0, h.body.rotation.Yaw, "third person look leaves the body alone")

	h.coord.TogglePerspective()
	h.ctrl.Look(vecmath.Vec2{X: 2})
	h.ctrl.Look(vecmath.Vec2{X: 2, Y: 5})
	assert.InDelta(t, 2*2*90*dt, h.body.rotation.Yaw, 1e-9)
	assert.Equal(t, 0.0, h.body.rotation.Pitch)
}

func TestMoveIgnoredWhilePunching(t *testing.T) {
	h := newHarness(t)
	h.tick()

	h.ctrl.Punch()
	h.ctrl.Move(vecmath.Vec2{Y: 1})
	assert.Empty(t, h.body.forces)
}

func TestCrouchToggle(t *testing.T) {
	h := newHarness(t)
	h.tick()

	h.play(input.Tap(input.ActionCrouch)...)
	assert.Equal(t, locomotion.Crouch, h.stance())
	assert.Equal(t, 120.0, h.ctrl.State().Speed)
	assert.Equal(t, 1.3, h.collider.Height())
	assert.Equal(t, vecmath.Vec3{Y: 0.66}, h.collider.Center())
	assert.True(t, h.params.Bool(anim.IsCrouch))

	h.play(input.Tap(input.ActionCrouch)...)
	assert.Equal(t, locomotion.Stand, h.stance())
	assert.Equal(t, 240.0, h.ctrl.State().Speed)
	assert.Equal(t, 1.8, h.collider.Height())
	assert.Equal(t, vecmath.Vec3{Y: 0.9}, h.collider.Center())
	assert.False(t, h.params.Bool(anim.IsCrouch))
}

func TestStepUpOverLowObstacle(t *testing.T) {
	h := newHarness(t)
	h.world.AddBox("curb", vecmath.Vec3{X: -1, Z: 0.3}, vecmath.Vec3{X: 1, Y: 0.2, Z: 1}, physics.LayerDefault)

	h.tick()
	require.Len(t, h.body.forces, 1)
	assert.Equal(t, appliedForce{Force: vecmath.Vec3{Y: 40}, Mode: physics.ForceContinuous}, h.body.forces[0])
}

func TestNoStepUpAgainstWall(t *testing.T) {
	h := newHarness(t)
	h.addWall()

	h.tick()
	assert.Empty(t, h.body.forces)
}

func TestPunchComboWrapsAround(t *testing.T) {
	h := newHarness(t)
	h.tick()

	var combos []int
	for range 4 {
		h.ctrl.Punch()
		combos = append(combos, h.ctrl.State().Combo)
		assert.Equal(t, h.ctrl.State().Combo, h.params.Integer(anim.Combo))
		h.ticks(16)
		require.False(t, h.ctrl.State().Punching)
	}
	assert.Equal(t, []int{1, 2, 3, 1}, combos)
	assert.Equal(t, 4, h.params.Triggered(anim.TriggerPunch))
}

func TestPunchIgnoredWhilePunchingOrNotStanding(t *testing.T) {
	h := newHarness(t)
	h.tick()

	h.ctrl.Punch()
	h.ctrl.Punch()
	assert.Equal(t, 1, h.ctrl.State().Combo)
	assert.Equal(t, 1, h.params.Triggered(anim.TriggerPunch))

	h.ticks(16)
	h.ctrl.Crouch()
	h.ctrl.Punch()
	assert.Equal(t, 1, h.ctrl.State().Combo)
}

func TestComboDecays(t *testing.T) {
	h := newHarness(t)
	h.tick()

	h.ctrl.Punch()
	h.ticks(16)
	state := h.ctrl.State()
	require.False(t, state.Punching)
	require.True(t, state.ComboResetPending)
	assert.InDelta(t, 17*dt+1, state.ComboResetAt, 1e-9)

	h.ticks(63)
	assert.Equal(t, 1, h.ctrl.State().Combo)
	h.tick()
	assert.Equal(t, 0, h.ctrl.State().Combo)
	assert.False(t, h.ctrl.State().ComboResetPending)
}

func TestPunchCancelsPendingReset(t *testing.T) {
	h := newHarness(t)
	h.tick()

	h.ctrl.Punch()
	h.ticks(16)
	h.ticks(32)
	h.ctrl.Punch()
	assert.Equal(t, 2, h.ctrl.State().Combo)
	assert.False(t, h.ctrl.State().ComboResetPending)

	h.ticks(40)
	assert.Equal(t, 2, h.ctrl.State().Combo, "the first reset was cancelled")
	assert.True(t, h.ctrl.State().ComboResetPending)
}

func TestPunchImpactDestroysHittables(t *testing.T) {
	h := newHarness(t)
	target := h.world.AddSphere("dummy", vecmath.Vec3{Y: 1.2, Z: 1}, 0.2, physics.LayerHittable)
	far := h.world.AddSphere("far dummy", vecmath.Vec3{X: 5, Y: 1, Z: 5}, 0.2, physics.LayerHittable)
	wall := h.world.AddBox("near wall", vecmath.Vec3{X: -1, Y: 1, Z: 0.8}, vecmath.Vec3{X: 1, Y: 2, Z: 1.5}, physics.LayerDefault)
	h.tick()

	h.play(input.Tap(input.ActionPunch)...)
	h.ticks(6)

	_, ok := h.world.Collider(target)
	assert.False(t, ok, "target destroyed on impact")
	_, ok = h.world.Collider(far)
	assert.True(t, ok)
	_, ok = h.world.Collider(wall)
	assert.True(t, ok, "only hit layers are destroyed")
}

func TestHandleAnimationEvent(t *testing.T) {
	h := newHarness(t)
	h.tick()
	h.ctrl.Punch()

	h.ctrl.HandleAnimationEvent("footstep")
	assert.True(t, h.ctrl.State().Punching)

	h.ctrl.HandleAnimationEvent(anim.EventPunchEnd)
	assert.False(t, h.ctrl.State().Punching)
	assert.True(t, h.ctrl.State().ComboResetPending)
}

func TestDisabledFeatures(t *testing.T) {
	h := newHarness(t, func(c *locomotion.Config) { c.Features = locomotion.Features{} })
	h.addWall()
	h.tick()

	h.ctrl.Crouch()
	h.ctrl.StartClimb()
	h.ctrl.Punch()
	assert.Equal(t, locomotion.Stand, h.stance())
	assert.Equal(t, 0, h.ctrl.State().Combo)

	h.airborne()
	h.tick()
	h.ctrl.StartGlide()
	assert.Equal(t, locomotion.Stand, h.stance())

	h.coord.TogglePerspective()
	h.ctrl.Look(vecmath.Vec2{X: 1})
	assert.Equal(t, 0.0, h.body.rotation.Yaw)
}

func TestControllerWithRigidbody(t *testing.T) {
	world := physics.NewWorld()
	world.AddBox("ground", vecmath.Vec3{X: -20, Y: -1, Z: -20}, vecmath.Vec3{X: 20, Y: 0, Z: 20}, physics.LayerGround)
	body := physics.NewRigidbody(vecmath.Zero, 0.3, 1.8, vecmath.Vec3{Y: 0.9})
	body.Drag = 2
	world.AddBody(body)

	dispatcher := input.NewDispatcher(nil)
	coord := camera.NewCoordinator(dispatcher, camera.NewVirtualCamera("tps", 60, 90), camera.NewVirtualCamera("fps", 60, 90), camera.ThirdPerson)
	scheduler := loop.NewScheduler()
	timers := loop.NewTimers()
	ctrl, err := locomotion.New(locomotion.DefaultConfig(), locomotion.Deps{
		Input:    dispatcher,
		Camera:   coord,
		Body:     body,
		Collider: body.Capsule,
		Physics:  world,
		Animator: anim.NewParameters(),
		Timers:   timers,
		Clock:    scheduler,
	})
	require.NoError(t, err)
	defer ctrl.Close()

	scheduler.Register(dispatcher)
	scheduler.Register(ctrl)
	scheduler.Register(timers)
	scheduler.Register(world)

	dispatcher.SetBackend(input.NewScript(input.Hold(120, vecmath.Vec2{Y: 1})...))
	for range 120 {
		scheduler.Once(dt)
	}

	assert.Greater(t, body.Position().Z, 1.0, "walked forward")
	assert.InDelta(t, 0, body.Position().Y, 1e-6, "stayed on the ground")
	assert.True(t, ctrl.State().Grounded)
}
