package locomotion_test

import (
	"testing"

	"github.com/plus3/strider/anim"
	"github.com/plus3/strider/camera"
	"github.com/plus3/strider/input"
	"github.com/plus3/strider/locomotion"
	"github.com/plus3/strider/loop"
	"github.com/plus3/strider/physics"
	"github.com/plus3/strider/vecmath"
	"github.com/stretchr/testify/require"
)

const dt = 1.0 / 64

type appliedForce struct {
	Force vecmath.Vec3
	Mode  physics.ForceMode
}

// fakeBody records forces without integrating them.
type fakeBody struct {
	position vecmath.Vec3
	rotation vecmath.Euler
	velocity vecmath.Vec3
	forces   []appliedForce
}

func (b *fakeBody) Position() vecmath.Vec3      { return b.position }
func (b *fakeBody) Rotation() vecmath.Euler     { return b.rotation }
func (b *fakeBody) SetRotation(r vecmath.Euler) { b.rotation = r }
func (b *fakeBody) Velocity() vecmath.Vec3      { return b.velocity }

func (b *fakeBody) AddForce(f vecmath.Vec3, mode physics.ForceMode) {
	b.forces = append(b.forces, appliedForce{Force: f, Mode: mode})
}

func (b *fakeBody) lastForce(t *testing.T) appliedForce {
	t.Helper()
	require.NotEmpty(t, b.forces, "no force applied")
	return b.forces[len(b.forces)-1]
}

type harness struct {
	t          *testing.T
	world      *physics.World
	body       *fakeBody
	collider   *physics.CapsuleCollider
	params     *anim.Parameters
	timeline   *anim.Timeline
	dispatcher *input.Dispatcher
	tps, fps   *camera.VirtualCamera
	coord      *camera.Coordinator
	timers     *loop.Timers
	scheduler  *loop.Scheduler
	ctrl       *locomotion.Controller
}

// newHarness wires a controller to a physics world holding only a ground
// slab. The first tick has not run yet: add colliders and place the body,
// then call tick to take the first sensor snapshot.
func newHarness(t *testing.T, tune ...func(*locomotion.Config)) *harness {
	t.Helper()
	cfg := locomotion.DefaultConfig()
	for _, fn := range tune {
		fn(&cfg)
	}

	h := &harness{
		t:          t,
		world:      physics.NewWorld(),
		body:       &fakeBody{},
		collider:   &physics.CapsuleCollider{Radius: 0.3},
		params:     anim.NewParameters(),
		dispatcher: input.NewDispatcher(nil),
		tps:        camera.NewVirtualCamera("third person", 60, 90),
		fps:        camera.NewVirtualCamera("first person", 60, 90),
		timers:     loop.NewTimers(),
		scheduler:  loop.NewScheduler(),
	}
	h.world.AddBox("ground", vecmath.Vec3{X: -20, Y: -1, Z: -20}, vecmath.Vec3{X: 20, Y: 0, Z: 20}, physics.LayerGround)
	h.fps.Controller(camera.LookAxisName).Enabled = false
	h.coord = camera.NewCoordinator(h.dispatcher, h.tps, h.fps, camera.ThirdPerson)
	h.timeline = anim.NewTimeline(h.params, anim.PunchClip(0.125, 0.25))

	ctrl, err := locomotion.New(cfg, locomotion.Deps{
		Input:           h.dispatcher,
		Camera:          h.coord,
		Body:            h.body,
		Collider:        h.collider,
		Physics:         h.world,
		Animator:        h.timeline,
		AnimationEvents: h.timeline,
		Timers:          h.timers,
		Clock:           h.scheduler,
	})
	require.NoError(t, err)
	t.Cleanup(ctrl.Close)
	h.ctrl = ctrl

	h.scheduler.Register(h.dispatcher)
	h.scheduler.Register(ctrl)
	h.scheduler.Register(h.timeline)
	h.scheduler.Register(h.timers)
	return h
}

func (h *harness) tick() {
	h.scheduler.Once(dt)
}

func (h *harness) ticks(n int) {
	for range n {
		h.tick()
	}
}

// play feeds frames through the dispatcher, one per tick.
func (h *harness) play(frames ...input.ScriptFrame) {
	h.dispatcher.SetBackend(input.NewScript(frames...))
	h.ticks(len(frames))
	h.dispatcher.SetBackend(nil)
}

func (h *harness) addWall() physics.ColliderID {
	return h.world.AddBox("wall", vecmath.Vec3{X: -2, Y: 0, Z: 0.3}, vecmath.Vec3{X: 2, Y: 6, Z: 1}, physics.LayerClimbable)
}

func (h *harness) airborne() {
	h.body.position = vecmath.Vec3{Y: 2}
}

func (h *harness) landed() {
	h.body.position = vecmath.Zero
}

func (h *harness) stance() locomotion.Stance {
	return h.ctrl.State().Stance
}

// climbing puts a grounded body in front of a wall into the climb stance.
func (h *harness) climbing() physics.ColliderID {
	h.t.Helper()
	wall := h.addWall()
	h.tick()
	h.ctrl.StartClimb()
	require.Equal(h.t, locomotion.Climb, h.stance())
	h.body.forces = nil
	return wall
}

// gliding puts an airborne body into the glide stance.
func (h *harness) gliding() {
	h.t.Helper()
	h.airborne()
	h.tick()
	h.ctrl.StartGlide()
	require.Equal(h.t, locomotion.Glide, h.stance())
	h.body.forces = nil
}
