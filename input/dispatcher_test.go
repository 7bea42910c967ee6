package input_test

import (
	"testing"

	"github.com/plus3/strider/event"
	"github.com/plus3/strider/input"
	"github.com/plus3/strider/loop"
	"github.com/plus3/strider/vecmath"
	"github.com/stretchr/testify/assert"
)

type recorder struct {
	moves    []vecmath.Vec2
	looks    []vecmath.Vec2
	sprints  []bool
	signals  map[string]int
	sequence []string
}

func subscribeAll(d *input.Dispatcher) *recorder {
	r := &recorder{signals: make(map[string]int)}
	d.Move.Subscribe(func(v vecmath.Vec2) { r.moves = append(r.moves, v) })
	d.Look.Subscribe(func(v vecmath.Vec2) { r.looks = append(r.looks, v) })
	d.Sprint.Subscribe(func(held bool) { r.sprints = append(r.sprints, held) })

	signals := map[string]*event.Signal{
		"jump":         &d.Jump,
		"climb":        &d.Climb,
		"change_pov":   &d.ChangePOV,
		"crouch":       &d.Crouch,
		"glide":        &d.Glide,
		"cancel_climb": &d.CancelClimb,
		"cancel_glide": &d.CancelGlide,
		"punch":        &d.Punch,
	}
	for name, s := range signals {
		s.Subscribe(event.Bare(func() {
			r.signals[name]++
			r.sequence = append(r.sequence, name)
		}))
	}
	return r
}

func run(d *input.Dispatcher, ticks int) {
	scheduler := loop.NewScheduler()
	scheduler.Register(d)
	for range ticks {
		scheduler.Once(1.0 / 60)
	}
}

func TestContinuousIntentsFireOnlyWhenNonZero(t *testing.T) {
	script := input.NewScript(
		input.ScriptFrame{Move: vecmath.Vec2{X: 0.5, Y: 2}},
		input.ScriptFrame{},
		input.ScriptFrame{Look: vecmath.Vec2{X: -3}},
	)
	d := input.NewDispatcher(script)
	r := subscribeAll(d)

	run(d, 3)

	assert.Equal(t, []vecmath.Vec2{{X: 0.5, Y: 2}}, r.moves, "move payload is raw and unnormalized")
	assert.Equal(t, []vecmath.Vec2{{X: -3}}, r.looks)
}

func TestSprintFiresEveryTick(t *testing.T) {
	script := input.NewScript(input.Sequence(
		input.Hold(2, vecmath.Vec2{}, input.ActionSprint),
		input.Idle(2),
	)...)
	d := input.NewDispatcher(script)
	r := subscribeAll(d)

	run(d, 4)

	assert.Equal(t, []bool{true, true, false, false}, r.sprints)
}

func TestEdgeIntentsFireOnPressOnly(t *testing.T) {
	script := input.NewScript(input.Sequence(
		input.Hold(3, vecmath.Vec2{}, input.ActionJump),
		input.Idle(1),
		input.Tap(input.ActionJump),
	)...)
	d := input.NewDispatcher(script)
	r := subscribeAll(d)

	run(d, 6)

	assert.Equal(t, 2, r.signals["jump"], "holding does not repeat and release does not fire")
}

func TestCancelFansOut(t *testing.T) {
	script := input.NewScript(input.Tap(input.ActionCancel)...)
	d := input.NewDispatcher(script)
	r := subscribeAll(d)

	run(d, 2)

	assert.Equal(t, []string{"cancel_climb", "cancel_glide"}, r.sequence)
}

func TestDispatchOrder(t *testing.T) {
	script := input.NewScript(input.ScriptFrame{
		Held: []input.Action{
			input.ActionPunch, input.ActionGlide, input.ActionCrouch, input.ActionChangePOV,
			input.ActionClimb, input.ActionJump, input.ActionCancel,
		},
	})
	d := input.NewDispatcher(script)
	r := subscribeAll(d)

	run(d, 1)

	assert.Equal(t, []string{
		"jump", "climb", "change_pov", "crouch", "glide", "cancel_climb", "cancel_glide", "punch",
	}, r.sequence)
}

func TestNoSubscribers(t *testing.T) {
	script := input.NewScript(input.Tap(input.ActionJump, input.ActionCancel)...)
	d := input.NewDispatcher(script)
	assert.NotPanics(t, func() { run(d, 2) })
}

func TestUnboundDispatcherIsIdle(t *testing.T) {
	d := input.NewDispatcher(nil)
	r := subscribeAll(d)
	run(d, 3)
	assert.Empty(t, r.sprints)
}

func TestSubscriberPanicPropagates(t *testing.T) {
	d := input.NewDispatcher(nil)
	d.Jump.Subscribe(event.Bare(func() { panic("subscriber failed") }))
	script := input.NewScript(input.Tap(input.ActionJump)...)
	assert.Panics(t, func() { d.Sample(script) })
}

func TestScriptEdges(t *testing.T) {
	script := input.NewScript(input.Sequence(
		input.Hold(2, vecmath.Vec2{}, input.ActionCrouch),
		input.Tap(input.ActionCrouch),
	)...)

	var pressed []bool
	for range script.Len() {
		pressed = append(pressed, script.JustPressed(input.ActionCrouch))
		script.Advance()
	}
	assert.Equal(t, []bool{true, false, false, false}, pressed, "tap right after a hold is not a new press")
	assert.True(t, script.Done())
	assert.False(t, script.Held(input.ActionCrouch))
}

func TestParseAction(t *testing.T) {
	for _, a := range input.Actions() {
		parsed, ok := input.ParseAction(a.String())
		assert.True(t, ok)
		assert.Equal(t, a, parsed)
	}
	_, ok := input.ParseAction("teleport")
	assert.False(t, ok)
}
