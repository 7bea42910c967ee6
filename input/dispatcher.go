package input

import (
	"github.com/plus3/strider/event"
	"github.com/plus3/strider/loop"
	"github.com/plus3/strider/vecmath"
)

// Dispatcher samples a Backend once per tick and emits each intent that fired.
// Subscribers are called synchronously; a failing subscriber is not recovered.
type Dispatcher struct {
	Move        event.Event[vecmath.Vec2]
	Look        event.Event[vecmath.Vec2]
	Sprint      event.Event[bool]
	Jump        event.Signal
	Climb       event.Signal
	ChangePOV   event.Signal
	Crouch      event.Signal
	Glide       event.Signal
	CancelClimb event.Signal
	CancelGlide event.Signal
	Punch       event.Signal

	backend Backend
}

// NewDispatcher creates a dispatcher bound to backend. The backend may be nil
// when the caller drives Sample directly.
func NewDispatcher(backend Backend) *Dispatcher {
	return &Dispatcher{backend: backend}
}

// SetBackend rebinds the sampled backend.
func (d *Dispatcher) SetBackend(backend Backend) {
	d.backend = backend
}

// Execute samples the bound backend. It is the first system of every frame.
func (d *Dispatcher) Execute(frame *loop.Frame) {
	if d.backend == nil {
		return
	}
	d.Sample(d.backend)
	if adv, ok := d.backend.(Advancer); ok {
		adv.Advance()
	}
}

// Sample evaluates every intent against b in a fixed order.
func (d *Dispatcher) Sample(b Backend) {
	if move := b.Axis(AxisMove); !move.IsZero() {
		d.Move.Emit(move)
	}
	if look := b.Axis(AxisLook); !look.IsZero() {
		d.Look.Emit(look)
	}

	// held state is reported every tick, released included
	d.Sprint.Emit(b.Held(ActionSprint))

	d.edge(b, ActionJump, &d.Jump)
	d.edge(b, ActionClimb, &d.Climb)
	d.edge(b, ActionChangePOV, &d.ChangePOV)
	d.edge(b, ActionCrouch, &d.Crouch)
	d.edge(b, ActionGlide, &d.Glide)
	if b.JustPressed(ActionCancel) {
		event.Fire(&d.CancelClimb)
		event.Fire(&d.CancelGlide)
	}
	d.edge(b, ActionPunch, &d.Punch)
}

func (d *Dispatcher) edge(b Backend, action Action, s *event.Signal) {
	if b.JustPressed(action) {
		event.Fire(s)
	}
}
