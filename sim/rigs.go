package sim

import (
	"github.com/plus3/strider/camera"
	"github.com/plus3/strider/event"
	"github.com/plus3/strider/input"
	"github.com/plus3/strider/locomotion"
	"github.com/plus3/strider/loop"
	"github.com/plus3/strider/vecmath"
)

// RigFollower steers both camera rigs. Look input turns each rig through its
// own axis controllers; a first-person rig whose pan controller is disabled
// tracks the body's heading instead.
type RigFollower struct {
	body        locomotion.Body
	clock       locomotion.Clock
	thirdPerson *camera.VirtualCamera
	firstPerson *camera.VirtualCamera
	subs        event.Group
}

func NewRigFollower(d *input.Dispatcher, clock locomotion.Clock, body locomotion.Body, thirdPerson, firstPerson *camera.VirtualCamera) *RigFollower {
	r := &RigFollower{
		body:        body,
		clock:       clock,
		thirdPerson: thirdPerson,
		firstPerson: firstPerson,
	}
	r.subs.Add(d.Look.Subscribe(r.look))
	return r
}

func (r *RigFollower) look(delta vecmath.Vec2) {
	dt := r.clock.DeltaTime()
	r.thirdPerson.ApplyLook(delta, dt)
	r.firstPerson.ApplyLook(delta, dt)
}

// Execute runs after integration so the first-person rig sees this tick's heading.
func (r *RigFollower) Execute(*loop.Frame) {
	if pan := r.firstPerson.Controller(camera.LookAxisName); pan != nil && !pan.Enabled {
		r.firstPerson.SetYaw(r.body.Rotation().Yaw)
	}
}

func (r *RigFollower) Close() {
	r.subs.Close()
}
