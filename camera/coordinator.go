// Package camera owns the player's viewpoint mode and the two camera rigs
// that render it.
package camera

import (
	"log/slog"

	"github.com/plus3/strider/event"
	"github.com/plus3/strider/input"
)

// State is the active viewpoint mode.
type State int

const (
	ThirdPerson State = iota
	FirstPerson
)

func (s State) String() string {
	switch s {
	case ThirdPerson:
		return "third_person"
	case FirstPerson:
		return "first_person"
	default:
		return "unknown"
	}
}

const (
	// LookAxisName is the first-person rig's horizontal look (pan) controller.
	LookAxisName = "Look X (Pan)"
	// TiltAxisName is the vertical look (tilt) controller.
	TiltAxisName = "Look Y (Tilt)"
)

// Coordinator switches between a third-person and a first-person rig and
// notifies subscribers after every switch. It is the only writer of State.
type Coordinator struct {
	state       State
	thirdPerson Rig
	firstPerson Rig

	perspectiveChanged event.Event[State]
	subs               event.Group
	logger             *slog.Logger
}

// NewCoordinator activates the rig matching initial and subscribes to the
// dispatcher's change-POV intent. The dispatcher may be nil.
func NewCoordinator(dispatcher *input.Dispatcher, thirdPerson, firstPerson Rig, initial State) *Coordinator {
	if thirdPerson == nil || firstPerson == nil {
		panic("camera: both rigs are required")
	}
	c := &Coordinator{
		state:       initial,
		thirdPerson: thirdPerson,
		firstPerson: firstPerson,
		logger:      slog.Default().With("component", "camera"),
	}
	c.applyActivation()
	if dispatcher != nil {
		c.subs.Add(dispatcher.ChangePOV.Subscribe(event.Bare(c.TogglePerspective)))
	}
	return c
}

// SetLogger replaces the coordinator's logger.
func (c *Coordinator) SetLogger(logger *slog.Logger) {
	c.logger = logger.With("component", "camera")
}

// Close releases the coordinator's input subscription.
func (c *Coordinator) Close() {
	c.subs.Close()
}

// State returns the active viewpoint mode.
func (c *Coordinator) State() State {
	return c.state
}

// ActiveRig returns the rig currently rendering.
func (c *Coordinator) ActiveRig() Rig {
	if c.state == FirstPerson {
		return c.firstPerson
	}
	return c.thirdPerson
}

// ThirdPersonRig returns the third-person rig.
func (c *Coordinator) ThirdPersonRig() Rig { return c.thirdPerson }

// FirstPersonRig returns the first-person rig.
func (c *Coordinator) FirstPersonRig() Rig { return c.firstPerson }

// Yaw is the heading of the camera currently rendering, in degrees.
func (c *Coordinator) Yaw() float64 {
	return c.ActiveRig().Yaw()
}

// TogglePerspective flips the viewpoint, leaves exactly the selected rig
// active and notifies subscribers. Toggling twice restores the original
// state but notifies twice.
func (c *Coordinator) TogglePerspective() {
	if c.state == ThirdPerson {
		c.state = FirstPerson
	} else {
		c.state = ThirdPerson
	}
	c.applyActivation()
	c.logger.Debug("perspective changed", "state", c.state)
	c.perspectiveChanged.Emit(c.state)
}

func (c *Coordinator) applyActivation() {
	c.thirdPerson.SetActive(c.state == ThirdPerson)
	c.firstPerson.SetActive(c.state == FirstPerson)
}

// OnPerspectiveChanged subscribes fn to perspective switches.
func (c *Coordinator) OnPerspectiveChanged(fn func(State)) event.Subscription {
	return c.perspectiveChanged.Subscribe(fn)
}

// SetFieldOfView sets the third-person rig's lens field of view. Values are
// passed through unchecked.
func (c *Coordinator) SetFieldOfView(degrees float64) {
	c.thirdPerson.SetFieldOfView(degrees)
}

// SetLookAxisControllerEnabled toggles the first-person rig's pan controller.
// The controller is only written when its state differs; a rig without the
// controller is left alone.
func (c *Coordinator) SetLookAxisControllerEnabled(enabled bool) {
	ctrl := findController(c.firstPerson, LookAxisName)
	if ctrl == nil {
		return
	}
	if ctrl.Enabled != enabled {
		ctrl.Enabled = enabled
	}
}
