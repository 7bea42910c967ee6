// Package input turns sampled device state into player intents and broadcasts
// them to subscribers once per tick.
package input

import "github.com/plus3/strider/vecmath"

// Axis identifies a two-dimensional analog control.
type Axis int

const (
	AxisMove Axis = iota
	AxisLook
)

func (a Axis) String() string {
	switch a {
	case AxisMove:
		return "move"
	case AxisLook:
		return "look"
	default:
		return "unknown"
	}
}

// Action identifies a digital control.
type Action int

const (
	ActionSprint Action = iota
	ActionJump
	ActionClimb
	ActionChangePOV
	ActionCrouch
	ActionGlide
	ActionCancel
	ActionPunch

	actionCount
)

var actionNames = [actionCount]string{
	ActionSprint:    "sprint",
	ActionJump:      "jump",
	ActionClimb:     "climb",
	ActionChangePOV: "change_pov",
	ActionCrouch:    "crouch",
	ActionGlide:     "glide",
	ActionCancel:    "cancel",
	ActionPunch:     "punch",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Actions lists every action in dispatch order.
func Actions() []Action {
	actions := make([]Action, 0, actionCount)
	for a := Action(0); a < actionCount; a++ {
		actions = append(actions, a)
	}
	return actions
}

// ParseAction resolves an action by its String name.
func ParseAction(name string) (Action, bool) {
	for a, n := range actionNames {
		if n == name {
			return Action(a), true
		}
	}
	return 0, false
}

// Backend is the device layer sampled by the Dispatcher. Edge detection
// (JustPressed) belongs to the backend: it is true only on the sample in which
// the control went from released to pressed.
type Backend interface {
	Axis(axis Axis) vecmath.Vec2
	Held(action Action) bool
	JustPressed(action Action) bool
}

// Advancer is implemented by backends that move to a new sample after every
// dispatch, such as scripted input or cursor-delta tracking.
type Advancer interface {
	Advance()
}
