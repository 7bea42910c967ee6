// Package ebiten samples keyboard and mouse state from an ebiten game loop.
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/strider/input"
	"github.com/plus3/strider/vecmath"
)

// Binding is the set of keys and mouse buttons that trigger one action.
type Binding struct {
	Keys    []ebiten.Key
	Buttons []ebiten.MouseButton
}

// KeyMap binds every action to its controls.
type KeyMap map[input.Action]Binding

// DefaultKeyMap mirrors the classic keyboard-and-mouse layout.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		input.ActionSprint:    {Keys: []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight}},
		input.ActionJump:      {Keys: []ebiten.Key{ebiten.KeySpace}},
		input.ActionClimb:     {Keys: []ebiten.Key{ebiten.KeyE}},
		input.ActionChangePOV: {Keys: []ebiten.Key{ebiten.KeyQ}},
		input.ActionCrouch:    {Keys: []ebiten.Key{ebiten.KeyControlLeft, ebiten.KeyControlRight}},
		input.ActionGlide:     {Keys: []ebiten.Key{ebiten.KeyG}},
		input.ActionCancel:    {Keys: []ebiten.Key{ebiten.KeyC}},
		input.ActionPunch:     {Buttons: []ebiten.MouseButton{ebiten.MouseButtonLeft}},
	}
}

// Backend implements input.Backend on top of ebiten's polled input state.
// Edge detection comes from inpututil, so Backend must be sampled from inside
// ebiten.Game.Update.
type Backend struct {
	keys KeyMap

	// LookScale converts cursor pixels to look-axis units.
	LookScale float64

	cursorX, cursorY int
	hasCursor        bool
	captured         bool
}

// NewBackend creates a backend with the given key map, or the default one when nil.
func NewBackend(keys KeyMap) *Backend {
	if keys == nil {
		keys = DefaultKeyMap()
	}
	return &Backend{keys: keys, LookScale: 0.1}
}

// CaptureCursor hides and locks the cursor so that mouse motion becomes look input.
func (b *Backend) CaptureCursor(capture bool) {
	if capture {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
	b.captured = capture
	b.hasCursor = false
}

// Captured reports whether the cursor is locked to the window.
func (b *Backend) Captured() bool {
	return b.captured
}

// Axis implements input.Backend.
func (b *Backend) Axis(axis input.Axis) vecmath.Vec2 {
	switch axis {
	case input.AxisMove:
		return b.moveAxis()
	case input.AxisLook:
		return b.lookAxis()
	default:
		return vecmath.Vec2{}
	}
}

func (b *Backend) moveAxis() vecmath.Vec2 {
	var v vecmath.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		v.X++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		v.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		v.Y++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		v.Y--
	}
	return v
}

func (b *Backend) lookAxis() vecmath.Vec2 {
	if !b.hasCursor {
		return vecmath.Vec2{}
	}
	x, y := ebiten.CursorPosition()
	return vecmath.Vec2{
		X: float64(x-b.cursorX) * b.LookScale,
		Y: float64(b.cursorY-y) * b.LookScale,
	}
}

// Held implements input.Backend.
func (b *Backend) Held(action input.Action) bool {
	binding := b.keys[action]
	for _, k := range binding.Keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	for _, btn := range binding.Buttons {
		if ebiten.IsMouseButtonPressed(btn) {
			return true
		}
	}
	return false
}

// JustPressed implements input.Backend.
func (b *Backend) JustPressed(action input.Action) bool {
	binding := b.keys[action]
	for _, k := range binding.Keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	for _, btn := range binding.Buttons {
		if inpututil.IsMouseButtonJustPressed(btn) {
			return true
		}
	}
	return false
}

// Advance remembers the cursor position for the next look delta.
func (b *Backend) Advance() {
	b.cursorX, b.cursorY = ebiten.CursorPosition()
	b.hasCursor = true
}
