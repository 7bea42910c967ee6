package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/strider/debugui"
	debugui_ebiten "github.com/plus3/strider/debugui/ebiten"
	"github.com/plus3/strider/input"
	input_ebiten "github.com/plus3/strider/input/ebiten"
	"github.com/plus3/strider/logger"
	"github.com/plus3/strider/sim"
	"github.com/plus3/strider/vecmath"
)

// Game implements ebiten.Game. Each Update is exactly one simulation tick.
type Game struct {
	scene        *sim.Sim
	device       *input_ebiten.Backend
	imguiBackend *debugui_ebiten.ImguiBackend
	view         *view
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.device.CaptureCursor(!g.device.Captured())
		logger.L().Debug("cursor capture", "captured", g.device.Captured())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.imguiBackend != nil {
		g.imguiBackend.Frame(g.scene.Step)
	} else {
		g.scene.Step()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.view.draw(screen, g.scene)
	if g.imguiBackend != nil {
		g.imguiBackend.Overlay(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imguiBackend != nil {
		g.imguiBackend.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// guardedBackend hides device input that the inspector windows are consuming.
// Mouse look is only read while the cursor is captured.
type guardedBackend struct {
	device  *input_ebiten.Backend
	overlay *debugui.Overlay
}

func (b *guardedBackend) capture() debugui.InputState {
	if b.overlay == nil {
		return debugui.InputState{}
	}
	return b.overlay.InputState()
}

func (b *guardedBackend) Axis(axis input.Axis) vecmath.Vec2 {
	switch {
	case axis == input.AxisLook && !b.device.Captured():
		return vecmath.Vec2{}
	case axis == input.AxisMove && b.capture().WantCaptureKeyboard:
		return vecmath.Vec2{}
	}
	return b.device.Axis(axis)
}

func (b *guardedBackend) Held(action input.Action) bool {
	return !b.blocked(action) && b.device.Held(action)
}

func (b *guardedBackend) JustPressed(action input.Action) bool {
	return !b.blocked(action) && b.device.JustPressed(action)
}

func (b *guardedBackend) blocked(action input.Action) bool {
	st := b.capture()
	if action == input.ActionPunch {
		return st.WantCaptureMouse && !b.device.Captured()
	}
	return st.WantCaptureKeyboard
}

func (b *guardedBackend) Advance() {
	b.device.Advance()
}
