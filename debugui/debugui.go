// Package debugui provides Dear ImGui inspector windows for a running strider
// scene. Windows are registered with an Overlay, which queues them once per
// frame behind the simulation systems.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/strider/loop"
)

// Item holds a Dear ImGui render function.
type Item struct {
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay is the system that defers every item's render function to the end
// of the frame, after the frame's state changes have been applied.
type Overlay struct {
	items []Item
	input InputState
}

func NewOverlay(items ...Item) *Overlay {
	return &Overlay{items: items}
}

// Add appends an item. Items render in registration order.
func (o *Overlay) Add(item Item) {
	o.items = append(o.items, item)
}

// Len returns the number of registered items.
func (o *Overlay) Len() int {
	return len(o.items)
}

// InputState returns the capture state sampled by the last Execute.
func (o *Overlay) InputState() InputState {
	return o.input
}

// Execute updates the input state and queues all render functions. It must
// run between the ImGui backend's BeginFrame and EndFrame.
func (o *Overlay) Execute(frame *loop.Frame) {
	io := imgui.CurrentIO()
	o.input.WantCaptureMouse = io.WantCaptureMouse()
	o.input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range o.items {
		if item.Render != nil {
			frame.Commands.Defer(item.Render)
		}
	}
}
