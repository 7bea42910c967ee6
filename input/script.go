package input

import (
	"fmt"
	"slices"

	"github.com/plus3/strider/vecmath"
)

// ScriptFrame is the device state for one tick of a Script.
type ScriptFrame struct {
	Move vecmath.Vec2
	Look vecmath.Vec2
	Held []Action
}

// Script replays recorded device state one frame per tick. Press edges are
// derived from the previous frame's held set, the way an engine input layer
// reports key-down. After the last frame the script idles with nothing held.
type Script struct {
	frames []ScriptFrame
	cursor int

	held     [actionCount]bool
	previous [actionCount]bool
}

// NewScript creates a script positioned at its first frame.
func NewScript(frames ...ScriptFrame) *Script {
	s := &Script{frames: frames}
	s.load()
	return s
}

// Hold returns count frames that hold actions and push the move axis.
func Hold(count int, move vecmath.Vec2, actions ...Action) []ScriptFrame {
	frames := make([]ScriptFrame, count)
	for i := range frames {
		frames[i] = ScriptFrame{Move: move, Held: actions}
	}
	return frames
}

// Tap returns a frame pressing actions followed by a released frame.
func Tap(actions ...Action) []ScriptFrame {
	return []ScriptFrame{{Held: actions}, {}}
}

// Idle returns count empty frames.
func Idle(count int) []ScriptFrame {
	return make([]ScriptFrame, count)
}

// Sequence concatenates frame groups.
func Sequence(groups ...[]ScriptFrame) []ScriptFrame {
	return slices.Concat(groups...)
}

func (s *Script) current() ScriptFrame {
	if s.cursor < len(s.frames) {
		return s.frames[s.cursor]
	}
	return ScriptFrame{}
}

func (s *Script) load() {
	s.previous = s.held
	s.held = [actionCount]bool{}
	for _, a := range s.current().Held {
		if a >= 0 && a < actionCount {
			s.held[a] = true
		}
	}
}

// Axis implements Backend.
func (s *Script) Axis(axis Axis) vecmath.Vec2 {
	switch axis {
	case AxisMove:
		return s.current().Move
	case AxisLook:
		return s.current().Look
	default:
		return vecmath.Vec2{}
	}
}

// Held implements Backend.
func (s *Script) Held(action Action) bool {
	if action < 0 || action >= actionCount {
		return false
	}
	return s.held[action]
}

// JustPressed implements Backend.
func (s *Script) JustPressed(action Action) bool {
	if action < 0 || action >= actionCount {
		return false
	}
	return s.held[action] && !s.previous[action]
}

// Advance moves to the next frame.
func (s *Script) Advance() {
	if s.cursor < len(s.frames) {
		s.cursor++
	}
	s.load()
}

// Done reports whether every frame has been consumed.
func (s *Script) Done() bool {
	return s.cursor >= len(s.frames)
}

// Len returns the number of frames in the script.
func (s *Script) Len() int {
	return len(s.frames)
}

func (s *Script) String() string {
	return fmt.Sprintf("Script(%d/%d)", s.cursor, len(s.frames))
}
