package loop

// System is one step of the per-frame simulation. Systems run in registration
// order on the scheduler's goroutine and may keep their own state between frames.
type System interface {
	Execute(frame *Frame)
}

// SystemFunc adapts a function to the System interface.
type SystemFunc func(frame *Frame)

func (f SystemFunc) Execute(frame *Frame) {
	f(frame)
}

// Frame is the per-tick context handed to every system.
type Frame struct {
	DeltaTime float64
	Index     uint64
	Commands  *Commands
}

func newFrame(dt float64, index uint64, commands *Commands) *Frame {
	return &Frame{
		DeltaTime: dt,
		Index:     index,
		Commands:  commands,
	}
}
