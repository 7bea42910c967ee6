package loop

// Timers runs delayed callbacks on simulation time. Register it with the
// scheduler so that it advances once per frame.
type Timers struct {
	now     float64
	pending []*Timer
}

// Timer is a pending delayed callback.
type Timer struct {
	deadline float64
	fn       func()
	stopped  bool
	fired    bool
}

// NewTimers returns a timer set starting at time zero.
func NewTimers() *Timers {
	return &Timers{}
}

// Now returns the simulation time in seconds.
func (t *Timers) Now() float64 {
	return t.now
}

// After schedules fn to run once delay seconds of simulation time have elapsed.
func (t *Timers) After(delay float64, fn func()) *Timer {
	timer := &Timer{deadline: t.now + delay, fn: fn}
	t.pending = append(t.pending, timer)
	return timer
}

// Pending returns the number of timers that have neither fired nor been stopped.
func (t *Timers) Pending() int {
	n := 0
	for _, timer := range t.pending {
		if !timer.stopped && !timer.fired {
			n++
		}
	}
	return n
}

// Advance moves simulation time forward and fires every due timer in
// registration order.
func (t *Timers) Advance(dt float64) {
	t.now += dt

	due := t.pending[:0]
	var fire []*Timer
	for _, timer := range t.pending {
		switch {
		case timer.stopped:
		case timer.deadline <= t.now:
			fire = append(fire, timer)
		default:
			due = append(due, timer)
		}
	}
	t.pending = due

	for _, timer := range fire {
		if timer.stopped {
			continue
		}
		timer.fired = true
		timer.fn()
	}
}

// Execute advances by the frame's delta time.
func (t *Timers) Execute(frame *Frame) {
	t.Advance(frame.DeltaTime)
}

// Stop cancels the timer. It reports whether the call prevented the callback.
func (tm *Timer) Stop() bool {
	if tm == nil || tm.stopped || tm.fired {
		return false
	}
	tm.stopped = true
	return true
}

// Deadline returns the simulation time the timer is due.
func (tm *Timer) Deadline() float64 {
	return tm.deadline
}

// Active reports whether the timer is still waiting to fire.
func (tm *Timer) Active() bool {
	return tm != nil && !tm.stopped && !tm.fired
}
