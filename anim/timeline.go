package anim

import (
	"cmp"
	"slices"

	"github.com/plus3/strider/event"
	"github.com/plus3/strider/loop"
)

// Animation event names raised by the punch clip.
const (
	EventPunchImpact = "punch-impact"
	EventPunchEnd    = "punch-end"
)

// Marker is a named event at a fixed offset into a clip, in seconds.
type Marker struct {
	Name string
	At   float64
}

// Clip is started by a trigger and raises its markers as it plays.
type Clip struct {
	Trigger string
	Markers []Marker
}

// PunchClip is the punch animation: an impact frame followed by the end.
func PunchClip(impactAt, endAt float64) Clip {
	return Clip{
		Trigger: TriggerPunch,
		Markers: []Marker{
			{Name: EventPunchImpact, At: impactAt},
			{Name: EventPunchEnd, At: endAt},
		},
	}
}

type playback struct {
	clip    Clip
	elapsed float64
	next    int
}

// Timeline is a Sink that forwards every write to an inner sink and plays
// the clip bound to each trigger. Marker events are delivered at the end of
// the frame in which the clip reaches them.
type Timeline struct {
	Sink

	clips   map[string]Clip
	playing []*playback
	events  event.Event[string]
}

func NewTimeline(sink Sink, clips ...Clip) *Timeline {
	t := &Timeline{Sink: sink, clips: make(map[string]Clip, len(clips))}
	for _, c := range clips {
		c.Markers = slices.SortedStableFunc(slices.Values(c.Markers), func(a, b Marker) int {
			return cmp.Compare(a.At, b.At)
		})
		t.clips[c.Trigger] = c
	}
	return t
}

// SetTrigger forwards the trigger and (re)starts its clip.
func (t *Timeline) SetTrigger(name string) {
	t.Sink.SetTrigger(name)

	clip, ok := t.clips[name]
	if !ok {
		return
	}
	t.playing = slices.DeleteFunc(t.playing, func(p *playback) bool {
		return p.clip.Trigger == name
	})
	t.playing = append(t.playing, &playback{clip: clip})
}

// OnEvent subscribes fn to marker events.
func (t *Timeline) OnEvent(fn func(name string)) event.Subscription {
	return t.events.Subscribe(fn)
}

// Playing returns the number of clips still running.
func (t *Timeline) Playing() int {
	return len(t.playing)
}

// Execute advances every playing clip and defers due marker events.
func (t *Timeline) Execute(frame *loop.Frame) {
	var due []string
	for _, p := range t.playing {
		p.elapsed += frame.DeltaTime
		for p.next < len(p.clip.Markers) && p.clip.Markers[p.next].At <= p.elapsed {
			due = append(due, p.clip.Markers[p.next].Name)
			p.next++
		}
	}
	t.playing = slices.DeleteFunc(t.playing, func(p *playback) bool {
		return p.next >= len(p.clip.Markers)
	})

	for _, name := range due {
		frame.Commands.Defer(func() { t.events.Emit(name) })
	}
}
