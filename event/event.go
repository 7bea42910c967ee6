// Package event provides synchronous in-process multicast notifications.
//
// An Event delivers each Emit to its subscribers in registration order on the
// caller's goroutine. There is no queue and no fault boundary: a panicking
// handler unwinds through Emit.
//
// Subscribing or unsubscribing from inside a handler while the same event is
// being emitted is not supported; the set of handlers observed by that emit is
// unspecified.
package event

// Handler receives the payload of an emitted event.
type Handler[T any] func(T)

type entry[T any] struct {
	id      uint64
	handler Handler[T]
}

// Event is a typed multicast. The zero value is ready to use.
type Event[T any] struct {
	entries []entry[T]
	nextId  uint64
}

// Subscribe registers h and returns the subscription that removes it.
func (e *Event[T]) Subscribe(h Handler[T]) Subscription {
	if h == nil {
		panic("event: nil handler")
	}
	e.nextId++
	id := e.nextId
	e.entries = append(e.entries, entry[T]{id: id, handler: h})
	return Subscription{cancel: func() { e.remove(id) }}
}

func (e *Event[T]) remove(id uint64) {
	for i, en := range e.entries {
		if en.id == id {
			e.entries = append(e.entries[:i], e.entries[i+1:]...)
			return
		}
	}
}

// Emit calls every subscribed handler with v.
func (e *Event[T]) Emit(v T) {
	for _, en := range e.entries {
		en.handler(v)
	}
}

// Len returns the number of current subscribers.
func (e *Event[T]) Len() int {
	return len(e.entries)
}

// Signal is an event without a payload.
type Signal = Event[struct{}]

// Fire emits a payload-less signal.
func Fire(s *Signal) {
	s.Emit(struct{}{})
}

// Bare adapts a no-argument callback to a Signal handler.
func Bare(fn func()) Handler[struct{}] {
	return func(struct{}) { fn() }
}

// Subscription removes one handler from its event. Unsubscribe is idempotent.
type Subscription struct {
	cancel func()
}

func (s *Subscription) Unsubscribe() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.cancel = nil
}

// Active reports whether the subscription has not been released yet.
func (s *Subscription) Active() bool {
	return s.cancel != nil
}

// Group owns the subscriptions of one component and releases them together.
// Components call Close from their own teardown so that no handler outlives
// the state it closes over.
type Group struct {
	subs []Subscription
}

// Add keeps sub until Close.
func (g *Group) Add(sub Subscription) {
	g.subs = append(g.subs, sub)
}

// Len returns the number of held subscriptions.
func (g *Group) Len() int {
	return len(g.subs)
}

// Close unsubscribes everything in reverse registration order.
func (g *Group) Close() {
	for i := len(g.subs) - 1; i >= 0; i-- {
		g.subs[i].Unsubscribe()
	}
	g.subs = nil
}
