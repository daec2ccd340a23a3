// Package event implements the typed Event/Listener registry: a flat pool
// of listener callbacks with O(1) add/remove and synchronous in-order
// firing. It deliberately carries no propagation or hierarchy semantics —
// callers needing that build it on top.
package event

import "github.com/tendrilgames/chronoframe/assert"

// Handle is an opaque, O(1)-removable reference into an Event's listener
// list. Using a handle after RemoveListener or after the owning Event is
// discarded is undefined: RemoveListener only checks the handle's index
// against the current list bounds, so a stale handle is a no-op when its
// index is out of range and otherwise removes whichever listener now
// occupies that slot.
type Handle struct {
	index int
	valid bool
}

// Listener is a callback registered against an Event[T]. It receives the
// firing Event so it can read the current payload via Payload().
type Listener[T any] func(e *Event[T])

type entry[T any] struct {
	cb Listener[T]
}

// Event is a mutable, typed notification target: an ordered list of
// listener callbacks plus the payload most recently delivered by
// NotifyWithPayload.
//
// Event is not safe for concurrent use by multiple goroutines. Route
// cross-goroutine delivery through a scheduler.Background instance instead.
type Event[T any] struct {
	listeners []entry[T]
	payload   T

	// ownerGoroutine is recorded on first mutation and checked on every
	// later mutation: an Event belongs to whichever
	// goroutine first touches it, for the lifetime of that Event.
	ownerGoroutine uint64
	ownerSet       bool
}

// New returns a ready-to-use Event[T] with no listeners.
func New[T any]() *Event[T] {
	return &Event[T]{}
}

func (e *Event[T]) checkGoroutine() {
	id := assert.GetGoroutineID()
	if !e.ownerSet {
		e.ownerGoroutine = id
		e.ownerSet = true
		return
	}
	assert.PreconditionViolatef(id == e.ownerGoroutine,
		"event: mutated from goroutine %d, previously owned by goroutine %d", id, e.ownerGoroutine)
}

// AddListener appends cb to the end of the listener list and returns a
// Handle that can later be passed to RemoveListener. Completes in amortized
// O(1).
func (e *Event[T]) AddListener(cb Listener[T]) Handle {
	e.checkGoroutine()
	e.listeners = append(e.listeners, entry[T]{cb: cb})
	return Handle{index: len(e.listeners) - 1, valid: true}
}

// RemoveListener removes the listener referenced by h. If h is the zero
// Handle, or refers to a slot outside the current list, this is a no-op.
// Otherwise the last entry is swapped into h's slot and the list is
// truncated by one, so removal completes in O(1).
func (e *Event[T]) RemoveListener(h Handle) {
	if !h.valid {
		return
	}
	e.checkGoroutine()
	if h.index < 0 || h.index >= len(e.listeners) {
		return
	}
	last := len(e.listeners) - 1
	e.listeners[h.index] = e.listeners[last]
	e.listeners = e.listeners[:last]
}

// Payload returns a pointer to the most recently delivered payload.
func (e *Event[T]) Payload() *T {
	return &e.payload
}

// Fire invokes every currently registered listener, in list order, passing
// the Event itself. Listeners may call AddListener during firing — the new
// listener is appended but is not guaranteed to run this round. Listeners
// may call RemoveListener on their own handle, or any other, without
// corrupting iteration: the loop re-reads len(e.listeners) and indexes
// defensively against the swap-remove shrinking the slice out from under
// it.
func (e *Event[T]) Fire() {
	e.checkGoroutine()
	i := 0
	for i < len(e.listeners) {
		cb := e.listeners[i].cb
		cb(e)
		// a listener may have removed itself or another entry via
		// swap-remove, shrinking e.listeners. That can move a
		// not-yet-fired listener into an already-visited slot, skipping
		// it for this round — tolerated rather than corrected, since
		// fixing it up would mean tracking more than a plain index.
		i++
	}
}

// NotifyWithPayload stores p as the Event's current payload, then fires
// every listener synchronously on the calling goroutine.
func (e *Event[T]) NotifyWithPayload(p T) {
	e.checkGoroutine()
	e.payload = p
	e.Fire()
}

// Len reports the number of currently registered listeners. Primarily
// useful for tests and debug overlays.
func (e *Event[T]) Len() int {
	return len(e.listeners)
}
