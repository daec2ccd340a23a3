// Package trigger implements the type-erased work item that binds a
// specific payload to an Event: the object the Scheduler actually queues.
package trigger

import "github.com/tendrilgames/chronoframe/event"

// Notifier is the one-method type-erased capability the scheduler needs:
// "notify the bound event with the bound payload". It is the only
// polymorphism the scheduler requires, letting one queue hold Triggers of
// heterogeneous payload types.
type Notifier interface {
	Notify()
}

// Trigger is an immutable pair of an Event[T] reference and a payload
// value of T. A single Trigger may be executed at most once per schedule
// entry; rescheduling it produces a fresh queue entry, not a re-run of a
// prior one.
type Trigger[T any] struct {
	ev      *event.Event[T]
	payload T
	fired   bool
}

// New binds ev and payload into a Trigger ready to hand to a Scheduler.
func New[T any](ev *event.Event[T], payload T) *Trigger[T] {
	return &Trigger[T]{ev: ev, payload: payload}
}

// Payload returns the payload this Trigger was constructed with.
func (t *Trigger[T]) Payload() T {
	return t.payload
}

// Fired reports whether Notify has already run for this Trigger.
func (t *Trigger[T]) Fired() bool {
	return t.fired
}

// Notify delivers the bound payload to the bound event. The Scheduler is
// the only intended caller: it invokes Notify from its execution context
// once the Trigger's scheduled time arrives.
func (t *Trigger[T]) Notify() {
	t.fired = true
	t.ev.NotifyWithPayload(t.payload)
}
