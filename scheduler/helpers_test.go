package scheduler_test

// funcNotifier adapts a plain closure to trigger.Notifier, letting these
// tests exercise the scheduler package in isolation without depending on
// event.Event's single-goroutine-owner invariant, which a Background
// worker's cross-goroutine dispatch would otherwise trip.
type funcNotifier func()

func (f funcNotifier) Notify() { f() }
