package trigger_test

import (
	"testing"

	"github.com/tendrilgames/chronoframe/event"
	"github.com/tendrilgames/chronoframe/trigger"
)

func TestNotifyDeliversPayloadToEvent(t *testing.T) {
	ev := event.New[string]()

	var got string
	ev.AddListener(func(e *event.Event[string]) { got = *e.Payload() })

	trig := trigger.New(ev, "cue")
	trig.Notify()

	if got != "cue" {
		t.Fatalf("got %q, want %q", got, "cue")
	}
}

func TestFiredReflectsNotifyState(t *testing.T) {
	ev := event.New[int]()
	trig := trigger.New(ev, 7)

	if trig.Fired() {
		t.Fatal("expected a fresh Trigger to report Fired() == false")
	}
	trig.Notify()
	if !trig.Fired() {
		t.Fatal("expected Fired() == true after Notify")
	}
}

func TestPayloadReturnsBoundValue(t *testing.T) {
	ev := event.New[int]()
	trig := trigger.New(ev, 99)

	if trig.Payload() != 99 {
		t.Fatalf("Payload() = %d, want 99", trig.Payload())
	}
}

func TestTriggerSatisfiesNotifierInterface(t *testing.T) {
	ev := event.New[int]()
	trig := trigger.New(ev, 1)

	var n trigger.Notifier = trig
	n.Notify()

	if !trig.Fired() {
		t.Fatal("expected Notify through the Notifier interface to fire the trigger")
	}
}

func TestRepeatedNotifyFiresListenersEachTime(t *testing.T) {
	ev := event.New[int]()

	count := 0
	ev.AddListener(func(e *event.Event[int]) { count++ })

	trig := trigger.New(ev, 1)
	trig.Notify()
	trig.Notify()

	if count != 2 {
		t.Fatalf("count = %d, want 2 (Trigger does not itself guard against re-firing)", count)
	}
}
