package event_test

import (
	"testing"

	"github.com/tendrilgames/chronoframe/event"
)

func TestAddListenerFiresInOrder(t *testing.T) {
	e := event.New[int]()

	var order []int
	e.AddListener(func(e *event.Event[int]) { order = append(order, 1) })
	e.AddListener(func(e *event.Event[int]) { order = append(order, 2) })
	e.AddListener(func(e *event.Event[int]) { order = append(order, 3) })

	e.NotifyWithPayload(42)

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("fired out of order: %v", order)
	}
}

func TestPayloadVisibleToListeners(t *testing.T) {
	e := event.New[string]()

	var got string
	e.AddListener(func(e *event.Event[string]) { got = *e.Payload() })

	e.NotifyWithPayload("hello")
	if got != "hello" {
		t.Fatalf("got %q, want %q", got, "hello")
	}
}

func TestRemoveListenerByHandle(t *testing.T) {
	e := event.New[int]()

	fired := false
	h := e.AddListener(func(e *event.Event[int]) { fired = true })
	e.RemoveListener(h)

	e.NotifyWithPayload(1)
	if fired {
		t.Fatal("expected the removed listener to not fire")
	}
	if e.Len() != 0 {
		t.Fatalf("len = %d, want 0", e.Len())
	}
}

func TestRemoveListenerZeroHandleIsNoop(t *testing.T) {
	e := event.New[int]()
	e.AddListener(func(e *event.Event[int]) {})

	var zero event.Handle
	e.RemoveListener(zero)

	if e.Len() != 1 {
		t.Fatalf("len = %d, want 1 (zero handle must not remove anything)", e.Len())
	}
}

func TestRemoveListenerOutOfRangeIsNoop(t *testing.T) {
	e := event.New[int]()
	h := e.AddListener(func(e *event.Event[int]) {})
	e.RemoveListener(h) // now index 0 is out of range

	e.RemoveListener(h) // removing again must be a safe no-op
	if e.Len() != 0 {
		t.Fatalf("len = %d, want 0", e.Len())
	}
}

func TestRemoveListenerSwapsLastIntoSlot(t *testing.T) {
	e := event.New[int]()

	var order []int
	e.AddListener(func(e *event.Event[int]) { order = append(order, 1) })
	h2 := e.AddListener(func(e *event.Event[int]) { order = append(order, 2) })
	e.AddListener(func(e *event.Event[int]) { order = append(order, 3) })

	e.RemoveListener(h2)
	e.NotifyWithPayload(0)

	if len(order) != 2 {
		t.Fatalf("expected 2 remaining listeners to fire, got %v", order)
	}
}

func TestLastListenerSelfRemovalDuringFireIsSafe(t *testing.T) {
	e := event.New[int]()

	var fired []int
	var last event.Handle
	e.AddListener(func(e *event.Event[int]) { fired = append(fired, 1) })
	last = e.AddListener(func(e *event.Event[int]) {
		fired = append(fired, 2)
		e.RemoveListener(last)
	})

	e.NotifyWithPayload(0)
	if len(fired) != 2 || fired[0] != 1 || fired[1] != 2 {
		t.Fatalf("expected both listeners to fire once, got %v", fired)
	}
	if e.Len() != 1 {
		t.Fatalf("len = %d, want 1", e.Len())
	}
}

// A listener removed by an earlier listener during the same Fire does not
// run for the rest of that round, and iteration continues without
// corruption.
func TestListenerRemovingAnotherDuringFireSkipsIt(t *testing.T) {
	e := event.New[int]()

	var fired []int
	var h3 event.Handle
	e.AddListener(func(e *event.Event[int]) {
		fired = append(fired, 1)
		e.RemoveListener(h3)
	})
	e.AddListener(func(e *event.Event[int]) { fired = append(fired, 2) })
	h3 = e.AddListener(func(e *event.Event[int]) { fired = append(fired, 3) })

	e.NotifyWithPayload(0)

	if len(fired) != 2 || fired[0] != 1 || fired[1] != 2 {
		t.Fatalf("expected the removed listener to be skipped this round, got %v", fired)
	}
	if e.Len() != 2 {
		t.Fatalf("len = %d, want 2", e.Len())
	}
}

func TestListenerAddingDuringFireDoesNotPanic(t *testing.T) {
	e := event.New[int]()

	added := false
	e.AddListener(func(e *event.Event[int]) {
		if !added {
			added = true
			e.AddListener(func(e *event.Event[int]) {})
		}
	})

	e.NotifyWithPayload(0)
	if e.Len() != 2 {
		t.Fatalf("len = %d, want 2", e.Len())
	}
}

func TestLenReportsListenerCount(t *testing.T) {
	e := event.New[int]()
	if e.Len() != 0 {
		t.Fatalf("len = %d, want 0", e.Len())
	}
	e.AddListener(func(e *event.Event[int]) {})
	e.AddListener(func(e *event.Event[int]) {})
	if e.Len() != 2 {
		t.Fatalf("len = %d, want 2", e.Len())
	}
}
