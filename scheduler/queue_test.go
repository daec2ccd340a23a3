package scheduler

import "testing"

// collectTimes walks the ring from head, returning each node's executeAtUs
// in ring order.
func collectTimes(q *queue) []int64 {
	var out []int64
	n := q.peek()
	if n == nil {
		return out
	}
	start := n
	for {
		out = append(out, n.executeAtUs)
		n = n.next
		if n == start {
			break
		}
	}
	return out
}

func TestQueueInsertSortedOrder(t *testing.T) {
	var q queue
	for _, tm := range []int64{30, 10, 20, 5} {
		q.insert(&node{executeAtUs: tm})
	}

	got := collectTimes(&q)
	want := []int64{5, 10, 20, 30}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
	if q.len() != len(want) {
		t.Fatalf("len = %d, want %d", q.len(), len(want))
	}
}

func TestQueueInsertFIFOTieBreak(t *testing.T) {
	var q queue
	first := &node{executeAtUs: 100}
	second := &node{executeAtUs: 100}
	third := &node{executeAtUs: 100}
	q.insert(first)
	q.insert(second)
	q.insert(third)

	if q.peek() != first {
		t.Fatal("expected the first-inserted node to stay head on a tie")
	}
	if first.next != second || second.next != third {
		t.Fatal("expected insertion order preserved among tied nodes")
	}
}

func TestQueueInsertTieAfterEarlierNode(t *testing.T) {
	var q queue
	early := &node{executeAtUs: 50}
	tieA := &node{executeAtUs: 100}
	tieB := &node{executeAtUs: 100}
	q.insert(tieA)
	q.insert(early)
	q.insert(tieB)

	got := collectTimes(&q)
	want := []int64{50, 100, 100}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
	if q.peek().next != tieA || tieA.next != tieB {
		t.Fatal("expected tieA to precede tieB despite early's later insertion")
	}
}

func TestQueueRemoveHeadAdvances(t *testing.T) {
	var q queue
	a := &node{executeAtUs: 10}
	b := &node{executeAtUs: 20}
	q.insert(a)
	q.insert(b)

	q.remove(a)
	if q.peek() != b {
		t.Fatal("expected head to advance to b")
	}
	if !a.removed {
		t.Fatal("expected a.removed to be set")
	}
	if a.next != nil || a.prev != nil {
		t.Fatal("expected an unlinked node's ring pointers cleared")
	}
}

func TestQueueRemoveLastNodeEmptiesQueue(t *testing.T) {
	var q queue
	a := &node{executeAtUs: 10}
	q.insert(a)
	q.remove(a)

	if q.peek() != nil {
		t.Fatal("expected an empty queue")
	}
	if q.len() != 0 {
		t.Fatalf("len = %d, want 0", q.len())
	}
}

func TestQueueRemoveAlreadyRemovedIsNoop(t *testing.T) {
	var q queue
	a := &node{executeAtUs: 10}
	b := &node{executeAtUs: 20}
	q.insert(a)
	q.insert(b)
	q.remove(a)

	before := q.len()
	q.remove(a)
	if q.len() != before {
		t.Fatalf("expected double-remove to be a no-op, len went %d -> %d", before, q.len())
	}
}

func TestQueueClear(t *testing.T) {
	var q queue
	for i := int64(0); i < 5; i++ {
		q.insert(&node{executeAtUs: i})
	}
	q.clear()

	if q.peek() != nil {
		t.Fatal("expected an empty queue after clear")
	}
	if q.len() != 0 {
		t.Fatalf("len = %d, want 0", q.len())
	}
}

func TestQueueRemoveMiddleNodePreservesNeighbours(t *testing.T) {
	var q queue
	a := &node{executeAtUs: 10}
	b := &node{executeAtUs: 20}
	c := &node{executeAtUs: 30}
	q.insert(a)
	q.insert(b)
	q.insert(c)

	q.remove(b)
	if a.next != c || c.prev != a {
		t.Fatal("expected a and c to be spliced together after removing b")
	}
	if q.len() != 2 {
		t.Fatalf("len = %d, want 2", q.len())
	}
}
