package scheduler

import "github.com/tendrilgames/chronoframe/trigger"

// node is an intrusive ring-queue entry: the type-erased trigger it guards,
// the absolute microsecond instant it should fire at, and its neighbours in
// the ring. A node belongs to exactly one queue at a time.
type node struct {
	prev, next *node

	trig        trigger.Notifier
	executeAtUs int64

	removed bool
}

// NodeRef is an opaque, non-owning handle to a scheduled node. It remains
// valid until the node is removed, whether by execution or by Cancel. No
// raw pointer is exposed across the package boundary — NodeRef wraps the
// node but every operation on it first checks `removed`, so using a stale
// NodeRef is always a safe no-op rather than a dangling access.
type NodeRef struct {
	n *node
}

// Valid reports whether this NodeRef still refers to a queued node that
// has not yet executed or been cancelled.
func (r NodeRef) Valid() bool {
	return r.n != nil && !r.n.removed
}
