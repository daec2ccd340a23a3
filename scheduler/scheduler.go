// Package scheduler implements the sorted timeline and its four execution
// strategies: HighRes (busy-spin), LowRes (OS-sleep), Polled (no-sleep,
// caller-driven), and Background (dedicated worker goroutine). All four
// share the same sorted ring queue (queue.go) and differ only in when and
// how the queue's head is dispatched.
package scheduler

import (
	"github.com/tendrilgames/chronoframe/clock"
	"github.com/tendrilgames/chronoframe/notifications"
	"github.com/tendrilgames/chronoframe/trigger"
)

// Scheduler is the common surface every strategy implements. Strategy-
// specific extras — Poll() on Polled, Exec()/Stop() on Background — are
// exposed on the concrete types instead of here, as additions to a shared
// base rather than part of one monolithic interface.
type Scheduler interface {
	// Schedule queues trig to fire at the absolute microsecond instant
	// executeAtUs and returns a stable reference to the queued node. err
	// is non-nil only for a poisoned Background scheduler (ResourceFailure);
	// every other strategy always returns a nil error.
	Schedule(trig trigger.Notifier, executeAtUs int64) (NodeRef, error)

	// Delay is sugar for Schedule(trig, Now()+delayUs).
	Delay(trig trigger.Notifier, delayUs int64) (NodeRef, error)

	// Cancel removes ref's node from the queue if it is still present. It
	// is a synchronous, idempotent no-op if the node already executed or
	// was already cancelled.
	Cancel(ref NodeRef)

	// Clear removes every queued node without executing any of them, and
	// resets any jitter-compensation state the strategy holds.
	Clear()
}

// base holds the state every strategy needs: the queue itself, the clock
// used to stamp and evaluate execute times, and the optional jitter
// metrics collector. Strategies embed base and add their own
// synchronization and wait discipline on top.
type base struct {
	clock clock.Source
	q     queue

	jitter  jitterCompensator
	metrics *JitterMetrics
	notify  *notifications.Broadcaster
}

func (b *base) scheduleNode(trig trigger.Notifier, executeAtUs int64) NodeRef {
	n := &node{trig: trig, executeAtUs: executeAtUs}
	b.q.insert(n)
	return NodeRef{n: n}
}

func (b *base) cancelNode(ref NodeRef) {
	if ref.n == nil || ref.n.removed {
		return
	}
	b.q.remove(ref.n)
}

func (b *base) clearQueue() {
	b.q.clear()
	b.jitter.reset()
}

// AttachMetrics installs m as the recipient of every lateness sample this
// base's strategy records. Passing nil detaches metrics collection.
func (b *base) AttachMetrics(m *JitterMetrics) {
	b.metrics = m
}

// AttachNotifier installs n as the recipient of TimeSkewWarning notices
// this base's strategy raises. Passing nil detaches notification.
func (b *base) AttachNotifier(n *notifications.Broadcaster) {
	b.notify = n
}

// Len reports the number of nodes currently queued. Safe to call without
// synchronization on HighRes, LowRes, and Polled, which are single-
// goroutine by construction; Background overrides this with its own
// locking version.
func (b *base) Len() int {
	return b.q.len()
}
