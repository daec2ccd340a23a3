package scheduler

import "github.com/tendrilgames/chronoframe/trigger"

// HighRes is the busy-spin execution strategy: it never sleeps, so waits
// cost 100% CPU but resolve to sub-microsecond latency on modern hardware.
// It runs entirely on whichever goroutine calls Run, which makes it a
// single, cooperative execution context — appropriate for short,
// well-bounded chains where precise phase matters.
type HighRes struct {
	base
}

// NewHighRes returns an empty HighRes scheduler.
func NewHighRes() *HighRes {
	return &HighRes{}
}

// Schedule queues trig to fire at executeAtUs. The error return is always
// nil for HighRes; it exists to satisfy the Scheduler interface.
func (s *HighRes) Schedule(trig trigger.Notifier, executeAtUs int64) (NodeRef, error) {
	return s.scheduleNode(trig, executeAtUs), nil
}

// Delay is sugar for Schedule(trig, Now()+delayUs).
func (s *HighRes) Delay(trig trigger.Notifier, delayUs int64) (NodeRef, error) {
	return s.Schedule(trig, s.clock.NowUs()+delayUs)
}

// Cancel removes ref's node if still queued.
func (s *HighRes) Cancel(ref NodeRef) {
	s.cancelNode(ref)
}

// Clear empties the queue and resets jitter compensation.
func (s *HighRes) Clear() {
	s.clearQueue()
}

// Run drives the dispatch loop on the calling goroutine: capture head,
// busy-wait for its (compensated) time, notify, remove, repeat — until the
// queue is empty. Triggers enqueued or cancelled from within a listener
// are naturally picked up or honored on the next iteration, since each
// iteration re-reads the queue's current head.
func (s *HighRes) Run() {
	for {
		n := s.q.peek()
		if n == nil {
			return
		}

		scheduledUs := n.executeAtUs
		target := s.jitter.target(s.clock.NowUs(), scheduledUs)
		s.clock.BusyWaitUntil(target)

		n.trig.Notify()
		actualUs := s.clock.NowUs()

		s.q.remove(n)

		delta := actualUs - scheduledUs
		s.jitter.update(delta)
		s.metrics.record(delta)
		reportSkew(s.notify, scheduledUs, delta)
	}
}

// RunOne drives a single dispatch step, for callers that want to interleave
// the scheduler with other per-iteration work instead of blocking until the
// queue drains. Returns false if the queue was already empty.
func (s *HighRes) RunOne() bool {
	n := s.q.peek()
	if n == nil {
		return false
	}

	scheduledUs := n.executeAtUs
	target := s.jitter.target(s.clock.NowUs(), scheduledUs)
	s.clock.BusyWaitUntil(target)

	n.trig.Notify()
	actualUs := s.clock.NowUs()

	s.q.remove(n)

	delta := actualUs - scheduledUs
	s.jitter.update(delta)
	s.metrics.record(delta)
	reportSkew(s.notify, scheduledUs, delta)
	return true
}
