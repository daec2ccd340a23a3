package scheduler

import "github.com/tendrilgames/chronoframe/trigger"

// Polled is the no-sleep execution strategy: Schedule only enqueues, and a
// separate Poll call executes every node whose time is already in the
// past, in order, without ever suspending the caller. The caller is
// expected to invoke Poll on its own cadence — once per frame in a game
// loop, for instance. There is no jitter compensation for Polled: it has
// no wait to pre-shift, only a batch of already-due nodes to drain.
type Polled struct {
	base
}

// NewPolled returns an empty Polled scheduler.
func NewPolled() *Polled {
	return &Polled{}
}

func (s *Polled) Schedule(trig trigger.Notifier, executeAtUs int64) (NodeRef, error) {
	return s.scheduleNode(trig, executeAtUs), nil
}

func (s *Polled) Delay(trig trigger.Notifier, delayUs int64) (NodeRef, error) {
	return s.Schedule(trig, s.clock.NowUs()+delayUs)
}

func (s *Polled) Cancel(ref NodeRef) {
	s.cancelNode(ref)
}

func (s *Polled) Clear() {
	s.clearQueue()
}

// Poll executes every node whose executeAtUs is at or before the instant
// Poll was called, in sorted order, and returns the number fired. It never
// sleeps. Triggers scheduled by a listener during this call are picked up
// by a later Poll, not this one, unless their time is also at or before
// that instant — the loop below keeps re-reading the current head so that
// case is handled too.
func (s *Polled) Poll() int {
	fired := 0
	now := s.clock.NowUs()
	for {
		n := s.q.peek()
		if n == nil || n.executeAtUs > now {
			return fired
		}
		n.trig.Notify()
		s.q.remove(n)
		fired++
	}
}
