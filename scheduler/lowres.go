package scheduler

import (
	"time"

	"github.com/tendrilgames/chronoframe/trigger"
)

// LowRes is the OS-sleep execution strategy: it rounds the remaining delay
// to the nearest millisecond (half-up) and sleeps, so CPU cost is
// negligible but resolution is limited to whatever the platform scheduler
// grants a sleeping goroutine (~1ms). Appropriate for human-scale
// scheduling. Like HighRes, it runs on a single cooperative execution
// context — the goroutine that calls Run.
type LowRes struct {
	base
}

// NewLowRes returns an empty LowRes scheduler.
func NewLowRes() *LowRes {
	return &LowRes{}
}

func (s *LowRes) Schedule(trig trigger.Notifier, executeAtUs int64) (NodeRef, error) {
	return s.scheduleNode(trig, executeAtUs), nil
}

func (s *LowRes) Delay(trig trigger.Notifier, delayUs int64) (NodeRef, error) {
	return s.Schedule(trig, s.clock.NowUs()+delayUs)
}

func (s *LowRes) Cancel(ref NodeRef) {
	s.cancelNode(ref)
}

func (s *LowRes) Clear() {
	s.clearQueue()
}

// roundedSleepMs rounds a microsecond delay to the nearest millisecond,
// half-up. A delay that is already past (<= 0) rounds to zero rather than
// going negative, since time.Sleep treats a negative duration as "return
// immediately" anyway but a caller reading the rounded value shouldn't
// have to know that.
func roundedSleepMs(delayUs int64) int64 {
	if delayUs <= 0 {
		return 0
	}
	return (delayUs + 500) / 1000
}

// Run drives the dispatch loop on the calling goroutine until the queue is
// empty, sleeping between head dispatches instead of busy-spinning.
func (s *LowRes) Run() {
	for s.RunOne() {
	}
}

// RunOne drives a single dispatch step. Returns false if the queue was
// already empty.
func (s *LowRes) RunOne() bool {
	n := s.q.peek()
	if n == nil {
		return false
	}

	scheduledUs := n.executeAtUs
	target := s.jitter.target(s.clock.NowUs(), scheduledUs)

	delayUs := target - s.clock.NowUs()
	if ms := roundedSleepMs(delayUs); ms > 0 {
		time.Sleep(time.Duration(ms) * time.Millisecond)
	}

	n.trig.Notify()
	actualUs := s.clock.NowUs()

	s.q.remove(n)

	delta := actualUs - scheduledUs
	s.jitter.update(delta)
	s.metrics.record(delta)
	reportSkew(s.notify, scheduledUs, delta)
	return true
}
