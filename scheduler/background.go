package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/tendrilgames/chronoframe/errors"
	"github.com/tendrilgames/chronoframe/logger"
	"github.com/tendrilgames/chronoframe/notifications"
	"github.com/tendrilgames/chronoframe/trigger"
)

// backgroundWaitCapUs bounds how long the worker ever waits on its
// condition variable, guaranteeing responsiveness to Stop even when the
// head is scheduled far in the future.
const backgroundWaitCapUs = 1_000_000

// Background is the dedicated-worker-goroutine execution strategy: a
// goroutine launched on demand by Exec loops, dispatching the queue's head
// whenever its time arrives, sleeping on a condition variable in between.
// It is the only strategy with state shared beyond its own caller, and is
// therefore the only one that needs a mutex.
type Background struct {
	base

	mu       sync.Mutex
	cond     *sync.Cond
	running  bool
	poisoned error

	wg sync.WaitGroup
}

// NewBackground returns a Background scheduler with no worker running yet.
// Call Exec to start it.
func NewBackground() *Background {
	s := &Background{}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Schedule queues trig to fire at executeAtUs. If the new node becomes the
// new head, the worker's condition variable is signalled so it can
// re-evaluate its wait immediately rather than sleeping past an earlier
// deadline. Returns a ResourceFailure if this scheduler's worker has been
// poisoned by a prior unwinding listener panic.
func (s *Background) Schedule(trig trigger.Notifier, executeAtUs int64) (NodeRef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.poisoned != nil {
		return NodeRef{}, errors.New(errors.WorkerPoisoned, s.poisoned.Error())
	}

	prevHead := s.q.peek()
	ref := s.scheduleNode(trig, executeAtUs)
	if s.q.peek() != prevHead {
		s.cond.Signal()
	}
	return ref, nil
}

// Delay is sugar for Schedule(trig, Now()+delayUs).
func (s *Background) Delay(trig trigger.Notifier, delayUs int64) (NodeRef, error) {
	return s.Schedule(trig, s.clock.NowUs()+delayUs)
}

// Cancel removes ref's node if still queued. Safe to call from within a
// listener running on the worker goroutine, or from any other goroutine.
func (s *Background) Cancel(ref NodeRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelNode(ref)
}

// Clear empties the queue and resets jitter compensation.
func (s *Background) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearQueue()
}

// Poisoned reports the error that poisoned this scheduler's worker, or nil
// if it has not been poisoned.
func (s *Background) Poisoned() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.poisoned
}

// Len reports the number of nodes currently queued, locking against the
// worker goroutine's own access.
func (s *Background) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.len()
}

// Exec launches the worker goroutine if one is not already running. It
// returns a ResourceFailure if a worker is already running for this
// scheduler.
func (s *Background) Exec() error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errors.New(errors.WorkerAlreadyRunning)
	}
	s.running = true
	s.poisoned = nil
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run()
	return nil
}

// Stop signals the worker to exit and blocks until it has. Stopping an
// already-stopped (or never-started) scheduler is a harmless no-op.
func (s *Background) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.cond.Broadcast()
	s.mu.Unlock()

	s.wg.Wait()
}

// run is the worker loop: lock the queue; if stopped, exit; if empty, wait
// on the condition variable until Schedule or Stop signals it (the worker
// does not exit when the queue drains); otherwise dispatch the head if its
// time has arrived, or wait (capped at one second) for either the
// condition variable or that much time to pass.
//
// notify() is always called outside the mutex, so listeners may call
// Schedule/Cancel/Clear reentrantly from within their own callback without
// deadlocking against this same lock — the node was already removed under
// the lock before notification, so there is nothing left for a reentrant
// call to race against.
//
// A panic unwinding out of a listener's callback is recovered here rather
// than left to crash the whole process: the panic is not swallowed by the
// scheduler's own bookkeeping (the node was already removed, and the
// poisoned state is exactly the observable trace of the panic), but a Go
// goroutine that panics unrecovered takes the entire program down with
// it, which would make a poisoned scheduler unobservable rather than
// reported.
func (s *Background) run() {
	defer s.wg.Done()

	for {
		s.mu.Lock()
		if !s.running {
			s.mu.Unlock()
			return
		}

		n := s.q.peek()
		if n == nil {
			s.cond.Wait()
			s.mu.Unlock()
			continue
		}

		delayUs := n.executeAtUs - s.clock.NowUs()
		if delayUs > 0 {
			waitUs := delayUs
			if waitUs > backgroundWaitCapUs {
				waitUs = backgroundWaitCapUs
			}
			s.waitTimeout(time.Duration(waitUs) * time.Microsecond)
			s.mu.Unlock()
			continue
		}

		scheduledUs := n.executeAtUs
		s.q.remove(n)
		s.mu.Unlock()

		s.dispatch(n, scheduledUs)
	}
}

// dispatch invokes n's trigger outside the scheduler's mutex, recovering a
// panic into the poisoned state instead of letting it crash the process.
func (s *Background) dispatch(n *node, scheduledUs int64) {
	defer func() {
		if r := recover(); r != nil {
			s.poison(r)
		}
	}()

	n.trig.Notify()
	actualUs := s.clock.NowUs()

	s.mu.Lock()
	delta := actualUs - scheduledUs
	s.jitter.update(delta)
	s.metrics.record(delta)
	notify := s.notify
	s.mu.Unlock()

	reportSkew(notify, scheduledUs, delta)
}

func (s *Background) poison(r interface{}) {
	s.mu.Lock()
	s.poisoned = panicError{r}
	s.running = false
	s.mu.Unlock()

	logger.Logf(logger.Allow, "scheduler", "background worker poisoned by listener panic: %v", r)
	if s.notify != nil {
		_ = s.notify.Notify(notifications.NotifyWorkerPoisoned, r)
	}
}

// waitTimeout waits on s.cond for at most d, returning early if the
// condition variable is signalled by Schedule (new earlier head) or Stop.
// The mutex is held on entry and on return, matching sync.Cond.Wait's own
// contract.
func (s *Background) waitTimeout(d time.Duration) {
	timer := time.AfterFunc(d, func() {
		s.mu.Lock()
		s.cond.Broadcast()
		s.mu.Unlock()
	})
	defer timer.Stop()

	s.cond.Wait()
}

type panicError struct {
	v interface{}
}

func (p panicError) Error() string {
	if err, ok := p.v.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(p.v)
}
