package notifications

// Notice identifies the kind of event being reported.
type Notice string

// List of defined notifications.
const (
	// NotifyTimeSkew is raised when a compensating scheduler strategy
	// observes a lateness sample that is negative beyond a few
	// microseconds — i.e. the clock appears to have gone backwards.
	// Execution proceeds; this is purely informational.
	NotifyTimeSkew Notice = "NotifyTimeSkew"

	// NotifyWorkerPoisoned is raised when a Background scheduler's worker
	// goroutine is terminated by an unwinding listener panic.
	NotifyWorkerPoisoned Notice = "NotifyWorkerPoisoned"

	// NotifyWindowResized reports that a window's size changed. No package
	// in this module raises it; the window package does not import
	// notifications.
	NotifyWindowResized Notice = "NotifyWindowResized"

	// NotifyAudioDeviceChanged reports that an audio output device was
	// opened, closed, or replaced. No package in this module raises it;
	// the audio package does not import notifications.
	NotifyAudioDeviceChanged Notice = "NotifyAudioDeviceChanged"
)

// Notify receives notices. Any number of listeners may be registered with
// a Broadcaster; none of them is required to handle every Notice.
type Notify interface {
	Notify(notice Notice, values ...interface{}) error
}

// Broadcaster fans a Notice out to every registered Notify implementation.
// It generalizes the teacher's single direct Notify call to any number of
// registered targets.
type Broadcaster struct {
	targets []Notify
}

// Register adds n to the set of targets that receive future notices.
func (b *Broadcaster) Register(n Notify) {
	b.targets = append(b.targets, n)
}

// Notify delivers notice to every registered target in registration order.
// The first error returned by a target, if any, is returned to the caller,
// but delivery continues to the remaining targets regardless.
func (b *Broadcaster) Notify(notice Notice, values ...interface{}) error {
	var first error
	for _, t := range b.targets {
		if err := t.Notify(notice, values...); err != nil && first == nil {
			first = err
		}
	}
	return first
}
