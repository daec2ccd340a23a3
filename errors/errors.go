// Package errors implements the ResourceFailure category of error:
// environmental failures (a Background worker that has been poisoned by an
// unwound listener panic, a window or audio device that fails to open)
// reported to the caller as ordinary errors rather than panics.
// PreconditionViolation (programmer error) is never represented here — it
// panics instead — and TimeSkewWarning is logged, not returned.
package errors

import "fmt"

// Errno identifies a specific kind of ResourceFailure.
type Errno int

// Values carries the formatting arguments for a ResourceFailure's message.
type Values []interface{}

// Error is the ResourceFailure error type. Its Error() string is built
// from the registered message template for its Errno.
type Error struct {
	Errno  Errno
	Values Values
}

// New constructs a ResourceFailure for errno, formatted with values.
func New(errno Errno, values ...interface{}) Error {
	e := new(Error)
	e.Errno = errno
	e.Values = values
	return *e
}

func (e Error) Error() string {
	msg, ok := messages[e.Errno]
	if !ok {
		return fmt.Sprintf("resource failure (errno %d)", e.Errno)
	}
	return fmt.Sprintf(msg, e.Values...)
}
