// Package assert collects small debug-only helpers used to catch
// programmer errors (precondition violations) as early
// and as loudly as possible. Nothing here is meant to be recovered from.
package assert

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

// GetGoroutineID returns an identifier for the calling goroutine. The
// result is (a) different between goroutines and (b) consistent for a
// given goroutine for as long as it runs. It is useful for debugging and
// for the single-owner-goroutine check in event.Event, and should not be
// relied on for anything else.
func GetGoroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// PreconditionViolatef panics with a formatted message if cond is false.
// Precondition violations are programmer errors — handle use after the
// owning Event is gone, scheduling on a stopped Background scheduler —
// and must never be silently recovered.
func PreconditionViolatef(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf("precondition violated: "+format, args...))
	}
}
