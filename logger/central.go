package logger

import "io"

// maxCentral is the maximum number of entries retained by the central,
// process-wide logger.
const maxCentral = 256

// central is the only logger most callers need; there's no requirement to
// allow more than one. Packages that want an isolated log for testing can
// still call NewLogger directly.
var central = NewLogger(maxCentral)

// Log adds an entry to the central logger.
func Log(perm Permission, tag string, detail interface{}) {
	central.Log(perm, tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(perm Permission, tag, format string, args ...interface{}) {
	central.Logf(perm, tag, format, args...)
}

// Clear removes every entry from the central logger.
func Clear() {
	central.Clear()
}

// Write writes the central logger's entries to output.
func Write(output io.Writer) {
	central.Write(output)
}

// WriteRecent writes every entry of the central logger to output, the
// same as Write; entries written by an earlier call are written again.
func WriteRecent(output io.Writer) {
	central.WriteRecent(output)
}

// Tail writes the central logger's last number entries to output.
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}

// SetEcho causes the central logger to echo every future entry to output.
func SetEcho(output io.Writer) {
	central.SetEcho(output)
}

// BorrowLog gives f exclusive access to the central logger's entries.
func BorrowLog(f func([]Entry)) {
	central.BorrowLog(f)
}
