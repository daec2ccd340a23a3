package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Entry represents a single line/entry in the log.
type Entry struct {
	Timestamp time.Time
	tag       string
	detail    string
	repeated  int
}

func (e *Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.tag, e.detail))
	if e.repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// detailString renders an arbitrary detail value the way Log expects:
// errors and fmt.Stringers use their own string form, everything else
// falls back to the %v verb.
func detailString(detail interface{}) string {
	switch d := detail.(type) {
	case string:
		return d
	case error:
		return d.Error()
	case fmt.Stringer:
		return d.String()
	default:
		return fmt.Sprintf("%v", d)
	}
}

// Logger is a bounded, permission-gated ring of log Entries. The zero
// value is not ready to use; call NewLogger.
type Logger struct {
	mu sync.Mutex

	maxEntries int
	entries    []Entry

	echo io.Writer

	atomicTimestamp atomic.Value // time.Time
}

// NewLogger returns a Logger that retains at most maxEntries.
func NewLogger(maxEntries int) *Logger {
	return &Logger{
		maxEntries: maxEntries,
		entries:    make([]Entry, 0),
	}
}

// Log adds an entry to the log if perm allows it. detail may be a string,
// an error, a fmt.Stringer, or anything else fmt's %v verb can render.
func (l *Logger) Log(perm Permission, tag string, detail interface{}) {
	if perm != Allow && !perm.AllowLogging() {
		return
	}
	l.append(tag, detailString(detail))
}

// Logf adds a formatted entry to the log if perm allows it.
func (l *Logger) Logf(perm Permission, tag, format string, args ...interface{}) {
	if perm != Allow && !perm.AllowLogging() {
		return
	}
	l.append(tag, fmt.Sprintf(format, args...))
}

func (l *Logger) append(tag, detail string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var last *Entry
	if len(l.entries) > 0 {
		last = &l.entries[len(l.entries)-1]
	}

	// remove all newline characters from tag; the detail string may
	// legitimately contain embedded newlines (a multi-line diagnostic),
	// which Colorizer dims rather than strips.
	tag = strings.ReplaceAll(tag, "\n", "")

	var ts time.Time
	if last != nil && detail == last.detail && tag == last.tag {
		last.repeated++
		last.Timestamp = time.Now()
		ts = last.Timestamp
	} else {
		e := Entry{Timestamp: time.Now(), tag: tag, detail: detail}
		l.entries = append(l.entries, e)
		ts = e.Timestamp
	}

	if len(l.entries) > l.maxEntries {
		l.entries = l.entries[len(l.entries)-l.maxEntries:]
	}

	l.atomicTimestamp.Store(ts)

	if l.echo != nil {
		io.WriteString(l.echo, l.entries[len(l.entries)-1].String())
	}
}

// Clear removes every entry from the log.
func (l *Logger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = l.entries[:0]
}

// Write writes every retained entry to output.
func (l *Logger) Write(output io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.entries {
		io.WriteString(output, l.entries[i].String())
	}
}

// WriteRecent writes every retained entry to output, exactly as Write
// does. It keeps no record of earlier calls, so entries already written
// by a previous WriteRecent are written again.
func (l *Logger) WriteRecent(output io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.entries {
		io.WriteString(output, l.entries[i].String())
	}
}

// Tail writes the last number entries to output. Asking for more entries
// than exist is fine — it writes everything there is.
func (l *Logger) Tail(output io.Writer, number int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if number > len(l.entries) {
		number = len(l.entries)
	}
	if number <= 0 {
		return
	}
	for _, e := range l.entries[len(l.entries)-number:] {
		io.WriteString(output, e.String())
	}
}

// SetEcho causes every future log entry to also be written to output
// immediately. Passing a nil output disables echoing.
func (l *Logger) SetEcho(output io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.echo = output
}

// BorrowLog gives f exclusive, synchronous access to the current entries.
// f must not retain the slice past its call.
func (l *Logger) BorrowLog(f func([]Entry)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	f(l.entries)
}
