package input

import (
	"fmt"
	"os"
	"sync"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/tendrilgames/chronoframe/errors"
	"github.com/tendrilgames/chronoframe/event"
)

// Terminal reads raw-mode keypresses from a posix terminal for the
// headless demo binary, firing each one onto an event.Event[Event].
type Terminal struct {
	input *os.File

	canonAttr unix.Termios
	rawAttr   unix.Termios

	mu  sync.Mutex
	raw bool
}

// OpenTerminal captures in's current termios settings and prepares a raw
// mode to switch into. It does not switch modes itself — call RawMode.
func OpenTerminal(in *os.File) (*Terminal, error) {
	t := &Terminal{input: in}

	if err := termios.Tcgetattr(t.input.Fd(), &t.canonAttr); err != nil {
		return nil, errors.New(errors.TerminalRawModeFailed, err.Error())
	}
	t.rawAttr = t.canonAttr
	termios.Cfmakeraw(&t.rawAttr)

	return t, nil
}

// RawMode switches the terminal into raw, unbuffered, unechoed input.
func (t *Terminal) RawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := termios.Tcsetattr(t.input.Fd(), termios.TCIFLUSH, &t.rawAttr); err != nil {
		return errors.New(errors.TerminalRawModeFailed, err.Error())
	}
	t.raw = true
	return nil
}

// CanonicalMode restores the terminal's original settings, captured at
// OpenTerminal. Always call this before the process exits if RawMode was
// ever called, or the user's shell is left in raw mode.
func (t *Terminal) CanonicalMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := termios.Tcsetattr(t.input.Fd(), termios.TCIFLUSH, &t.canonAttr); err != nil {
		return errors.New(errors.TerminalRawModeFailed, err.Error())
	}
	t.raw = false
	return nil
}

// ReadOnce blocks for a single byte of input and fires it on ev as a
// KindKey event. Intended to run on a dedicated goroutine, feeding a
// Polled scheduler from outside its own poll loop, one keypress at a time.
func (t *Terminal) ReadOnce(ev *event.Event[Event]) error {
	buf := make([]byte, 1)
	n, err := t.input.Read(buf)
	if err != nil {
		return fmt.Errorf("input: terminal read: %w", err)
	}
	if n == 0 {
		return nil
	}

	ev.NotifyWithPayload(Event{
		Kind: KindKey,
		Key:  string(buf[:n]),
		Down: true,
	})
	return nil
}

// ReadLoop calls ReadOnce until it returns an error (typically because the
// terminal's file descriptor was closed), or until done is closed.
func (t *Terminal) ReadLoop(ev *event.Event[Event], done <-chan struct{}) error {
	for {
		select {
		case <-done:
			return nil
		default:
		}
		if err := t.ReadOnce(ev); err != nil {
			return err
		}
	}
}
