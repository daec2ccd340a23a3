package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/tendrilgames/chronoframe/logger"
)

func TestCentralLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	if w.String() != "" {
		t.Fatalf("expected empty log, got %q", w.String())
	}

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	if w.String() != "test: this is a test\n" {
		t.Fatalf("unexpected log content: %q", w.String())
	}

	w.Reset()
	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	want := "test: this is a test\ntest2: this is another test\n"
	if w.String() != want {
		t.Fatalf("got %q, want %q", w.String(), want)
	}

	w.Reset()
	log.Tail(w, 100)
	if w.String() != want {
		t.Fatalf("Tail(100): got %q, want %q", w.String(), want)
	}

	w.Reset()
	log.Tail(w, 1)
	if w.String() != "test2: this is another test\n" {
		t.Fatalf("Tail(1): got %q", w.String())
	}

	w.Reset()
	log.Tail(w, 0)
	if w.String() != "" {
		t.Fatalf("Tail(0): got %q", w.String())
	}
}

type prohibitLogging struct {
	allow bool
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	for _, allow := range []bool{true, false, true} {
		log.Clear()
		w.Reset()
		log.Log(prohibitLogging{allow: allow}, "tag", "detail")
		log.Write(w)
		if allow && w.String() != "tag: detail\n" {
			t.Fatalf("expected entry when allowed, got %q", w.String())
		}
		if !allow && w.String() != "" {
			t.Fatalf("expected no entry when disallowed, got %q", w.String())
		}
	}
}

func TestErrorLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	err := errors.New("test error")

	log.Log(logger.Allow, "tag", err)
	log.Write(w)
	if w.String() != "tag: test error\n" {
		t.Fatalf("got %q", w.String())
	}

	log.Clear()
	w.Reset()

	log.Logf(logger.Allow, "tag", "wrapped: %v", err)
	log.Write(w)
	if w.String() != "tag: wrapped: test error\n" {
		t.Fatalf("got %q", w.String())
	}
}

type stringerTest struct{}

func (stringerTest) String() string {
	return "stringer test"
}

func TestStringerLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", stringerTest{})
	log.Write(w)
	if w.String() != "tag: stringer test\n" {
		t.Fatalf("got %q", w.String())
	}
}

func TestIntLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", 100)
	log.Write(w)
	if w.String() != "tag: 100\n" {
		t.Fatalf("got %q", w.String())
	}
}

func TestRepeatCollapsing(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", "same")
	log.Log(logger.Allow, "tag", "same")
	log.Log(logger.Allow, "tag", "same")
	log.Write(w)

	if w.String() != "tag: same (repeat x3)\n" {
		t.Fatalf("got %q", w.String())
	}
}
