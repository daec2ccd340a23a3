// Command chronoframe-headless drives a Polled scheduler from a terminal:
// every keypress is read off a dedicated goroutine and fed into the same
// Polled instance that the main loop drains, the way a game loop would
// drain input and timers together once per frame without ever sleeping
// inside the loop itself.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/tendrilgames/chronoframe/config"
	"github.com/tendrilgames/chronoframe/debugviz"
	"github.com/tendrilgames/chronoframe/event"
	"github.com/tendrilgames/chronoframe/input"
	"github.com/tendrilgames/chronoframe/logger"
	"github.com/tendrilgames/chronoframe/performance"
	"github.com/tendrilgames/chronoframe/scheduler"
	"github.com/tendrilgames/chronoframe/trigger"
	"github.com/tendrilgames/chronoframe/version"
)

func main() {
	versionFlag := flag.Bool("version", false, "print version information and exit")
	heartbeatMs := flag.Int("heartbeat", 1000, "milliseconds between heartbeat ticks")
	echoDelayMs := flag.Int("echo-delay", 250, "milliseconds to delay a keypress echo")
	cpuProfile := flag.String("cpuprofile", "", "write a cpu profile to this file")
	dumpDot := flag.String("dump-queue", "", "on exit, write a graphviz dump of the scheduler's queue to this file")
	flag.Parse()

	if *versionFlag {
		v, rev, _ := version.Version()
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, v, rev)
		return
	}

	stopProfile, err := performance.StartCPUProfile(*cpuProfile)
	if err != nil {
		fmt.Println(err)
		os.Exit(10)
	}
	defer stopProfile()

	heartbeat := &config.Int{}
	_ = heartbeat.Set(*heartbeatMs)
	settings := config.NewGroup()
	settings.Register("heartbeat.ms", heartbeat)

	term, err := input.OpenTerminal(os.Stdin)
	if err != nil {
		fmt.Println(err)
		os.Exit(10)
	}
	if err := term.RawMode(); err != nil {
		fmt.Println(err)
		os.Exit(10)
	}
	defer term.CanonicalMode()

	sched := scheduler.NewPolled()

	tickEvent := event.New[int]()
	tickEvent.AddListener(func(e *event.Event[int]) {
		fmt.Printf("\rtick %d", *e.Payload())
	})

	seq := 0
	var arm func()
	arm = func() {
		seq++
		heartbeatUs := int64(heartbeat.Get().(int)) * 1000
		sched.Delay(&rearmingTick{trig: trigger.New(tickEvent, seq), arm: arm}, heartbeatUs)
	}
	arm()

	echoEvent := event.New[string]()
	echoEvent.AddListener(func(e *event.Event[string]) {
		fmt.Printf("\r\nheard %q\r\n", *e.Payload())
	})

	// keyEvent is touched only from this goroutine — its listener just
	// forwards to a channel, keeping the terminal reader's event firing
	// and the main loop's scheduler access on separate, internally
	// consistent goroutines rather than sharing one across both.
	keyEvent := event.New[input.Event]()
	keys := make(chan string, 16)
	go func() {
		keyEvent.AddListener(func(e *event.Event[input.Event]) {
			keys <- e.Payload().Key
		})
		for {
			if err := term.ReadOnce(keyEvent); err != nil {
				return
			}
		}
	}()

	logger.Logf(logger.Allow, "headless", "settings: %s", settings.String())
	fmt.Println("q to quit")

loop:
	for {
		select {
		case key := <-keys:
			if key == "q" {
				break loop
			}
			sched.Delay(trigger.New(echoEvent, key), int64(*echoDelayMs)*1000)
		default:
		}
		sched.Poll()
		time.Sleep(time.Millisecond)
	}

	if *dumpDot != "" {
		f, err := os.Create(*dumpDot)
		if err != nil {
			fmt.Println(err)
		} else {
			debugviz.Dump(f, sched)
			f.Close()
		}
	}

	fmt.Println()
}

// rearmingTick fires a single tick, then calls arm to queue the next one
// with a fresh sequence number and the current heartbeat interval — a
// trigger is fired at most once, so each tick needs its own instance, not
// a reused one.
type rearmingTick struct {
	trig *trigger.Trigger[int]
	arm  func()
}

func (r *rearmingTick) Notify() {
	r.trig.Notify()
	r.arm()
}
