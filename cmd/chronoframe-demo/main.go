// Command chronoframe-demo drives an SDL2/OpenGL window whose redraw
// cadence comes from a scheduler.LowRes Trigger, alongside a
// scheduler.Background instance firing ambient audio cues on its own
// independent cadence — demonstrating that a window's frame pacing and a
// background worker's dispatch timing are both just instances of the same
// timeline primitive.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gl "github.com/go-gl/gl/v2.1/gl"
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/tendrilgames/chronoframe/audio"
	"github.com/tendrilgames/chronoframe/clock"
	"github.com/tendrilgames/chronoframe/config"
	"github.com/tendrilgames/chronoframe/debugoverlay"
	"github.com/tendrilgames/chronoframe/debugviz"
	"github.com/tendrilgames/chronoframe/event"
	"github.com/tendrilgames/chronoframe/input"
	"github.com/tendrilgames/chronoframe/logger"
	"github.com/tendrilgames/chronoframe/notifications"
	"github.com/tendrilgames/chronoframe/performance"
	"github.com/tendrilgames/chronoframe/random"
	"github.com/tendrilgames/chronoframe/scheduler"
	"github.com/tendrilgames/chronoframe/statsview"
	"github.com/tendrilgames/chronoframe/version"
	"github.com/tendrilgames/chronoframe/window"
)

func main() {
	versionFlag := flag.Bool("version", false, "print version information and exit")
	fps := flag.Int("fps", 60, "target window redraw rate")
	cueDir := flag.String("cues", "", "directory of .wav/.mp3 cue files to load")
	cueInterval := flag.Float64("cue-interval", 2.0, "seconds between ambient cue triggers")
	recordWav := flag.String("record", "", "write every played cue to this wav file")
	dumpDot := flag.String("dump-queue", "", "on exit, write a graphviz dump of the cue scheduler's queue to this file")
	cpuProfile := flag.String("cpuprofile", "", "write a cpu profile to this file")
	memProfile := flag.String("memprofile", "", "write a heap profile to this file")
	flag.Parse()

	if *versionFlag {
		v, rev, _ := version.Version()
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, v, rev)
		return
	}

	logger.SetEcho(os.Stdout)

	stopProfile, err := performance.StartCPUProfile(*cpuProfile)
	if err != nil {
		fmt.Printf("* error: %v\n", err)
		os.Exit(1)
	}
	defer stopProfile()
	defer func() {
		if err := performance.WriteHeapProfile(*memProfile); err != nil {
			fmt.Printf("* error: %v\n", err)
		}
	}()

	volume := &config.Float{}
	_ = volume.Set(1.0)
	settings := config.NewGroup()
	settings.Register("audio.volume", volume)

	notify := &notifications.Broadcaster{}
	notify.Register(logNotify{})

	redrawSched := scheduler.NewLowRes()
	redrawSched.AttachNotifier(notify)

	win, err := window.New(window.Config{Title: version.ApplicationName, TargetFPS: *fps}, redrawSched)
	if err != nil {
		fmt.Printf("* error: %v\n", err)
		os.Exit(1)
	}
	defer win.Close()

	if err := sdl.Init(sdl.INIT_AUDIO); err != nil {
		fmt.Printf("* error: %v\n", err)
		os.Exit(1)
	}

	var library *audio.Library
	var cueNames []string
	if *cueDir != "" {
		library, cueNames, err = loadCues(*cueDir)
		if err != nil {
			fmt.Printf("* error: %v\n", err)
			os.Exit(1)
		}
	} else {
		library = audio.NewLibrary()
	}

	device, err := audio.OpenDevice(44100, library)
	if err != nil {
		fmt.Printf("* error: %v\n", err)
		os.Exit(1)
	}
	defer device.Close()

	var onCue []func(audio.Cue)
	onCue = append(onCue, device.Play)

	if *recordWav != "" {
		recorder := audio.NewRecorder(*recordWav, 44100)
		onCue = append(onCue, recorder.Listener(library))
		defer func() {
			if err := recorder.Close(); err != nil {
				fmt.Printf("* error: %v\n", err)
			}
		}()
	}

	cueSched := scheduler.NewBackground()
	cueSched.AttachNotifier(notify)
	metrics := scheduler.NewJitterMetrics()
	cueSched.AttachMetrics(metrics)
	if err := cueSched.Exec(); err != nil {
		fmt.Printf("* error: %v\n", err)
		os.Exit(1)
	}
	defer cueSched.Stop()

	ambient := &ambientCueTrigger{
		sched:      cueSched,
		onCue:      onCue,
		rnd:        random.NewRandom(clock.New()),
		names:      cueNames,
		intervalUs: int64(*cueInterval * 1_000_000),
	}
	ambient.arm()

	overlay := debugoverlay.New(func(data imgui.DrawData) {
		// submitting draw data to a GL context is left to a real renderer;
		// this demo only reports that a frame's worth of draw data exists.
		_ = data
	})
	overlay.AttachMetrics(metrics)
	overlay.AttachQueueDepth(cueSched.Len)
	defer overlay.Destroy()

	inputEvent := event.New[input.Event]()
	quit := false
	inputEvent.AddListener(func(e *event.Event[input.Event]) {
		switch e.Payload().Kind {
		case input.KindWindowClose:
			quit = true
		case input.KindKey:
			if e.Payload().Key == "Escape" && e.Payload().Down {
				quit = true
			}
		}
	})

	win.Redraw().AddListener(func(e *event.Event[int64]) {
		gl.ClearColor(0.05, 0.05, 0.08, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		width, height := win.Size()
		overlay.Frame(float32(width), float32(height))
		win.Swap()
	})

	if statsview.Available() {
		statsview.Launch(os.Stdout, metrics)
	}

	logger.Logf(logger.Allow, "demo", "settings: %s", settings.String())

	for !quit {
		win.PollEvents(func(ev sdl.Event) { input.TranslateSDL(inputEvent, ev) })
		redrawSched.RunOne()
	}

	if *dumpDot != "" {
		f, err := os.Create(*dumpDot)
		if err != nil {
			fmt.Printf("* error: %v\n", err)
		} else {
			debugviz.Dump(f, cueSched)
			f.Close()
		}
	}
}

// loadCues registers every .wav/.mp3 file in dir under a name derived from
// its filename, returning the Library and the list of names loaded.
func loadCues(dir string) (*audio.Library, []string, error) {
	library := audio.NewLibrary()

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".wav" && ext != ".mp3" {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if err := library.Load(name, filepath.Join(dir, entry.Name())); err != nil {
			logger.Logf(logger.Allow, "demo", "failed to load cue %q: %v", name, err)
			continue
		}
		names = append(names, name)
	}
	return library, names, nil
}

// ambientCueTrigger fires a randomly chosen cue on a fixed interval,
// re-arming itself on cueSched the same way window.rearmingTrigger keeps a
// window's redraw cadence alive, but against a Background scheduler
// instead of the redraw loop's LowRes one.
//
// It implements trigger.Notifier directly rather than wrapping an
// event.Event[audio.Cue]: every Notify runs on cueSched's own worker
// goroutine, and an Event registered from outside that goroutine would
// trip its single-owner-goroutine precondition the first time a listener
// added from main fired on the worker instead.
type ambientCueTrigger struct {
	sched      *scheduler.Background
	onCue      []func(audio.Cue)
	rnd        *random.Random
	names      []string
	intervalUs int64
}

func (a *ambientCueTrigger) arm() {
	if len(a.names) == 0 {
		return
	}
	name := a.names[a.rnd.Intn(len(a.names))]
	cue := audio.Cue{Name: name, Gain: 1.0}
	if _, err := a.sched.Delay(&cueFire{a: a, cue: cue}, a.intervalUs); err != nil {
		logger.Logf(logger.Allow, "demo", "failed to arm ambient cue: %v", err)
	}
}

// cueFire is the Notifier actually queued for a single cue instant; a
// fresh one is built on every arm since a trigger fires at most once.
type cueFire struct {
	a   *ambientCueTrigger
	cue audio.Cue
}

func (c *cueFire) Notify() {
	for _, fn := range c.a.onCue {
		fn(c.cue)
	}
	c.a.arm()
}

type logNotify struct{}

func (logNotify) Notify(notice notifications.Notice, values ...interface{}) error {
	logger.Logf(logger.Allow, "notify", "%s %v", notice, values)
	return nil
}
