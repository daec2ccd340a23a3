// Package window creates and drives an SDL2/OpenGL window whose redraw
// cadence is a repeating Trigger on a scheduler.LowRes instance rather than
// a bespoke frame-rate limiter: the same jitter-compensated timeline that
// drives any other part of a chronoframe program also drives its display.
package window

import (
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/tendrilgames/chronoframe/errors"
	"github.com/tendrilgames/chronoframe/event"
	"github.com/tendrilgames/chronoframe/logger"
	"github.com/tendrilgames/chronoframe/scheduler"
	"github.com/tendrilgames/chronoframe/trigger"
)

// Window owns an SDL2 window and its OpenGL context, and redraws on a
// cadence driven entirely by a scheduler Trigger.
type Window struct {
	sdlWindow *sdl.Window
	glContext sdl.GLContext

	redraw *event.Event[int64]
	ref    scheduler.NodeRef
	sched  scheduler.Scheduler

	frame      int64
	intervalUs int64
	closed     bool
}

// Config describes the window this package creates.
type Config struct {
	Title         string
	Width, Height int

	// TargetFPS paces the redraw Trigger re-arming interval. 60 if zero.
	TargetFPS int
}

// New creates an SDL2 window with a current OpenGL 2.1 context, and arms a
// repeating redraw Trigger on sched at the configured frame rate. The
// caller drives sched's Run/RunOne/Poll loop; New never blocks waiting for
// frames itself.
func New(cfg Config, sched scheduler.Scheduler) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, errors.New(errors.WindowInitFailed, err.Error())
	}

	if err := sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 2); err != nil {
		sdl.Quit()
		return nil, errors.New(errors.GLContextFailed, err.Error())
	}
	if err := sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1); err != nil {
		sdl.Quit()
		return nil, errors.New(errors.GLContextFailed, err.Error())
	}

	width, height := cfg.Width, cfg.Height
	if width == 0 {
		width = 800
	}
	if height == 0 {
		height = 600
	}

	sdlWindow, err := sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height),
		sdl.WINDOW_OPENGL|sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return nil, errors.New(errors.WindowCreateFailed, err.Error())
	}

	glContext, err := sdlWindow.GLCreateContext()
	if err != nil {
		sdlWindow.Destroy()
		sdl.Quit()
		return nil, errors.New(errors.GLContextFailed, err.Error())
	}
	if err := sdlWindow.GLMakeCurrent(glContext); err != nil {
		sdlWindow.GLDeleteContext(glContext)
		sdlWindow.Destroy()
		sdl.Quit()
		return nil, errors.New(errors.GLContextFailed, err.Error())
	}
	if err := gl.Init(); err != nil {
		sdlWindow.GLDeleteContext(glContext)
		sdlWindow.Destroy()
		sdl.Quit()
		return nil, errors.New(errors.GLContextFailed, err.Error())
	}

	fps := cfg.TargetFPS
	if fps <= 0 {
		fps = 60
	}

	w := &Window{
		sdlWindow:  sdlWindow,
		glContext:  glContext,
		redraw:     event.New[int64](),
		sched:      sched,
		intervalUs: int64(1_000_000 / fps),
	}

	logger.Logf(logger.Allow, "window", "created %dx%d window at %d fps", width, height, fps)
	w.arm()
	return w, nil
}

// Redraw returns the event fired once per frame, carrying the frame
// counter. Register a listener to do the actual GL drawing.
func (w *Window) Redraw() *event.Event[int64] {
	return w.redraw
}

// arm schedules the next redraw by wrapping w.redraw in a self-rearming
// trigger.
func (w *Window) arm() {
	if w.closed {
		return
	}
	w.frame++
	trig := trigger.New(w.redraw, w.frame)
	rearming := &rearmingTrigger{w: w, inner: trig}
	ref, err := w.sched.Delay(rearming, w.intervalUs)
	if err != nil {
		logger.Logf(logger.Allow, "window", "failed to arm redraw trigger: %v", err)
		return
	}
	w.ref = ref
}

// rearmingTrigger notifies the wrapped trigger and then re-arms itself on
// the same scheduler, producing a steady redraw cadence without the caller
// having to manage rescheduling from inside its own redraw listener.
type rearmingTrigger struct {
	w     *Window
	inner *trigger.Trigger[int64]
}

func (r *rearmingTrigger) Notify() {
	r.inner.Notify()
	r.w.arm()
}

// PollEvents drains pending SDL events, invoking handle for each one. It
// never blocks. Call it once per redraw, or on whatever cadence the caller
// wants input latency to track.
func (w *Window) PollEvents(handle func(sdl.Event)) {
	for {
		e := sdl.PollEvent()
		if e == nil {
			return
		}
		handle(e)
	}
}

// Swap presents the back buffer. Call it after drawing in response to a
// Redraw fire.
func (w *Window) Swap() {
	w.sdlWindow.GLSwap()
}

// Size returns the window's current dimensions in pixels.
func (w *Window) Size() (int, int) {
	width, height := w.sdlWindow.GetSize()
	return int(width), int(height)
}

// Close cancels the pending redraw trigger and tears down the window, GL
// context, and SDL itself.
func (w *Window) Close() {
	w.closed = true
	w.sched.Cancel(w.ref)
	w.sdlWindow.GLDeleteContext(w.glContext)
	w.sdlWindow.Destroy()
	sdl.Quit()
}
