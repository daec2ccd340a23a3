// Package debugoverlay renders a Dear ImGui panel showing a scheduler's
// queue depth and jitter trace over whatever window a demo binary already
// has open, using "github.com/inkyblackness/imgui-go/v4".
//
// Overlay produces Dear ImGui draw data only; submitting that data to a
// particular OpenGL context is left to a caller-supplied RenderFunc, since
// a demo binary's window package already owns its own GL state and buffer
// swap.
package debugoverlay

import (
	"fmt"

	"github.com/inkyblackness/imgui-go/v4"

	"github.com/tendrilgames/chronoframe/scheduler"
)

// RenderFunc submits Dear ImGui's draw data to a GL context.
type RenderFunc func(data imgui.DrawData)

// Overlay owns a Dear ImGui context scoped to displaying scheduler health:
// queue depth, and — if metrics were attached to the scheduler — a jitter
// trace summary.
type Overlay struct {
	context *imgui.Context
	io      imgui.IO
	render  RenderFunc

	metrics *scheduler.JitterMetrics
	depth   func() int
}

// New creates a Dear ImGui context and returns an Overlay that will submit
// its draw data to render every call to Frame.
func New(render RenderFunc) *Overlay {
	o := &Overlay{
		context: imgui.CreateContext(nil),
		render:  render,
	}
	o.io = imgui.CurrentIO()
	return o
}

// AttachMetrics makes jitter-trace statistics visible in the overlay.
func (o *Overlay) AttachMetrics(m *scheduler.JitterMetrics) {
	o.metrics = m
}

// AttachQueueDepth makes a scheduler's live queue depth visible in the
// overlay. depth is called once per Frame, so it should be cheap — for a
// Background scheduler, a method that briefly locks its mutex.
func (o *Overlay) AttachQueueDepth(depth func() int) {
	o.depth = depth
}

// Frame lays out one frame of the overlay at the given display size (in
// pixels) and hands the resulting draw data to the Overlay's RenderFunc.
func (o *Overlay) Frame(displayWidth, displayHeight float32) {
	o.io.SetDisplaySize(imgui.Vec2{X: displayWidth, Y: displayHeight})
	imgui.NewFrame()

	imgui.Begin("scheduler")
	if o.depth != nil {
		imgui.Text(fmt.Sprintf("queue depth: %d", o.depth()))
	}
	if o.metrics != nil {
		snap := o.metrics.Snapshot()
		imgui.Text(fmt.Sprintf("samples: %d", snap.Count))
		if snap.Count > 0 {
			imgui.Text(fmt.Sprintf("jitter mean: %.1fus", snap.Mean()))
			imgui.Text(fmt.Sprintf("jitter min/max: %d/%dus", snap.Min, snap.Max))
		}
	}
	imgui.End()

	imgui.Render()
	if o.render != nil {
		o.render(imgui.CurrentDrawData())
	}
}

// Destroy releases the Dear ImGui context.
func (o *Overlay) Destroy() {
	o.context.Destroy()
}
