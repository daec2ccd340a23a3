// Package audio plays and records short audio cues fired by the
// scheduler: a Trigger[Cue] queued against any Scheduler invokes a Cue by
// name against an open Device when it fires, and every fired Cue can
// simultaneously be appended to a Recorder for later inspection.
package audio

// Cue names a clip in a Library and the gain to play it at. It is the
// payload type for every Trigger[Cue] the audio subsystem schedules.
type Cue struct {
	Name string
	Gain float64
}
