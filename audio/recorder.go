package audio

import (
	"os"

	"github.com/youpy/go-wav"

	"github.com/tendrilgames/chronoframe/errors"
	"github.com/tendrilgames/chronoframe/logger"
)

// Recorder accumulates every cue played through it in memory and writes
// them out as a single WAV file on Close. Audio data is buffered in its
// entirety, so a Recorder is suitable for short demo sessions, not
// unattended long-running ones.
type Recorder struct {
	filename   string
	sampleRate uint32
	buffer     []wav.Sample
}

// NewRecorder returns a Recorder that will write to filename on Close,
// sampling every recorded clip as if it were at sampleRateHz.
func NewRecorder(filename string, sampleRateHz uint32) *Recorder {
	return &Recorder{filename: filename, sampleRate: sampleRateHz}
}

// Record appends clip's samples to the recording. Pair it with a
// Device.Play call sharing the same Cue to capture exactly what was heard.
func (r *Recorder) Record(clip Clip) {
	for _, v := range clip.Data {
		s := wav.Sample{}
		iv := int(v)
		s.Values[0] = iv
		s.Values[1] = iv
		r.buffer = append(r.buffer, s)
	}
}

// Listener returns a callback suitable for wiring into a Library-backed
// event pipeline: every fired Cue found in library is appended to the
// recording.
func (r *Recorder) Listener(library *Library) func(cue Cue) {
	return func(cue Cue) {
		if clip, ok := library.Get(cue.Name); ok {
			r.Record(clip)
		}
	}
}

// Close writes the accumulated recording to disk.
func (r *Recorder) Close() error {
	f, err := os.Create(r.filename)
	if err != nil {
		return errors.New(errors.AudioFileWriteFailed, err.Error())
	}
	defer f.Close()

	enc := wav.NewWriter(f, uint32(len(r.buffer)), 1, r.sampleRate, 16)
	enc.WriteSamples(r.buffer)

	logger.Logf(logger.Allow, "audio", "wrote %d samples to %s", len(r.buffer), r.filename)
	return nil
}
