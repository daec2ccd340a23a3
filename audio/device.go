package audio

import (
	"bytes"

	"github.com/veandco/go-sdl2/mix"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/youpy/go-wav"

	"github.com/tendrilgames/chronoframe/errors"
	"github.com/tendrilgames/chronoframe/logger"
)

// Device is an open SDL_mixer output, the playback half of the audio
// subsystem. A Device is meant to be driven exclusively by firing
// Trigger[Cue] values; nothing about it is safe to call concurrently
// without the scheduler's own serialization guaranteeing that.
type Device struct {
	library *Library
	volume  float64
}

// OpenDevice initializes SDL_mixer's default output at freqHz and returns a
// Device backed by library. Requires sdl.Init(sdl.INIT_AUDIO) to have
// already been called.
func OpenDevice(freqHz int, library *Library) (*Device, error) {
	if err := mix.OpenAudio(freqHz, mix.DEFAULT_FORMAT, 2, 1024); err != nil {
		return nil, errors.New(errors.AudioDeviceOpenFailed, err.Error())
	}
	logger.Logf(logger.Allow, "audio", "device opened at %dHz", freqHz)
	return &Device{library: library, volume: 1.0}, nil
}

// Close shuts down SDL_mixer's output.
func (d *Device) Close() {
	mix.CloseAudio()
}

// SetVolume scales every cue played after this call, in [0,1].
func (d *Device) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	d.volume = v
}

// Play decodes and plays cue.Name at cue.Gain*Device volume. Unknown cue
// names are logged and otherwise ignored — a missing sample should never
// stall or crash the scheduler thread that fired the trigger.
func (d *Device) Play(cue Cue) {
	clip, ok := d.library.Get(cue.Name)
	if !ok {
		logger.Logf(logger.Allow, "audio", "cue %q not found", cue.Name)
		return
	}

	chunk, err := encodeChunk(clip)
	if err != nil {
		logger.Logf(logger.Allow, "audio", "cue %q: %v", cue.Name, err)
		return
	}
	defer chunk.Free()

	chunk.Volume(int(cue.Gain * d.volume * 128))
	if _, err := chunk.Play(-1, 0); err != nil {
		logger.Logf(logger.Allow, "audio", "cue %q: play: %v", cue.Name, err)
	}
}

// Device itself is not a trigger.Notifier, since it has no event to
// carry — it is driven by the event/trigger machinery, not part of it.

// Listener returns Play as a plain func(Cue) callback that plays the fired
// Cue. It is not an event.Listener: wiring it into an *event.Event[Cue]
// takes a listener that passes *e.Payload() on to it.
func (d *Device) Listener() func(cue Cue) {
	return d.Play
}

// encodeChunk round-trips clip through a WAV container in memory so
// SDL_mixer's file-format loader can parse it — SDL_mixer has no API for
// handing it raw decoded samples directly.
func encodeChunk(clip Clip) (*mix.Chunk, error) {
	samples := make([]wav.Sample, len(clip.Data))
	for i, v := range clip.Data {
		iv := int(v)
		samples[i].Values[0] = iv
		samples[i].Values[1] = iv
	}

	var buf bytes.Buffer
	enc := wav.NewWriter(&buf, uint32(len(samples)), 1, uint32(clip.SampleRate), 16)
	enc.WriteSamples(samples)

	rw, err := sdl.RWFromMem(buf.Bytes())
	if err != nil {
		return nil, err
	}
	return mix.LoadWAVRW(rw, true)
}
