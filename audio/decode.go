package audio

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/tendrilgames/chronoframe/logger"
)

// Clip is decoded, single-channel PCM audio ready for playback or
// recording: the left channel only, if the source was stereo.
type Clip struct {
	SampleRate float64
	Data       []float32
}

// Duration returns the clip's length in seconds.
func (c Clip) Duration() float64 {
	if c.SampleRate == 0 {
		return 0
	}
	return float64(len(c.Data)) / c.SampleRate
}

// DecodeWAV reads a WAV file from r, keeping only its first channel.
func DecodeWAV(r io.ReadSeeker) (Clip, error) {
	dec := wav.NewDecoder(r)
	if dec == nil {
		return Clip{}, fmt.Errorf("audio: wav: error decoding")
	}
	if !dec.IsValidFile() {
		return Clip{}, fmt.Errorf("audio: wav: not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Clip{}, fmt.Errorf("audio: wav: %w", err)
	}
	floatBuf := buf.AsFloat32Buffer()

	clip := Clip{
		SampleRate: float64(dec.SampleRate),
		Data:       make([]float32, 0, len(floatBuf.Data)/int(dec.NumChans)),
	}
	for i := 0; i < len(floatBuf.Data); i += int(dec.NumChans) {
		clip.Data = append(clip.Data, floatBuf.Data[i])
	}

	logger.Logf(logger.Allow, "audio", "decoded wav clip: %.2fHz, %.2fs", clip.SampleRate, clip.Duration())
	return clip, nil
}

// DecodeMP3 reads an MP3 stream from r. go-mp3 always produces 16-bit
// little-endian stereo regardless of the source channel count, so only
// the left channel of each frame is kept.
func DecodeMP3(r io.Reader) (Clip, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return Clip{}, fmt.Errorf("audio: mp3: %w", err)
	}

	clip := Clip{SampleRate: float64(dec.SampleRate())}

	chunk := make([]byte, 4096)
	for {
		n, err := dec.Read(chunk)
		if n > 0 {
			for i := 0; i+1 < n; i += 4 {
				v := int16(uint16(chunk[i]) | (uint16(chunk[i+1]) << 8))
				clip.Data = append(clip.Data, float32(v))
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return Clip{}, fmt.Errorf("audio: mp3: %w", err)
		}
	}

	logger.Logf(logger.Allow, "audio", "decoded mp3 clip: %.2fHz, %.2fs", clip.SampleRate, clip.Duration())
	return clip, nil
}
