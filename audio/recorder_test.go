package audio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tendrilgames/chronoframe/audio"
)

func TestRecorderWritesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.wav")

	rec := audio.NewRecorder(path, 44100)
	rec.Record(audio.Clip{SampleRate: 44100, Data: []float32{0, 100, -100, 200}})

	if err := rec.Close(); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Fatal("expected non-empty wav file")
	}
}
