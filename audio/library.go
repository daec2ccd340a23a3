package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tendrilgames/chronoframe/errors"
)

// Library holds every clip a demo binary has loaded, addressed by the cue
// name a Trigger[Cue] carries.
type Library struct {
	mu    sync.RWMutex
	clips map[string]Clip
}

// NewLibrary returns an empty Library.
func NewLibrary() *Library {
	return &Library{clips: make(map[string]Clip)}
}

// Load decodes the file at path (by its .wav or .mp3 extension) and
// registers it under name.
func (l *Library) Load(name, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.New(errors.AudioDecodeFailed, err.Error())
	}
	defer f.Close()

	var clip Clip
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		clip, err = DecodeWAV(f)
	case ".mp3":
		clip, err = DecodeMP3(f)
	default:
		err = fmt.Errorf("audio: unsupported file extension %q", filepath.Ext(path))
	}
	if err != nil {
		return errors.New(errors.AudioDecodeFailed, err.Error())
	}

	l.mu.Lock()
	l.clips[name] = clip
	l.mu.Unlock()
	return nil
}

// Get returns the clip registered under name, and whether it was found.
func (l *Library) Get(name string) (Clip, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	clip, ok := l.clips[name]
	return clip, ok
}
