package errors

var messages = map[Errno]string{
	// scheduler
	WorkerPoisoned:       "background scheduler worker is poisoned: %s",
	WorkerAlreadyRunning: "background scheduler worker is already running",

	// window
	WindowInitFailed:   "window subsystem init failed: %s",
	WindowCreateFailed: "window creation failed: %s",
	GLContextFailed:    "GL context creation failed: %s",

	// audio
	AudioDeviceOpenFailed: "audio device open failed: %s",
	AudioDecodeFailed:     "audio cue decode failed: %s",
	AudioCueNotFound:      "audio cue not found: %s",
	AudioFileWriteFailed:  "audio file write failed: %s",

	// input
	TerminalRawModeFailed: "terminal raw mode failed: %s",

	// performance
	ProfileWriteFailed: "profile write failed: %s",
}
