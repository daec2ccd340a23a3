package logger

// Permission implementations indicate whether the environment making a
// log request is allowed to create new log entries. Useful for silencing
// a noisy caller (e.g. a HighRes strategy logging every lateness sample)
// without touching its call sites.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

// Allow indicates that the logging request should always be allowed.
var Allow Permission = allow{}
