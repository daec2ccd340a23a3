// Package statsview is an optional package, built only when the statsview
// build tag is present.
//
// It runs a local HTTP server offering runtime statistics and a rolling
// view of a scheduler's jitter trace, backed by
// "github.com/go-echarts/statsview".
//
// After Launch, graphical statistics are viewable at:
//
//	localhost:12600/debug/statsview
//
// Standard Go pprof statistics are available at:
//
//	localhost:12600/debug/pprof/
package statsview
