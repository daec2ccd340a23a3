// Package debugviz renders a scheduler's live ring queue as a Graphviz
// `.dot` graph, for visually inspecting a stuck or mis-sorted timeline
// during development — a new home for "github.com/bradleyjkemp/memviz",
// which the teacher's go.mod carries but no file in the retrieved codebase
// actually imports.
package debugviz

import (
	"io"

	"github.com/bradleyjkemp/memviz"
)

// Dump walks s (a *scheduler.HighRes, *scheduler.LowRes, *scheduler.Polled,
// or *scheduler.Background) by reflection and writes a Graphviz `.dot`
// description of its current queue, including unexported ring pointers, to
// w. memviz follows the ring's next/prev cycle without infinite-looping,
// deduplicating nodes it has already visited.
//
// The output is meant to be piped through `dot -Tpng` or similar; Dump
// itself has no rendering dependency beyond memviz.
func Dump(w io.Writer, s interface{}) {
	memviz.Map(w, s)
}
