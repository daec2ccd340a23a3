// Package input funnels keyboard and mouse activity, from either an SDL2
// window or a raw-mode terminal, into a single event.Event[Event] so a
// demo binary's listeners don't care which source produced an Event.
package input

// Kind identifies the sort of input activity an Event carries.
type Kind int

const (
	KindKey Kind = iota
	KindMouse
	KindWindowClose
)

// Mod identifies the held modifier keys accompanying a KindKey event.
type Mod int

const (
	ModNone Mod = iota
	ModShift
	ModCtrl
	ModAlt
)

// Event is the normalized shape every input source produces.
type Event struct {
	Kind Kind

	// KindKey fields.
	Key  string
	Down bool
	Mod  Mod

	// KindMouse fields.
	X, Y int
}
