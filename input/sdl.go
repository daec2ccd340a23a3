package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/tendrilgames/chronoframe/event"
)

// TranslateSDL converts an SDL event into this package's normalized Event
// and fires it on ev. Non-input SDL events (window exposure, audio device
// changes, and so on) are silently ignored.
func TranslateSDL(ev *event.Event[Event], e sdl.Event) {
	switch e := e.(type) {
	case *sdl.QuitEvent:
		ev.NotifyWithPayload(Event{Kind: KindWindowClose})

	case *sdl.KeyboardEvent:
		ev.NotifyWithPayload(Event{
			Kind: KindKey,
			Key:  sdl.GetKeyName(e.Keysym.Sym),
			Down: e.Type == sdl.KEYDOWN,
			Mod:  translateSDLMod(sdl.Keymod(e.Keysym.Mod)),
		})

	case *sdl.MouseButtonEvent:
		ev.NotifyWithPayload(Event{
			Kind: KindMouse,
			Down: e.Type == sdl.MOUSEBUTTONDOWN,
			X:    int(e.X),
			Y:    int(e.Y),
		})
	}
}

func translateSDLMod(m sdl.Keymod) Mod {
	switch {
	case m&sdl.KMOD_SHIFT != 0:
		return ModShift
	case m&sdl.KMOD_CTRL != 0:
		return ModCtrl
	case m&sdl.KMOD_ALT != 0:
		return ModAlt
	default:
		return ModNone
	}
}
