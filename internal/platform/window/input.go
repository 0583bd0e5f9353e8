package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-tanks/internal/core"
)

// binding ties an action to its keys. Held bindings are sampled every tick;
// one-shot bindings fire only on the tick the key goes down.
type binding struct {
	action core.Action
	keys   []ebiten.Key
	once   bool
}

var bindings = []binding{
	{core.ActionUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, false},
	{core.ActionDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, false},
	{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, false},
	{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, false},
	{core.ActionFire, []ebiten.Key{ebiten.KeySpace}, false},
	{core.ActionPause, []ebiten.Key{ebiten.KeyP}, true},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR}, true},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyEscape}, true},
}

// frameFrom builds an input frame from key state queries.
func frameFrom(pressed, justPressed func(ebiten.Key) bool) core.InputFrame {
	frame := core.NewInputFrame()
	for _, b := range bindings {
		query := pressed
		if b.once {
			query = justPressed
		}
		for _, k := range b.keys {
			if query(k) {
				frame.Set(b.action)
				break
			}
		}
	}
	return frame
}
