package tui

import "github.com/vovakirdan/tui-tanks/internal/core"

// DefaultHoldTicks is how long one key event keeps an action held, about
// 200ms at 60 ticks per second. A tap moves a tank 24 units. Terminal
// auto-repeat refreshes the hold every couple of ticks once it starts, but
// its initial delay is often longer than this window, so a held key can
// pause briefly after the first step. Raise --hold to bridge that delay.
const DefaultHoldTicks = 12

// HeldInput turns discrete terminal key presses into held actions.
// Terminals report presses but never releases, so a movement or fire key
// counts as held for a number of ticks after its last press. Pause, restart
// and quit are one-shot and last exactly one frame.
type HeldInput struct {
	holdTicks int
	remaining map[core.Action]int
	once      core.InputFrame
}

// NewHeldInput creates a tracker. Non-positive holdTicks uses DefaultHoldTicks.
func NewHeldInput(holdTicks int) *HeldInput {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &HeldInput{
		holdTicks: holdTicks,
		remaining: make(map[core.Action]int),
		once:      core.NewInputFrame(),
	}
}

func isDirection(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		return true
	}
	return false
}

// Press records a key press.
func (h *HeldInput) Press(a core.Action) {
	switch {
	case a == core.ActionNone:
	case isDirection(a):
		// A terminal only repeats the most recent key.
		for held := range h.remaining {
			if isDirection(held) {
				delete(h.remaining, held)
			}
		}
		h.remaining[a] = h.holdTicks
	case a == core.ActionFire:
		h.remaining[a] = h.holdTicks
	default:
		h.once.Set(a)
	}
}

// Frame returns the actions held for this tick and ages every hold by one.
func (h *HeldInput) Frame() core.InputFrame {
	frame := h.once.Clone()
	h.once.Clear()

	for a, n := range h.remaining {
		frame.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
	return frame
}

// Release drops every held and pending action.
func (h *HeldInput) Release() {
	clear(h.remaining)
	h.once.Clear()
}
