package tui

import (
	"github.com/vovakirdan/tui-paddle/internal/core"
)

// KeyTracker synthesizes the two debounced button levels of the original
// device from terminal key events. Terminals report presses (with
// auto-repeat) but never releases, so a press holds its button active for a
// short window of ticks; the window expiring is the release.
//
// The space/enter chord key stands in for pressing both buttons at once and
// latches long enough to satisfy the restart hold on the game-over screen,
// where holding two arrow keys would be broken up by the keyboard's
// auto-repeat delay.
type KeyTracker struct {
	moveWindow  int // Ticks a directional press stays active
	chordWindow int // Ticks a chord press stays active

	tick       int
	leftUntil  int
	rightUntil int
}

// NewKeyTracker creates a tracker for the given tick rate. restartHoldMs is
// the session's restart hold time; the chord window covers it with margin.
func NewKeyTracker(tickRate, restartHoldMs int) *KeyTracker {
	if tickRate <= 0 {
		tickRate = 60
	}
	moveWindow := tickRate / 8 // ~125 ms
	if moveWindow < 1 {
		moveWindow = 1
	}
	chordWindow := tickRate*restartHoldMs/1000 + tickRate/10
	return &KeyTracker{
		moveWindow:  moveWindow,
		chordWindow: chordWindow,
	}
}

// KeyDown registers a key press. Returns true if the key was recognized.
func (t *KeyTracker) KeyDown(key string) bool {
	switch key {
	case "left", "a", "h":
		t.leftUntil = t.tick + t.moveWindow
	case "right", "d", "l":
		t.rightUntil = t.tick + t.moveWindow
	case " ", "enter":
		t.leftUntil = t.tick + t.chordWindow
		t.rightUntil = t.tick + t.chordWindow
	default:
		return false
	}
	return true
}

// Frame advances the tracker by one tick and returns the button levels for
// that tick. Called exactly once per simulation tick.
func (t *KeyTracker) Frame() core.InputFrame {
	t.tick++
	return core.InputFrame{
		Left:  t.tick <= t.leftUntil,
		Right: t.tick <= t.rightUntil,
	}
}

// Release clears both buttons immediately.
func (t *KeyTracker) Release() {
	t.leftUntil = 0
	t.rightUntil = 0
}
