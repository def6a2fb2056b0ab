// Package audio turns game cues into piezo-style tone sequences. Cue
// definitions are pure data so the simulation and tests never touch the
// sound device; playback lives behind the Player interface.
package audio

import (
	"time"

	"github.com/vovakirdan/tui-paddle/internal/core"
)

// Note is one step of a cue: a frequency held for On, followed by Off of
// silence. Freq 0 is a rest.
type Note struct {
	Freq int // Hz, 0 = silence
	On   time.Duration
	Off  time.Duration
}

// Duration returns the note's total nominal duration.
func (n Note) Duration() time.Duration {
	return n.On + n.Off
}

var cues = map[core.CueID][]Note{
	// Short blip when the ball bounces off the paddle.
	core.CuePaddleHit: {
		{Freq: 880, On: 20 * time.Millisecond, Off: 5 * time.Millisecond},
	},
	// Lower blip for wall and ceiling bounces, distinct from the paddle.
	core.CueWallBounce: {
		{Freq: 440, On: 15 * time.Millisecond, Off: 5 * time.Millisecond},
	},
	// Descending pair when a point is lost.
	core.CueLosePoint: {
		{Freq: 220, On: 80 * time.Millisecond, Off: 20 * time.Millisecond},
		{Freq: 147, On: 120 * time.Millisecond, Off: 30 * time.Millisecond},
	},
	// One-shot ascending arpeggio the first time a game is started after
	// boot. Never re-fires for the rest of the process.
	core.CueFirstStart: {
		{Freq: 523, On: 90 * time.Millisecond, Off: 20 * time.Millisecond},
		{Freq: 659, On: 90 * time.Millisecond, Off: 20 * time.Millisecond},
		{Freq: 784, On: 140 * time.Millisecond, Off: 40 * time.Millisecond},
	},
	// Multi-second celebration for a new best time. Plays only on the
	// terminal game-over transition, so its length is acceptable.
	core.CueBestTime: {
		{Freq: 523, On: 180 * time.Millisecond, Off: 40 * time.Millisecond},
		{Freq: 659, On: 180 * time.Millisecond, Off: 40 * time.Millisecond},
		{Freq: 784, On: 180 * time.Millisecond, Off: 40 * time.Millisecond},
		{Freq: 1047, On: 300 * time.Millisecond, Off: 80 * time.Millisecond},
		{Freq: 0, On: 120 * time.Millisecond, Off: 0},
		{Freq: 784, On: 180 * time.Millisecond, Off: 40 * time.Millisecond},
		{Freq: 1047, On: 500 * time.Millisecond, Off: 100 * time.Millisecond},
	},
}

// Notes returns the fixed note sequence for a cue. Unknown cues yield nil.
func Notes(id core.CueID) []Note {
	return cues[id]
}

// CueDuration returns the fixed nominal duration of a cue's full sequence.
func CueDuration(id core.CueID) time.Duration {
	var total time.Duration
	for _, n := range cues[id] {
		total += n.Duration()
	}
	return total
}
