package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-paddle/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player plays named cues. Implementations must be safe to call from the
// tick loop without stalling it.
type Player interface {
	Play(id core.CueID)
}

// NullPlayer discards all cues. Used for --mute, tests, and SSH sessions
// where there is no speaker on the server side.
type NullPlayer struct{}

// Play does nothing.
func (NullPlayer) Play(core.CueID) {}

// BeepPlayer synthesizes square-wave tones through the system speaker.
// Cues are scheduled onto a shared mixer so playback never blocks the
// simulation tick; a cue's total nominal duration stays fixed regardless.
type BeepPlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewBeepPlayer creates an uninitialized player. Call Initialize before use.
func NewBeepPlayer() *BeepPlayer {
	return &BeepPlayer{mixer: &beep.Mixer{}}
}

// Initialize opens the audio device and starts the mixer.
func (p *BeepPlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences the mixer. beep exposes no speaker teardown; clearing the
// mixer is enough to stop all output.
func (p *BeepPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Play schedules the cue's full note sequence on the mixer.
func (p *BeepPlayer) Play(id core.CueID) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	notes := Notes(id)
	if len(notes) == 0 {
		return
	}

	parts := make([]beep.Streamer, 0, len(notes)*2)
	for _, n := range notes {
		if n.Freq <= 0 {
			parts = append(parts, beep.Silence(sampleRate.N(n.On+n.Off)))
			continue
		}
		parts = append(parts, beep.Take(sampleRate.N(n.On), newToneGenerator(sampleRate, n.Freq)))
		if n.Off > 0 {
			parts = append(parts, beep.Silence(sampleRate.N(n.Off)))
		}
	}

	speaker.Lock()
	p.mixer.Add(beep.Seq(parts...))
	speaker.Unlock()
}

// toneGenerator produces a square wave at a fixed frequency, the closest
// terminal-era stand-in for a piezo buzzer.
type toneGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func newToneGenerator(sr beep.SampleRate, freq int) *toneGenerator {
	return &toneGenerator{sr: sr, freq: float64(freq)}
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		v := 0.2
		if math.Sin(2*math.Pi*g.freq*t) < 0 {
			v = -0.2
		}

		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error {
	return nil
}
