package audio

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-paddle/internal/core"
)

var allCues = []core.CueID{
	core.CuePaddleHit,
	core.CueWallBounce,
	core.CueLosePoint,
	core.CueFirstStart,
	core.CueBestTime,
}

func TestEveryCueHasNotes(t *testing.T) {
	for _, id := range allCues {
		notes := Notes(id)
		if len(notes) == 0 {
			t.Errorf("Cue %v has no notes", id)
			continue
		}
		for i, n := range notes {
			if n.On <= 0 {
				t.Errorf("Cue %v note %d has non-positive on-time", id, i)
			}
			if n.Freq < 0 {
				t.Errorf("Cue %v note %d has negative frequency", id, i)
			}
		}
	}
}

func TestCueDurationsAreFixed(t *testing.T) {
	// Cue lengths are data, not timing state: two reads must agree, and the
	// total must equal the sum of the notes.
	for _, id := range allCues {
		d1 := CueDuration(id)
		d2 := CueDuration(id)
		if d1 != d2 {
			t.Errorf("Cue %v duration is not stable: %v vs %v", id, d1, d2)
		}

		var sum time.Duration
		for _, n := range Notes(id) {
			sum += n.Duration()
		}
		if d1 != sum {
			t.Errorf("Cue %v duration %v does not match note sum %v", id, d1, sum)
		}
	}
}

func TestBounceCuesAreShort(t *testing.T) {
	// In-play cues must be far shorter than a tick-to-tick rally so they
	// never pile up audibly.
	for _, id := range []core.CueID{core.CuePaddleHit, core.CueWallBounce} {
		if d := CueDuration(id); d > 100*time.Millisecond {
			t.Errorf("In-play cue %v too long: %v", id, d)
		}
	}
}

func TestBestTimeCueIsMultiSecond(t *testing.T) {
	if d := CueDuration(core.CueBestTime); d < time.Second {
		t.Errorf("Best-time celebration should run for seconds, got %v", d)
	}
}

func TestBestTimeCueHasRest(t *testing.T) {
	hasRest := false
	for _, n := range Notes(core.CueBestTime) {
		if n.Freq == 0 {
			hasRest = true
		}
	}
	if !hasRest {
		t.Error("Best-time celebration should contain a rest note")
	}
}

func TestUnknownCueYieldsNothing(t *testing.T) {
	unknown := core.CueID(999)
	if Notes(unknown) != nil {
		t.Error("Unknown cue should yield no notes")
	}
	if CueDuration(unknown) != 0 {
		t.Error("Unknown cue should have zero duration")
	}
}
