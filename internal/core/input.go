package core

// Action represents one of the two physical buttons of the original device,
// abstracted from key presses. The platform layer translates keyboard events
// into button levels; the simulation only ever polls these two.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Left button - move paddle left, confirm start
	ActionRight        // Right button - move paddle right, confirm start
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	default:
		return "None"
	}
}

// InputFrame holds the debounced button levels for one simulation tick.
// The simulation treats them as instantaneous, idempotent reads.
type InputFrame struct {
	Left  bool
	Right bool
}

// Has returns true if the given button is active this frame.
func (f InputFrame) Has(a Action) bool {
	switch a {
	case ActionLeft:
		return f.Left
	case ActionRight:
		return f.Right
	default:
		return false
	}
}

// Any returns true if either button is active. Used as the start/confirm
// signal on the title screen.
func (f InputFrame) Any() bool {
	return f.Left || f.Right
}

// Both returns true if both buttons are active simultaneously. Holding the
// chord is how a finished game is restarted.
func (f InputFrame) Both() bool {
	return f.Left && f.Right
}
