package core

// Action represents a semantic game action, abstracted from physical keys.
// Hosts translate keys and buttons into actions; the game never sees raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - nudge paddle left
	ActionRight          // D, Right arrow - nudge paddle right
	ActionConfirm        // Enter - start a game from the home screen
	ActionBack           // B, Escape - return to the home screen
	ActionRestart        // R - new game after game over
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame collects everything the player did between two ticks.
// Pointer drags are kept in arrival order and replayed at the start of the
// next tick, so the simulation never observes input mid-step.
type InputFrame struct {
	Actions map[Action]bool

	// Drags holds horizontal pointer positions in playfield units.
	Drags []float64
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Drag queues a pointer position.
func (f *InputFrame) Drag(x float64) {
	f.Drags = append(f.Drags, x)
}

// Clear resets the frame for the next tick, keeping allocated storage.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Drags = f.Drags[:0]
}
