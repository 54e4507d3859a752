package core

// Action represents a semantic input action, abstracted from physical key
// presses. Games decide what an action means in their current mode.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow
	ActionDown             // S, Down arrow
	ActionLeft             // A, Left arrow
	ActionRight            // D, Right arrow
	ActionConfirm          // Enter
	ActionBack             // Escape
	ActionPause            // P, Space
	ActionRestart          // R
	ActionColorMenu        // C
	ActionRanking          // T
	ActionQuit             // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionColorMenu:
		return "ColorMenu"
	case ActionRanking:
		return "Ranking"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Pointer is a mouse position in screen cells.
type Pointer struct {
	X, Y int
}

// InputFrame collects the input for a single simulation tick: the ordered
// list of discrete actions and the latest pointer position, if any.
type InputFrame struct {
	actions    []Action
	pointer    Pointer
	hasPointer bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{actions: make([]Action, 0, 4)}
}

// Set queues an action for this frame. Order of arrival is kept so that
// e.g. "right, right, enter" in a menu resolves the way it was typed.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.actions {
		if got == a {
			return true
		}
	}
	return false
}

// Actions returns the queued actions in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// SetPointer records the latest pointer position.
func (f *InputFrame) SetPointer(x, y int) {
	f.pointer = Pointer{X: x, Y: y}
	f.hasPointer = true
}

// Pointer returns the latest pointer position and whether one was recorded.
func (f InputFrame) Pointer() (Pointer, bool) {
	return f.pointer, f.hasPointer
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
	f.hasPointer = false
}
