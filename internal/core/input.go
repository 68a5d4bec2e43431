package core

// Action represents a semantic game intent, abstracted from physical key presses.
// The engine only ever sees these values, never raw device events.
type Action int

const (
	ActionNone       Action = iota
	ActionMoveUp            // W, Up arrow
	ActionMoveDown          // S, Down arrow
	ActionMoveLeft          // A, Left arrow
	ActionMoveRight         // D, Right arrow
	ActionConfirm           // Enter, Space - start from the menu
	ActionCancel            // Esc - abort countdown or run, back to menu
	ActionToggleWrap        // Tab - flip wall wrapping in the menu
	ActionToggleMode        // M - flip between speed and growth mode in the menu
	ActionQuit              // Q, Ctrl+C - handled by the platform, never by the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionConfirm:
		return "Confirm"
	case ActionCancel:
		return "Cancel"
	case ActionToggleWrap:
		return "ToggleWrap"
	case ActionToggleMode:
		return "ToggleMode"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action is one of the four direction intents.
func (a Action) IsMove() bool {
	switch a {
	case ActionMoveUp, ActionMoveDown, ActionMoveLeft, ActionMoveRight:
		return true
	}
	return false
}

// InputFrame collects the intents received during one frame.
// Order of arrival is kept: the state machine handles intents in sequence and
// the last direction intent of a frame wins.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make([]Action, 0, 4)}
}

// FrameOf builds a frame from the given actions, mostly for tests and drivers.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set appends an action to the frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// LastMove returns the last direction intent of the frame.
func (f InputFrame) LastMove() (Action, bool) {
	for i := len(f.Actions) - 1; i >= 0; i-- {
		if f.Actions[i].IsMove() {
			return f.Actions[i], true
		}
	}
	return ActionNone, false
}

// Empty reports whether no action was recorded.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Actions: make([]Action, len(f.Actions))}
	copy(clone.Actions, f.Actions)
	return clone
}
