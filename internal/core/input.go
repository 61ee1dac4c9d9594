package core

// Action represents a semantic input action, abstracted from physical key presses.
// The engine only ever sees these; the platform layer owns the key bindings.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, k - menu navigation
	ActionDown           // Down arrow, j - menu navigation
	ActionLeft           // Left arrow, h - settings cycling
	ActionRight          // Right arrow, l - settings cycling
	ActionConfirm        // Enter - confirm selection
	ActionCancel         // Escape, b - back out of the current screen
	ActionFire           // Space - fire one bullet
	ActionPause          // P - toggle pause
	ActionRestart        // R - restart the session
	ActionQuit           // Q, Ctrl+C - exit the program
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
	case ActionCancel:
		return "Cancel"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "TogglePause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Held is the continuous movement signal, separate from discrete navigation.
type Held uint8

const (
	HeldLeft Held = 1 << iota
	HeldRight
)

// Dir returns -1, 0 or 1 for the horizontal direction being held.
// Holding both directions cancels out.
func (h Held) Dir() int {
	dir := 0
	if h&HeldLeft != 0 {
		dir--
	}
	if h&HeldRight != 0 {
		dir++
	}
	return dir
}

// InputFrame is the input gathered for a single simulation tick.
// Discrete actions keep their arrival order so the state machine sees them
// exactly as the player pressed them.
type InputFrame struct {
	Actions []Action
	Held    Held
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends a discrete action to this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Hold marks a movement direction as held for this frame.
func (f *InputFrame) Hold(h Held) {
	f.Held |= h
}

// Clear resets all actions for the next frame, keeping the backing array.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
	f.Held = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Held: f.Held}
	if len(f.Actions) > 0 {
		clone.Actions = append([]Action(nil), f.Actions...)
	}
	return clone
}
