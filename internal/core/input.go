package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses
// and mouse clicks.
type Action int

const (
	ActionNone       Action = iota
	ActionPause             // P, header pause button - toggle pause
	ActionRestart           // R, header restart button - new ball, no hazards
	ActionQuit              // Q, Ctrl+C, header quit button
	ActionScoreboard        // Tab - show high scores
	ActionBack              // Esc, B - leave the scoreboard
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// InputFrame is everything the host hands a game for one tick: the discrete
// actions triggered since the last tick, the wall time that elapsed, and the
// damped window-velocity vector.
type InputFrame struct {
	Actions map[Action]bool

	// Delta is the wall time since the previous tick.
	Delta time.Duration

	// WindowVelocity is the damped window motion, in playfield units per tick.
	WindowVelocity Vec2
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

// Clear resets actions, delta and window velocity for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Delta = 0
	f.WindowVelocity = Vec2{}
}
