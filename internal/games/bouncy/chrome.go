package bouncy

import "github.com/vovakirdan/bouncy/internal/core"

// Button identifies a control in the header band.
type Button int

const (
	ButtonNone Button = iota
	ButtonPause
	ButtonRestart
	ButtonQuit
)

// Header geometry in playfield units.
const (
	buttonSize = 20
	buttonTop  = 5
)

// String returns the button name.
func (b Button) String() string {
	switch b {
	case ButtonPause:
		return "pause"
	case ButtonRestart:
		return "restart"
	case ButtonQuit:
		return "quit"
	default:
		return "none"
	}
}

// Action maps a button to the action it triggers.
func (b Button) Action() core.Action {
	switch b {
	case ButtonPause:
		return core.ActionPause
	case ButtonRestart:
		return core.ActionRestart
	case ButtonQuit:
		return core.ActionQuit
	default:
		return core.ActionNone
	}
}

// Color returns the fill of the button.
func (b Button) Color() core.Color {
	switch b {
	case ButtonPause:
		return core.ColorGreen
	case ButtonRestart:
		return core.ColorYellow
	case ButtonQuit:
		return core.ColorRed
	default:
		return core.ColorDefault
	}
}

// Buttons lists the header buttons from left to right.
var Buttons = []Button{ButtonPause, ButtonRestart, ButtonQuit}

// ButtonBounds returns the square a button occupies on a playfield of width w.
// Presses count only strictly inside it.
func ButtonBounds(b Button, w float64) core.Box {
	var left float64
	switch b {
	case ButtonPause:
		left = w - 90
	case ButtonRestart:
		left = w - 60
	case ButtonQuit:
		left = w - 30
	default:
		return core.Box{}
	}
	return core.Box{X: left, Y: buttonTop, W: buttonSize, H: buttonSize}
}

// HitTest resolves a press at p on a playfield of width w.
// It returns the button under the press, or ButtonNone together with
// drag=true when the press lands elsewhere inside the header band.
func HitTest(p core.Vec2, w, headerBand float64) (b Button, drag bool) {
	for _, b := range Buttons {
		if ButtonBounds(b, w).ContainsOpen(p) {
			return b, false
		}
	}
	return ButtonNone, p.Y < headerBand
}
