package tui

import (
	"math"

	"github.com/vovakirdan/bouncy/internal/core"
)

// VirtualWindow is the box the playfield lives in on the terminal grid.
// Moving it is the terminal equivalent of dragging a desktop window: its
// position, converted to playfield units, feeds the WindowTracker.
//
// Coordinates are terminal cells. X, Y is the top-left border corner.
type VirtualWindow struct {
	X, Y int

	// Inner size in cells (the playfield screen); the border adds one cell per side.
	Cols, Rows int

	// Playfield units per cell, used to report the position in world units.
	CellW, CellH float64

	termW, termH int

	dragging     bool
	grabX, grabY int // press offset from the top-left corner
}

// NewVirtualWindow sizes the window for a playfield of fieldW x fieldH units
// drawn at cellW x cellH units per cell.
func NewVirtualWindow(fieldW, fieldH, cellW, cellH float64) *VirtualWindow {
	return &VirtualWindow{
		Cols:  max(int(math.Round(fieldW/cellW)), 1),
		Rows:  max(int(math.Round(fieldH/cellH)), 1),
		CellW: cellW,
		CellH: cellH,
	}
}

// Outer returns the window rectangle including its border.
func (w *VirtualWindow) Outer() core.Rect {
	return core.NewRect(w.X, w.Y, w.Cols+2, w.Rows+2)
}

// Inner returns the playfield rectangle inside the border.
func (w *VirtualWindow) Inner() core.Rect {
	return core.NewRect(w.X+1, w.Y+1, w.Cols, w.Rows)
}

// SetTerminal records the terminal size and keeps the window on screen.
// The first call centers the window.
func (w *VirtualWindow) SetTerminal(width, height int) {
	first := w.termW == 0 && w.termH == 0
	w.termW, w.termH = width, height
	if first {
		w.X = (width - (w.Cols + 2)) / 2
		w.Y = (height - (w.Rows + 2)) / 2
	}
	w.MoveTo(w.X, w.Y)
}

// MoveTo places the window, clamped so it stays inside the terminal when it fits.
func (w *VirtualWindow) MoveTo(x, y int) {
	w.X = core.Clamp(x, 0, max(w.termW-(w.Cols+2), 0))
	w.Y = core.Clamp(y, 0, max(w.termH-(w.Rows+2), 0))
}

// Nudge moves the window by dx, dy cells.
func (w *VirtualWindow) Nudge(dx, dy int) {
	w.MoveTo(w.X+dx, w.Y+dy)
}

// Position returns the window's top-left corner in playfield units.
func (w *VirtualWindow) Position() core.Vec2 {
	return core.Vec2{X: float64(w.X) * w.CellW, Y: float64(w.Y) * w.CellH}
}

// FieldPoint converts a terminal cell to the playfield point at its center.
// ok is false when the cell lies outside the playfield.
func (w *VirtualWindow) FieldPoint(x, y int, fieldW, fieldH float64) (p core.Vec2, ok bool) {
	in := w.Inner()
	if !in.Contains(x, y) {
		return core.Vec2{}, false
	}
	return core.Vec2{
		X: (float64(x-in.X) + 0.5) * fieldW / float64(w.Cols),
		Y: (float64(y-in.Y) + 0.5) * fieldH / float64(w.Rows),
	}, true
}

// OnTitleBar reports whether a cell is on the top border, which always drags.
func (w *VirtualWindow) OnTitleBar(x, y int) bool {
	o := w.Outer()
	return y == o.Y && x >= o.X && x < o.Right()
}

// BeginDrag starts dragging from the pressed cell.
func (w *VirtualWindow) BeginDrag(x, y int) {
	w.dragging = true
	w.grabX, w.grabY = x-w.X, y-w.Y
}

// DragTo moves the window so the grabbed cell follows the pointer.
func (w *VirtualWindow) DragTo(x, y int) {
	if !w.dragging {
		return
	}
	w.MoveTo(x-w.grabX, y-w.grabY)
}

// EndDrag stops dragging.
func (w *VirtualWindow) EndDrag() {
	w.dragging = false
}

// Dragging reports whether a drag is in progress.
func (w *VirtualWindow) Dragging() bool {
	return w.dragging
}
