package sim

import "github.com/vovakirdan/bouncy/internal/core"

// Direction is the way a hazard travels, fixed at creation.
type Direction int

const (
	DirRight Direction = iota // spawned off the left edge
	DirLeft                   // spawned off the right edge
	DirDown                   // spawned under the header band
)

// String returns the direction's name.
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirLeft:
		return "left"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Hazard is a moving square. Exactly one velocity axis is non-zero.
type Hazard struct {
	X, Y      float64
	VX, VY    float64
	Size      float64
	Direction Direction
	Active    bool
}

// NewHazard creates an active hazard moving in dir at the given speed.
func NewHazard(x, y, size, speed float64, dir Direction) Hazard {
	h := Hazard{X: x, Y: y, Size: size, Direction: dir, Active: true}
	switch dir {
	case DirRight:
		h.VX = speed
	case DirLeft:
		h.VX = -speed
	case DirDown:
		h.VY = speed
	}
	return h
}

// Bounds returns the hazard's bounding square.
func (h *Hazard) Bounds() core.Box {
	return core.Box{X: h.X, Y: h.Y, W: h.Size, H: h.Size}
}

// Advance moves the hazard by its velocity. Inactive hazards stay put.
func (h *Hazard) Advance() {
	if !h.Active {
		return
	}
	h.X += h.VX
	h.Y += h.VY
}

// Offscreen reports whether the hazard has left the playfield: fully past the
// left edge, past the right edge, or below the bottom.
func (h *Hazard) Offscreen(width, height float64) bool {
	return h.X+h.Size < 0 || h.X > width || h.Y > height
}

// Collides reports whether the ball's center lies strictly inside the
// hazard's bounding square. Touching an edge does not count.
func Collides(b *Ball, h *Hazard) bool {
	return h.Bounds().ContainsOpen(b.Center())
}
