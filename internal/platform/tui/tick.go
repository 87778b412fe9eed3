// Package tui provides the Bubble Tea host for bouncy.
// It handles the terminal UI loop, input mapping, the draggable virtual
// window, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// tickClock turns tick timestamps into per-tick wall deltas.
type tickClock struct {
	last time.Time
}

// Advance returns the time since the previous tick; the first tick reports zero
// so the game falls back to its nominal rate.
func (c *tickClock) Advance(now time.Time) time.Duration {
	if c.last.IsZero() || now.Before(c.last) {
		c.last = now
		return 0
	}
	d := now.Sub(c.last)
	c.last = now
	return d
}

// Reset forgets the previous tick, e.g. after a pause in delivery.
func (c *tickClock) Reset() {
	c.last = time.Time{}
}
