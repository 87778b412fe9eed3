package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bouncy/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapperActions(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		want     core.Action
		wantQuit bool
	}{
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"space pauses", tea.KeyMsg{Type: tea.KeySpace}, core.ActionPause, false},
		{"r restarts", runeKey('r'), core.ActionRestart, false},
		{"tab opens scores", tea.KeyMsg{Type: tea.KeyTab}, core.ActionScoreboard, false},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"arrows are not actions", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionNone, false},
		{"unbound key", runeKey('z'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, quit := km.MapKey(tc.msg)
			if got != tc.want || quit != tc.wantQuit {
				t.Errorf("MapKey() = (%s, %v), expected (%s, %v)", got, quit, tc.want, tc.wantQuit)
			}
		})
	}
}

func TestKeyMapperNudge(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		dx, dy int
		ok     bool
	}{
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, -2, 0, true},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, 2, 0, true},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, 0, -1, true},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, 0, 1, true},
		{"vim h", runeKey('h'), -2, 0, true},
		{"wasd w", runeKey('w'), 0, -1, true},
		{"pause is no nudge", runeKey('p'), 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dx, dy, ok := km.MapNudge(tc.msg)
			if dx != tc.dx || dy != tc.dy || ok != tc.ok {
				t.Errorf("MapNudge() = (%d, %d, %v), expected (%d, %d, %v)", dx, dy, ok, tc.dx, tc.dy, tc.ok)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('r'), &frame) {
		t.Error("r should not quit")
	}
	if !frame.Has(core.ActionRestart) {
		t.Error("restart not set on frame")
	}
	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q should quit")
	}
}

func TestKeyMapHelpCoversBindings(t *testing.T) {
	keys := DefaultKeyMap()
	seen := map[string]bool{}
	for _, col := range keys.FullHelp() {
		for _, b := range col {
			seen[b.Help().Desc] = true
		}
	}
	for _, want := range []string{"pause", "restart", "quit", "scores"} {
		if !seen[want] {
			t.Errorf("full help missing %q", want)
		}
	}
}
