package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"riktris/internal/platform"
)

// HoldWindow is how long an action stays down after its last key event.
// Terminals report presses and autorepeats but never releases, so a key
// counts as held while its autorepeat keeps arriving. It must stay below the
// game's initial repeat delay or a single tap would repeat.
const HoldWindow = 0.1

// Keyboard implements platform.Input on top of bubbletea key messages.
type Keyboard struct {
	keys    KeyMap
	held    [platform.NumActions]float64
	pressed [platform.NumActions]bool
}

func NewKeyboard(keys KeyMap) *Keyboard {
	return &Keyboard{keys: keys}
}

// HandleKey records a key event. The first event for an idle action is a
// press; events arriving while it is still held only extend the hold.
func (k *Keyboard) HandleKey(msg tea.KeyMsg) (platform.Action, bool) {
	for a := platform.Action(0); a < platform.NumActions; a++ {
		if !key.Matches(msg, k.keys.Binding(a)) {
			continue
		}
		if k.held[a] <= 0 {
			k.pressed[a] = true
		}
		k.held[a] = HoldWindow
		return a, true
	}
	return 0, false
}

// EndFrame is called after each update. Presses last one frame; holds decay
// by dt.
func (k *Keyboard) EndFrame(dt float64) {
	clear(k.pressed[:])
	for a := range k.held {
		k.held[a] = max(0, k.held[a]-dt)
	}
}

func (k *Keyboard) IsKeyDown(a platform.Action) bool {
	return a >= 0 && a < platform.NumActions && k.held[a] > 0
}

func (k *Keyboard) IsKeyPressed(a platform.Action) bool {
	return a >= 0 && a < platform.NumActions && k.pressed[a]
}
