package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"riktris/internal/platform"
)

// KeyMap binds terminal keys to game actions.
type KeyMap struct {
	Rotate    key.Binding
	RotateCCW key.Binding
	HardDrop  key.Binding
	Left      key.Binding
	Right     key.Binding
	SoftDrop  key.Binding
	Pause     key.Binding
	Confirm   key.Binding
	Restart   key.Binding
	Quit      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Rotate: key.NewBinding(
			key.WithKeys("up", "x", "k"),
			key.WithHelp("↑/x", "rotate"),
		),
		RotateCCW: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "rotate ccw"),
		),
		HardDrop: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "drop"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		SoftDrop: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "soft drop"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Binding returns the binding for a.
func (k KeyMap) Binding(a platform.Action) key.Binding {
	switch a {
	case platform.ActionRotate:
		return k.Rotate
	case platform.ActionRotateCCW:
		return k.RotateCCW
	case platform.ActionHardDrop:
		return k.HardDrop
	case platform.ActionLeft:
		return k.Left
	case platform.ActionRight:
		return k.Right
	case platform.ActionSoftDrop:
		return k.SoftDrop
	case platform.ActionPause:
		return k.Pause
	case platform.ActionConfirm:
		return k.Confirm
	case platform.ActionRestart:
		return k.Restart
	case platform.ActionQuit:
		return k.Quit
	}
	return key.Binding{}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Rotate, k.HardDrop, k.Pause, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.SoftDrop, k.HardDrop},
		{k.Rotate, k.RotateCCW},
		{k.Pause, k.Confirm, k.Restart, k.Quit},
	}
}
