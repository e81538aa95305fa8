// Package tui runs the game in a terminal with bubbletea.
package tui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"riktris/internal/grid"
	"riktris/internal/platform"
	"riktris/internal/scene"
)

// The canvas covers the walled well plus the sidebar, which needs a few rows
// more than the well at the largest preview.
const (
	CanvasCells = grid.StandardWidth + 2 + 10
	CanvasRows  = grid.StandardHeight + 3
)

type FrameMsg time.Time

type Config struct {
	FPS      int
	MaxDelta float64
}

func DefaultConfig() Config {
	return Config{FPS: 60, MaxDelta: 0.1}
}

func (c Config) interval() time.Duration {
	if c.FPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.FPS)
}

// Model drives a scene stack from bubbletea messages. Each frame tick
// updates the top scene with the clamped delta; View draws every scene.
type Model struct {
	stack    *scene.Stack
	keyboard *Keyboard
	keys     KeyMap
	clock    *FrameClock
	canvas   *Canvas
	help     help.Model
	cfg      Config
	frames   int
}

func NewModel(stack *scene.Stack, keyboard *Keyboard, keys KeyMap, cfg Config) *Model {
	return &Model{
		stack:    stack,
		keyboard: keyboard,
		keys:     keys,
		clock:    NewFrameClock(cfg.MaxDelta),
		canvas:   NewCanvas(CanvasCells, CanvasRows),
		help:     help.New(),
		cfg:      cfg,
	}
}

func (m *Model) frameCmd() tea.Cmd {
	return tea.Tick(m.cfg.interval(), func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

func (m *Model) Init() tea.Cmd {
	return m.frameCmd()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		m.Step(time.Time(msg))
		return m, m.frameCmd()
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			log.Printf("quit after %d frames", m.frames)
			return m, tea.Quit
		}
		m.keyboard.HandleKey(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

// Step advances one frame at now.
func (m *Model) Step(now time.Time) {
	dt := m.clock.Tick(now)
	m.stack.Update(dt)
	m.keyboard.EndFrame(dt)
	m.frames++
}

func (m *Model) View() string {
	m.canvas.Clear()
	m.stack.Draw(m.canvas)
	return lipgloss.JoinVertical(lipgloss.Left, m.canvas.Render(), m.help.View(m.keys))
}

// Clock exposes the frame clock.
func (m *Model) Clock() platform.Clock { return m.clock }

func (m *Model) Canvas() *Canvas { return m.canvas }
