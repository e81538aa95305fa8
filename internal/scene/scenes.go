package scene

import (
	"fmt"

	"riktris/internal/game"
	"riktris/internal/grid"
	"riktris/internal/platform"
)

// Scene names.
const (
	TitleName    = "title"
	GameplayName = "gameplay"
	PauseName    = "pause"
)

// Title waits for confirm and then hands over to the scene built by start.
type Title struct {
	stack *Stack
	input platform.Input
	start func() Scene
}

func NewTitle(stack *Stack, input platform.Input, start func() Scene) *Title {
	return &Title{stack: stack, input: input, start: start}
}

func (t *Title) Name() string { return TitleName }

func (t *Title) Update(float64) {
	if t.input.IsKeyPressed(platform.ActionConfirm) {
		t.stack.SwitchTo(t.start())
	}
}

func (t *Title) Draw(r platform.Renderer) {
	r.DrawText(2, 6, "RIKTRIS")
	r.DrawText(1, 9, "ENTER TO START")
	r.DrawText(1, 10, "Q TO QUIT")
}

// Gameplay runs a session.
type Gameplay struct {
	stack   *Stack
	input   platform.Input
	Session *game.Session
}

func NewGameplay(stack *Stack, input platform.Input, sess *game.Session) *Gameplay {
	return &Gameplay{stack: stack, input: input, Session: sess}
}

func (g *Gameplay) Name() string { return GameplayName }

func (g *Gameplay) Update(dt float64) {
	in := g.input
	switch {
	case in.IsKeyPressed(platform.ActionRestart):
		g.Session.Restart()
		return
	case g.Session.IsGameOver():
		if in.IsKeyPressed(platform.ActionConfirm) {
			g.Session.Restart()
		}
		return
	case in.IsKeyPressed(platform.ActionPause):
		g.stack.Push(NewPause(g.stack, in))
		return
	}
	g.Session.Update(dt)
}

func (g *Gameplay) Draw(r platform.Renderer) {
	g.Session.CurrentGame.Draw(r)

	if g.Session.IsGameOver() {
		y := float64(grid.StandardHeight/2 + 1)
		r.DrawText(1, y, fmt.Sprintf("BEST %d", g.Session.Best()))
		if g.Session.GotHighScore() {
			r.DrawText(1, y+1, "NEW BEST!")
		}
		r.DrawText(1, y+2, "ENTER TO RETRY")
	}
}

// Pause freezes the scene below until pause or confirm is pressed again.
type Pause struct {
	stack *Stack
	input platform.Input
}

func NewPause(stack *Stack, input platform.Input) *Pause {
	return &Pause{stack: stack, input: input}
}

func (p *Pause) Name() string { return PauseName }

func (p *Pause) Update(float64) {
	if p.input.IsKeyPressed(platform.ActionPause) || p.input.IsKeyPressed(platform.ActionConfirm) {
		p.stack.Pop()
	}
}

func (p *Pause) Draw(r platform.Renderer) {
	r.DrawText(3, float64(grid.StandardHeight/2), "PAUSED")
}
