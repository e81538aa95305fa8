package game

import (
	"log"

	"riktris/internal/collision"
	"riktris/internal/piece"
	"riktris/internal/platform"
	"riktris/internal/state"
)

// Alpha values used when drawing the active piece and its ghost.
const (
	GhostAlpha   = 0.5
	lockingAlpha = 0.7
)

// Game encapsulates the core game logic, independent of the UI.
type Game struct {
	State *state.State

	input  platform.Input
	audio  platform.Audio
	repeat keyRepeat
}

// NewGame starts a game with the given options. The options are assumed to
// be valid; NewSession checks them.
func NewGame(opts state.GameOptions, input platform.Input, audio platform.Audio) *Game {
	if input == nil {
		input = platform.NopInput{}
	}
	if audio == nil {
		audio = platform.NopAudio{}
	}
	return &Game{
		State: state.NewState(opts),
		input: input,
		audio: audio,
	}
}

// Update advances the game by dt seconds. While a line clear is animating
// the active piece is frozen: no gravity, no lock delay, no input.
func (g *Game) Update(dt float64) {
	s := g.State
	if s.IsGameOver() {
		return
	}

	s.Animation.Update(dt)
	if s.Animation.IsActive() {
		return
	}
	s.Settle()
	if !g.checkSpawn() {
		return
	}

	p := s.Active

	s.FallTimer += dt
	if s.FallTimer >= s.Score.FallInterval() {
		if !collision.TouchingDown(p, s.Grid) {
			p.MoveDown()
			p.ResetLockTimer()
		}
		s.FallTimer = 0
	}

	s.Resting = collision.TouchingDown(p, s.Grid)
	if s.Resting && p.AddLockTime(dt) {
		log.Printf("lock: %s at (%d, %d)", p.Shape, p.Col, p.Row)
		g.audio.PlaySound(platform.SoundLock)
	}

	if p.IsLocked() {
		g.settle()
		return
	}

	g.handleInput(dt)
	if p.IsLocked() {
		g.settle()
	}
}

// settle merges the locked piece into the grid, scores and starts the
// animation for any completed rows, then brings in the next piece.
func (g *Game) settle() {
	s := g.State
	s.Grid.AddPiece(s.Active)
	if lockedOut(s.Active) {
		log.Printf("lock out: %s locked above the well", s.Active.Shape)
		s.TopOut()
		g.audio.PlaySound(platform.SoundGameOver)
		return
	}

	if rows := s.Grid.CompletedRows(); len(rows) > 0 {
		points, leveledUp := s.Score.LineClear(len(rows))
		log.Printf("clear: %d rows %v for %d points", len(rows), rows, points)
		s.StartClear(rows)

		if len(rows) >= 4 {
			g.audio.PlaySound(platform.SoundTetris)
		} else {
			g.audio.PlaySound(platform.SoundLineClear)
		}
		if leveledUp {
			g.audio.PlaySound(platform.SoundLevelUp)
		}
	}

	s.Spawn()
	if !s.Animation.IsActive() {
		g.checkSpawn()
	}
}

func (g *Game) checkSpawn() bool {
	if g.State.CheckSpawn() {
		return true
	}
	g.audio.PlaySound(platform.SoundGameOver)
	return false
}

func (g *Game) handleInput(dt float64) {
	s := g.State
	p := s.Active
	in := g.input

	if in.IsKeyPressed(platform.ActionRotate) {
		g.rotate(piece.Clockwise)
	}
	if in.IsKeyPressed(platform.ActionRotateCCW) {
		g.rotate(piece.CounterClockwise)
	}

	if in.IsKeyPressed(platform.ActionHardDrop) {
		g.hardDrop()
		return
	}

	if g.repeat.step(in, platform.ActionRight, dt) && !collision.TouchingRight(p, s.Grid) {
		p.ResetLockTimer()
		p.MoveRight()
		g.audio.PlaySound(platform.SoundMove)
	}

	if g.repeat.step(in, platform.ActionLeft, dt) && !collision.TouchingLeft(p, s.Grid) {
		p.ResetLockTimer()
		p.MoveLeft()
		g.audio.PlaySound(platform.SoundMove)
	}

	if g.repeat.step(in, platform.ActionSoftDrop, dt) && !collision.TouchingDown(p, s.Grid) {
		p.ResetLockTimer()
		p.MoveDown()
		s.FallTimer = 0
		if in.IsKeyPressed(platform.ActionSoftDrop) {
			g.audio.PlaySound(platform.SoundMove)
		}
	}
}

// lockedOut reports whether p locked with a cell above row 0, where the grid
// cannot hold it.
func lockedOut(p *piece.Piece) bool {
	for _, c := range p.Cells() {
		if c.Row < 0 {
			return true
		}
	}
	return false
}

func (g *Game) rotate(dir piece.Direction) {
	if collision.Rotate(g.State.Active, g.State.Grid, dir) {
		g.State.Active.ResetLockTimer()
		g.audio.PlaySound(platform.SoundRotate)
	}
}

func (g *Game) hardDrop() {
	p := g.State.Active
	n := collision.DropDistance(p, g.State.Grid)
	p.SetPosition(p.Col, p.Row+n)
	p.Lock()
	log.Printf("hard drop: %s fell %d rows", p.Shape, n)
	g.audio.PlaySound(platform.SoundHardDrop)
}

// Ghost returns the landing position of the active piece.
func (g *Game) Ghost() *piece.Piece {
	return g.State.Ghost()
}

// NextPreview returns the upcoming shapes.
func (g *Game) NextPreview() []piece.Shape {
	return g.State.NextPreview()
}

func (g *Game) Score() int        { return g.State.Score.CurrentScore }
func (g *Game) Level() int        { return g.State.Score.Level }
func (g *Game) Lines() int        { return g.State.Score.TotalLines }
func (g *Game) IsGameOver() bool  { return g.State.IsGameOver() }
func (g *Game) IsAnimating() bool { return g.State.Animation.IsActive() }
