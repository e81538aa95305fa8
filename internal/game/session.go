package game

import (
	"fmt"
	"log"

	"riktris/internal/platform"
	"riktris/internal/scoring"
	"riktris/internal/state"
)

// Session owns the game being played and remembers finished ones.
type Session struct {
	CurrentGame *Game
	GameOptions state.GameOptions
	History     scoring.ScoreHistory

	input    platform.Input
	audio    platform.Audio
	recorded bool // CurrentGame's result is already in History
	games    int
}

func NewSession(opts state.GameOptions, input platform.Input, audio platform.Audio) (*Session, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game options: %w", err)
	}

	s := &Session{
		GameOptions: opts,
		input:       input,
		audio:       audio,
	}
	s.NewGame()
	return s, nil
}

// NewGame throws away the current game and starts another. A fixed seed is
// advanced per game so consecutive games differ but stay reproducible.
func (s *Session) NewGame() {
	opts := s.GameOptions
	opts.Seed = gameSeed(opts.Seed, s.games)
	s.games++

	s.CurrentGame = NewGame(opts, s.input, s.audio)
	s.recorded = false
}

// gameSeed is the bag seed for the n-th game of a session started with base.
// Zero means "seed from the clock", so a fixed seed skips it when it wraps.
func gameSeed(base uint64, n int) uint64 {
	if base == 0 {
		return 0
	}
	seed := base + uint64(n)
	if seed < base {
		seed++
	}
	return seed
}

// Restart records the current game if it has ended, then starts a new one.
func (s *Session) Restart() {
	s.record()
	s.NewGame()
}

// Update advances the current game and records it once it ends.
func (s *Session) Update(dt float64) {
	if s.CurrentGame == nil {
		return
	}
	s.CurrentGame.Update(dt)
	s.record()
}

func (s *Session) record() {
	g := s.CurrentGame
	if s.recorded || g == nil || !g.IsGameOver() {
		return
	}
	s.recorded = true
	if s.History.Record(g.State.Score.Entry()) {
		log.Printf("session: new best %d", g.Score())
	}
}

func (s *Session) IsGameOver() bool {
	return s.CurrentGame != nil && s.CurrentGame.IsGameOver()
}

// Best is the best finished score this session.
func (s *Session) Best() int {
	return s.History.Best()
}

// GotHighScore reports whether the finished current game is the session best.
func (s *Session) GotHighScore() bool {
	return s.recorded && s.History.HighScoreEntry != nil &&
		s.CurrentGame.Score() >= s.History.Best()
}

// Games is how many games the session has started.
func (s *Session) Games() int {
	return s.games
}
