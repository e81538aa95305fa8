package state

import (
	"context"
	"fmt"
	"log"

	"github.com/looplab/fsm"

	"riktris/internal/animation"
	"riktris/internal/bag"
	"riktris/internal/grid"
	"riktris/internal/piece"
	"riktris/internal/scoring"
)

// Lifecycle states of a game.
const (
	Playing  = "playing"
	Clearing = "clearing"
	GameOver = "gameOver"
)

// Limits accepted by GameOptions.Validate.
const (
	MaxStartLevel = 20
	MaxPreview    = 6
)

type GameOptions struct {
	StartLevel int
	Seed       uint64 // 0 seeds from the clock
	Preview    int    // number of upcoming shapes shown
	Ghost      bool
	Animation  animation.Config
}

// DefaultOptions returns the options used when no flags are given.
func DefaultOptions() GameOptions {
	return GameOptions{
		StartLevel: 1,
		Preview:    3,
		Ghost:      true,
		Animation:  animation.DefaultConfig(),
	}
}

// Validate checks that the options describe a playable game.
func (o GameOptions) Validate() error {
	if o.StartLevel < 1 || o.StartLevel > MaxStartLevel {
		return fmt.Errorf("start level %d out of range 1..%d", o.StartLevel, MaxStartLevel)
	}
	if o.Preview < 0 || o.Preview > MaxPreview {
		return fmt.Errorf("preview %d out of range 0..%d", o.Preview, MaxPreview)
	}
	a := o.Animation
	if a.FlashDuration < 0 || a.ClearDuration < 0 || a.DropDuration < 0 {
		return fmt.Errorf("animation durations must not be negative")
	}
	if a.MaxFlashes < 0 {
		return fmt.Errorf("animation flash count %d must not be negative", a.MaxFlashes)
	}
	return nil
}

// State is everything one game owns: the grid, the active piece and the
// timers that drive it.
type State struct {
	Grid      *grid.Grid
	Active    *piece.Piece
	Bag       *bag.Bag
	Score     *scoring.Scoring
	Animation *animation.Sequencer
	FSM       *fsm.FSM
	Options   GameOptions

	FallTimer float64
	Resting   bool
	LastClear int // lines removed by the most recent clear

	spawnPending bool // the active piece has not been checked against the stack yet
}

func NewState(opts GameOptions) *State {
	s := &State{
		Grid:      grid.NewStandard(),
		Bag:       bag.New(opts.Seed),
		Score:     scoring.InitScoring(opts.StartLevel),
		Animation: animation.NewSequencer(opts.Animation),
		Options:   opts,
	}

	s.FSM = fsm.NewFSM(
		Playing,
		getStateTransitions(),
		getStateCallbacks(s),
	)

	s.Spawn()
	return s
}

func getStateTransitions() []fsm.EventDesc {
	return fsm.Events{
		{Name: "clear", Src: []string{Playing}, Dst: Clearing},
		{Name: "settle", Src: []string{Clearing}, Dst: Playing},
		{Name: "topOut", Src: []string{Playing}, Dst: GameOver},
	}
}

func getStateCallbacks(s *State) map[string]fsm.Callback {
	return fsm.Callbacks{
		"enter_" + Clearing: func(_ context.Context, e *fsm.Event) {
			if len(e.Args) > 0 {
				s.LastClear, _ = e.Args[0].(int)
			}
		},
		"enter_" + Playing: func(_ context.Context, e *fsm.Event) {
			s.FallTimer = 0
		},
		"enter_" + GameOver: func(_ context.Context, e *fsm.Event) {
			s.Active.Lock()
			log.Printf("game over: score %d, level %d, lines %d",
				s.Score.CurrentScore, s.Score.Level, s.Score.TotalLines)
		},
	}
}

func (s *State) event(name string, args ...any) {
	if err := s.FSM.Event(context.Background(), name, args...); err != nil {
		log.Printf("state: event %q: %v", name, err)
	}
}

// Phase returns the lifecycle state.
func (s *State) Phase() string {
	return s.FSM.Current()
}

func (s *State) IsGameOver() bool { return s.FSM.Is(GameOver) }

func (s *State) IsClearing() bool { return s.FSM.Is(Clearing) }

// StartClear hands the completed rows to the animation and moves to the
// clearing state. The grid keeps the rows until the animation removes them.
func (s *State) StartClear(rows []int) {
	if len(rows) == 0 {
		return
	}
	s.Animation.Start(s.Grid, rows)
	s.event("clear", len(rows))
}

// Settle returns to normal play once the animation has finished.
func (s *State) Settle() {
	if s.IsClearing() && !s.Animation.IsActive() {
		s.event("settle")
	}
}

// TopOut ends the game.
func (s *State) TopOut() {
	s.event("topOut")
}
