package animation

import (
	"context"
	"log"
	"slices"

	"github.com/looplab/fsm"

	"riktris/internal/grid"
)

// Phase is the current step of a line-clear animation.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseFlashing Phase = "flashing"
	PhaseClearing Phase = "clearing"
	PhaseDropping Phase = "dropping"
)

// Config holds the animation timings, in seconds.
type Config struct {
	FlashDuration float64 // total time spent blinking
	MaxFlashes    int     // blink ticks; 6 means three on/off cycles
	ClearDuration float64 // pause with the rows hidden before removal
	DropDuration  float64 // time for the rows above to settle
}

func DefaultConfig() Config {
	return Config{
		FlashDuration: 0.3,
		MaxFlashes:    6,
		ClearDuration: 0.2,
		DropDuration:  0.3,
	}
}

// Sequencer drives the flash, clear and drop phases of a line clear. While it
// is active the caller suspends gameplay.
type Sequencer struct {
	cfg Config
	FSM *fsm.FSM

	grid     *grid.Grid
	snapshot *grid.Grid
	rows     []int

	active     bool
	timer      float64
	flashCount int
	dropRows   []int     // full drop distance per post-clear row
	offsets    []float64 // current eased offset per post-clear row
}

// NewSequencer creates an idle sequencer.
func NewSequencer(cfg Config) *Sequencer {
	s := &Sequencer{cfg: cfg}
	s.FSM = fsm.NewFSM(
		string(PhaseIdle),
		getPhaseTransitions(),
		getPhaseCallbacks(s),
	)
	return s
}

func getPhaseTransitions() []fsm.EventDesc {
	return fsm.Events{
		{Name: "start", Src: []string{string(PhaseIdle)}, Dst: string(PhaseFlashing)},
		{Name: "flashed", Src: []string{string(PhaseFlashing)}, Dst: string(PhaseClearing)},
		{Name: "cleared", Src: []string{string(PhaseClearing)}, Dst: string(PhaseDropping)},
		{Name: "dropped", Src: []string{string(PhaseDropping)}, Dst: string(PhaseIdle)},
	}
}

func getPhaseCallbacks(s *Sequencer) map[string]fsm.Callback {
	return fsm.Callbacks{
		"enter_state": func(_ context.Context, e *fsm.Event) {
			log.Printf("line clear: %s -> %s (rows %v)", e.Src, e.Dst, s.rows)
		},
		"enter_" + string(PhaseFlashing): func(_ context.Context, e *fsm.Event) {
			s.active = true
			s.timer = 0
			s.flashCount = 0
		},
		"enter_" + string(PhaseClearing): func(_ context.Context, e *fsm.Event) {
			s.timer = 0
		},
		"enter_" + string(PhaseDropping): func(_ context.Context, e *fsm.Event) {
			s.grid.RemoveCompletedRows()
			s.computeDrops()
			s.timer = 0
		},
		"enter_" + string(PhaseIdle): func(_ context.Context, e *fsm.Event) {
			clear(s.offsets)
			s.active = false
			s.timer = 0
		},
	}
}

func (s *Sequencer) event(name string) {
	if err := s.FSM.Event(context.Background(), name); err != nil {
		log.Printf("line clear: event %q: %v", name, err)
	}
}

// Start begins an animation for rows of g. Nothing happens when rows is
// empty or an animation is already running. The grid is left untouched
// until the clearing phase ends.
func (s *Sequencer) Start(g *grid.Grid, rows []int) {
	if len(rows) == 0 || s.active {
		return
	}

	s.grid = g
	s.rows = slices.Clone(rows)
	s.snapshot = g.Clone()
	s.dropRows = make([]int, g.Height)
	s.offsets = make([]float64, g.Height)

	s.event("start")
}

// Update advances the animation by dt seconds. At most one phase change
// happens per call.
func (s *Sequencer) Update(dt float64) {
	if !s.active {
		return
	}

	s.timer += dt

	switch s.Phase() {
	case PhaseFlashing:
		if s.cfg.MaxFlashes <= 0 {
			s.event("flashed")
			return
		}
		interval := s.cfg.FlashDuration / float64(s.cfg.MaxFlashes)
		if s.timer >= interval {
			s.flashCount++
			s.timer = 0
			if s.flashCount >= s.cfg.MaxFlashes {
				s.event("flashed")
			}
		}

	case PhaseClearing:
		if s.timer >= s.cfg.ClearDuration {
			s.event("cleared")
		}

	case PhaseDropping:
		progress := 1.0
		if s.cfg.DropDuration > 0 {
			progress = min(1.0, s.timer/s.cfg.DropDuration)
		}
		eased := 1 - (1-progress)*(1-progress)
		for row, dist := range s.dropRows {
			s.offsets[row] = float64(dist) * (1 - eased)
		}
		if progress >= 1 {
			s.event("dropped")
		}
	}
}

// computeDrops records, for every row after compaction, how many cleared rows
// it fell past.
func (s *Sequencer) computeDrops() {
	height := len(s.dropRows)
	for row := range s.dropRows {
		s.dropRows[row] = len(s.rows)
	}
	for old := 0; old < height; old++ {
		if slices.Contains(s.rows, old) {
			continue
		}
		below := 0
		for _, r := range s.rows {
			if r > old {
				below++
			}
		}
		s.dropRows[old+below] = below
	}
	for row, dist := range s.dropRows {
		s.offsets[row] = float64(dist)
	}
}

// IsActive reports whether an animation is running.
func (s *Sequencer) IsActive() bool { return s.active }

func (s *Sequencer) Phase() Phase { return Phase(s.FSM.Current()) }

// Rows returns the rows captured at Start.
func (s *Sequencer) Rows() []int { return s.rows }

func (s *Sequencer) FlashCount() int { return s.flashCount }

// Snapshot is the grid as it was when the animation started.
func (s *Sequencer) Snapshot() *grid.Grid { return s.snapshot }

// RowVisible reports whether row should be drawn. Rows waiting for removal
// blink while flashing and stay hidden while clearing.
func (s *Sequencer) RowVisible(row int) bool {
	if !s.active || !slices.Contains(s.rows, row) {
		return true
	}
	switch s.Phase() {
	case PhaseFlashing:
		return s.flashCount%2 == 0
	case PhaseClearing:
		return false
	}
	return true
}

// RowOffset returns how many rows above its resting place row should be
// drawn. Only non-zero while dropping.
func (s *Sequencer) RowOffset(row int) float64 {
	if !s.active || s.Phase() != PhaseDropping || row < 0 || row >= len(s.offsets) {
		return 0
	}
	return s.offsets[row]
}
