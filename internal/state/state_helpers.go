package state

import (
	"riktris/internal/collision"
	"riktris/internal/piece"
)

// Spawn replaces the active piece with the next shape from the bag. Whether
// the new piece fits is decided by CheckSpawn once play resumes, since a
// pending line clear may still be occupying the top rows.
func (s *State) Spawn() {
	s.Active = piece.New(s.Bag.Next())
	s.FallTimer = 0
	s.Resting = false
	s.spawnPending = true
}

// CheckSpawn tops out the game if a freshly spawned piece overlaps the
// stack. It reports whether the game can continue.
func (s *State) CheckSpawn() bool {
	if !s.spawnPending {
		return !s.IsGameOver()
	}
	s.spawnPending = false
	if collision.Overlaps(s.Active, s.Grid) {
		s.TopOut()
		return false
	}
	return true
}

// Ghost returns where the active piece would land if dropped now.
func (s *State) Ghost() *piece.Piece {
	ghost := s.Active.Clone()
	for !collision.TouchingDown(ghost, s.Grid) {
		ghost.MoveDown()
	}
	return ghost
}

// NextPreview returns the upcoming shapes, as many as Options.Preview asks for.
func (s *State) NextPreview() []piece.Shape {
	return s.Bag.Preview(s.Options.Preview)
}

func (s *State) IsResting() bool {
	return s.Resting
}

func (s *State) CanMove() bool {
	return !s.IsGameOver() && !s.Animation.IsActive() && !s.Active.IsLocked()
}
