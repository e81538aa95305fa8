package scoring

import "log"

// LinesPerLevel is how many cleared lines it takes to advance one level.
const LinesPerLevel = 10

// Scoring tracks score, level and cleared lines for one game.
type Scoring struct {
	// public
	CurrentScore int
	Level        int
	TotalLines   int
	// private
	startLevel int
	lineTable  map[int]int
	clears     [5]int // clears[n] counts n-line clears
}

// InitScoring creates a Scoring starting at startLevel. Levels below 1 are
// raised to 1.
func InitScoring(startLevel int) *Scoring {
	if startLevel < 1 {
		startLevel = 1
	}
	return &Scoring{
		Level:      startLevel,
		startLevel: startLevel,
		lineTable:  getLineTable(),
	}
}

// LineClear scores n simultaneously cleared lines at the current level, then
// updates the line total and level. It returns the points awarded and whether
// the level went up.
func (s *Scoring) LineClear(n int) (points int, leveledUp bool) {
	if n <= 0 {
		return 0, false
	}

	points = s.lineTable[min(n, 4)] * s.Level
	s.CurrentScore += points
	s.TotalLines += n
	s.clears[min(n, 4)]++

	if next := s.TotalLines/LinesPerLevel + 1; next > s.Level {
		log.Printf("level up: %d -> %d after %d lines", s.Level, next, s.TotalLines)
		s.Level = next
		leveledUp = true
	}
	return points, leveledUp
}

// FallInterval is the gravity interval for the current level.
func (s *Scoring) FallInterval() float64 {
	return FallInterval(s.Level)
}

// Clears returns how many times exactly n lines were cleared at once.
func (s *Scoring) Clears(n int) int {
	if n < 1 || n > 4 {
		return 0
	}
	return s.clears[n]
}

// StartLevel is the level the game began at.
func (s *Scoring) StartLevel() int {
	return s.startLevel
}

// Entry summarizes the game so far.
func (s *Scoring) Entry() ScoreHistoryEntry {
	return ScoreHistoryEntry{
		Score: s.CurrentScore,
		Level: s.Level,
		Lines: s.TotalLines,
	}
}

// LinePoints returns the base points for clearing n lines at once, before the
// level multiplier. Anything beyond four counts as four.
func LinePoints(n int) int {
	if n <= 0 {
		return 0
	}
	return getLineTable()[min(n, 4)]
}

// fallIntervals holds seconds per row for levels 1 through 16.
var fallIntervals = [...]float64{
	0.8, 0.72, 0.63, 0.55, 0.47, 0.38, 0.30, 0.22,
	0.13, 0.10, 0.08, 0.07, 0.05, 0.04, 0.03, 0.02,
}

// FallInterval returns the seconds between gravity steps at level. Levels past
// the end of the curve reuse its last value.
func FallInterval(level int) float64 {
	i := min(level-1, len(fallIntervals)-1)
	if i < 0 {
		i = 0
	}
	return fallIntervals[i]
}

// getLineTable returns the base points per simultaneous line count.
func getLineTable() map[int]int {
	return map[int]int{
		1: 40,
		2: 100,
		3: 300,
		4: 1200,
	}
}
