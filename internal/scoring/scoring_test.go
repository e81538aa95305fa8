package scoring

import (
	"testing"
)

// TestInitScoring verifies the starting state and that invalid start levels
// are raised to 1.
func TestInitScoring(t *testing.T) {
	tests := []struct {
		name      string
		start     int
		wantLevel int
	}{
		{"default", 1, 1},
		{"higher start", 5, 5},
		{"zero", 0, 1},
		{"negative", -3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := InitScoring(tt.start)
			if s.Level != tt.wantLevel {
				t.Errorf("expected level %d, got %d", tt.wantLevel, s.Level)
			}
			if s.CurrentScore != 0 || s.TotalLines != 0 {
				t.Errorf("expected zero score and lines, got %d and %d", s.CurrentScore, s.TotalLines)
			}
		})
	}
}

// TestLineClear_Points checks the base table times the level.
func TestLineClear_Points(t *testing.T) {
	tests := []struct {
		name  string
		level int
		lines int
		want  int
	}{
		{"single at 1", 1, 1, 40},
		{"double at 3", 3, 2, 300},
		{"triple at 2", 2, 3, 600},
		{"tetris at 1", 1, 4, 1200},
		{"tetris at 7", 7, 4, 8400},
		{"nothing", 4, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := InitScoring(tt.level)
			points, _ := s.LineClear(tt.lines)
			if points != tt.want {
				t.Errorf("expected %d points, got %d", tt.want, points)
			}
			if s.CurrentScore != tt.want {
				t.Errorf("expected score %d, got %d", tt.want, s.CurrentScore)
			}
		})
	}
}

// TestLineClear_LevelUpBoundary checks that the level changes on the clear
// that reaches ten lines, not earlier.
func TestLineClear_LevelUpBoundary(t *testing.T) {
	s := InitScoring(1)
	for i := 0; i < 9; i++ {
		if _, up := s.LineClear(1); up {
			t.Fatalf("unexpected level up after %d lines", s.TotalLines)
		}
	}
	if s.Level != 1 || s.TotalLines != 9 {
		t.Fatalf("expected level 1 with 9 lines, got level %d with %d", s.Level, s.TotalLines)
	}

	points, up := s.LineClear(1)
	if !up {
		t.Errorf("expected level up on the tenth line")
	}
	if points != 40 {
		t.Errorf("expected the clear scored at the old level (40), got %d", points)
	}
	if s.Level != 2 {
		t.Errorf("expected level 2, got %d", s.Level)
	}
}

// TestLineClear_LevelNeverDecreases starts above what the line count implies.
func TestLineClear_LevelNeverDecreases(t *testing.T) {
	s := InitScoring(5)
	s.LineClear(4)
	if s.Level != 5 {
		t.Errorf("expected level to stay 5, got %d", s.Level)
	}

	for s.TotalLines < 50 {
		s.LineClear(4)
	}
	if s.Level != 6 {
		t.Errorf("expected level 6 at %d lines, got %d", s.TotalLines, s.Level)
	}
}

func TestClears(t *testing.T) {
	s := InitScoring(1)
	s.LineClear(1)
	s.LineClear(4)
	s.LineClear(4)

	if got := s.Clears(4); got != 2 {
		t.Errorf("expected 2 tetrises, got %d", got)
	}
	if got := s.Clears(1); got != 1 {
		t.Errorf("expected 1 single, got %d", got)
	}
	if got := s.Clears(9); got != 0 {
		t.Errorf("expected 0 for an out of range count, got %d", got)
	}
}

func TestLinePoints(t *testing.T) {
	want := map[int]int{-1: 0, 0: 0, 1: 40, 2: 100, 3: 300, 4: 1200, 5: 1200}
	for n, w := range want {
		if got := LinePoints(n); got != w {
			t.Errorf("LinePoints(%d): expected %d, got %d", n, w, got)
		}
	}
}

// TestFallInterval checks both ends of the curve and the clamp.
func TestFallInterval(t *testing.T) {
	tests := []struct {
		level int
		want  float64
	}{
		{0, 0.8},
		{1, 0.8},
		{2, 0.72},
		{10, 0.10},
		{16, 0.02},
		{17, 0.02},
		{99, 0.02},
	}

	for _, tt := range tests {
		if got := FallInterval(tt.level); got != tt.want {
			t.Errorf("FallInterval(%d): expected %v, got %v", tt.level, tt.want, got)
		}
	}

	prev := FallInterval(1)
	for level := 2; level <= 16; level++ {
		cur := FallInterval(level)
		if cur >= prev {
			t.Errorf("expected level %d (%v) to be faster than level %d (%v)", level, cur, level-1, prev)
		}
		prev = cur
	}
}

func TestEntry(t *testing.T) {
	s := InitScoring(3)
	s.LineClear(2)

	e := s.Entry()
	if e.Score != 300 || e.Level != 3 || e.Lines != 2 {
		t.Errorf("unexpected entry %+v", e)
	}
}
