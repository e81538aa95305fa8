package piece

import (
	"math/bits"
	"testing"
)

func TestMasks_FourCellsEach(t *testing.T) {
	for _, s := range Shapes {
		for r := 0; r < NumRotations; r++ {
			if n := bits.OnesCount16(Mask(s, r)); n != 4 {
				t.Errorf("shape %s rotation %d has %d cells, expected 4", s, r, n)
			}
		}
	}
}

func TestPiece_IsFilled(t *testing.T) {
	// S at rotation 3 is 0x8C40:
	// X . . .
	// X X . .
	// . X . .
	p := New(S)
	p.SetRotation(3)

	filled := map[[2]int]bool{{0, 0}: true, {0, 1}: true, {1, 1}: true, {1, 2}: true}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := p.IsFilled(x, y); got != filled[[2]int{x, y}] {
				t.Errorf("IsFilled(%d, %d) = %v, expected %v", x, y, got, filled[[2]int{x, y}])
			}
		}
	}
}

func TestPiece_Spawn(t *testing.T) {
	p := New(I)
	if p.Col != SpawnCol || p.Row != SpawnRow || p.Rotation != 0 {
		t.Errorf("unexpected spawn state: col=%d row=%d rot=%d", p.Col, p.Row, p.Rotation)
	}
	if p.IsLocked() || p.IsLocking() {
		t.Error("fresh piece should be neither locked nor locking")
	}
}

func TestPiece_RotateWraps(t *testing.T) {
	p := New(T)

	p.Rotate(CounterClockwise)
	if p.Rotation != 3 {
		t.Errorf("ccw from 0: expected 3, got %d", p.Rotation)
	}

	p.Rotate(Clockwise)
	if p.Rotation != 0 {
		t.Errorf("cw from 3: expected 0, got %d", p.Rotation)
	}

	for i := 0; i < 9; i++ {
		p.Rotate(Clockwise)
	}
	if p.Rotation != 1 {
		t.Errorf("nine cw turns: expected 1, got %d", p.Rotation)
	}

	p.SetRotation(-6)
	if p.Rotation != 2 {
		t.Errorf("SetRotation(-6): expected 2, got %d", p.Rotation)
	}
}

func TestPiece_Moves(t *testing.T) {
	p := New(O)
	p.MoveLeft()
	p.MoveLeft()
	p.MoveRight()
	p.MoveDown()

	if p.Col != SpawnCol-1 || p.Row != SpawnRow+1 {
		t.Errorf("expected (%d, %d), got (%d, %d)", SpawnCol-1, SpawnRow+1, p.Col, p.Row)
	}
}

func TestPiece_Cells(t *testing.T) {
	p := New(I) // 0x0F00: second row of the box
	p.SetPosition(2, 5)

	cells := p.Cells()
	if len(cells) != 4 {
		t.Fatalf("expected 4 cells, got %d", len(cells))
	}
	for i, c := range cells {
		if c.Row != 6 || c.Col != 2+i {
			t.Errorf("cell %d: expected (%d, 6), got (%d, %d)", i, 2+i, c.Col, c.Row)
		}
	}
}

func TestPiece_LockDelay(t *testing.T) {
	p := New(Z)

	if p.AddLockTime(0.2) {
		t.Fatal("locked after 0.2s")
	}
	if !p.IsLocking() {
		t.Error("expected IsLocking after accumulating time")
	}

	p.ResetLockTimer()
	if p.LockTimer() != 0 {
		t.Errorf("expected timer reset, got %f", p.LockTimer())
	}

	p.AddLockTime(0.3)
	if !p.AddLockTime(0.2) {
		t.Fatal("expected lock once 0.5s accumulated")
	}
	if !p.IsLocked() {
		t.Error("IsLocked should be true")
	}
	if p.LockTimer() != 0 {
		t.Error("lock should clear the timer")
	}
}

func TestPiece_CloneIsIndependent(t *testing.T) {
	p := New(J)
	c := p.Clone()
	c.MoveDown()
	c.Rotate(Clockwise)

	if p.Row != SpawnRow || p.Rotation != 0 {
		t.Error("mutating the clone changed the original")
	}
}

func TestShape_CellValue(t *testing.T) {
	for _, s := range Shapes {
		v := s.CellValue()
		if v == 0 {
			t.Errorf("shape %s encodes to the empty value", s)
		}
		back, ok := FromCellValue(v)
		if !ok || back != s {
			t.Errorf("FromCellValue(%d) = %v, %v; expected %v", v, back, ok, s)
		}
	}
	if _, ok := FromCellValue(0); ok {
		t.Error("empty cell should not map to a shape")
	}
}
