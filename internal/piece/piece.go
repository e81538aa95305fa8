package piece

// NumRotations is the number of rotation states every shape has.
const NumRotations = 4

// LockDelay is how long, in seconds, a resting piece may sit before it locks.
const LockDelay = 0.5

// Spawn position of a fresh piece (top-left corner of its 4x4 box).
const (
	SpawnCol = 3
	SpawnRow = 0
)

// Direction selects which way a piece rotates.
type Direction int

const (
	CounterClockwise Direction = iota
	Clockwise
)

// Piece is the active tetromino under player control.
type Piece struct {
	Shape    Shape
	Rotation int
	Col      int
	Row      int

	lockTimer float64
	locked    bool
}

// New creates a piece of the given shape at the spawn position.
func New(shape Shape) *Piece {
	p := &Piece{Shape: shape}
	p.Reset()
	return p
}

// Reset puts the piece back at the spawn position, unrotated and unlocked.
func (p *Piece) Reset() {
	p.Row = SpawnRow
	p.Col = SpawnCol
	p.Rotation = 0
	p.locked = false
	p.lockTimer = 0
}

// Clone returns an independent copy of the piece.
func (p *Piece) Clone() *Piece {
	c := *p
	return &c
}

// Mask returns the bitmask of the current rotation.
func (p *Piece) Mask() uint16 {
	return Mask(p.Shape, p.Rotation)
}

// IsFilled reports whether the local cell (x, y) of the 4x4 box is occupied.
// The most significant bit of the mask is the top-left cell.
func (p *Piece) IsFilled(x, y int) bool {
	return p.Mask()&(1<<(15-(y*4+x))) != 0
}

// Cell is an absolute grid coordinate.
type Cell struct {
	Col int
	Row int
}

// Cells returns the absolute coordinates of the four occupied cells.
func (p *Piece) Cells() []Cell {
	cells := make([]Cell, 0, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if p.IsFilled(x, y) {
				cells = append(cells, Cell{Col: p.Col + x, Row: p.Row + y})
			}
		}
	}
	return cells
}

// Rotate advances the rotation index one step. Legality is the caller's problem.
func (p *Piece) Rotate(dir Direction) {
	switch dir {
	case Clockwise:
		p.SetRotation(p.Rotation + 1)
	case CounterClockwise:
		p.SetRotation(p.Rotation - 1)
	}
}

// SetRotation sets the rotation index, wrapping it into [0, NumRotations).
func (p *Piece) SetRotation(r int) {
	r %= NumRotations
	if r < 0 {
		r += NumRotations
	}
	p.Rotation = r
}

func (p *Piece) SetPosition(col, row int) {
	p.Col = col
	p.Row = row
}

func (p *Piece) MoveLeft()  { p.Col-- }
func (p *Piece) MoveRight() { p.Col++ }
func (p *Piece) MoveDown()  { p.Row++ }

// AddLockTime accumulates resting time and locks the piece once LockDelay is
// reached. It reports whether the piece is locked afterwards.
func (p *Piece) AddLockTime(dt float64) bool {
	if p.locked {
		return true
	}
	p.lockTimer += dt
	if p.lockTimer >= LockDelay {
		p.Lock()
	}
	return p.locked
}

func (p *Piece) ResetLockTimer() { p.lockTimer = 0 }

func (p *Piece) LockTimer() float64 { return p.lockTimer }

// IsLocking reports whether the lock delay has started counting.
func (p *Piece) IsLocking() bool { return p.lockTimer > 0 }

// Lock fixes the piece in place. Locked pieces no longer accept input.
func (p *Piece) Lock() {
	p.locked = true
	p.lockTimer = 0
}

func (p *Piece) IsLocked() bool { return p.locked }
