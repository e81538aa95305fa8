package piece

// Shape is one of the seven tetromino kinds.
type Shape int

const (
	T Shape = iota
	S
	Z
	I
	J
	L
	O
)

// NumShapes is the size of the complete shape set.
const NumShapes = 7

// Shapes lists every kind in table order.
var Shapes = [NumShapes]Shape{T, S, Z, I, J, L, O}

// masks holds a 4x4 occupancy bitmask for each shape and rotation, read row by
// row from the top-left cell (most significant bit). For example, S at
// rotation 3:
//
//	X . . .     1000
//	X X . .  =  1100  =  0x8C40
//	. X . .     0100
//	. . . .     0000
var masks = [NumShapes][NumRotations]uint16{
	T: {0x4E00, 0x4640, 0x0E40, 0x4C40},
	S: {0x6C00, 0x4620, 0x06C0, 0x8C40},
	Z: {0xC600, 0x2640, 0x0C60, 0x4C80},
	I: {0x0F00, 0x2222, 0x00F0, 0x4444},
	J: {0x8E00, 0x6440, 0x0E20, 0x44C0},
	L: {0x2E00, 0x4460, 0xE800, 0xC440},
	O: {0x6600, 0x6600, 0x6600, 0x6600},
}

var letters = [NumShapes]string{"T", "S", "Z", "I", "J", "L", "O"}

// Mask returns the occupancy bitmask of shape at rotation.
func Mask(shape Shape, rotation int) uint16 {
	return masks[shape][rotation]
}

// Valid reports whether s is one of the seven kinds.
func (s Shape) Valid() bool {
	return s >= 0 && s < NumShapes
}

func (s Shape) String() string {
	if !s.Valid() {
		return "?"
	}
	return letters[s]
}

// CellValue is the value a locked cell of this shape holds in the grid.
// Zero is reserved for empty cells.
func (s Shape) CellValue() int {
	return int(s) + 1
}

// FromCellValue maps a non-empty grid cell back to its shape.
func FromCellValue(v int) (Shape, bool) {
	s := Shape(v - 1)
	return s, v > 0 && s.Valid()
}
