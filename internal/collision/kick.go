package collision

import (
	"log"

	"riktris/internal/grid"
	"riktris/internal/piece"
)

// Offset is a (column, row) displacement tried during a wall kick.
type Offset struct {
	Col int
	Row int
}

// KickData is the ordered list of candidate offsets for one rotation.
type KickData [4]Offset

type transition struct{ from, to int }

// SRS kick tables, shared by J, L, S, T, Z (O never needs one).
var wallKicks = map[transition]KickData{
	{0, 1}: {{-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{1, 0}: {{1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{1, 2}: {{1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{2, 1}: {{-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{2, 3}: {{1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{3, 2}: {{-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{3, 0}: {{-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{0, 3}: {{1, 0}, {1, -1}, {0, -2}, {1, -2}},
}

var wallKicksI = map[transition]KickData{
	{0, 1}: {{-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{1, 0}: {{2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	{1, 2}: {{-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	{2, 1}: {{1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	{2, 3}: {{2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	{3, 2}: {{-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{3, 0}: {{1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	{0, 3}: {{-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
}

// Kicks returns the candidate offsets for rotating shape from one rotation
// index to another. Only transitions between adjacent states exist.
func Kicks(shape piece.Shape, from, to int) (KickData, bool) {
	table := wallKicks
	if shape == piece.I {
		table = wallKicksI
	}
	k, ok := table[transition{from, to}]
	return k, ok
}

// Rotate turns p one step in dir. When the rotated piece overlaps, each kick
// offset is tried in order and the first free position wins. If none fits,
// rotation, column and row are restored and Rotate reports false.
func Rotate(p *piece.Piece, g *grid.Grid, dir piece.Direction) bool {
	fromRot, origCol, origRow := p.Rotation, p.Col, p.Row

	p.Rotate(dir)
	if !Overlaps(p, g) {
		return true
	}

	if kicks, ok := Kicks(p.Shape, fromRot, p.Rotation); ok {
		for _, k := range kicks {
			p.SetPosition(origCol+k.Col, origRow+k.Row)
			if !Overlaps(p, g) {
				return true
			}
		}
	}

	log.Printf("kick failed: %s %d->%d at (%d, %d)", p.Shape, fromRot, p.Rotation, origCol, origRow)
	p.SetRotation(fromRot)
	p.SetPosition(origCol, origRow)
	return false
}
