package collision

import (
	"riktris/internal/grid"
	"riktris/internal/piece"
)

// Overlaps reports whether any occupied cell of p sits on a locked mino, past
// a side wall, or below the floor. Cells above row 0 are allowed so a piece
// can spawn partly outside the visible area.
func Overlaps(p *piece.Piece, g *grid.Grid) bool {
	for _, c := range p.Cells() {
		if blocked(g, c.Col, c.Row) {
			return true
		}
	}
	return false
}

// TouchingLeft reports whether moving p one column left would collide.
func TouchingLeft(p *piece.Piece, g *grid.Grid) bool {
	return touching(p, g, -1, 0)
}

// TouchingRight reports whether moving p one column right would collide.
func TouchingRight(p *piece.Piece, g *grid.Grid) bool {
	return touching(p, g, 1, 0)
}

// TouchingDown reports whether p is resting on the floor or the stack.
func TouchingDown(p *piece.Piece, g *grid.Grid) bool {
	return touching(p, g, 0, 1)
}

// DropDistance returns how many rows p can fall before it rests.
func DropDistance(p *piece.Piece, g *grid.Grid) int {
	ghost := p.Clone()
	n := 0
	for !TouchingDown(ghost, g) {
		ghost.MoveDown()
		n++
	}
	return n
}

func touching(p *piece.Piece, g *grid.Grid, dCol, dRow int) bool {
	for _, c := range p.Cells() {
		if blocked(g, c.Col+dCol, c.Row+dRow) {
			return true
		}
	}
	return false
}

func blocked(g *grid.Grid, col, row int) bool {
	if col < 0 || col >= g.Width || row >= g.Height {
		return true
	}
	return g.Occupied(col, row)
}
