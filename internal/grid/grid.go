package grid

import (
	"strings"

	"riktris/internal/piece"
)

// Standard playfield size.
const (
	StandardWidth  = 10
	StandardHeight = 20
)

// Empty is the value of an unoccupied cell.
const Empty = 0

// Grid is the fixed-size matrix of locked minos. A cell holds Empty or the
// CellValue of the shape that filled it.
type Grid struct {
	Width  int
	Height int
	cells  []int // row-major
}

// New creates an empty width x height grid.
func New(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]int, width*height),
	}
}

// NewStandard creates an empty 10x20 grid.
func NewStandard() *Grid {
	return New(StandardWidth, StandardHeight)
}

// Contains reports whether (col, row) is inside the grid.
func (g *Grid) Contains(col, row int) bool {
	return col >= 0 && col < g.Width && row >= 0 && row < g.Height
}

// Cell returns the value at (col, row), or Empty when out of range.
func (g *Grid) Cell(col, row int) int {
	if !g.Contains(col, row) {
		return Empty
	}
	return g.cells[row*g.Width+col]
}

// Occupied reports whether (col, row) holds a mino. Out of range is never occupied.
func (g *Grid) Occupied(col, row int) bool {
	return g.Cell(col, row) != Empty
}

// Set writes v at (col, row). Out-of-range writes are dropped.
func (g *Grid) Set(col, row, v int) {
	if !g.Contains(col, row) {
		return
	}
	g.cells[row*g.Width+col] = v
}

// FillRow sets every cell of row to v. Used to seed test and practice boards.
func (g *Grid) FillRow(row, v int) {
	for col := 0; col < g.Width; col++ {
		g.Set(col, row, v)
	}
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	c := New(g.Width, g.Height)
	copy(c.cells, g.cells)
	return c
}

// IsRowComplete reports whether every cell in row is occupied. An invalid row
// is never complete.
func (g *Grid) IsRowComplete(row int) bool {
	if row < 0 || row >= g.Height {
		return false
	}
	for col := 0; col < g.Width; col++ {
		if g.cells[row*g.Width+col] == Empty {
			return false
		}
	}
	return true
}

// CompletedRows returns the complete rows from the bottom up, e.g. {19, 18, 17}.
func (g *Grid) CompletedRows() []int {
	var rows []int
	for row := g.Height - 1; row >= 0; row-- {
		if g.IsRowComplete(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

// RemoveCompletedRows deletes every complete row and returns how many were
// removed. Each column is compacted downwards in a single pass and the
// vacated rows at the top are zeroed.
func (g *Grid) RemoveCompletedRows() int {
	remove := make([]bool, g.Height)
	cleared := 0
	for row := 0; row < g.Height; row++ {
		if g.IsRowComplete(row) {
			remove[row] = true
			cleared++
		}
	}
	if cleared == 0 {
		return 0
	}

	for col := 0; col < g.Width; col++ {
		write := g.Height - 1
		for read := g.Height - 1; read >= 0; read-- {
			if remove[read] {
				continue
			}
			g.cells[write*g.Width+col] = g.cells[read*g.Width+col]
			write--
		}
		for ; write >= 0; write-- {
			g.cells[write*g.Width+col] = Empty
		}
	}

	return cleared
}

// AddPiece writes the piece's occupied cells into the grid. The caller must
// already have checked the placement; cells above the top edge are dropped.
func (g *Grid) AddPiece(p *piece.Piece) {
	v := p.Shape.CellValue()
	for _, c := range p.Cells() {
		g.Set(c.Col, c.Row, v)
	}
}

// FilledCount returns the number of occupied cells.
func (g *Grid) FilledCount() int {
	n := 0
	for _, v := range g.cells {
		if v != Empty {
			n++
		}
	}
	return n
}

// Column returns the values of col from top to bottom.
func (g *Grid) Column(col int) []int {
	out := make([]int, g.Height)
	for row := range out {
		out[row] = g.Cell(col, row)
	}
	return out
}

// Rows renders the grid as text, one line per row, '.' for empty cells and
// the shape letter for locked ones.
func (g *Grid) Rows() []string {
	lines := make([]string, g.Height)
	var b strings.Builder
	for row := 0; row < g.Height; row++ {
		b.Reset()
		for col := 0; col < g.Width; col++ {
			shape, ok := piece.FromCellValue(g.Cell(col, row))
			if !ok {
				b.WriteByte('.')
				continue
			}
			b.WriteString(shape.String())
		}
		lines[row] = b.String()
	}
	return lines
}

func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}
