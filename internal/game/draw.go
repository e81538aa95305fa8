package game

import (
	"fmt"

	"riktris/internal/piece"
	"riktris/internal/platform"
)

// Sidebar layout, in cells to the right of the well.
const (
	sidebarGap   = 2
	previewPitch = 3
)

// Draw renders the well, the stack, the active piece with its ghost, the
// preview and the stats. Coordinates are in cells with (0, 0) at the top-left
// of the well; walls sit at column -1, column Width and row Height.
func (g *Game) Draw(r platform.Renderer) {
	s := g.State
	w, h := s.Grid.Width, s.Grid.Height

	for row := 0; row <= h; row++ {
		r.DrawSprite(platform.SpriteWall, -1, float64(row), 1)
		r.DrawSprite(platform.SpriteWall, float64(w), float64(row), 1)
	}
	for col := 0; col < w; col++ {
		r.DrawSprite(platform.SpriteWall, float64(col), float64(h), 1)
	}

	for row := 0; row < h; row++ {
		if !s.Animation.RowVisible(row) {
			continue
		}
		y := float64(row) - s.Animation.RowOffset(row)
		for col := 0; col < w; col++ {
			shape, ok := piece.FromCellValue(s.Grid.Cell(col, row))
			if !ok {
				continue
			}
			r.DrawSprite(platform.MinoSprite(shape), float64(col), y, 1)
		}
	}

	if !s.Animation.IsActive() {
		if s.Options.Ghost && !s.IsGameOver() {
			drawPiece(r, g.Ghost(), platform.GhostSprite(s.Active.Shape), 0, 0, GhostAlpha)
		}
		drawPiece(r, s.Active, platform.MinoSprite(s.Active.Shape), 0, 0, activeAlpha(s.Active))
	}

	g.drawSidebar(r, float64(w+sidebarGap))

	if s.IsGameOver() {
		r.DrawText(1, float64(h/2), "GAME OVER")
	}
}

func (g *Game) drawSidebar(r platform.Renderer, x float64) {
	s := g.State
	y := 0.0

	next := g.NextPreview()
	if len(next) > 0 {
		r.DrawText(x, y, "NEXT")
		y++
		for _, shape := range next {
			drawPiece(r, piece.New(shape), platform.MinoSprite(shape), x-piece.SpawnCol, y, 1)
			y += previewPitch
		}
	}

	y++
	r.DrawText(x, y, fmt.Sprintf("SCORE %d", s.Score.CurrentScore))
	r.DrawText(x, y+1, fmt.Sprintf("LEVEL %d", s.Score.Level))
	r.DrawText(x, y+2, fmt.Sprintf("LINES %d", s.Score.TotalLines))
}

// drawPiece draws every occupied cell of p shifted by (dx, dy).
func drawPiece(r platform.Renderer, p *piece.Piece, id platform.SpriteID, dx, dy, alpha float64) {
	for _, c := range p.Cells() {
		r.DrawSprite(id, float64(c.Col)+dx, float64(c.Row)+dy, alpha)
	}
}

// activeAlpha fades the piece while its lock delay runs.
func activeAlpha(p *piece.Piece) float64 {
	if p.LockTimer() > 0 {
		return lockingAlpha - p.LockTimer()
	}
	return 1
}
