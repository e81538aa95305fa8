package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kamstrup/intmap"

	"riktris/internal/piece"
	"riktris/internal/platform"
)

// Each playfield cell is two terminal columns wide so blocks look square.
const cellWidth = 2

// Alphas below this are drawn faint.
const fadeAlpha = 0.75

// Palette holds the terminal colors for each shape.
var Palette = [piece.NumShapes]lipgloss.Color{
	piece.T: "93",
	piece.S: "46",
	piece.Z: "196",
	piece.I: "51",
	piece.J: "21",
	piece.L: "208",
	piece.O: "226",
}

var (
	wallColor = lipgloss.Color("240")
	textStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
)

type slot struct {
	glyph string
	style int
	width int
}

// styleKey packs a sprite and its faint flag; textKey marks plain text.
const textKey = -1

func styleKey(id platform.SpriteID, faint bool) int {
	k := int(id) * 2
	if faint {
		k++
	}
	return k
}

// Canvas implements platform.Renderer over a grid of terminal cells. Playfield
// cell (0, 0) sits one cell right of the left edge so the wall at x=-1 fits.
type Canvas struct {
	cols, rows int
	originX    int
	lines      [][]slot
	styles     *intmap.Map[int, lipgloss.Style]
}

// NewCanvas returns a canvas cells wide (in playfield cells) and rows tall.
func NewCanvas(cells, rows int) *Canvas {
	c := &Canvas{
		cols:    cells * cellWidth,
		rows:    rows,
		originX: 1,
		styles:  intmap.New[int, lipgloss.Style](int(platform.NumSprites) * 2),
	}
	c.lines = make([][]slot, rows)
	for y := range c.lines {
		c.lines[y] = make([]slot, c.cols)
	}
	c.Clear()
	return c
}

func (c *Canvas) Clear() {
	for _, line := range c.lines {
		for x := range line {
			line[x] = slot{glyph: " ", style: textKey, width: 1}
		}
	}
}

func (c *Canvas) column(x float64) int {
	return (int(math.Round(x)) + c.originX) * cellWidth
}

func (c *Canvas) DrawSprite(id platform.SpriteID, x, y, alpha float64) {
	if alpha <= 0 {
		return
	}
	col, row := c.column(x), int(math.Round(y))
	if row < 0 || row >= c.rows || col < 0 || col+cellWidth > c.cols {
		return
	}

	glyph := "██"
	if id.IsGhost() {
		glyph = "░░"
	}
	line := c.lines[row]
	c.split(line, col)
	c.split(line, col+1)
	line[col] = slot{glyph: glyph, style: styleKey(id, alpha < fadeAlpha), width: cellWidth}
	line[col+1] = slot{}
}

func (c *Canvas) DrawText(x, y float64, text string) {
	col, row := c.column(x), int(math.Round(y))
	if row < 0 || row >= c.rows {
		return
	}
	line := c.lines[row]
	for _, r := range text {
		if col >= c.cols {
			break
		}
		if col >= 0 {
			c.split(line, col)
			line[col] = slot{glyph: string(r), style: textKey, width: 1}
		}
		col++
	}
}

// split breaks a two-column block covering col into blanks so a single
// column can be overwritten.
func (c *Canvas) split(line []slot, col int) {
	start := col
	if line[col].width == 0 && col > 0 {
		start = col - 1
	}
	if line[start].width != cellWidth {
		return
	}
	line[start] = slot{glyph: " ", style: textKey, width: 1}
	line[start+1] = slot{glyph: " ", style: textKey, width: 1}
}

func (c *Canvas) style(key int) lipgloss.Style {
	if key == textKey {
		return textStyle
	}
	if s, ok := c.styles.Get(key); ok {
		return s
	}

	id := platform.SpriteID(key / 2)
	s := lipgloss.NewStyle().Foreground(wallColor)
	if shape, ok := id.Shape(); ok {
		s = lipgloss.NewStyle().Foreground(Palette[shape])
	}
	if key%2 == 1 {
		s = s.Faint(true)
	}
	c.styles.Put(key, s)
	return s
}

// Lines returns the canvas content without styling.
func (c *Canvas) Lines() []string {
	out := make([]string, c.rows)
	for y, line := range c.lines {
		var b strings.Builder
		for _, s := range line {
			b.WriteString(s.glyph)
		}
		out[y] = b.String()
	}
	return out
}

// Render returns the styled canvas.
func (c *Canvas) Render() string {
	var b strings.Builder
	for y, line := range c.lines {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, s := range line {
			if s.width == 0 {
				continue
			}
			if s.style == textKey && s.glyph == " " {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(c.style(s.style).Render(s.glyph))
		}
	}
	return b.String()
}

// Styles reports how many sprite styles have been built.
func (c *Canvas) Styles() int { return c.styles.Len() }
