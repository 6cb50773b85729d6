package stepview

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	barGlyphH  = "━"
	barGlyphV  = "┃"
	dashGlyphH = "╌"
	dashGlyphV = "╎"
)

type cell struct {
	glyph string
	color lipgloss.TerminalColor
	bold  bool
}

func (c cell) style() lipgloss.Style {
	s := lipgloss.NewStyle().Bold(c.bold)
	if c.color != nil {
		s = s.Foreground(c.color)
	}
	return s
}

func (c cell) sameStyle(o cell) bool {
	return c.bold == o.bold && c.color == o.color
}

// CellCanvas rasterises drawing calls onto a fixed grid of terminal cells.
// A cell is covered by a shape when the cell's centre lies inside it.
type CellCanvas struct {
	width, height int
	cells         [][]cell
}

var _ Canvas = (*CellCanvas)(nil)

// NewCellCanvas returns a blank canvas. Negative sizes are treated as zero.
func NewCellCanvas(width, height int) *CellCanvas {
	width, height = max(width, 0), max(height, 0)
	cells := make([][]cell, height)
	for y := range cells {
		cells[y] = make([]cell, width)
		for x := range cells[y] {
			cells[y][x] = cell{glyph: " "}
		}
	}
	return &CellCanvas{width: width, height: height, cells: cells}
}

// Width returns the canvas width in cells.
func (c *CellCanvas) Width() int { return c.width }

// Height returns the canvas height in cells.
func (c *CellCanvas) Height() int { return c.height }

// At returns the glyph at x, y or "" when out of bounds.
func (c *CellCanvas) At(x, y int) string {
	if !c.inside(x, y) {
		return ""
	}
	return c.cells[y][x].glyph
}

// Row returns the plain glyphs of row y.
func (c *CellCanvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return ""
	}
	var b strings.Builder
	for _, cl := range c.cells[y] {
		b.WriteString(cl.glyph)
	}
	return b.String()
}

func (c *CellCanvas) inside(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

func (c *CellCanvas) set(x, y int, cl cell) {
	if c.inside(x, y) {
		c.cells[y][x] = cl
	}
}

// span returns the inclusive cell range whose centres fall within [a, b].
// A range too thin to cover any centre collapses onto the cell holding its
// midpoint. ok is false when the result lies entirely outside [0, limit).
func span(a, b float64, limit int) (lo, hi int, ok bool) {
	a, b = min(a, b), max(a, b)
	lo = int(math.Ceil(a - 0.5))
	hi = int(math.Floor(b - 0.5))
	if lo > hi {
		lo = int(math.Floor((a + b) / 2))
		hi = lo
	}
	if hi < 0 || lo >= limit {
		return 0, 0, false
	}
	return max(lo, 0), min(hi, limit-1), true
}

// FillRect paints a solid bar. Wide rectangles use a horizontal bar glyph,
// tall ones a vertical glyph.
func (c *CellCanvas) FillRect(r Rect, color lipgloss.TerminalColor) {
	glyph := barGlyphH
	if r.Bottom-r.Top > r.Right-r.Left {
		glyph = barGlyphV
	}
	x0, x1, okX := span(r.Left, r.Right, c.width)
	y0, y1, okY := span(r.Top, r.Bottom, c.height)
	if !okX || !okY {
		return
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.set(x, y, cell{glyph: glyph, color: color})
		}
	}
}

// DashedLine paints alternating one-cell dashes and gaps. The first dash
// sits at the from end, so direction changes the dash phase.
func (c *CellCanvas) DashedLine(from, to Point, color lipgloss.TerminalColor) {
	if from.Y == to.Y {
		y := int(math.Floor(from.Y))
		x0, x1, ok := span(from.X, to.X, c.width)
		if !ok {
			return
		}
		if from.X <= to.X {
			for x := x0; x <= x1; x++ {
				if (x-x0)%2 == 0 {
					c.set(x, y, cell{glyph: dashGlyphH, color: color})
				}
			}
		} else {
			for x := x1; x >= x0; x-- {
				if (x1-x)%2 == 0 {
					c.set(x, y, cell{glyph: dashGlyphH, color: color})
				}
			}
		}
		return
	}

	x := int(math.Floor(from.X))
	y0, y1, ok := span(from.Y, to.Y, c.height)
	if !ok {
		return
	}
	if from.Y <= to.Y {
		for y := y0; y <= y1; y++ {
			if (y-y0)%2 == 0 {
				c.set(x, y, cell{glyph: dashGlyphV, color: color})
			}
		}
	} else {
		for y := y1; y >= y0; y-- {
			if (y1-y)%2 == 0 {
				c.set(x, y, cell{glyph: dashGlyphV, color: color})
			}
		}
	}
}

// DrawIcon paints the icon glyph on the cell holding the centre of bounds.
// The rest of the bounds stays transparent.
func (c *CellCanvas) DrawIcon(icon Icon, bounds Rect) {
	p := bounds.Center()
	x, y := int(math.Floor(p.X)), int(math.Floor(p.Y))
	c.set(x, y, cell{glyph: icon.Glyph, color: icon.Color})
}

// SetText writes text starting at x, y. Characters falling outside the
// canvas are dropped; wide runes occupy two cells.
func (c *CellCanvas) SetText(x, y int, text string, color lipgloss.TerminalColor, bold bool) {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		c.set(x, y, cell{glyph: string(r), color: color, bold: bold})
		if w == 2 {
			// Placeholder keeps the row width in sync with the glyph.
			c.set(x+1, y, cell{glyph: "", color: color, bold: bold})
		}
		x += w
	}
}

// Render returns the canvas as styled lines joined by newlines. Adjacent
// cells sharing a style are rendered in one run.
func (c *CellCanvas) Render() string {
	lines := make([]string, 0, c.height)
	for _, row := range c.cells {
		var b strings.Builder
		var run strings.Builder
		var runCell cell
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runCell.color == nil && !runCell.bold {
				b.WriteString(run.String())
			} else {
				b.WriteString(runCell.style().Render(run.String()))
			}
			run.Reset()
		}
		for i, cl := range row {
			if i == 0 || !cl.sameStyle(runCell) {
				flush()
				runCell = cl
			}
			run.WriteString(cl.glyph)
		}
		flush()
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}
	return strings.Join(lines, "\n")
}

// blit copies src onto c at the origin.
func (c *CellCanvas) blit(src *CellCanvas) {
	for y := 0; y < src.height && y < c.height; y++ {
		copy(c.cells[y][:min(src.width, c.width)], src.cells[y])
	}
}
