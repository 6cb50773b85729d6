package stepview

import "github.com/charmbracelet/lipgloss"

// Point is a position in cells.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in cells. Left <= Right and Top <= Bottom.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Center returns the middle of r.
func (r Rect) Center() Point {
	return Point{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Icon is the glyph painted for a step in a given state.
type Icon struct {
	Glyph string
	Color lipgloss.TerminalColor
}

// Canvas is the drawing contract the indicator paints onto.
type Canvas interface {
	FillRect(r Rect, color lipgloss.TerminalColor)
	DashedLine(from, to Point, color lipgloss.TerminalColor)
	DrawIcon(icon Icon, bounds Rect)
}

var white = lipgloss.Color("#ffffff")

// Built-in icons.
var (
	DefaultCompletedIcon    = Icon{Glyph: "●", Color: white}
	DefaultCurrentIcon      = Icon{Glyph: "◉", Color: white}
	DefaultNotCompletedIcon = Icon{Glyph: "○", Color: white}
)
