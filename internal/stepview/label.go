package stepview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Label is the text placeholder shown next to a step icon. X and Y are
// relative to the label container.
type Label struct {
	Text     string
	TextSize int // sp
	X, Y     float64
	Bold     bool
	Color    lipgloss.TerminalColor

	measured Size
}

// Measured returns the size recorded by the last measure pass.
func (l Label) Measured() Size {
	return l.measured
}

// Cell returns the integer cell the label starts at.
func (l Label) Cell() (x, y int) {
	return roundCell(l.X), roundCell(l.Y)
}

// TextMeasurer reports the natural size of a label's text in cells.
type TextMeasurer func(text string) Size

// MeasureText is the default TextMeasurer: widest line by display width,
// one row per line.
func MeasureText(text string) Size {
	if text == "" {
		return Size{}
	}
	lines := strings.Split(text, "\n")
	width := 0
	for _, line := range lines {
		width = max(width, runewidth.StringWidth(line))
	}
	return Size{Width: width, Height: len(lines)}
}

func roundCell(v float64) int {
	if v < 0 {
		return -int(-v + 0.5)
	}
	return int(v + 0.5)
}
