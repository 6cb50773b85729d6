package stepview

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestSpan(t *testing.T) {
	tests := []struct {
		name   string
		a, b   float64
		limit  int
		lo, hi int
		ok     bool
	}{
		{name: "covers centres", a: 1.2, b: 4.6, limit: 10, lo: 1, hi: 4, ok: true},
		{name: "reversed input", a: 4.6, b: 1.2, limit: 10, lo: 1, hi: 4, ok: true},
		{name: "thin collapses to midpoint", a: 0.95, b: 1.05, limit: 10, lo: 1, hi: 1, ok: true},
		{name: "clipped", a: -3, b: 20, limit: 10, lo: 0, hi: 9, ok: true},
		{name: "entirely outside", a: 12, b: 15, limit: 10, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi, ok := span(tt.a, tt.b, tt.limit)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.lo, lo)
				assert.Equal(t, tt.hi, hi)
			}
		})
	}
}

func TestCellCanvasFillRect(t *testing.T) {
	c := NewCellCanvas(10, 3)
	c.FillRect(Rect{Left: 2, Top: 0.95, Right: 6, Bottom: 1.05}, nil)
	assert.Equal(t, "  ━━━━    ", c.Row(1))
	assert.Equal(t, "          ", c.Row(0))

	v := NewCellCanvas(3, 6)
	v.FillRect(Rect{Left: 1.3, Top: 1, Right: 1.7, Bottom: 4}, nil)
	for y := 1; y <= 3; y++ {
		assert.Equal(t, barGlyphV, v.At(1, y))
	}
	assert.Equal(t, " ", v.At(1, 4))
}

func TestCellCanvasDashedLinePhaseStartsAtFrom(t *testing.T) {
	c := NewCellCanvas(8, 1)
	c.DashedLine(Point{X: 1, Y: 0.5}, Point{X: 6, Y: 0.5}, nil)
	assert.Equal(t, " ╌ ╌ ╌  ", c.Row(0))

	c = NewCellCanvas(8, 1)
	c.DashedLine(Point{X: 7, Y: 0.5}, Point{X: 1, Y: 0.5}, nil)
	assert.Equal(t, "  ╌ ╌ ╌ ", c.Row(0))

	v := NewCellCanvas(1, 5)
	v.DashedLine(Point{X: 0.5, Y: 5}, Point{X: 0.5, Y: 0}, nil)
	assert.Equal(t, dashGlyphV, v.At(0, 4))
	assert.Equal(t, " ", v.At(0, 3))
	assert.Equal(t, dashGlyphV, v.At(0, 2))
}

func TestCellCanvasDrawIconAtCentre(t *testing.T) {
	c := NewCellCanvas(10, 2)
	c.DrawIcon(Icon{Glyph: "●"}, Rect{Left: 2, Top: -1, Right: 6, Bottom: 3})
	assert.Equal(t, "●", c.At(4, 1))

	// Off-canvas centres are dropped, not pulled onto the edge.
	c.DrawIcon(Icon{Glyph: "○"}, Rect{Left: -4, Top: -1, Right: 0, Bottom: 3})
	c.DrawIcon(Icon{Glyph: "○"}, Rect{Left: 10, Top: -1, Right: 14, Bottom: 3})
	assert.Equal(t, "    ●     ", c.Row(1))
}

func TestCellCanvasSetTextClips(t *testing.T) {
	c := NewCellCanvas(6, 1)
	c.SetText(-2, 0, "Lorem", nil, false)
	assert.Equal(t, "rem   ", c.Row(0))

	c = NewCellCanvas(6, 1)
	c.SetText(3, 0, "Ipsum", nil, true)
	assert.Equal(t, "   Ips", c.Row(0))

	c.SetText(0, 5, "off", nil, false)
	assert.Equal(t, "", c.Row(5))
}

func TestCellCanvasRenderTrimsTrailingBlanks(t *testing.T) {
	c := NewCellCanvas(6, 2)
	c.SetText(0, 0, "ab", nil, false)
	assert.Equal(t, "ab\n", c.Render())

	c.SetText(0, 1, "x", lipgloss.Color("#ff0000"), false)
	assert.Contains(t, c.Render(), "x")
}
