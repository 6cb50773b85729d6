package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/stepview/internal/stepview"
	"github.com/Dallionking/stepview/internal/tui/styles"
)

// StepPanel frames a step view in a bordered panel.
type StepPanel struct {
	View    *stepview.View
	Title   string
	Focused bool
	Width   int // outer width, border included
}

// innerWidth is the content width left after border and padding.
func (p StepPanel) innerWidth() int {
	w := p.Width - 4
	if w < 1 {
		w = 1
	}
	return w
}

// Render lays the view out for the panel width and returns the framed
// string. A nil view renders an empty panel.
func (p StepPanel) Render() string {
	style := styles.Panel
	if p.Focused {
		style = styles.PanelFocused
	}
	if p.Width > 0 {
		style = style.Width(p.Width - 2)
	}

	body := ""
	if p.View != nil {
		if p.View.Orientation() == "horizontal" {
			p.View.SetBounds(stepview.Exact(p.innerWidth()), stepview.Unbounded())
		} else {
			p.View.SetBounds(stepview.UpTo(p.innerWidth()), stepview.Unbounded())
		}
		body = clipLines(p.View.Render(), p.innerWidth())
	}

	if p.Title != "" {
		body = styles.Title.Render(p.Title) + "\n\n" + body
	}
	return style.Render(body)
}

// Height returns the number of rendered lines.
func (p StepPanel) Height() int {
	return lipgloss.Height(p.Render())
}
