package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/stepview/internal/tui/styles"
)

// Notes is a scrollable markdown pane.
type Notes struct {
	markdown string
	style    string // glamour standard style, "auto" detects the terminal
	viewport viewport.Model
}

// NewNotes creates a notes pane rendering markdown with the given glamour
// style ("auto", "dark", "light", "notty", "ascii").
func NewNotes(width, height int, style string) Notes {
	if style == "" {
		style = "auto"
	}
	return Notes{
		style:    style,
		viewport: viewport.New(width, height),
	}
}

// SetMarkdown replaces the content and scrolls back to the top.
func (n *Notes) SetMarkdown(md string) {
	n.markdown = md
	n.refresh()
	n.viewport.GotoTop()
}

// SetSize resizes the pane and re-wraps the content.
func (n *Notes) SetSize(width, height int) {
	n.viewport.Width = width
	n.viewport.Height = height
	n.refresh()
}

func (n *Notes) refresh() {
	n.viewport.SetContent(RenderMarkdown(n.markdown, n.viewport.Width, n.style))
}

// Update forwards scrolling keys to the viewport.
func (n Notes) Update(msg tea.Msg) (Notes, tea.Cmd) {
	var cmd tea.Cmd
	n.viewport, cmd = n.viewport.Update(msg)
	return n, cmd
}

// View returns the pane with a title line.
func (n Notes) View() string {
	title := lipgloss.NewStyle().Foreground(styles.TextSecondary).Bold(true).Render("Notes")
	if !(n.viewport.AtTop() && n.viewport.AtBottom()) {
		title += styles.Dim(" ↑/↓ scroll")
	}
	return title + "\n" + n.viewport.View()
}

// RenderMarkdown renders md for a terminal of the given width. On renderer
// failure the raw markdown is returned.
func RenderMarkdown(md string, width int, style string) string {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
