package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/stepview/internal/tui/styles"
)

// Header renders the app header bar.
type Header struct {
	Title string // current page title
	Page  int    // 0-indexed
	Pages int
	Width int
}

// Render returns the styled header string.
func (h Header) Render() string {
	width := h.Width
	if width <= 0 {
		width = 80
	}

	logo := lipgloss.NewStyle().
		Foreground(styles.AccentPrimary).
		Bold(true).
		Render(styles.CompactLogo)

	sep := lipgloss.NewStyle().Foreground(styles.TextMuted).Render("  │  ")

	title := lipgloss.NewStyle().Foreground(styles.TextPrimary).Bold(true).Render(h.Title)

	content := logo + sep + title
	if h.Pages > 0 {
		content += sep + styles.Label.Render("Page ") +
			lipgloss.NewStyle().Foreground(styles.AccentGold).Bold(true).
				Render(fmt.Sprintf("%d/%d", h.Page+1, h.Pages))
	}

	headerStyle := lipgloss.NewStyle().
		Background(styles.BgDeep).
		Foreground(styles.TextPrimary).
		Width(width).
		PaddingLeft(1).
		PaddingRight(1)

	return headerStyle.Render(content)
}
