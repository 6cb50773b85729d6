package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/stepview/internal/tui/styles"
)

// TabBar renders horizontal tab selection.
type TabBar struct {
	Tabs      []string
	ActiveTab int
	Width     int
}

// Render returns the styled tab bar string. Tabs that do not fit in Width
// are truncated.
func (t TabBar) Render() string {
	if len(t.Tabs) == 0 {
		return ""
	}

	activeStyle := lipgloss.NewStyle().
		Foreground(styles.AccentPrimary).
		Bold(true).
		Underline(true).
		PaddingLeft(1).
		PaddingRight(1)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Background(styles.BgPanel).
		PaddingLeft(1).
		PaddingRight(1)

	// Each tab costs two cells of padding plus a separator.
	maxLabel := 0
	if t.Width > 0 {
		maxLabel = t.Width/len(t.Tabs) - 3
	}

	var tabs []string
	for i, tab := range t.Tabs {
		if maxLabel > 0 {
			tab = styles.TruncateWithEllipsis(tab, maxLabel)
		}
		if i == t.ActiveTab {
			tabs = append(tabs, activeStyle.Render(tab))
		} else {
			tabs = append(tabs, inactiveStyle.Render(tab))
		}
	}

	sep := lipgloss.NewStyle().Foreground(styles.TextMuted).Render("│")
	content := strings.Join(tabs, sep)

	barStyle := lipgloss.NewStyle().
		Background(styles.BgDeep).
		Width(t.Width)

	return barStyle.Render(content)
}
