package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CompactLogo is the one-line product mark.
const CompactLogo = "◉━━◉╌╌○ stepview"

// ---------------------------------------------------------------------------
// Panel styles
// ---------------------------------------------------------------------------

// Panel is the default panel style: rounded border in BorderNormal with
// horizontal padding.
var Panel = lipgloss.NewStyle().
	Border(RoundedBorder).
	BorderForeground(BorderNormal).
	PaddingLeft(1).
	PaddingRight(1)

// PanelFocused is identical to Panel but uses the cyan focus border.
var PanelFocused = Panel.
	BorderForeground(BorderFocused)

// Card is a compact raised surface with thin side borders, used for buttons.
var Card = lipgloss.NewStyle().
	Border(ThinBorder, false, true).
	BorderForeground(BorderNormal).
	Background(BgSurface).
	PaddingLeft(1).
	PaddingRight(1)

// ---------------------------------------------------------------------------
// Typography styles
// ---------------------------------------------------------------------------

// Title is bold AccentPrimary text for section headings.
var Title = lipgloss.NewStyle().
	Foreground(AccentPrimary).
	Bold(true)

// Subtitle is regular TextSecondary text for secondary headings.
var Subtitle = lipgloss.NewStyle().
	Foreground(TextSecondary)

// Label is TextMuted text for field labels.
var Label = lipgloss.NewStyle().
	Foreground(TextMuted)

// Value is bold TextPrimary text for data values.
var Value = lipgloss.NewStyle().
	Foreground(TextPrimary).
	Bold(true)

// ErrorText is bold red for failures.
var ErrorText = lipgloss.NewStyle().
	Foreground(StatusError).
	Bold(true)

// ---------------------------------------------------------------------------
// Badge helpers
// ---------------------------------------------------------------------------

// Badge returns an inline colored badge such as "● CURRENT".
func Badge(text string, color lipgloss.Color) string {
	dot := lipgloss.NewStyle().Foreground(color).Render("●")
	label := lipgloss.NewStyle().
		Foreground(color).
		Bold(true).
		Render(text)
	return dot + " " + label
}

// StateBadge returns a pre-styled badge for a step state name.
// Recognized: "completed", "current", "not_completed". Anything else is muted.
func StateBadge(state string) string {
	switch strings.ToLower(state) {
	case "completed":
		return Badge("COMPLETED", StatusOK)
	case "current":
		return Badge("CURRENT", AccentPrimary)
	default:
		return Badge(strings.ToUpper(strings.ReplaceAll(state, "_", " ")), TextMuted)
	}
}

// ---------------------------------------------------------------------------
// Divider
// ---------------------------------------------------------------------------

// Divider returns a horizontal rule of the given width using the ─ character
// rendered in BorderNormal color.
func Divider(width int) string {
	if width <= 0 {
		return ""
	}
	line := strings.Repeat("─", width)
	return lipgloss.NewStyle().Foreground(BorderNormal).Render(line)
}
